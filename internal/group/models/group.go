package models

import (
	"strings"
	"time"
	"unicode/utf8"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/validation"
)

// Group is the aggregate root for a movie club.
//
// Invariants:
//   - Name is trimmed, non-empty and at most 255 characters
//   - Description is at most 1000 characters
//   - OwnerID is immutable after construction
//   - The owner always holds the single owner-role Membership of the group
type Group struct {
	ID          id.GroupID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	OwnerID     id.UserID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewGroup(groupID id.GroupID, ownerID id.UserID, name, description string, now time.Time) (*Group, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "group owner is required")
	}
	name = strings.TrimSpace(name)
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := checkDescription(description); err != nil {
		return nil, err
	}
	return &Group{
		ID:          groupID,
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func checkName(name string) error {
	if name == "" {
		return dErrors.New(dErrors.CodeInvariantViolation, "group name is required")
	}
	if utf8.RuneCountInString(name) > validation.MaxGroupNameLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "group name must be 255 characters or less")
	}
	return nil
}

func checkDescription(description string) error {
	if utf8.RuneCountInString(description) > validation.MaxDescriptionLength {
		return dErrors.New(dErrors.CodeInvariantViolation, "group description must be 1000 characters or less")
	}
	return nil
}

// IsOwnedBy reports whether userID owns the group.
func (g *Group) IsOwnedBy(userID id.UserID) bool {
	return !userID.IsNil() && g.OwnerID == userID
}

// CanUpdate validates a partial update without applying it.
func (g *Group) CanUpdate(name, description *string) error {
	if name != nil {
		if err := checkName(strings.TrimSpace(*name)); err != nil {
			return err
		}
	}
	if description != nil {
		if err := checkDescription(*description); err != nil {
			return err
		}
	}
	return nil
}

// ApplyUpdate sets the supplied fields and refreshes UpdatedAt.
// Call CanUpdate first.
func (g *Group) ApplyUpdate(name, description *string, now time.Time) {
	if name != nil {
		g.Name = strings.TrimSpace(*name)
	}
	if description != nil {
		g.Description = *description
	}
	g.UpdatedAt = now
}
