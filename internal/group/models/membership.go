package models

import (
	"time"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

// Role is a member's standing in a group.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleMember
}

func (r Role) String() string { return string(r) }

// Membership grants a user standing in a group. (GroupID, UserID) is unique.
type Membership struct {
	GroupID  id.GroupID `json:"group_id"`
	UserID   id.UserID  `json:"user_id"`
	Role     Role       `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

func NewOwnerMembership(groupID id.GroupID, ownerID id.UserID, now time.Time) *Membership {
	return &Membership{GroupID: groupID, UserID: ownerID, Role: RoleOwner, JoinedAt: now}
}

func NewMemberMembership(groupID id.GroupID, userID id.UserID, now time.Time) *Membership {
	return &Membership{GroupID: groupID, UserID: userID, Role: RoleMember, JoinedAt: now}
}

func (m *Membership) IsOwner() bool {
	return m.Role == RoleOwner
}

// CanRemove rejects removal of the owner row; the group must be deleted instead.
func (m *Membership) CanRemove() error {
	if m.IsOwner() {
		return dErrors.New(dErrors.CodeForbidden, "the owner cannot leave or be removed; delete the group instead")
	}
	return nil
}
