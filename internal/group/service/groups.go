package service

import (
	"context"
	"errors"
	"time"

	"cineclub/internal/group/models"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	"cineclub/pkg/platform/sentinel"
	"cineclub/pkg/requestcontext"
)

// CreateGroup creates a group owned by principal and inserts the owner
// membership in the same transaction.
func (s *Service) CreateGroup(ctx context.Context, principal id.UserID, in models.CreateGroupInput) (*models.Group, error) {
	defer s.observe("create_group", time.Now())
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	g, err := models.NewGroup(id.NewGroupID(), principal, in.Name, in.Description, now)
	if err != nil {
		return nil, invariantToValidation(err)
	}

	err = s.runInGroupTx(ctx, g.ID, func(ctx context.Context) error {
		if err := s.groups.CreateGroup(ctx, g); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create group")
		}
		if err := s.members.AddMember(ctx, models.NewOwnerMembership(g.ID, principal, now)); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add group owner")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.EventGroupCreated, principal, g.ID.String(), "group_id", g.ID.String())
	if s.metrics != nil {
		s.metrics.IncrementGroupsCreated()
	}
	return g, nil
}

// UpdateGroup applies a partial update. Checks run in order: group exists,
// principal owns it, some field was supplied, values are valid.
func (s *Service) UpdateGroup(ctx context.Context, principal id.UserID, groupID id.GroupID, in models.UpdateGroupInput) (*models.Group, error) {
	defer s.observe("update_group", time.Now())
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var updated *models.Group
	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		g, err := s.loadOwnedGroup(ctx, principal, groupID)
		if err != nil {
			return err
		}
		if in.IsEmpty() {
			return dErrors.New(dErrors.CodeNoOp, "no fields to update")
		}
		if err := g.CanUpdate(in.Name, in.Description); err != nil {
			return invariantToValidation(err)
		}
		g.ApplyUpdate(in.Name, in.Description, requestcontext.Now(ctx))
		if err := s.groups.UpdateGroup(ctx, g); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update group")
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.EventGroupUpdated, principal, groupID.String(), "group_id", groupID.String())
	return updated, nil
}

// DeleteGroup removes the group and, by cascade, every membership, join
// request and content row that references it.
func (s *Service) DeleteGroup(ctx context.Context, principal id.UserID, groupID id.GroupID) error {
	defer s.observe("delete_group", time.Now())
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		if _, err := s.loadOwnedGroup(ctx, principal, groupID); err != nil {
			return err
		}
		if err := s.groups.DeleteGroup(ctx, groupID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete group")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, audit.EventGroupDeleted, principal, groupID.String(), "group_id", groupID.String())
	if s.metrics != nil {
		s.metrics.IncrementGroupsDeleted()
	}
	return nil
}

// AddContent attaches a movie to the group. Owner only.
func (s *Service) AddContent(ctx context.Context, principal id.UserID, groupID id.GroupID, movieID id.MovieID) (*models.GroupContent, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	if movieID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "movie_id must be a positive integer")
	}

	var added *models.GroupContent
	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		if _, err := s.loadOwnedGroup(ctx, principal, groupID); err != nil {
			return err
		}
		c, err := models.NewGroupContent(groupID, movieID, principal, requestcontext.Now(ctx))
		if err != nil {
			return invariantToValidation(err)
		}
		if err := s.content.AddContent(ctx, c); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrConflict):
				return dErrors.New(dErrors.CodeConflict, "movie is already in this group")
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add movie")
		}
		added = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.EventContentAdded, principal, groupID.String(), "group_id", groupID.String(), "movie_id", movieID.String())
	return added, nil
}

// RemoveContent detaches a movie from the group. Owner only.
func (s *Service) RemoveContent(ctx context.Context, principal id.UserID, groupID id.GroupID, movieID id.MovieID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		if _, err := s.loadOwnedGroup(ctx, principal, groupID); err != nil {
			return err
		}
		if err := s.content.RemoveContent(ctx, groupID, movieID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "movie is not in this group")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove movie")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, audit.EventContentRemoved, principal, groupID.String(), "group_id", groupID.String(), "movie_id", movieID.String())
	return nil
}

// RemoveMember removes targetUserID from the group. Owner only; the owner row
// itself can never be removed.
func (s *Service) RemoveMember(ctx context.Context, principal id.UserID, groupID id.GroupID, targetUserID id.UserID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		g, err := s.loadOwnedGroup(ctx, principal, groupID)
		if err != nil {
			return err
		}
		if g.OwnerID == targetUserID {
			return dErrors.New(dErrors.CodeForbidden, "the owner cannot be removed; delete the group instead")
		}
		return s.removeMembership(ctx, groupID, targetUserID, "user is not a member of this group")
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, audit.EventMemberRemoved, principal, targetUserID.String(), "group_id", groupID.String())
	return nil
}

// LeaveGroup removes the principal's own membership. The owner cannot leave.
func (s *Service) LeaveGroup(ctx context.Context, principal id.UserID, groupID id.GroupID) error {
	if err := requirePrincipal(principal); err != nil {
		return err
	}

	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		if _, err := s.loadGroup(ctx, groupID); err != nil {
			return err
		}
		return s.removeMembership(ctx, groupID, principal, "you are not a member of this group")
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, audit.EventMemberLeft, principal, groupID.String(), "group_id", groupID.String())
	return nil
}

func (s *Service) removeMembership(ctx context.Context, groupID id.GroupID, userID id.UserID, notMember string) error {
	m, err := s.members.FindMember(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, notMember)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
	}
	if err := m.CanRemove(); err != nil {
		return err
	}
	if err := s.members.RemoveMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, notMember)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove membership")
	}
	return nil
}
