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

// RequestToJoin files a pending request for principal. Members and users with
// a pending request get conflict; a lost race on the pending uniqueness
// constraint is reported the same way.
func (s *Service) RequestToJoin(ctx context.Context, principal id.UserID, groupID id.GroupID) (*models.JoinRequest, error) {
	defer s.observe("request_to_join", time.Now())
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}

	var created *models.JoinRequest
	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		if _, err := s.loadGroup(ctx, groupID); err != nil {
			return err
		}

		_, err := s.members.FindMember(ctx, groupID, principal)
		switch {
		case err == nil:
			return dErrors.New(dErrors.CodeConflict, "you are already a member of this group")
		case !errors.Is(err, sentinel.ErrNotFound):
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load membership")
		}

		_, err = s.requests.FindPendingJoinRequest(ctx, groupID, principal)
		switch {
		case err == nil:
			return errPendingExists
		case !errors.Is(err, sentinel.ErrNotFound):
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load join request")
		}

		r, err := models.NewJoinRequest(id.NewJoinRequestID(), groupID, principal, requestcontext.Now(ctx))
		if err != nil {
			return invariantToValidation(err)
		}
		if err := s.requests.CreateJoinRequest(ctx, r); err != nil {
			switch {
			case errors.Is(err, sentinel.ErrConflict):
				return errPendingExists
			case errors.Is(err, sentinel.ErrNotFound):
				return dErrors.New(dErrors.CodeNotFound, "group not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create join request")
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, audit.EventJoinRequested, principal, groupID.String(),
		"group_id", groupID.String(), "request_id", created.ID.String())
	if s.metrics != nil {
		s.metrics.IncrementJoinRequest("requested")
	}
	return created, nil
}

var errPendingExists = dErrors.New(dErrors.CodeConflict, "a join request is already pending for this group")

// ApproveRequest moves a pending request to approved and makes the requester
// a member. The membership insert tolerates an existing row.
func (s *Service) ApproveRequest(ctx context.Context, owner id.UserID, groupID id.GroupID, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	return s.resolve(ctx, owner, groupID, requestID, models.JoinRequestApproved)
}

// RejectRequest moves a pending request to rejected.
func (s *Service) RejectRequest(ctx context.Context, owner id.UserID, groupID id.GroupID, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	return s.resolve(ctx, owner, groupID, requestID, models.JoinRequestRejected)
}

func (s *Service) resolve(ctx context.Context, owner id.UserID, groupID id.GroupID, requestID id.JoinRequestID, next models.JoinRequestStatus) (*models.JoinRequest, error) {
	defer s.observe("resolve_join_request", time.Now())
	if err := requirePrincipal(owner); err != nil {
		return nil, err
	}

	var resolved *models.JoinRequest
	err := s.runInGroupTx(ctx, groupID, func(ctx context.Context) error {
		if _, err := s.loadOwnedGroup(ctx, owner, groupID); err != nil {
			return err
		}

		r, err := s.requests.FindJoinRequest(ctx, requestID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "join request not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load join request")
		}
		if r.GroupID != groupID {
			return dErrors.New(dErrors.CodeNotFound, "join request not found")
		}
		if err := r.CanResolve(next); err != nil {
			return err
		}

		now := requestcontext.Now(ctx)
		r.ApplyResolution(next, now)
		if err := s.requests.ResolveJoinRequest(ctx, r); err != nil {
			if errors.Is(err, sentinel.ErrInvalidState) {
				return dErrors.New(dErrors.CodeInvalidState, "join request is no longer pending")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve join request")
		}

		if next == models.JoinRequestApproved {
			if _, err := s.members.AddMemberIfAbsent(ctx, models.NewMemberMembership(groupID, r.UserID, now)); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add member")
			}
		}
		resolved = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	event, outcome := audit.EventJoinRejected, "rejected"
	if next == models.JoinRequestApproved {
		event, outcome = audit.EventJoinApproved, "approved"
	}
	s.logAudit(ctx, event, owner, resolved.UserID.String(),
		"group_id", groupID.String(), "request_id", requestID.String())
	if s.metrics != nil {
		s.metrics.IncrementJoinRequest(outcome)
	}
	return resolved, nil
}

// ListPendingForGroup returns a group's pending requests oldest first. Owner only.
func (s *Service) ListPendingForGroup(ctx context.Context, owner id.UserID, groupID id.GroupID) ([]*models.PendingJoinRequest, error) {
	if err := requirePrincipal(owner); err != nil {
		return nil, err
	}
	if _, err := s.loadOwnedGroup(ctx, owner, groupID); err != nil {
		return nil, err
	}
	pending, err := s.requests.ListPendingByGroup(ctx, groupID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list join requests")
	}
	s.attachRequesterNames(ctx, pending)
	return pending, nil
}

// ListPendingForOwner returns pending requests across every group principal
// owns, newest first.
func (s *Service) ListPendingForOwner(ctx context.Context, principal id.UserID) ([]*models.PendingJoinRequest, error) {
	if err := requirePrincipal(principal); err != nil {
		return nil, err
	}
	pending, err := s.requests.ListPendingByOwner(ctx, principal)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list join requests")
	}
	s.attachRequesterNames(ctx, pending)
	return pending, nil
}

func (s *Service) attachRequesterNames(ctx context.Context, pending []*models.PendingJoinRequest) {
	ids := make([]id.UserID, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.UserID)
	}
	names := s.usernames(ctx, ids)
	for _, p := range pending {
		p.Username = names[p.UserID]
	}
}
