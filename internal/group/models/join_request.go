package models

import (
	"time"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

// JoinRequestStatus is the state of a join request.
//
//	pending -> approved
//	pending -> rejected
//
// approved and rejected are terminal.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

func (s JoinRequestStatus) IsValid() bool {
	switch s {
	case JoinRequestPending, JoinRequestApproved, JoinRequestRejected:
		return true
	}
	return false
}

func (s JoinRequestStatus) IsTerminal() bool {
	return s == JoinRequestApproved || s == JoinRequestRejected
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s JoinRequestStatus) CanTransitionTo(next JoinRequestStatus) bool {
	return s == JoinRequestPending && next.IsTerminal()
}

func (s JoinRequestStatus) String() string { return string(s) }

// JoinRequest is a petition by a non-member to join a group. Once resolved it
// never changes again.
type JoinRequest struct {
	ID          id.JoinRequestID  `json:"id"`
	GroupID     id.GroupID        `json:"group_id"`
	UserID      id.UserID         `json:"user_id"`
	Status      JoinRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requested_at"`
	RespondedAt *time.Time        `json:"responded_at"`
}

func NewJoinRequest(requestID id.JoinRequestID, groupID id.GroupID, userID id.UserID, now time.Time) (*JoinRequest, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "join request requires a user")
	}
	return &JoinRequest{
		ID:          requestID,
		GroupID:     groupID,
		UserID:      userID,
		Status:      JoinRequestPending,
		RequestedAt: now,
	}, nil
}

func (r *JoinRequest) IsPending() bool {
	return r.Status == JoinRequestPending
}

// CanResolve returns invalid_state unless the request can move to next.
func (r *JoinRequest) CanResolve(next JoinRequestStatus) error {
	if !r.Status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeInvalidState, "join request is already "+string(r.Status))
	}
	return nil
}

// ApplyResolution stamps the terminal status. Call CanResolve first.
func (r *JoinRequest) ApplyResolution(next JoinRequestStatus, now time.Time) {
	r.Status = next
	r.RespondedAt = &now
}
