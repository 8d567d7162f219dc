package models

import (
	"time"

	id "cineclub/pkg/domain"
)

// GroupStats are the per-group aggregates computed by one set-based query.
type GroupStats struct {
	MemberCount  int
	MovieCount   int
	FirstMovieID *id.MovieID
}

// GroupSummary is a Group decorated for listing.
type GroupSummary struct {
	Group
	MemberCount  int         `json:"member_count"`
	MovieCount   int         `json:"movie_count"`
	FirstMovieID *id.MovieID `json:"first_movie_id"`
	IsMember     bool        `json:"is_member"`
	IsOwner      bool        `json:"is_owner"`
}

// GroupPage is one page of group summaries.
type GroupPage struct {
	Groups []GroupSummary
	Page   int
	Limit  int
	Total  int
}

// MemberView is a membership row as shown on the group page.
type MemberView struct {
	UserID   id.UserID `json:"user_id"`
	Username string    `json:"username,omitempty"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupDetails is the full group page. Content is nil for non-members so it
// serializes as null.
type GroupDetails struct {
	Group
	Members      []MemberView   `json:"members"`
	Content      []GroupContent `json:"content"`
	MemberCount  int            `json:"member_count"`
	MovieCount   int            `json:"movie_count"`
	FirstMovieID *id.MovieID    `json:"first_movie_id"`
	IsMember     bool           `json:"is_member"`
	IsOwner      bool           `json:"is_owner"`
}

// PendingJoinRequest is a pending request as shown to the group owner.
type PendingJoinRequest struct {
	JoinRequest
	GroupName string `json:"group_name,omitempty"`
	Username  string `json:"username,omitempty"`
}
