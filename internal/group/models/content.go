package models

import (
	"time"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

// GroupContent attaches a catalogue movie to a group. (GroupID, MovieID) is unique.
type GroupContent struct {
	GroupID id.GroupID `json:"group_id"`
	MovieID id.MovieID `json:"movie_id"`
	AddedBy id.UserID  `json:"added_by"`
	AddedAt time.Time  `json:"added_at"`
}

func NewGroupContent(groupID id.GroupID, movieID id.MovieID, addedBy id.UserID, now time.Time) (*GroupContent, error) {
	if movieID <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "movie id must be a positive integer")
	}
	return &GroupContent{GroupID: groupID, MovieID: movieID, AddedBy: addedBy, AddedAt: now}, nil
}
