package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "cineclub/pkg/domain-errors"
)

// Typed identifiers keep user, group and join-request ids from being mixed up
// at call sites. All of them are UUIDs; the nil UUID means "absent".
type (
	UserID        uuid.UUID
	GroupID       uuid.UUID
	JoinRequestID uuid.UUID
)

// MovieID is the opaque integer reference into the external movie catalogue.
type MovieID int64

func (u UserID) String() string        { return uuid.UUID(u).String() }
func (g GroupID) String() string       { return uuid.UUID(g).String() }
func (r JoinRequestID) String() string { return uuid.UUID(r).String() }
func (m MovieID) String() string       { return strconv.FormatInt(int64(m), 10) }

func (u UserID) IsNil() bool        { return uuid.UUID(u) == uuid.Nil }
func (g GroupID) IsNil() bool       { return uuid.UUID(g) == uuid.Nil }
func (r JoinRequestID) IsNil() bool { return uuid.UUID(r) == uuid.Nil }

// NewGroupID returns a random group id.
func NewGroupID() GroupID { return GroupID(uuid.New()) }

// NewJoinRequestID returns a random join request id.
func NewJoinRequestID() JoinRequestID { return JoinRequestID(uuid.New()) }

// NewUserID returns a random user id.
func NewUserID() UserID { return UserID(uuid.New()) }

// maxIDLength bounds input before it reaches uuid.Parse.
const maxIDLength = 64

func parseUUID(s, kind string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" is required")
	}
	if len(s) > maxIDLength {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	return parsed, nil
}

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

func ParseGroupID(s string) (GroupID, error) {
	u, err := parseUUID(s, "group id")
	return GroupID(u), err
}

func ParseJoinRequestID(s string) (JoinRequestID, error) {
	u, err := parseUUID(s, "request id")
	return JoinRequestID(u), err
}

// ParseMovieID accepts positive base-10 integers only.
func ParseMovieID(s string) (MovieID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "movie id is required")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid movie id")
	}
	return MovieID(n), nil
}

func (u UserID) MarshalText() ([]byte, error)        { return uuid.UUID(u).MarshalText() }
func (g GroupID) MarshalText() ([]byte, error)       { return uuid.UUID(g).MarshalText() }
func (r JoinRequestID) MarshalText() ([]byte, error) { return uuid.UUID(r).MarshalText() }

func (u *UserID) UnmarshalText(b []byte) error        { return (*uuid.UUID)(u).UnmarshalText(b) }
func (g *GroupID) UnmarshalText(b []byte) error       { return (*uuid.UUID)(g).UnmarshalText(b) }
func (r *JoinRequestID) UnmarshalText(b []byte) error { return (*uuid.UUID)(r).UnmarshalText(b) }
