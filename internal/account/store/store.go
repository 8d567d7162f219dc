// Package store persists accounts. Usernames and emails are unique
// case-insensitively.
package store

import (
	"context"
	"fmt"

	id "cineclub/pkg/domain"
	"cineclub/pkg/platform/sentinel"
)

// Conflicts carry the field that collided; both match sentinel.ErrConflict.
var (
	ErrUsernameTaken = fmt.Errorf("username taken: %w", sentinel.ErrConflict)
	ErrEmailTaken    = fmt.Errorf("email taken: %w", sentinel.ErrConflict)
)

// UsernameResolver looks up display names in bulk. Unknown ids are omitted.
type UsernameResolver interface {
	UsernamesByID(ctx context.Context, userIDs []id.UserID) (map[id.UserID]string, error)
}

var (
	_ UsernameResolver = (*InMemory)(nil)
	_ UsernameResolver = (*Postgres)(nil)
)
