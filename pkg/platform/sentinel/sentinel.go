package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped)
// and services translate them into coded domain errors:
//   - ErrNotFound: row does not exist
//   - ErrConflict: a unique constraint rejected the write
//   - ErrInvalidState: a conditional update found the row in the wrong state
//
// Input validation does not belong here; use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
