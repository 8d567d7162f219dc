package testutil

import (
	"context"
	"net/http"

	id "cineclub/pkg/domain"
	"cineclub/pkg/requestcontext"
)

// WithUserID adds a principal to the request context the way the auth
// middleware would. Invalid ids leave the request anonymous.
func WithUserID(req *http.Request, userID string) *http.Request {
	if parsed, err := id.ParseUserID(userID); err == nil {
		return req.WithContext(requestcontext.WithUserID(req.Context(), parsed))
	}
	return req
}

// WithPrincipal adds an already-typed principal to the request context.
func WithPrincipal(req *http.Request, userID id.UserID) *http.Request {
	return req.WithContext(requestcontext.WithUserID(req.Context(), userID))
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
