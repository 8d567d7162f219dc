// Package group wires the group store, service and HTTP handler together.
package group

import (
	"database/sql"
	"log/slog"

	"cineclub/internal/group/handler"
	"cineclub/internal/group/service"
	"cineclub/internal/group/store"
	"cineclub/pkg/platform/middleware/auth"
)

// Service exposes group, membership and join request orchestration.
type Service = service.Service

// Handler wires HTTP endpoints to the group service.
type Handler = handler.Handler

// Option configures the group service.
type Option = service.Option

// NewInMemoryService constructs the group service over the in-memory store,
// serialized per group by a sharded lock.
func NewInMemoryService(opts ...Option) *Service {
	s := store.NewInMemory()
	return service.New(s, s, s, s, opts...)
}

// NewPostgresService constructs the group service over Postgres. tx binds a
// database transaction to the context of every compound mutation.
func NewPostgresService(db *sql.DB, tx service.StoreTx, opts ...Option) *Service {
	s := store.NewPostgres(db)
	return service.New(s, s, s, s, append(opts, service.WithTx(tx))...)
}

// NewHandler constructs the HTTP handler for group and notification routes.
func NewHandler(s *Service, tokens auth.JWTValidator, logger *slog.Logger) *Handler {
	return handler.New(s, tokens, logger)
}
