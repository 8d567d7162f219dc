// Package account wires user registration, login and token issuance.
package account

import (
	"database/sql"
	"log/slog"

	"cineclub/internal/account/handler"
	"cineclub/internal/account/service"
	"cineclub/internal/account/store"
	"cineclub/pkg/platform/middleware/auth"
)

type Service = service.Service

type Handler = handler.Handler

type Option = service.Option

// Directory resolves usernames for other modules.
type Directory interface {
	service.Store
	store.UsernameResolver
}

// NewInMemoryStore returns the development store.
func NewInMemoryStore() *store.InMemory {
	return store.NewInMemory()
}

// NewPostgresStore returns the users table store.
func NewPostgresStore(db *sql.DB) *store.Postgres {
	return store.NewPostgres(db)
}

func NewService(users service.Store, tokens service.TokenIssuer, opts ...Option) *Service {
	return service.New(users, tokens, opts...)
}

func NewHandler(s *Service, tokens auth.JWTValidator, logger *slog.Logger) *Handler {
	return handler.New(s, tokens, logger)
}
