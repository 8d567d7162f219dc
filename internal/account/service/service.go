package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cineclub/internal/account/models"
	"cineclub/internal/account/secrets"
	"cineclub/internal/account/store"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	"cineclub/pkg/platform/sentinel"
	"cineclub/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateAccessToken(userID id.UserID, username string) (string, time.Time, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// ActivityLog reads back a user's own audit trail.
type ActivityLog interface {
	ListByUser(ctx context.Context, userID id.UserID, limit int) ([]audit.Event, error)
}

// UserCounter is the slice of platform metrics the service records to.
type UserCounter interface {
	IncrementUsersCreated()
}

// Service registers and authenticates users.
type Service struct {
	users          Store
	tokens         TokenIssuer
	logger         *slog.Logger
	auditPublisher AuditPublisher
	activity       ActivityLog
	metrics        UserCounter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditPublisher = publisher }
}

func WithActivityLog(activity ActivityLog) Option {
	return func(s *Service) { s.activity = activity }
}

func WithMetrics(m UserCounter) Option {
	return func(s *Service) { s.metrics = m }
}

func New(users Store, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{users: users, tokens: tokens}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const tokenType = "Bearer"

// Register creates an account and signs the user in.
func (s *Service) Register(ctx context.Context, in models.RegisterInput) (*models.AuthResult, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := secrets.Hash(in.Password)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
		}
		return nil, err
	}
	u, err := models.NewUser(id.NewUserID(), in.Username, in.Email, hash, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}

	if err := s.users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			return nil, dErrors.New(dErrors.CodeConflict, "username is already taken")
		case errors.Is(err, store.ErrEmailTaken):
			return nil, dErrors.New(dErrors.CodeConflict, "email is already registered")
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.New(dErrors.CodeConflict, "account already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
	s.logAudit(ctx, audit.EventUserRegistered, u.ID, "username", u.Username)
	return s.issue(u)
}

// Login verifies credentials. Unknown emails and wrong passwords produce the
// same error.
func (s *Service) Login(ctx context.Context, in models.LoginInput) (*models.AuthResult, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, secrets.VerifyAbsent(in.Password)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	if err := secrets.Verify(in.Password, u.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.logAudit(ctx, audit.EventLoginFailed, u.ID)
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify password")
	}

	s.logAudit(ctx, audit.EventLoginSucceeded, u.ID)
	return s.issue(u)
}

// Me returns the authenticated user's account.
func (s *Service) Me(ctx context.Context, userID id.UserID) (*models.User, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return u, nil
}

// Activity returns the user's most recent audit events, newest first.
func (s *Service) Activity(ctx context.Context, userID id.UserID, limit int) ([]audit.Event, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if s.activity == nil {
		return []audit.Event{}, nil
	}
	events, err := s.activity.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load activity")
	}
	return events, nil
}

func (s *Service) issue(u *models.User) (*models.AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	return &models.AuthResult{User: u, AccessToken: token, TokenType: tokenType, ExpiresAt: expiresAt}, nil
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, userID id.UserID, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "user_id", userID.String(), "event", string(event), "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Category:  event.Category(),
		Timestamp: requestcontext.Now(ctx),
		UserID:    userID,
		Subject:   userID.String(),
		Action:    string(event),
		RequestID: requestID,
	}); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}
