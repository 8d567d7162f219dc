package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	groupmetrics "cineclub/internal/group/metrics"
	"cineclub/internal/group/models"
	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
	"cineclub/pkg/platform/audit"
	"cineclub/pkg/platform/sentinel"
	"cineclub/pkg/requestcontext"
)

type GroupStore interface {
	CreateGroup(ctx context.Context, g *models.Group) error
	FindGroup(ctx context.Context, groupID id.GroupID) (*models.Group, error)
	UpdateGroup(ctx context.Context, g *models.Group) error
	DeleteGroup(ctx context.Context, groupID id.GroupID) error
	ListGroups(ctx context.Context, offset, limit int) ([]*models.Group, error)
	CountGroups(ctx context.Context) (int, error)
}

type MembershipStore interface {
	AddMember(ctx context.Context, membership *models.Membership) error
	AddMemberIfAbsent(ctx context.Context, membership *models.Membership) (bool, error)
	FindMember(ctx context.Context, groupID id.GroupID, userID id.UserID) (*models.Membership, error)
	ListMembers(ctx context.Context, groupID id.GroupID) ([]*models.Membership, error)
	RemoveMember(ctx context.Context, groupID id.GroupID, userID id.UserID) error
	GroupStats(ctx context.Context, groupIDs []id.GroupID) (map[id.GroupID]models.GroupStats, error)
	ViewerRoles(ctx context.Context, userID id.UserID, groupIDs []id.GroupID) (map[id.GroupID]models.Role, error)
}

type JoinRequestStore interface {
	CreateJoinRequest(ctx context.Context, r *models.JoinRequest) error
	FindJoinRequest(ctx context.Context, requestID id.JoinRequestID) (*models.JoinRequest, error)
	FindPendingJoinRequest(ctx context.Context, groupID id.GroupID, userID id.UserID) (*models.JoinRequest, error)
	ResolveJoinRequest(ctx context.Context, r *models.JoinRequest) error
	ListPendingByGroup(ctx context.Context, groupID id.GroupID) ([]*models.PendingJoinRequest, error)
	ListPendingByOwner(ctx context.Context, ownerID id.UserID) ([]*models.PendingJoinRequest, error)
}

type ContentStore interface {
	AddContent(ctx context.Context, c *models.GroupContent) error
	RemoveContent(ctx context.Context, groupID id.GroupID, movieID id.MovieID) error
	ListContent(ctx context.Context, groupID id.GroupID) ([]*models.GroupContent, error)
}

// UserDirectory resolves display names for member and request listings.
type UserDirectory interface {
	UsernamesByID(ctx context.Context, userIDs []id.UserID) (map[id.UserID]string, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service owns groups, their memberships, content and the join request
// workflow. Every call re-reads ownership from the store.
type Service struct {
	groups         GroupStore
	members        MembershipStore
	requests       JoinRequestStore
	content        ContentStore
	tx             StoreTx
	users          UserDirectory
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *groupmetrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *groupmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithUserDirectory(users UserDirectory) Option {
	return func(s *Service) {
		s.users = users
	}
}

// WithTx replaces the default in-memory transaction runner.
func WithTx(tx StoreTx) Option {
	return func(s *Service) {
		s.tx = tx
	}
}

// New constructs a Service. Without WithTx compound mutations are serialized
// by an in-memory ShardedTx.
func New(groups GroupStore, members MembershipStore, requests JoinRequestStore, content ContentStore, opts ...Option) *Service {
	s := &Service{groups: groups, members: members, requests: requests, content: content}
	for _, opt := range opts {
		opt(s)
	}
	if s.tx == nil {
		s.tx = NewShardedTx()
	}
	return s
}

func requirePrincipal(principal id.UserID) error {
	if principal.IsNil() {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return nil
}

func (s *Service) loadGroup(ctx context.Context, groupID id.GroupID) (*models.Group, error) {
	g, err := s.groups.FindGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "group not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load group")
	}
	return g, nil
}

// loadOwnedGroup returns not_found before forbidden so non-owners learn
// nothing beyond existence.
func (s *Service) loadOwnedGroup(ctx context.Context, principal id.UserID, groupID id.GroupID) (*models.Group, error) {
	g, err := s.loadGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !g.IsOwnedBy(principal) {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the group owner can do this")
	}
	return g, nil
}

// runInGroupTx runs fn inside the store transaction scoped to groupID.
func (s *Service) runInGroupTx(ctx context.Context, groupID id.GroupID, fn func(ctx context.Context) error) error {
	err := s.tx.RunInTx(withTxGroup(ctx, groupID), fn)
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "transaction failed")
}

// invariantToValidation surfaces model invariant failures as caller errors.
func invariantToValidation(err error) error {
	if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
		return dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	return err
}

func (s *Service) usernames(ctx context.Context, userIDs []id.UserID) map[id.UserID]string {
	if s.users == nil || len(userIDs) == 0 {
		return nil
	}
	names, err := s.users.UsernamesByID(ctx, userIDs)
	if err != nil {
		// Usernames are best effort.
		if s.logger != nil {
			s.logger.WarnContext(ctx, "failed to resolve usernames", "error", err)
		}
		return nil
	}
	return names
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, actor id.UserID, subject string, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "user_id", actor.String(), "subject", subject, "event", string(event), "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Category:  event.Category(),
		Timestamp: requestcontext.Now(ctx),
		UserID:    actor,
		Subject:   subject,
		Action:    string(event),
		RequestID: requestID,
	}); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}

func (s *Service) observe(op string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, start)
	}
}
