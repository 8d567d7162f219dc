package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "cineclub/pkg/domain"
	audit "cineclub/pkg/platform/audit"
	txcontext "cineclub/pkg/platform/tx"
)

// Store persists audit events in the audit_events table. Writes join the
// transaction bound to ctx when there is one.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Emit inserts event. The category is always derived from the action.
func (s *Store) Emit(ctx context.Context, event audit.Event) error {
	var userID *uuid.UUID
	if !event.UserID.IsNil() {
		uid := uuid.UUID(event.UserID)
		userID = &uid
	}

	query := `
		INSERT INTO audit_events (id, category, timestamp, user_id, subject, action, decision, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := txcontext.Executor(ctx, s.db).ExecContext(ctx, query,
		uuid.New(),
		string(audit.AuditEvent(event.Action).Category()),
		event.Timestamp,
		userID,
		event.Subject,
		event.Action,
		event.Decision,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByUser returns an actor's events newest first.
func (s *Store) ListByUser(ctx context.Context, userID id.UserID, limit int) ([]audit.Event, error) {
	query := `
		SELECT category, timestamp, user_id, subject, action, decision, request_id
		FROM audit_events
		WHERE user_id = $1
		ORDER BY timestamp DESC, id
	`
	args := []any{uuid.UUID(userID)}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := txcontext.Executor(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			e        audit.Event
			category string
			uid      uuid.NullUUID
		)
		if err := rows.Scan(&category, &e.Timestamp, &uid, &e.Subject, &e.Action, &e.Decision, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.EventCategory(category)
		if uid.Valid {
			e.UserID = id.UserID(uid.UUID)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
