package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"cineclub/internal/group/models"
	"cineclub/internal/platform/postgres"
	id "cineclub/pkg/domain"
	"cineclub/pkg/platform/sentinel"
	txcontext "cineclub/pkg/platform/tx"
)

// Postgres persists groups in the schema from internal/platform/postgres.
// Statements run on the transaction bound to ctx when there is one.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) q(ctx context.Context) txcontext.Querier {
	return txcontext.Executor(ctx, s.db)
}

func mapWriteErr(err error) error {
	if postgres.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w", postgres.ConstraintName(err), sentinel.ErrConflict)
	}
	if postgres.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", postgres.ConstraintName(err), sentinel.ErrNotFound)
	}
	return err
}

func requireOneRow(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}

func groupIDStrings(ids []id.GroupID) []string {
	out := make([]string, len(ids))
	for i, g := range ids {
		out[i] = g.String()
	}
	return out
}

// Groups

func (s *Postgres) CreateGroup(ctx context.Context, g *models.Group) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO groups (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(g.ID), g.Name, g.Description, uuid.UUID(g.OwnerID), g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group: %w", mapWriteErr(err))
	}
	return nil
}

const groupColumns = `id, name, description, owner_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*models.Group, error) {
	var (
		g            models.Group
		gid, ownerID uuid.UUID
	)
	if err := row.Scan(&gid, &g.Name, &g.Description, &ownerID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.ID = id.GroupID(gid)
	g.OwnerID = id.UserID(ownerID)
	return &g, nil
}

func (s *Postgres) FindGroup(ctx context.Context, groupID id.GroupID) (*models.Group, error) {
	g, err := scanGroup(s.q(ctx).QueryRowContext(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id = $1`, uuid.UUID(groupID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find group: %w", err)
	}
	return g, nil
}

func (s *Postgres) UpdateGroup(ctx context.Context, g *models.Group) error {
	res, err := s.q(ctx).ExecContext(ctx, `
		UPDATE groups SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		uuid.UUID(g.ID), g.Name, g.Description, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return requireOneRow(res, sentinel.ErrNotFound)
}

// DeleteGroup relies on ON DELETE CASCADE for members, requests and content.
func (s *Postgres) DeleteGroup(ctx context.Context, groupID id.GroupID) error {
	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, uuid.UUID(groupID))
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return requireOneRow(res, sentinel.ErrNotFound)
}

func (s *Postgres) ListGroups(ctx context.Context, offset, limit int) ([]*models.Group, error) {
	if offset < 0 {
		return []*models.Group{}, nil
	}
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT `+groupColumns+` FROM groups
		ORDER BY created_at DESC, id
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	out := []*models.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Postgres) CountGroups(ctx context.Context) (int, error) {
	var n int
	if err := s.q(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}

// Memberships

func (s *Postgres) AddMember(ctx context.Context, m *models.Membership) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.UUID(m.GroupID), uuid.UUID(m.UserID), string(m.Role), m.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("insert member: %w", mapWriteErr(err))
	}
	return nil
}

// AddMemberIfAbsent tolerates a concurrent insert of the same pair.
func (s *Postgres) AddMemberIfAbsent(ctx context.Context, m *models.Membership) (bool, error) {
	res, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_id, user_id) DO NOTHING`,
		uuid.UUID(m.GroupID), uuid.UUID(m.UserID), string(m.Role), m.JoinedAt,
	)
	if err != nil {
		return false, fmt.Errorf("upsert member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func scanMember(row rowScanner) (*models.Membership, error) {
	var (
		m        models.Membership
		gid, uid uuid.UUID
		role     string
	)
	if err := row.Scan(&gid, &uid, &role, &m.JoinedAt); err != nil {
		return nil, err
	}
	m.GroupID = id.GroupID(gid)
	m.UserID = id.UserID(uid)
	m.Role = models.Role(role)
	return &m, nil
}

func (s *Postgres) FindMember(ctx context.Context, groupID id.GroupID, userID id.UserID) (*models.Membership, error) {
	m, err := scanMember(s.q(ctx).QueryRowContext(ctx, `
		SELECT group_id, user_id, role, joined_at FROM group_members
		WHERE group_id = $1 AND user_id = $2`, uuid.UUID(groupID), uuid.UUID(userID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	return m, nil
}

func (s *Postgres) ListMembers(ctx context.Context, groupID id.GroupID) ([]*models.Membership, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT group_id, user_id, role, joined_at FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at, user_id`, uuid.UUID(groupID))
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	out := []*models.Membership{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Postgres) RemoveMember(ctx context.Context, groupID id.GroupID, userID id.UserID) error {
	res, err := s.q(ctx).ExecContext(ctx, `
		DELETE FROM group_members WHERE group_id = $1 AND user_id = $2 AND role <> 'owner'`,
		uuid.UUID(groupID), uuid.UUID(userID))
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return requireOneRow(res, sentinel.ErrNotFound)
}

// GroupStats computes counts and the earliest movie for every id in one query.
func (s *Postgres) GroupStats(ctx context.Context, groupIDs []id.GroupID) (map[id.GroupID]models.GroupStats, error) {
	out := make(map[id.GroupID]models.GroupStats, len(groupIDs))
	if len(groupIDs) == 0 {
		return out, nil
	}
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT g.id,
		       (SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.id),
		       (SELECT COUNT(*) FROM group_movies c WHERE c.group_id = g.id),
		       (SELECT c.movie_id FROM group_movies c WHERE c.group_id = g.id
		         ORDER BY c.added_at, c.movie_id LIMIT 1)
		FROM groups g
		WHERE g.id = ANY($1::uuid[])`, pq.Array(groupIDStrings(groupIDs)))
	if err != nil {
		return nil, fmt.Errorf("group stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			gid   uuid.UUID
			stats models.GroupStats
			first sql.NullInt64
		)
		if err := rows.Scan(&gid, &stats.MemberCount, &stats.MovieCount, &first); err != nil {
			return nil, fmt.Errorf("scan group stats: %w", err)
		}
		if first.Valid {
			movieID := id.MovieID(first.Int64)
			stats.FirstMovieID = &movieID
		}
		out[id.GroupID(gid)] = stats
	}
	return out, rows.Err()
}

func (s *Postgres) ViewerRoles(ctx context.Context, userID id.UserID, groupIDs []id.GroupID) (map[id.GroupID]models.Role, error) {
	out := make(map[id.GroupID]models.Role)
	if len(groupIDs) == 0 {
		return out, nil
	}
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT group_id, role FROM group_members
		WHERE user_id = $1 AND group_id = ANY($2::uuid[])`,
		uuid.UUID(userID), pq.Array(groupIDStrings(groupIDs)))
	if err != nil {
		return nil, fmt.Errorf("viewer roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			gid  uuid.UUID
			role string
		)
		if err := rows.Scan(&gid, &role); err != nil {
			return nil, fmt.Errorf("scan viewer role: %w", err)
		}
		out[id.GroupID(gid)] = models.Role(role)
	}
	return out, rows.Err()
}

// Join requests

// CreateJoinRequest maps the partial unique index on pending rows to ErrConflict.
func (s *Postgres) CreateJoinRequest(ctx context.Context, r *models.JoinRequest) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO group_join_requests (id, group_id, user_id, status, requested_at)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(r.ID), uuid.UUID(r.GroupID), uuid.UUID(r.UserID), string(r.Status), r.RequestedAt,
	)
	if err != nil {
		return fmt.Errorf("insert join request: %w", mapWriteErr(err))
	}
	return nil
}

const requestColumns = `r.id, r.group_id, r.user_id, r.status, r.requested_at, r.responded_at`

func scanRequest(row rowScanner, extra ...any) (*models.JoinRequest, error) {
	var (
		r             models.JoinRequest
		rid, gid, uid uuid.UUID
		status        string
		respondedAt   sql.NullTime
	)
	dest := append([]any{&rid, &gid, &uid, &status, &r.RequestedAt, &respondedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	r.ID = id.JoinRequestID(rid)
	r.GroupID = id.GroupID(gid)
	r.UserID = id.UserID(uid)
	r.Status = models.JoinRequestStatus(status)
	if respondedAt.Valid {
		at := respondedAt.Time
		r.RespondedAt = &at
	}
	return &r, nil
}

// FindJoinRequest locks the row when called inside a transaction.
func (s *Postgres) FindJoinRequest(ctx context.Context, requestID id.JoinRequestID) (*models.JoinRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM group_join_requests r WHERE r.id = $1`
	if _, ok := txcontext.From(ctx); ok {
		query += ` FOR UPDATE`
	}
	r, err := scanRequest(s.q(ctx).QueryRowContext(ctx, query, uuid.UUID(requestID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find join request: %w", err)
	}
	return r, nil
}

func (s *Postgres) FindPendingJoinRequest(ctx context.Context, groupID id.GroupID, userID id.UserID) (*models.JoinRequest, error) {
	r, err := scanRequest(s.q(ctx).QueryRowContext(ctx, `
		SELECT `+requestColumns+` FROM group_join_requests r
		WHERE r.group_id = $1 AND r.user_id = $2 AND r.status = 'pending'`,
		uuid.UUID(groupID), uuid.UUID(userID)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pending join request: %w", err)
	}
	return r, nil
}

// ResolveJoinRequest only updates a row that is still pending.
func (s *Postgres) ResolveJoinRequest(ctx context.Context, r *models.JoinRequest) error {
	res, err := s.q(ctx).ExecContext(ctx, `
		UPDATE group_join_requests SET status = $2, responded_at = $3
		WHERE id = $1 AND status = 'pending'`,
		uuid.UUID(r.ID), string(r.Status), r.RespondedAt,
	)
	if err != nil {
		return fmt.Errorf("resolve join request: %w", err)
	}
	return requireOneRow(res, sentinel.ErrInvalidState)
}

func (s *Postgres) listPending(ctx context.Context, query string, arg any) ([]*models.PendingJoinRequest, error) {
	rows, err := s.q(ctx).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list pending join requests: %w", err)
	}
	defer rows.Close()

	out := []*models.PendingJoinRequest{}
	for rows.Next() {
		var groupName string
		r, err := scanRequest(rows, &groupName)
		if err != nil {
			return nil, fmt.Errorf("scan join request: %w", err)
		}
		out = append(out, &models.PendingJoinRequest{JoinRequest: *r, GroupName: groupName})
	}
	return out, rows.Err()
}

func (s *Postgres) ListPendingByGroup(ctx context.Context, groupID id.GroupID) ([]*models.PendingJoinRequest, error) {
	return s.listPending(ctx, `
		SELECT `+requestColumns+`, g.name
		FROM group_join_requests r JOIN groups g ON g.id = r.group_id
		WHERE r.group_id = $1 AND r.status = 'pending'
		ORDER BY r.requested_at ASC, r.id`, uuid.UUID(groupID))
}

func (s *Postgres) ListPendingByOwner(ctx context.Context, ownerID id.UserID) ([]*models.PendingJoinRequest, error) {
	return s.listPending(ctx, `
		SELECT `+requestColumns+`, g.name
		FROM group_join_requests r JOIN groups g ON g.id = r.group_id
		WHERE g.owner_id = $1 AND r.status = 'pending'
		ORDER BY r.requested_at DESC, r.id DESC`, uuid.UUID(ownerID))
}

// Content

func (s *Postgres) AddContent(ctx context.Context, c *models.GroupContent) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO group_movies (group_id, movie_id, added_by, added_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.UUID(c.GroupID), int64(c.MovieID), uuid.UUID(c.AddedBy), c.AddedAt,
	)
	if err != nil {
		return fmt.Errorf("insert group movie: %w", mapWriteErr(err))
	}
	return nil
}

func (s *Postgres) RemoveContent(ctx context.Context, groupID id.GroupID, movieID id.MovieID) error {
	res, err := s.q(ctx).ExecContext(ctx, `
		DELETE FROM group_movies WHERE group_id = $1 AND movie_id = $2`,
		uuid.UUID(groupID), int64(movieID))
	if err != nil {
		return fmt.Errorf("remove group movie: %w", err)
	}
	return requireOneRow(res, sentinel.ErrNotFound)
}

func (s *Postgres) ListContent(ctx context.Context, groupID id.GroupID) ([]*models.GroupContent, error) {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT group_id, movie_id, added_by, added_at FROM group_movies
		WHERE group_id = $1
		ORDER BY added_at, movie_id`, uuid.UUID(groupID))
	if err != nil {
		return nil, fmt.Errorf("list group movies: %w", err)
	}
	defer rows.Close()

	out := []*models.GroupContent{}
	for rows.Next() {
		var (
			c            models.GroupContent
			gid, addedBy uuid.UUID
			movieID      int64
		)
		if err := rows.Scan(&gid, &movieID, &addedBy, &c.AddedAt); err != nil {
			return nil, fmt.Errorf("scan group movie: %w", err)
		}
		c.GroupID = id.GroupID(gid)
		c.MovieID = id.MovieID(movieID)
		c.AddedBy = id.UserID(addedBy)
		out = append(out, &c)
	}
	return out, rows.Err()
}
