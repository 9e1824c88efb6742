// Package request implements the escalation request ledger store using
// PostgreSQL. State transitions are single conditional statements so that
// concurrent callers cannot both observe success.
package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/qa-moderation/internal/adapter/postgres"
	"github.com/heartmarshall/qa-moderation/internal/domain"
)

const table = "escalation_requests"

var columns = []string{
	"id", "description", "status", "created_by", "created_at",
	"closed_by", "closed_message", "closed_at", "parent_request_id",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type idGenerator interface {
	Next() domain.ID
}

// Repo provides escalation request persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	ids idGenerator
}

// New creates a new request repository.
func New(db postgres.Querier, ids idGenerator) *Repo {
	return &Repo{db: db, ids: ids}
}

// ---------------------------------------------------------------------------
// Raw SQL for conditional writes
// ---------------------------------------------------------------------------

const closeSQL = `
UPDATE escalation_requests
SET status = 'CLOSED', closed_by = $2, closed_message = $3, closed_at = $4
WHERE id = $1 AND status = 'OPEN'`

const reopenSQL = `
INSERT INTO escalation_requests (id, description, status, created_by, created_at, parent_request_id)
SELECT $1, $2, 'OPEN', $3, $4, p.id
FROM escalation_requests p
WHERE p.id = $5 AND p.status = 'CLOSED'
RETURNING id, description, status, created_by, created_at,
          closed_by, closed_message, closed_at, parent_request_id`

const chainSQL = `
WITH RECURSIVE chain AS (
    SELECT r.*, 0 AS depth
    FROM escalation_requests r
    WHERE r.id = $1
    UNION ALL
    SELECT p.*, c.depth + 1
    FROM escalation_requests p
    JOIN chain c ON p.id = c.parent_request_id
)
SELECT id, description, status, created_by, created_at,
       closed_by, closed_message, closed_at, parent_request_id
FROM chain
ORDER BY depth`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.EscalationRequest, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query: %w", err)
	}

	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}

	req := row.toDomain()
	return &req, nil
}

// List returns requests in id order. Closed requests are included only when
// includeClosed is set. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, includeClosed bool) ([]domain.EscalationRequest, error) {
	builder := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("id ASC")
	if !includeClosed {
		builder = builder.Where(squirrel.Eq{"status": domain.RequestStatusOpen.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query: %w", err)
	}

	var rows []requestRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return toDomainList(rows), nil
}

// Chain returns the request with the given id followed by every request it
// reopens, back to the root of its chain. Returns domain.ErrNotFound if id
// does not exist.
func (r *Repo) Chain(ctx context.Context, id domain.ID) ([]domain.EscalationRequest, error) {
	var rows []requestRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, chainSQL, int64(id)); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}

	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new OPEN request with a freshly generated id and returns
// the stored row.
func (r *Repo) Create(ctx context.Context, req domain.EscalationRequest) (*domain.EscalationRequest, error) {
	id := r.ids.Next()

	var parent *int64
	if p, ok := req.ParentRequestID.Get(); ok {
		v := int64(p)
		parent = &v
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "description", "status", "created_by", "created_at", "parent_request_id").
		Values(int64(id), req.Description, domain.RequestStatusOpen.String(), req.CreatedBy, req.CreatedAt, parent).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert request query: %w", err)
	}

	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}

	created := row.toDomain()
	return &created, nil
}

// Close moves an OPEN request to CLOSED and records the closure. It reports
// false, without error, when no OPEN request with that id exists; the row is
// left untouched in that case.
func (r *Repo) Close(ctx context.Context, id domain.ID, closure domain.Closure) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, closeSQL,
		int64(id), closure.By, closure.Message, closure.At,
	)
	if err != nil {
		return false, postgres.MapError(err, "request", id)
	}
	return tag.RowsAffected() == 1, nil
}

// Reopen inserts child as a new OPEN request pointing at parentID, provided
// parentID is currently CLOSED. The check and the insert are one statement.
// It reports false, without error, when the parent is missing or not CLOSED.
func (r *Repo) Reopen(ctx context.Context, parentID domain.ID, child domain.EscalationRequest) (*domain.EscalationRequest, bool, error) {
	id := r.ids.Next()

	var row requestRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, reopenSQL,
		int64(id), child.Description, child.CreatedBy, child.CreatedAt, int64(parentID),
	)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, postgres.MapError(err, "request", parentID)
	}

	created := row.toDomain()
	return &created, true, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type requestRow struct {
	ID              int64      `db:"id"`
	Description     string     `db:"description"`
	Status          string     `db:"status"`
	CreatedBy       string     `db:"created_by"`
	CreatedAt       time.Time  `db:"created_at"`
	ClosedBy        *string    `db:"closed_by"`
	ClosedMessage   *string    `db:"closed_message"`
	ClosedAt        *time.Time `db:"closed_at"`
	ParentRequestID *int64     `db:"parent_request_id"`
}

func (row requestRow) toDomain() domain.EscalationRequest {
	req := domain.EscalationRequest{
		ID:          domain.ID(row.ID),
		Description: row.Description,
		Status:      domain.RequestStatus(row.Status),
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
	}
	if row.ClosedAt != nil {
		req.Closure = domain.Some(domain.Closure{
			By:      domain.FromPtr(row.ClosedBy).OrZero(),
			Message: domain.FromPtr(row.ClosedMessage).OrZero(),
			At:      *row.ClosedAt,
		})
	}
	if row.ParentRequestID != nil {
		req.ParentRequestID = domain.Some(domain.ID(*row.ParentRequestID))
	}
	return req
}

func toDomainList(rows []requestRow) []domain.EscalationRequest {
	out := make([]domain.EscalationRequest, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
