// Package reviewerapp implements storage for reviewer role applications
// using PostgreSQL.
package reviewerapp

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/qa-moderation/internal/adapter/postgres"
	"github.com/heartmarshall/qa-moderation/internal/domain"
)

const table = "reviewer_applications"

var columns = []string{"username", "status", "requested_at", "decided_by", "decided_at"}

// Repo provides reviewer application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new reviewer application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// A denied applicant may apply again; pending and approved ones may not.
const applySQL = `
INSERT INTO reviewer_applications (username, status, requested_at)
VALUES ($1, 'PENDING', $2)
ON CONFLICT (username) DO UPDATE
SET status = 'PENDING', requested_at = EXCLUDED.requested_at, decided_by = NULL, decided_at = NULL
WHERE reviewer_applications.status = 'DENIED'`

const decideSQL = `
UPDATE reviewer_applications
SET status = $2, decided_by = $3, decided_at = $4
WHERE username = $1 AND status = 'PENDING'`

// Apply files a PENDING application for username. It reports false when the
// user already has a pending or approved application.
func (r *Repo) Apply(ctx context.Context, username string, at time.Time) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, applySQL, username, at)
	if err != nil {
		return false, postgres.MapError(err, "reviewer_application "+username, domain.NilID)
	}
	return tag.RowsAffected() == 1, nil
}

// Decide moves a PENDING application to status and records who decided. It
// reports false when nothing is pending for username.
func (r *Repo) Decide(ctx context.Context, username string, status domain.ApplicationStatus, d domain.Decision) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, decideSQL, username, status.String(), d.By, d.At)
	if err != nil {
		return false, postgres.MapError(err, "reviewer_application "+username, domain.NilID)
	}
	return tag.RowsAffected() == 1, nil
}

// Get returns the application of username.
// Returns domain.ErrNotFound if the user never applied.
func (r *Repo) Get(ctx context.Context, username string) (*domain.ReviewerApplication, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get application query: %w", err)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "reviewer_application "+username, domain.NilID)
	}

	app := row.toDomain()
	return &app, nil
}

// ListPending returns pending applications, oldest first.
func (r *Repo) ListPending(ctx context.Context) ([]domain.ReviewerApplication, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.ApplicationStatusPending.String()}).
		OrderBy("requested_at ASC", "username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pending query: %w", err)
	}

	var rows []applicationRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pending applications: %w", err)
	}

	out := make([]domain.ReviewerApplication, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type applicationRow struct {
	Username    string     `db:"username"`
	Status      string     `db:"status"`
	RequestedAt time.Time  `db:"requested_at"`
	DecidedBy   *string    `db:"decided_by"`
	DecidedAt   *time.Time `db:"decided_at"`
}

func (row applicationRow) toDomain() domain.ReviewerApplication {
	app := domain.ReviewerApplication{
		Username:    row.Username,
		Status:      domain.ApplicationStatus(row.Status),
		RequestedAt: row.RequestedAt,
	}
	if row.DecidedBy != nil && row.DecidedAt != nil {
		app.Decision = domain.Some(domain.Decision{By: *row.DecidedBy, At: *row.DecidedAt})
	}
	return app
}
