// Package trust implements the student-to-reviewer trust graph using
// PostgreSQL. Edges are append-only.
package trust

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/qa-moderation/internal/adapter/postgres"
	"github.com/heartmarshall/qa-moderation/internal/domain"
)

const table = "trust_edges"

// Repo provides trust edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trust repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const isTrustedSQL = `
SELECT EXISTS(
    SELECT 1 FROM trust_edges WHERE student_name = $1 AND reviewer_name = $2
)`

// MarkTrusted records that student trusts reviewer. Repeating the call, or
// racing another caller with the same pair, is a no-op.
func (r *Repo) MarkTrusted(ctx context.Context, student, reviewer string) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("student_name", "reviewer_name").
		Values(student, reviewer).
		Suffix("ON CONFLICT (student_name, reviewer_name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert trust edge query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "trust_edge", domain.NilID)
	}
	return nil
}

// IsTrusted reports whether student has marked reviewer as trusted.
func (r *Repo) IsTrusted(ctx context.Context, student, reviewer string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, isTrustedSQL, student, reviewer).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "trust_edge", domain.NilID)
	}
	return exists, nil
}

// TrustedAmong returns the subset of reviewers that student trusts, as a set.
// Reviewers absent from the result are untrusted.
func (r *Repo) TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error) {
	result := make(map[string]bool, len(reviewers))
	if len(reviewers) == 0 {
		return result, nil
	}

	query, args, err := postgres.Builder().
		Select("reviewer_name").
		From(table).
		Where(squirrel.Eq{"student_name": student, "reviewer_name": reviewers}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trusted among query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("trusted among: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("trusted among: %w", err)
	}

	for _, name := range names {
		result[name] = true
	}
	return result, nil
}

// ListByStudent returns the reviewers student trusts ordered by name.
func (r *Repo) ListByStudent(ctx context.Context, student string) ([]domain.TrustEdge, error) {
	query, args, err := postgres.Builder().
		Select("reviewer_name").
		From(table).
		Where(squirrel.Eq{"student_name": student}).
		OrderBy("reviewer_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list trust edges query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trust edges: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list trust edges: %w", err)
	}

	edges := make([]domain.TrustEdge, len(names))
	for i, name := range names {
		edges[i] = domain.TrustEdge{StudentName: student, ReviewerName: name}
	}
	return edges, nil
}
