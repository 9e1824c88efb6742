// Package answer implements storage for answers and the reviews attached to
// them using PostgreSQL.
package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/qa-moderation/internal/adapter/postgres"
	"github.com/heartmarshall/qa-moderation/internal/domain"
)

const table = "answers"

var columns = []string{
	"id", "question_id", "text", "author", "likes", "dislikes", "is_review", "parent_answer_id",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type idGenerator interface {
	Next() domain.ID
}

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	ids idGenerator
}

// New creates a new answer repository.
func New(db postgres.Querier, ids idGenerator) *Repo {
	return &Repo{db: db, ids: ids}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an answer or review by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id domain.ID) (*domain.Answer, error) {
	return r.getOne(ctx, id, postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": int64(id)}))
}

// ListByQuestion returns every answer and review on a question in id order.
func (r *Repo) ListByQuestion(ctx context.Context, questionID domain.ID) ([]domain.Answer, error) {
	return r.list(ctx, "list answers by question", postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"question_id": int64(questionID)}).
		OrderBy("id ASC"))
}

// ListReviewsByAuthors returns all reviews written by any of authors, grouped
// by author and in id order within each author. Used for batched rating
// lookups.
func (r *Repo) ListReviewsByAuthors(ctx context.Context, authors []string) ([]domain.Answer, error) {
	if len(authors) == 0 {
		return []domain.Answer{}, nil
	}
	return r.list(ctx, "list reviews by authors", postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"is_review": true, "author": authors}).
		OrderBy("author ASC", "id ASC"))
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new answer or review with zero votes and a freshly
// generated id. A review whose parent does not exist fails with
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, a domain.Answer) (*domain.Answer, error) {
	id := r.ids.Next()

	var parent *int64
	if p, ok := a.ParentAnswerID.Get(); ok {
		v := int64(p)
		parent = &v
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "question_id", "text", "author", "is_review", "parent_answer_id").
		Values(int64(id), int64(a.QuestionID), a.Text, a.Author, a.IsReview, parent).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert answer query: %w", err)
	}

	var row answerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}

	created := row.toDomain()
	return &created, nil
}

// UpdateText replaces the text of an answer and returns the updated row.
func (r *Repo) UpdateText(ctx context.Context, id domain.ID, text string) (*domain.Answer, error) {
	return r.getOne(ctx, id, postgres.Builder().
		Update(table).
		Set("text", text).
		Where(squirrel.Eq{"id": int64(id)}).
		Suffix(returning))
}

// IncrementVote atomically adds one helpful (like) or not-helpful (dislike)
// vote and returns the updated row.
func (r *Repo) IncrementVote(ctx context.Context, id domain.ID, helpful bool) (*domain.Answer, error) {
	column := "dislikes"
	if helpful {
		column = "likes"
	}
	return r.getOne(ctx, id, postgres.Builder().
		Update(table).
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": int64(id)}).
		Suffix(returning))
}

// DeleteReviewsOf removes every review attached to parentID and reports how
// many were removed.
func (r *Repo) DeleteReviewsOf(ctx context.Context, parentID domain.ID) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"parent_answer_id": int64(parentID), "is_review": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete reviews query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "answer", parentID)
	}
	return tag.RowsAffected(), nil
}

// Delete removes one answer or review.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id domain.ID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": int64(id)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete answer query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "answer", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, id domain.ID, b squirrel.Sqlizer) (*domain.Answer, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build answer query: %w", err)
	}

	var row answerRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "answer", id)
	}

	a := row.toDomain()
	return &a, nil
}

func (r *Repo) list(ctx context.Context, op string, b squirrel.SelectBuilder) ([]domain.Answer, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []answerRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]domain.Answer, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type answerRow struct {
	ID             int64  `db:"id"`
	QuestionID     int64  `db:"question_id"`
	Text           string `db:"text"`
	Author         string `db:"author"`
	Likes          int    `db:"likes"`
	Dislikes       int    `db:"dislikes"`
	IsReview       bool   `db:"is_review"`
	ParentAnswerID *int64 `db:"parent_answer_id"`
}

func (row answerRow) toDomain() domain.Answer {
	a := domain.Answer{
		ID:         domain.ID(row.ID),
		QuestionID: domain.ID(row.QuestionID),
		Text:       row.Text,
		Author:     row.Author,
		Likes:      row.Likes,
		Dislikes:   row.Dislikes,
		IsReview:   row.IsReview,
	}
	if row.ParentAnswerID != nil {
		a.ParentAnswerID = domain.Some(domain.ID(*row.ParentAnswerID))
	}
	return a
}
