// Package thread manages answers and the reviews attached to them, and
// projects a question's answers into the order a given viewer sees them.
package thread

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

type answerRepo interface {
	GetByID(ctx context.Context, id domain.ID) (*domain.Answer, error)
	ListByQuestion(ctx context.Context, questionID domain.ID) ([]domain.Answer, error)
	ListReviewsByAuthors(ctx context.Context, authors []string) ([]domain.Answer, error)
	Create(ctx context.Context, a domain.Answer) (*domain.Answer, error)
	UpdateText(ctx context.Context, id domain.ID, text string) (*domain.Answer, error)
	IncrementVote(ctx context.Context, id domain.ID, helpful bool) (*domain.Answer, error)
	DeleteReviewsOf(ctx context.Context, parentID domain.ID) (int64, error)
	Delete(ctx context.Context, id domain.ID) error
}

type trustChecker interface {
	TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type textEvaluator interface {
	Evaluate(text string) error
}

type adminPolicy interface {
	IsAdmin(role string) bool
}

// Service provides answer and review operations.
type Service struct {
	answers    answerRepo
	trust      trustChecker
	tx         txManager
	eval       textEvaluator
	admins     adminPolicy
	log        *slog.Logger
}

// NewService creates a new thread service. Callers whose role admins accepts
// may edit and delete answers they did not write.
func NewService(
	log *slog.Logger,
	answers answerRepo,
	trust trustChecker,
	tx txManager,
	eval textEvaluator,
	admins adminPolicy,
) *Service {
	return &Service{
		answers:    answers,
		trust:      trust,
		tx:         tx,
		eval:       eval,
		admins:     admins,
		log:        log.With("service", "thread"),
	}
}

// canModify reports whether the caller may change an answer by author.
func (s *Service) canModify(ctx context.Context, author string) (bool, error) {
	caller, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if caller == author {
		return true, nil
	}
	return s.admins.IsAdmin(ctxutil.RoleFromCtx(ctx)), nil
}
