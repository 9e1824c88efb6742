package thread

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

// PostAnswer adds a base answer to a question on behalf of the caller.
func (s *Service) PostAnswer(ctx context.Context, input PostAnswerInput) (*domain.Answer, error) {
	author, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := domain.NormalizeText(input.Text)
	if err := s.eval.Evaluate(text); err != nil {
		return nil, err
	}

	answer, err := s.answers.Create(ctx, domain.Answer{
		QuestionID: input.QuestionID,
		Text:       text,
		Author:     author,
	})
	if err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}

	s.log.InfoContext(ctx, "answer posted",
		slog.String("answer_id", answer.ID.String()),
		slog.String("question_id", answer.QuestionID.String()),
		slog.String("author", author),
	)

	return answer, nil
}

// PostReview attaches a review to a base answer. Reviews cannot be reviewed.
func (s *Service) PostReview(ctx context.Context, input PostReviewInput) (*domain.Answer, error) {
	author, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := domain.NormalizeText(input.Text)
	if err := s.eval.Evaluate(text); err != nil {
		return nil, err
	}

	parent, err := s.answers.GetByID(ctx, input.ParentAnswerID)
	if err != nil {
		return nil, err
	}
	if parent.IsReview {
		return nil, domain.NewValidationError("parent_answer_id", "cannot review a review")
	}

	review, err := s.answers.Create(ctx, domain.Answer{
		QuestionID:     parent.QuestionID,
		Text:           text,
		Author:         author,
		IsReview:       true,
		ParentAnswerID: domain.Some(parent.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.InfoContext(ctx, "review posted",
		slog.String("answer_id", review.ID.String()),
		slog.String("parent_answer_id", parent.ID.String()),
		slog.String("author", author),
	)

	return review, nil
}
