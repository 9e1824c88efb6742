package thread

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// EditText replaces the text of an answer or review. Only its author or an
// administrator may edit it.
func (s *Service) EditText(ctx context.Context, input EditTextInput) (*domain.Answer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := domain.NormalizeText(input.Text)
	if err := s.eval.Evaluate(text); err != nil {
		return nil, err
	}

	current, err := s.answers.GetByID(ctx, input.AnswerID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.canModify(ctx, current.Author)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	updated, err := s.answers.UpdateText(ctx, input.AnswerID, text)
	if err != nil {
		return nil, fmt.Errorf("update answer text: %w", err)
	}

	s.log.InfoContext(ctx, "answer edited", slog.String("answer_id", updated.ID.String()))
	return updated, nil
}

// Delete removes an answer. Deleting a base answer removes its reviews in
// the same transaction.
func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return domain.NewValidationError("answer_id", "required")
	}

	current, err := s.answers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	allowed, err := s.canModify(ctx, current.Author)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	var removedReviews int64
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if !current.IsReview {
			n, err := s.answers.DeleteReviewsOf(ctx, id)
			if err != nil {
				return fmt.Errorf("delete reviews: %w", err)
			}
			removedReviews = n
		}
		if err := s.answers.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "answer deleted",
		slog.String("answer_id", id.String()),
		slog.Int64("reviews_deleted", removedReviews),
	)
	return nil
}

// Vote records one helpful or not-helpful vote and returns the new tallies.
func (s *Service) Vote(ctx context.Context, input VoteInput) (*domain.Answer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	answer, err := s.answers.IncrementVote(ctx, input.AnswerID, input.Helpful)
	if err != nil {
		return nil, fmt.Errorf("vote: %w", err)
	}
	return answer, nil
}
