package thread

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/internal/service/scoring"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

// Thread returns a question's answers arranged for the caller. Anonymous
// callers trust nobody, so reviews keep their storage order.
func (s *Service) Thread(ctx context.Context, questionID domain.ID) ([]domain.Answer, error) {
	if questionID.IsZero() {
		return nil, domain.NewValidationError("question_id", "required")
	}

	answers, err := s.answers.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	viewer, _ := ctxutil.UsernameFromCtx(ctx)
	trusted := map[string]bool{}
	if viewer != "" {
		var authors []string
		for _, a := range answers {
			if a.IsReview {
				authors = append(authors, a.Author)
			}
		}
		if len(authors) > 0 {
			trusted, err = s.trust.TrustedAmong(ctx, viewer, authors)
			if err != nil {
				return nil, fmt.Errorf("load trust: %w", err)
			}
		}
	}

	return Arrange(viewer, answers, func(_, reviewer string) bool {
		return trusted[reviewer]
	}), nil
}

// ReviewerRating returns the aggregate rating of reviewer over all of their
// reviews, and false when none of them has votes.
func (s *Service) ReviewerRating(ctx context.Context, reviewer string) (float64, bool, error) {
	ratings, err := s.ReviewerRatings(ctx, []string{reviewer})
	if err != nil {
		return 0, false, err
	}
	rating, ok := ratings[reviewer]
	return rating, ok, nil
}

// ReviewerRatings returns aggregate ratings for several reviewers in one
// query. Reviewers without any voted review are absent from the result.
func (s *Service) ReviewerRatings(ctx context.Context, reviewers []string) (map[string]float64, error) {
	if len(reviewers) == 0 {
		return map[string]float64{}, nil
	}
	reviews, err := s.answers.ListReviewsByAuthors(ctx, reviewers)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return scoring.AggregateByReviewer(reviews), nil
}
