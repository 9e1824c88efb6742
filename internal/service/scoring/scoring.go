// Package scoring turns helpful/not-helpful vote tallies on reviews into
// ratings on a 1..5 scale.
package scoring

import "github.com/heartmarshall/qa-moderation/internal/domain"

const (
	MinRating     = 1.0
	MaxRating     = 5.0
	NeutralRating = 3.0
)

// Score rates a tally. An even split rates NeutralRating, unanimous helpful
// votes rate MaxRating and unanimous unhelpful votes rate MinRating. A tally
// with no votes has no rating and ok is false.
func Score(likes, dislikes int) (rating float64, ok bool) {
	total := likes + dislikes
	if total <= 0 {
		return 0, false
	}

	fraction := float64(likes-dislikes) / float64(total)
	raw := fraction*4 + NeutralRating
	return min(max(raw, MinRating), MaxRating), true
}

// ScoreAnswer rates a single answer or review by its votes.
func ScoreAnswer(a domain.Answer) (float64, bool) {
	return Score(a.Likes, a.Dislikes)
}

// AggregateReviewerRating averages the scores of reviewer's reviews. Answers
// that are not reviews by reviewer are ignored, and so are reviews nobody has
// voted on: they neither help nor hurt. ok is false when no review counts.
func AggregateReviewerRating(reviewer string, reviews []domain.Answer) (rating float64, ok bool) {
	var (
		sum float64
		n   int
	)
	for _, r := range reviews {
		if !r.IsReview || r.Author != reviewer {
			continue
		}
		s, voted := ScoreAnswer(r)
		if !voted {
			continue
		}
		sum += s
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// AggregateByReviewer computes AggregateReviewerRating for every author
// appearing in reviews. Authors without a rating are absent from the result.
func AggregateByReviewer(reviews []domain.Answer) map[string]float64 {
	byAuthor := make(map[string][]domain.Answer)
	for _, r := range reviews {
		if r.IsReview {
			byAuthor[r.Author] = append(byAuthor[r.Author], r)
		}
	}

	out := make(map[string]float64, len(byAuthor))
	for author, rs := range byAuthor {
		if rating, ok := AggregateReviewerRating(author, rs); ok {
			out[author] = rating
		}
	}
	return out
}
