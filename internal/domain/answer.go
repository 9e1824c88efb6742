package domain

// Answer is either a direct answer to a question or a review attached to one.
// A review always has a parent, and that parent is never itself a review.
type Answer struct {
	ID             ID
	QuestionID     ID
	Text           string
	Author         string
	Likes          int
	Dislikes       int
	IsReview       bool
	ParentAnswerID Optional[ID]
}

// Votes is the total number of helpful and not-helpful votes.
func (a Answer) Votes() int { return a.Likes + a.Dislikes }

// ReviewOf reports whether a is a review attached to the answer with id parent.
func (a Answer) ReviewOf(parent ID) bool {
	if !a.IsReview {
		return false
	}
	p, ok := a.ParentAnswerID.Get()
	return ok && p == parent
}

// TrustEdge records that a student trusts a reviewer's judgment. Edges are
// directed and append-only.
type TrustEdge struct {
	StudentName  string
	ReviewerName string
}
