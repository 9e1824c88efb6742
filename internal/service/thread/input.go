package thread

import "github.com/heartmarshall/qa-moderation/internal/domain"

// PostAnswerInput holds the parameters for answering a question.
type PostAnswerInput struct {
	QuestionID domain.ID
	Text       string
}

// Validate checks all fields and collects all errors.
func (i PostAnswerInput) Validate() error {
	return requireID(nil, "question_id", i.QuestionID)
}

// PostReviewInput holds the parameters for reviewing an answer.
type PostReviewInput struct {
	ParentAnswerID domain.ID
	Text           string
}

// Validate checks all fields and collects all errors.
func (i PostReviewInput) Validate() error {
	return requireID(nil, "parent_answer_id", i.ParentAnswerID)
}

// EditTextInput holds the parameters for rewriting an answer or review.
type EditTextInput struct {
	AnswerID domain.ID
	Text     string
}

// Validate checks all fields and collects all errors.
func (i EditTextInput) Validate() error {
	return requireID(nil, "answer_id", i.AnswerID)
}

// VoteInput holds a helpful or not-helpful vote on an answer.
type VoteInput struct {
	AnswerID domain.ID
	Helpful  bool
}

// Validate checks all fields and collects all errors.
func (i VoteInput) Validate() error {
	return requireID(nil, "answer_id", i.AnswerID)
}

func requireID(errs []domain.FieldError, field string, id domain.ID) error {
	if id.IsZero() {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
