package ledger

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// CreateRequestInput holds the parameters for opening a request.
type CreateRequestInput struct {
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateRequestInput) Validate() error {
	return validateDescription(nil, i.Description)
}

// ListRequestsInput holds the parameters for listing requests.
type ListRequestsInput struct {
	IncludeClosed bool
}

// CloseRequestInput holds the parameters for closing a request.
type CloseRequestInput struct {
	ID      domain.ID
	Message string
}

// Validate checks all fields and collects all errors.
func (i CloseRequestInput) Validate() error {
	var errs []domain.FieldError

	if i.ID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	message := domain.NormalizeText(i.Message)
	if utf8.RuneCountInString(message) > MaxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("max %d characters", MaxMessageLength)})
	}
	if domain.ContainsMarkup(message) {
		errs = append(errs, domain.FieldError{Field: "message", Message: "must not contain markup"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReopenRequestInput holds the parameters for reopening a closed request.
type ReopenRequestInput struct {
	ClosedID    domain.ID
	Description string
}

// Validate checks all fields and collects all errors.
func (i ReopenRequestInput) Validate() error {
	var errs []domain.FieldError
	if i.ClosedID.IsZero() {
		errs = append(errs, domain.FieldError{Field: "closed_id", Message: "required"})
	}
	return validateDescription(errs, i.Description)
}

func validateDescription(errs []domain.FieldError, description string) error {
	if domain.IsBlank(description) {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	description = domain.NormalizeText(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	if domain.ContainsMarkup(description) {
		errs = append(errs, domain.FieldError{Field: "description", Message: "must not contain markup"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
