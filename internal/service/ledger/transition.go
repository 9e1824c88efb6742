package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

// Close closes an OPEN request on behalf of the calling arbiter. It returns
// false, with no error, when the request exists but is not OPEN; a closed
// request keeps the closure of its first close. It returns
// domain.ErrNotFound when the request does not exist.
func (s *Service) Close(ctx context.Context, input CloseRequestInput) (bool, error) {
	arbiter, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	closed, err := s.requests.Close(ctx, input.ID, domain.Closure{
		By:      arbiter,
		Message: domain.NormalizeText(input.Message),
		At:      s.now(),
	})
	if err != nil {
		return false, fmt.Errorf("close request: %w", err)
	}
	if !closed {
		return false, s.refusal(ctx, input.ID, domain.RequestStatusOpen)
	}

	s.log.InfoContext(ctx, "request closed",
		slog.String("request_id", input.ID.String()),
		slog.String("closed_by", arbiter),
	)

	return true, nil
}

// Reopen creates a new OPEN request superseding the CLOSED request
// input.ClosedID. The closed request is never modified. It returns false,
// with no error, when the target exists but is not CLOSED, and
// domain.ErrNotFound when it does not exist.
func (s *Service) Reopen(ctx context.Context, input ReopenRequestInput) (*domain.EscalationRequest, bool, error) {
	reporter, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	child, reopened, err := s.requests.Reopen(ctx, input.ClosedID, domain.EscalationRequest{
		Description:     domain.NormalizeText(input.Description),
		Status:          domain.RequestStatusOpen,
		CreatedBy:       reporter,
		CreatedAt:       s.now(),
		ParentRequestID: domain.Some(input.ClosedID),
	})
	if err != nil {
		return nil, false, fmt.Errorf("reopen request: %w", err)
	}
	if !reopened {
		return nil, false, s.refusal(ctx, input.ClosedID, domain.RequestStatusClosed)
	}

	s.log.InfoContext(ctx, "request reopened",
		slog.String("request_id", child.ID.String()),
		slog.String("parent_request_id", input.ClosedID.String()),
		slog.String("created_by", reporter),
	)

	return child, true, nil
}

// refusal tells a refused transition on a missing request apart from one on
// a request in the wrong state. Only the former is an error.
func (s *Service) refusal(ctx context.Context, id domain.ID, want domain.RequestStatus) error {
	_, err := s.RequireStatus(ctx, id, want)

	var conflict *domain.StateConflictError
	switch {
	case err == nil, errors.As(err, &conflict):
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return err
	default:
		return fmt.Errorf("inspect request %s: %w", id, err)
	}
}
