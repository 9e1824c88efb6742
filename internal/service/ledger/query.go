package ledger

import (
	"context"
	"fmt"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// List returns requests in creation order; closed ones only when asked for.
func (s *Service) List(ctx context.Context, input ListRequestsInput) ([]domain.EscalationRequest, error) {
	reqs, err := s.requests.List(ctx, input.IncludeClosed)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return reqs, nil
}

// Get returns one request.
func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.EscalationRequest, error) {
	if id.IsZero() {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.requests.GetByID(ctx, id)
}

// Chain returns the request with the given id followed by the requests it
// reopens, newest first, ending at the original request.
func (s *Service) Chain(ctx context.Context, id domain.ID) ([]domain.EscalationRequest, error) {
	if id.IsZero() {
		return nil, domain.NewValidationError("id", "required")
	}
	chain, err := s.requests.Chain(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("request chain: %w", err)
	}
	return chain, nil
}

// RequireStatus returns the request if it is currently in status want, and a
// *domain.StateConflictError naming its actual status otherwise.
func (s *Service) RequireStatus(ctx context.Context, id domain.ID, want domain.RequestStatus) (*domain.EscalationRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != want {
		return req, domain.NewStateConflictError("request", id, want.String(), req.Status.String())
	}
	return req, nil
}
