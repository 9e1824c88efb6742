package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

// Create opens a new request on behalf of the caller.
func (s *Service) Create(ctx context.Context, input CreateRequestInput) (*domain.EscalationRequest, error) {
	reporter, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.requests.Create(ctx, domain.EscalationRequest{
		Description: domain.NormalizeText(input.Description),
		Status:      domain.RequestStatusOpen,
		CreatedBy:   reporter,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.log.InfoContext(ctx, "request created",
		slog.String("request_id", req.ID.String()),
		slog.String("created_by", reporter),
	)

	return req, nil
}
