// Package ledger runs the escalation request lifecycle: reporters open
// requests, arbiters close them once, and a closed request can be reopened
// any number of times, each reopening being a fresh OPEN request that points
// back at the one it supersedes.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

type requestRepo interface {
	Create(ctx context.Context, req domain.EscalationRequest) (*domain.EscalationRequest, error)
	GetByID(ctx context.Context, id domain.ID) (*domain.EscalationRequest, error)
	List(ctx context.Context, includeClosed bool) ([]domain.EscalationRequest, error)
	Chain(ctx context.Context, id domain.ID) ([]domain.EscalationRequest, error)
	Close(ctx context.Context, id domain.ID, closure domain.Closure) (bool, error)
	Reopen(ctx context.Context, parentID domain.ID, child domain.EscalationRequest) (*domain.EscalationRequest, bool, error)
}

const (
	MaxDescriptionLength = 2000
	MaxMessageLength     = 2000
)

// Service provides escalation request operations.
type Service struct {
	requests requestRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new ledger service.
func NewService(log *slog.Logger, requests requestRepo) *Service {
	return &Service{
		requests: requests,
		log:      log.With("service", "ledger"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
