// Package reviewer handles applications for the reviewer role.
package reviewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

type applicationRepo interface {
	Apply(ctx context.Context, username string, at time.Time) (bool, error)
	Decide(ctx context.Context, username string, status domain.ApplicationStatus, d domain.Decision) (bool, error)
	Get(ctx context.Context, username string) (*domain.ReviewerApplication, error)
	ListPending(ctx context.Context) ([]domain.ReviewerApplication, error)
}

// Service provides reviewer application operations.
type Service struct {
	apps applicationRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new reviewer service.
func NewService(log *slog.Logger, apps applicationRepo) *Service {
	return &Service{
		apps: apps,
		log:  log.With("service", "reviewer"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Apply files an application for the caller. It returns false when the
// caller already has a pending or approved application; a denied applicant
// may apply again.
func (s *Service) Apply(ctx context.Context) (bool, error) {
	username, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	applied, err := s.apps.Apply(ctx, username, s.now())
	if err != nil {
		return false, fmt.Errorf("apply: %w", err)
	}
	if applied {
		s.log.InfoContext(ctx, "reviewer application filed", slog.String("username", username))
	}
	return applied, nil
}

// ListPending returns pending applications, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.ReviewerApplication, error) {
	apps, err := s.apps.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending applications: %w", err)
	}
	return apps, nil
}

// Approve grants the pending application of username. It returns false
// when nothing is pending for username.
func (s *Service) Approve(ctx context.Context, username string) (bool, error) {
	return s.decide(ctx, username, domain.ApplicationStatusApproved)
}

// Deny rejects the pending application of username. It returns false when
// nothing is pending for username.
func (s *Service) Deny(ctx context.Context, username string) (bool, error) {
	return s.decide(ctx, username, domain.ApplicationStatusDenied)
}

func (s *Service) decide(ctx context.Context, username string, status domain.ApplicationStatus) (bool, error) {
	admin, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return false, domain.NewValidationError("username", "required")
	}

	decided, err := s.apps.Decide(ctx, username, status, domain.Decision{By: admin, At: s.now()})
	if err != nil {
		return false, fmt.Errorf("decide application: %w", err)
	}
	if decided {
		s.log.InfoContext(ctx, "reviewer application decided",
			slog.String("username", username),
			slog.String("status", status.String()),
			slog.String("decided_by", admin),
		)
	}
	return decided, nil
}

// IsApproved reports whether username holds an approved application.
func (s *Service) IsApproved(ctx context.Context, username string) (bool, error) {
	app, err := s.apps.Get(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get application: %w", err)
	}
	return app.Status == domain.ApplicationStatusApproved, nil
}
