// Package trust maintains the directed trust graph between students and the
// reviewers whose judgment they rely on. Edges are append-only.
package trust

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

type trustStore interface {
	MarkTrusted(ctx context.Context, student, reviewer string) error
	IsTrusted(ctx context.Context, student, reviewer string) (bool, error)
	TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error)
	ListByStudent(ctx context.Context, student string) ([]domain.TrustEdge, error)
}

// Service provides trust graph operations.
type Service struct {
	store trustStore
	log   *slog.Logger
}

// NewService creates a new trust service.
func NewService(log *slog.Logger, store trustStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "trust"),
	}
}

// MarkTrusted records that student trusts reviewer. Marking an existing edge
// again is a no-op. A student may trust themselves.
func (s *Service) MarkTrusted(ctx context.Context, student, reviewer string) error {
	student, reviewer = normalizeName(student), normalizeName(reviewer)

	var errs []domain.FieldError
	if student == "" {
		errs = append(errs, domain.FieldError{Field: "student", Message: "required"})
	}
	if reviewer == "" {
		errs = append(errs, domain.FieldError{Field: "reviewer", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if err := s.store.MarkTrusted(ctx, student, reviewer); err != nil {
		return fmt.Errorf("mark trusted: %w", err)
	}

	s.log.InfoContext(ctx, "reviewer trusted",
		slog.String("student", student),
		slog.String("reviewer", reviewer),
	)
	return nil
}

// MarkTrustedByCaller records that the calling user trusts reviewer.
func (s *Service) MarkTrustedByCaller(ctx context.Context, reviewer string) error {
	student, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return s.MarkTrusted(ctx, student, reviewer)
}

// IsTrusted reports whether student has marked reviewer as trusted. Names
// are normalized the same way MarkTrusted normalizes them.
func (s *Service) IsTrusted(ctx context.Context, student, reviewer string) (bool, error) {
	student, reviewer = normalizeName(student), normalizeName(reviewer)
	if student == "" || reviewer == "" {
		return false, nil
	}
	ok, err := s.store.IsTrusted(ctx, student, reviewer)
	if err != nil {
		return false, fmt.Errorf("is trusted: %w", err)
	}
	return ok, nil
}

// TrustedAmong reports, for each of reviewers, whether student trusts them.
// The result is keyed by the names as given; reviewers that are not trusted
// are absent from it.
func (s *Service) TrustedAmong(ctx context.Context, student string, reviewers []string) (map[string]bool, error) {
	student = normalizeName(student)
	if student == "" || len(reviewers) == 0 {
		return map[string]bool{}, nil
	}

	given := make(map[string][]string, len(reviewers))
	names := make([]string, 0, len(reviewers))
	for _, r := range reviewers {
		n := normalizeName(r)
		if n == "" {
			continue
		}
		if _, ok := given[n]; !ok {
			names = append(names, n)
		}
		given[n] = append(given[n], r)
	}
	if len(names) == 0 {
		return map[string]bool{}, nil
	}

	stored, err := s.store.TrustedAmong(ctx, student, names)
	if err != nil {
		return nil, fmt.Errorf("trusted among: %w", err)
	}

	trusted := make(map[string]bool, len(stored))
	for n, ok := range stored {
		if !ok {
			continue
		}
		for _, r := range given[n] {
			trusted[r] = true
		}
	}
	return trusted, nil
}

// TrustedBy lists the reviewers the calling user trusts, by reviewer name.
func (s *Service) TrustedBy(ctx context.Context) ([]domain.TrustEdge, error) {
	student, ok := ctxutil.UsernameFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	edges, err := s.store.ListByStudent(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("list trust edges: %w", err)
	}
	return edges, nil
}

// normalizeName is applied to every student and reviewer name before it
// reaches the store.
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
