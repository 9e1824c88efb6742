package middleware

import (
	"context"
	"slices"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

// RequireRole returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden when the caller's role is not in roles.
// Use in REST handlers, not as HTTP middleware.
func RequireRole(ctx context.Context, roles []string) error {
	if err := RequireIdentity(ctx); err != nil {
		return err
	}
	if !slices.Contains(roles, ctxutil.RoleFromCtx(ctx)) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireIdentity returns domain.ErrUnauthorized for anonymous callers.
func RequireIdentity(ctx context.Context) error {
	if _, ok := ctxutil.UsernameFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	return nil
}
