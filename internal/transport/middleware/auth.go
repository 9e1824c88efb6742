package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/qa-moderation/internal/auth"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// Auth resolves the bearer token into the caller's identity and stores the
// username and role in the request context. Requests without a token pass
// through anonymously and are gated by the handlers; a token that fails
// validation gets a 401 and never reaches them.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, present := bearerToken(r)
			if !present {
				next.ServeHTTP(w, r)
				return
			}

			id, err := validator.Validate(token)
			if err != nil {
				slog.DebugContext(r.Context(), "identity token rejected",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()),
				)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), id.Username, id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the token of a "Bearer" Authorization header. An
// empty token after the scheme counts as present so that it is rejected
// rather than treated as anonymous.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(token), true
}
