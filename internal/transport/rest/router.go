package rest

import (
	"net/http"

	"github.com/heartmarshall/qa-moderation/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Requests  *RequestHandler
	Trust     *TrustHandler
	Answers   *AnswerHandler
	Reviewers *ReviewerHandler
}

// NewRouter mounts the API behind mw. Health checks bypass mw so that they
// stay reachable without a token.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /requests", h.Requests.Create)
	api.HandleFunc("GET /requests", h.Requests.List)
	api.HandleFunc("GET /requests/{id}", h.Requests.Get)
	api.HandleFunc("GET /requests/{id}/chain", h.Requests.Chain)
	api.HandleFunc("POST /requests/{id}/close", h.Requests.Close)
	api.HandleFunc("POST /requests/{id}/reopen", h.Requests.Reopen)

	api.HandleFunc("POST /trust", h.Trust.Mark)
	api.HandleFunc("GET /trust", h.Trust.List)

	api.HandleFunc("GET /questions/{id}/thread", h.Answers.Thread)
	api.HandleFunc("POST /questions/{id}/answers", h.Answers.PostAnswer)
	api.HandleFunc("POST /answers/{id}/reviews", h.Answers.PostReview)
	api.HandleFunc("PATCH /answers/{id}", h.Answers.Edit)
	api.HandleFunc("DELETE /answers/{id}", h.Answers.Delete)
	api.HandleFunc("POST /answers/{id}/votes", h.Answers.Vote)
	api.HandleFunc("GET /reviewers/{name}/rating", h.Answers.ReviewerRating)

	api.HandleFunc("POST /reviewer-applications", h.Reviewers.Apply)
	api.HandleFunc("GET /reviewer-applications", h.Reviewers.ListPending)
	api.HandleFunc("POST /reviewer-applications/{username}/approve", h.Reviewers.Approve)
	api.HandleFunc("POST /reviewer-applications/{username}/deny", h.Reviewers.Deny)

	var handler http.Handler = api
	if mw != nil {
		handler = mw(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/", handler)
	return mux
}
