package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/internal/transport/middleware"
)

type reviewerService interface {
	Apply(ctx context.Context) (bool, error)
	ListPending(ctx context.Context) ([]domain.ReviewerApplication, error)
	Approve(ctx context.Context, username string) (bool, error)
	Deny(ctx context.Context, username string) (bool, error)
}

// ReviewerHandler serves reviewer applications.
type ReviewerHandler struct {
	svc   reviewerService
	roles Roles
	log   *slog.Logger
}

// NewReviewerHandler creates a ReviewerHandler.
func NewReviewerHandler(svc reviewerService, roles Roles, logger *slog.Logger) *ReviewerHandler {
	return &ReviewerHandler{svc: svc, roles: roles, log: logger.With("handler", "reviewers")}
}

// Apply handles POST /reviewer-applications for the caller.
func (h *ReviewerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	applied, err := h.svc.Apply(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !applied {
		writeJSON(w, http.StatusConflict, outcomeResponse{OK: false, Reason: "application already pending or approved"})
		return
	}
	writeJSON(w, http.StatusAccepted, outcomeResponse{OK: true})
}

// ListPending handles GET /reviewer-applications.
func (h *ReviewerHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), h.roles.Admin); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.ListPending(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out := make([]applicationResponse, len(apps))
	for i, a := range apps {
		out[i] = toApplicationResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// Approve handles POST /reviewer-applications/{username}/approve.
func (h *ReviewerHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Approve)
}

// Deny handles POST /reviewer-applications/{username}/deny.
func (h *ReviewerHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Deny)
}

func (h *ReviewerHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (bool, error)) {
	if err := middleware.RequireRole(r.Context(), h.roles.Admin); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	decided, err := fn(r.Context(), r.PathValue("username"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !decided {
		writeJSON(w, http.StatusConflict, outcomeResponse{OK: false, Reason: "no pending application"})
		return
	}
	writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
}
