package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

type trustService interface {
	MarkTrustedByCaller(ctx context.Context, reviewer string) error
	TrustedBy(ctx context.Context) ([]domain.TrustEdge, error)
}

// TrustHandler lets a student mark reviewers as trusted.
type TrustHandler struct {
	svc trustService
	log *slog.Logger
}

// NewTrustHandler creates a TrustHandler.
func NewTrustHandler(svc trustService, logger *slog.Logger) *TrustHandler {
	return &TrustHandler{svc: svc, log: logger.With("handler", "trust")}
}

type trustRequest struct {
	Reviewer string `json:"reviewer"`
}

// Mark handles POST /trust. Marking an already trusted reviewer succeeds.
func (h *TrustHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var body trustRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.MarkTrustedByCaller(r.Context(), body.Reviewer); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /trust.
func (h *TrustHandler) List(w http.ResponseWriter, r *http.Request) {
	edges, err := h.svc.TrustedBy(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]trustEdgeResponse, len(edges))
	for i, e := range edges {
		out[i] = trustEdgeResponse{Student: e.StudentName, Reviewer: e.ReviewerName}
	}
	writeJSON(w, http.StatusOK, out)
}
