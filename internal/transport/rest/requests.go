package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/internal/service/ledger"
	"github.com/heartmarshall/qa-moderation/internal/transport/middleware"
)

type ledgerService interface {
	Create(ctx context.Context, input ledger.CreateRequestInput) (*domain.EscalationRequest, error)
	List(ctx context.Context, input ledger.ListRequestsInput) ([]domain.EscalationRequest, error)
	Get(ctx context.Context, id domain.ID) (*domain.EscalationRequest, error)
	Chain(ctx context.Context, id domain.ID) ([]domain.EscalationRequest, error)
	Close(ctx context.Context, input ledger.CloseRequestInput) (bool, error)
	Reopen(ctx context.Context, input ledger.ReopenRequestInput) (*domain.EscalationRequest, bool, error)
}

// RequestHandler serves the escalation request ledger.
type RequestHandler struct {
	svc   ledgerService
	roles Roles
	log   *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc ledgerService, roles Roles, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, roles: roles, log: logger.With("handler", "requests")}
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type closeRequest struct {
	Message string `json:"message"`
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), h.roles.Reporter); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var body descriptionRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	req, err := h.svc.Create(r.Context(), ledger.CreateRequestInput{Description: body.Description})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(*req))
}

// List handles GET /requests?include_closed=true.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	includeClosed := false
	if v := r.URL.Query().Get("include_closed"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("include_closed", "must be a boolean"))
			return
		}
		includeClosed = parsed
	}

	reqs, err := h.svc.List(r.Context(), ledger.ListRequestsInput{IncludeClosed: includeClosed})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponses(reqs))
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	req, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(*req))
}

// Chain handles GET /requests/{id}/chain.
func (h *RequestHandler) Chain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	chain, err := h.svc.Chain(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponses(chain))
}

// Close handles POST /requests/{id}/close. A request that is not open is
// answered with 409 and the reason.
func (h *RequestHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), h.roles.Arbiter); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var body closeRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	closed, err := h.svc.Close(r.Context(), ledger.CloseRequestInput{ID: id, Message: body.Message})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !closed {
		writeJSON(w, http.StatusConflict, outcomeResponse{OK: false, Reason: "request is not open"})
		return
	}
	writeJSON(w, http.StatusOK, outcomeResponse{OK: true})
}

// Reopen handles POST /requests/{id}/reopen. The new request is returned;
// a request that is not closed is answered with 409 and the reason.
func (h *RequestHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), h.roles.Reporter); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var body descriptionRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	child, reopened, err := h.svc.Reopen(r.Context(), ledger.ReopenRequestInput{ClosedID: id, Description: body.Description})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !reopened {
		writeJSON(w, http.StatusConflict, outcomeResponse{OK: false, Reason: "request is not closed"})
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(*child))
}
