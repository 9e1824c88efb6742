package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/qa-moderation/internal/domain"
	"github.com/heartmarshall/qa-moderation/internal/service/scoring"
	"github.com/heartmarshall/qa-moderation/internal/service/thread"
	"github.com/heartmarshall/qa-moderation/internal/transport/dataloader"
	"github.com/heartmarshall/qa-moderation/internal/transport/middleware"
	"github.com/heartmarshall/qa-moderation/pkg/ctxutil"
)

type threadService interface {
	Thread(ctx context.Context, questionID domain.ID) ([]domain.Answer, error)
	PostAnswer(ctx context.Context, input thread.PostAnswerInput) (*domain.Answer, error)
	PostReview(ctx context.Context, input thread.PostReviewInput) (*domain.Answer, error)
	EditText(ctx context.Context, input thread.EditTextInput) (*domain.Answer, error)
	Delete(ctx context.Context, id domain.ID) error
	Vote(ctx context.Context, input thread.VoteInput) (*domain.Answer, error)
	ReviewerRating(ctx context.Context, reviewer string) (float64, bool, error)
}

type approvalChecker interface {
	IsApproved(ctx context.Context, username string) (bool, error)
}

// AnswerHandler serves question threads: answers, reviews and votes.
type AnswerHandler struct {
	svc       threadService
	approvals approvalChecker
	roles     Roles
	log       *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler. Callers outside the reviewer
// roles may still review once approvals reports their application approved.
func NewAnswerHandler(svc threadService, approvals approvalChecker, roles Roles, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, approvals: approvals, roles: roles, log: logger.With("handler", "answers")}
}

type textRequest struct {
	Text string `json:"text"`
}

type voteRequest struct {
	Helpful *bool `json:"helpful"`
}

type ratingResponse struct {
	Reviewer string   `json:"reviewer"`
	Rating   *float64 `json:"rating"`
}

// Thread handles GET /questions/{id}/thread. Reviews carry their own score
// and their author's aggregate rating.
func (h *AnswerHandler) Thread(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	answers, err := h.svc.Thread(r.Context(), questionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var reviewers []string
	for _, a := range answers {
		if a.IsReview {
			reviewers = append(reviewers, a.Author)
		}
	}
	ratings := map[string]domain.Optional[float64]{}
	if len(reviewers) > 0 {
		ratings, err = dataloader.FromContext(r.Context()).RatingsFor(r.Context(), reviewers)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	out := make([]answerResponse, len(answers))
	for i, a := range answers {
		resp := toAnswerResponse(a)
		if a.IsReview {
			if score, ok := scoring.ScoreAnswer(a); ok {
				resp.Score = &score
			}
			resp.AuthorRating = ratings[a.Author].Ptr()
		}
		out[i] = resp
	}
	writeJSON(w, http.StatusOK, out)
}

// PostAnswer handles POST /questions/{id}/answers.
func (h *AnswerHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var body textRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	answer, err := h.svc.PostAnswer(r.Context(), thread.PostAnswerInput{QuestionID: questionID, Text: body.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnswerResponse(*answer))
}

// PostReview handles POST /answers/{id}/reviews.
func (h *AnswerHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	if err := h.requireReviewer(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	parentID, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var body textRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	review, err := h.svc.PostReview(r.Context(), thread.PostReviewInput{ParentAnswerID: parentID, Text: body.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnswerResponse(*review))
}

// Edit handles PATCH /answers/{id}.
func (h *AnswerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var body textRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	answer, err := h.svc.EditText(r.Context(), thread.EditTextInput{AnswerID: id, Text: body.Text})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnswerResponse(*answer))
}

// Delete handles DELETE /answers/{id}. Deleting an answer also deletes its reviews.
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Vote handles POST /answers/{id}/votes.
func (h *AnswerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var body voteRequest
	if err := decodeBody(w, r, &body); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if body.Helpful == nil {
		handleError(w, r, h.log, domain.NewValidationError("helpful", "required"))
		return
	}

	answer, err := h.svc.Vote(r.Context(), thread.VoteInput{AnswerID: id, Helpful: *body.Helpful})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnswerResponse(*answer))
}

// ReviewerRating handles GET /reviewers/{name}/rating. A reviewer without
// voted reviews has a null rating.
func (h *AnswerHandler) ReviewerRating(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	if name == "" {
		handleError(w, r, h.log, domain.NewValidationError("name", "required"))
		return
	}

	rating, ok, err := h.svc.ReviewerRating(r.Context(), name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	resp := ratingResponse{Reviewer: name}
	if ok {
		resp.Rating = &rating
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AnswerHandler) requireReviewer(ctx context.Context) error {
	err := middleware.RequireRole(ctx, h.roles.Reviewer)
	if !errors.Is(err, domain.ErrForbidden) || h.approvals == nil {
		return err
	}

	username, _ := ctxutil.UsernameFromCtx(ctx)
	approved, aerr := h.approvals.IsApproved(ctx, username)
	if aerr != nil {
		return aerr
	}
	if !approved {
		return err
	}
	return nil
}
