package rest

import (
	"time"

	"github.com/heartmarshall/qa-moderation/internal/domain"
)

type requestResponse struct {
	ID              domain.ID  `json:"id"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	CreatedBy       string     `json:"createdBy"`
	CreatedAt       time.Time  `json:"createdAt"`
	ClosedBy        *string    `json:"closedBy,omitempty"`
	ClosedMessage   *string    `json:"closedMessage,omitempty"`
	ClosedAt        *time.Time `json:"closedAt,omitempty"`
	ParentRequestID *domain.ID `json:"parentRequestId,omitempty"`
}

func toRequestResponse(r domain.EscalationRequest) requestResponse {
	resp := requestResponse{
		ID:              r.ID,
		Description:     r.Description,
		Status:          r.Status.String(),
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		ParentRequestID: r.ParentRequestID.Ptr(),
	}
	if c, ok := r.Closure.Get(); ok {
		resp.ClosedBy = &c.By
		resp.ClosedMessage = &c.Message
		resp.ClosedAt = &c.At
	}
	return resp
}

func toRequestResponses(reqs []domain.EscalationRequest) []requestResponse {
	out := make([]requestResponse, len(reqs))
	for i, r := range reqs {
		out[i] = toRequestResponse(r)
	}
	return out
}

type answerResponse struct {
	ID             domain.ID  `json:"id"`
	QuestionID     domain.ID  `json:"questionId"`
	Text           string     `json:"text"`
	Author         string     `json:"author"`
	Likes          int        `json:"likes"`
	Dislikes       int        `json:"dislikes"`
	IsReview       bool       `json:"isReview"`
	ParentAnswerID *domain.ID `json:"parentAnswerId,omitempty"`
	// Score is the per-review rating; absent until the review has votes.
	Score *float64 `json:"score,omitempty"`
	// AuthorRating is the reviewer's aggregate rating, set on reviews only.
	AuthorRating *float64 `json:"authorRating,omitempty"`
}

func toAnswerResponse(a domain.Answer) answerResponse {
	return answerResponse{
		ID:             a.ID,
		QuestionID:     a.QuestionID,
		Text:           a.Text,
		Author:         a.Author,
		Likes:          a.Likes,
		Dislikes:       a.Dislikes,
		IsReview:       a.IsReview,
		ParentAnswerID: a.ParentAnswerID.Ptr(),
	}
}

type trustEdgeResponse struct {
	Student  string `json:"student"`
	Reviewer string `json:"reviewer"`
}

type applicationResponse struct {
	Username    string     `json:"username"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	DecidedBy   *string    `json:"decidedBy,omitempty"`
	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
}

func toApplicationResponse(a domain.ReviewerApplication) applicationResponse {
	resp := applicationResponse{
		Username:    a.Username,
		Status:      a.Status.String(),
		RequestedAt: a.RequestedAt,
	}
	if d, ok := a.Decision.Get(); ok {
		resp.DecidedBy = &d.By
		resp.DecidedAt = &d.At
	}
	return resp
}

type outcomeResponse struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}
