package testhelper

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/qa-moderation/internal/adapter/postgres"
	"github.com/heartmarshall/qa-moderation/internal/domain"
)

// Seeded ids come from one process-wide counter so tests sharing the
// container never collide.
var seedID atomic.Int64

func init() {
	seedID.Store(time.Now().UnixNano())
}

func nextID() domain.ID {
	return domain.ID(seedID.Add(1))
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueName returns prefix with a random suffix, for usernames that must
// not collide with other tests sharing the database.
func UniqueName(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedRequest inserts an OPEN escalation request created by createdBy.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, createdBy string) domain.EscalationRequest {
	t.Helper()

	req := domain.EscalationRequest{
		ID:          nextID(),
		Description: "seeded request " + uniqueSuffix(),
		Status:      domain.RequestStatusOpen,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO escalation_requests (id, description, status, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		int64(req.ID), req.Description, string(req.Status), req.CreatedBy, req.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}
	return req
}

// SeedAnswer inserts a base answer on questionID.
func SeedAnswer(t *testing.T, pool *pgxpool.Pool, questionID domain.ID, author string) domain.Answer {
	t.Helper()
	return seedAnswer(t, pool, domain.Answer{
		ID:         nextID(),
		QuestionID: questionID,
		Text:       "Seeded answer " + uniqueSuffix() + ".",
		Author:     author,
	})
}

// SeedReview inserts a review by author attached to parent.
func SeedReview(t *testing.T, pool *pgxpool.Pool, parent domain.Answer, author string, likes, dislikes int) domain.Answer {
	t.Helper()
	return seedAnswer(t, pool, domain.Answer{
		ID:             nextID(),
		QuestionID:     parent.QuestionID,
		Text:           "Seeded review " + uniqueSuffix() + ".",
		Author:         author,
		Likes:          likes,
		Dislikes:       dislikes,
		IsReview:       true,
		ParentAnswerID: domain.Some(parent.ID),
	})
}

// NewQuestionID returns an id no other test uses as a question id.
func NewQuestionID() domain.ID {
	return nextID()
}

func seedAnswer(t *testing.T, pool *pgxpool.Pool, a domain.Answer) domain.Answer {
	t.Helper()

	var parent *int64
	if p, ok := a.ParentAnswerID.Get(); ok {
		v := int64(p)
		parent = &v
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO answers (id, question_id, text, author, likes, dislikes, is_review, parent_answer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		int64(a.ID), int64(a.QuestionID), a.Text, a.Author, a.Likes, a.Dislikes, a.IsReview, parent,
	)
	if err != nil {
		t.Fatalf("testhelper: seed answer: %v", err)
	}
	return a
}

var (
	idsOnce sync.Once
	ids     *postgres.IDGenerator
)

// IDs returns the id generator shared by every repository under test in this
// process. Two generators on the same node would hand out duplicate ids.
func IDs(t *testing.T) *postgres.IDGenerator {
	t.Helper()
	idsOnce.Do(func() {
		var err error
		ids, err = postgres.NewIDGenerator(1)
		if err != nil {
			panic(err)
		}
	})
	return ids
}
