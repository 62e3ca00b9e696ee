package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/formhive/formhive-backend/internal/model"
)

// FormStore is the persistence surface the form and response services
// depend on. The pgx-backed implementation lives in the repository
// package; tests substitute mocks.
type FormStore interface {
	Create(ctx context.Context, form *model.FormWithQuestions) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.FormWithQuestions, error)
	ListPublic(ctx context.Context, limit, offset int) ([]model.FormSummary, int, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.FormSummary, error)
}

// ResponseStore is the persistence surface for submissions and their
// read-side joins.
type ResponseStore interface {
	Submit(ctx context.Context, resp *model.Response) error
	ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]model.EnrichedResponse, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EnrichedResponse, error)
}

// Cache is a minimal byte cache. The Redis implementation is in
// cache.go; a miss is reported as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
