package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/formhive/formhive-backend/internal/model"
)

type mockFormStore struct {
	mock.Mock
}

func (m *mockFormStore) Create(ctx context.Context, form *model.FormWithQuestions) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *mockFormStore) GetByID(ctx context.Context, id uuid.UUID) (*model.FormWithQuestions, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*model.FormWithQuestions), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFormStore) ListPublic(ctx context.Context, limit, offset int) ([]model.FormSummary, int, error) {
	args := m.Called(ctx, limit, offset)
	if s := args.Get(0); s != nil {
		return s.([]model.FormSummary), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockFormStore) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.FormSummary, error) {
	args := m.Called(ctx, creatorID)
	if s := args.Get(0); s != nil {
		return s.([]model.FormSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockResponseStore struct {
	mock.Mock
}

func (m *mockResponseStore) Submit(ctx context.Context, resp *model.Response) error {
	args := m.Called(ctx, resp)
	return args.Error(0)
}

func (m *mockResponseStore) ListByForm(ctx context.Context, formID uuid.UUID, limit, offset int) ([]model.EnrichedResponse, int, error) {
	args := m.Called(ctx, formID, limit, offset)
	if r := args.Get(0); r != nil {
		return r.([]model.EnrichedResponse), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockResponseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EnrichedResponse, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]model.EnrichedResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
