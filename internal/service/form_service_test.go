package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/formhive/formhive-backend/internal/config"
	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{FormCacheTTL: time.Hour}
}

func newFormService(store *mockFormStore, cache *mockCache) *FormService {
	return NewFormService(store, cache, testConfig(), zerolog.Nop())
}

func validCreateRequest() *model.CreateFormRequest {
	return &model.CreateFormRequest{
		Title:    "Team Survey",
		IsPublic: true,
		Questions: []model.QuestionInput{
			{Text: "Name", Kind: "short_text", Required: true},
			{Text: "Team", Kind: "dropdown", Options: []string{"Platform", "Product"}},
		},
	}
}

func TestFormServiceCreate_PersistsValidAggregate(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)
	creator := uuid.New()

	store.On("Create", mock.Anything, mock.AnythingOfType("*model.FormWithQuestions")).Return(nil)

	form, err := svc.Create(context.Background(), creator, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, creator, form.CreatorID)
	assert.Len(t, form.Questions, 2)
	store.AssertExpectations(t)
}

func TestFormServiceCreate_ValidationFailureNeverReachesStore(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)

	req := validCreateRequest()
	req.Questions = nil

	_, err := svc.Create(context.Background(), uuid.New(), req)

	ve, ok := model.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, model.CodeNoQuestions, ve.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFormServiceGet_PrivateFormHiddenFromNonOwner(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)

	owner := uuid.New()
	form, err := model.BuildForm(owner, "Private", "", false, false, []model.QuestionInput{
		{Text: "Q", Kind: "short_text"},
	})
	require.NoError(t, err)

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("GetByID", mock.Anything, form.ID).Return(form, nil)

	// Unauthenticated viewer.
	_, err = svc.Get(context.Background(), form.ID, nil)
	assert.ErrorIs(t, err, ErrFormAccessDenied)

	// Authenticated non-owner.
	other := uuid.New()
	_, err = svc.Get(context.Background(), form.ID, &other)
	assert.ErrorIs(t, err, ErrFormAccessDenied)

	// Owner sees it.
	got, err := svc.Get(context.Background(), form.ID, &owner)
	require.NoError(t, err)
	assert.Equal(t, form.ID, got.ID)
}

func TestFormServiceGet_ServesFromCache(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)

	form, err := model.BuildForm(uuid.New(), "Cached", "", true, false, []model.QuestionInput{
		{Text: "Q", Kind: "short_text"},
	})
	require.NoError(t, err)

	payload, err := json.Marshal(form)
	require.NoError(t, err)
	cache.On("Get", mock.Anything, config.CacheKey.FormPayloadKey(form.ID.String())).
		Return(payload, true, nil)

	got, err := svc.Get(context.Background(), form.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, form.ID, got.ID)
	assert.Len(t, got.Questions, 1)
	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestFormServiceGet_CacheFailureDegradesToStore(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)

	form, err := model.BuildForm(uuid.New(), "Resilient", "", true, false, []model.QuestionInput{
		{Text: "Q", Kind: "short_text"},
	})
	require.NoError(t, err)

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, errors.New("redis down"))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	store.On("GetByID", mock.Anything, form.ID).Return(form, nil)

	got, err := svc.Get(context.Background(), form.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, form.ID, got.ID)
}

func TestFormServiceListPublic_PaginatesDirectory(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)

	summaries := []model.FormSummary{{ID: uuid.New(), Title: "Survey"}}
	store.On("ListPublic", mock.Anything, 20, 20).Return(summaries, 41, nil)

	forms, pagination, err := svc.ListPublic(context.Background(), 2, 20)
	require.NoError(t, err)

	assert.Equal(t, summaries, forms)
	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 20, pagination.PerPage)
	assert.Equal(t, 41, pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestFormServiceGet_MissingFormPropagatesNotFound(t *testing.T) {
	store := new(mockFormStore)
	cache := new(mockCache)
	svc := newFormService(store, cache)
	id := uuid.New()

	cache.On("Get", mock.Anything, mock.Anything).Return(nil, false, nil)
	store.On("GetByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

	_, err := svc.Get(context.Background(), id, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
