package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formhive/formhive-backend/internal/config"
	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/response"
)

// Domain errors.
var (
	ErrFormAccessDenied = errors.New("form is private")
)

// FormService handles form creation and reads. Forms never change
// after creation, so the form payload (form + ordered questions) is
// cached read-through in Redis without any invalidation concern.
type FormService struct {
	store FormStore
	cache Cache
	cfg   *config.Config
	log   zerolog.Logger
}

// NewFormService creates a new FormService.
func NewFormService(store FormStore, cache Cache, cfg *config.Config, log zerolog.Logger) *FormService {
	return &FormService{
		store: store,
		cache: cache,
		cfg:   cfg,
		log:   log.With().Str("component", "form_service").Logger(),
	}
}

// Create validates the whole aggregate and persists it atomically.
// Validation failures never reach the store.
func (s *FormService) Create(ctx context.Context, creatorID uuid.UUID, req *model.CreateFormRequest) (*model.FormWithQuestions, error) {
	form, err := model.BuildForm(creatorID, req.Title, req.Description, req.IsPublic, req.AllowAnon, req.Questions)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, form); err != nil {
		return nil, fmt.Errorf("create form: %w", err)
	}

	s.log.Info().
		Str("form_id", form.ID.String()).
		Int("questions", len(form.Questions)).
		Bool("public", form.IsPublic).
		Msg("Form created")
	return form, nil
}

// Get retrieves a form with its questions in stored order, enforcing
// the public-vs-owner visibility rule. viewer is nil for
// unauthenticated callers.
func (s *FormService) Get(ctx context.Context, formID uuid.UUID, viewer *uuid.UUID) (*model.FormWithQuestions, error) {
	form, err := s.getPayload(ctx, formID)
	if err != nil {
		return nil, err
	}

	if !form.IsPublic && (viewer == nil || *viewer != form.CreatorID) {
		return nil, ErrFormAccessDenied
	}
	return form, nil
}

// getPayload loads the form payload through the Redis cache. Cache
// failures degrade to a direct read; they never fail the request.
func (s *FormService) getPayload(ctx context.Context, formID uuid.UUID) (*model.FormWithQuestions, error) {
	key := config.CacheKey.FormPayloadKey(formID.String())

	if data, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("form_id", formID.String()).Msg("Form cache read failed")
	} else if ok {
		var form model.FormWithQuestions
		if err := json.Unmarshal(data, &form); err == nil {
			return &form, nil
		}
		s.log.Warn().Str("form_id", formID.String()).Msg("Discarding undecodable form cache entry")
	}

	form, err := s.store.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(form); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cfg.FormCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("form_id", formID.String()).Msg("Form cache write failed")
		}
	}
	return form, nil
}

// ListPublic retrieves one page of the public form directory with
// creator display names resolved.
func (s *FormService) ListPublic(ctx context.Context, page, perPage int) ([]model.FormSummary, *response.Pagination, error) {
	page, perPage = clampPaging(page, perPage)

	forms, total, err := s.store.ListPublic(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if forms == nil {
		forms = []model.FormSummary{}
	}
	return forms, buildPagination(page, perPage, total), nil
}

// ListMine retrieves the caller's own forms.
func (s *FormService) ListMine(ctx context.Context, creatorID uuid.UUID) ([]model.FormSummary, error) {
	return s.store.ListByCreator(ctx, creatorID)
}
