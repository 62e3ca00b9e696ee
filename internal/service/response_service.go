package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/response"
)

// Domain errors.
var (
	ErrNotFormOwner = errors.New("not the creator of this form")
	ErrAuthRequired = errors.New("authentication required for a non-anonymous response")
)

// ResponseService handles submissions and response reads. All
// submission validation happens in the aggregate builder before any
// storage call; a rejected submission never writes.
type ResponseService struct {
	forms     FormStore
	responses ResponseStore
	log       zerolog.Logger
}

// NewResponseService creates a new ResponseService.
func NewResponseService(forms FormStore, responses ResponseStore, log zerolog.Logger) *ResponseService {
	return &ResponseService{
		forms:     forms,
		responses: responses,
		log:       log.With().Str("component", "response_service").Logger(),
	}
}

// Submit validates one submission against its parent form and persists
// it atomically. submitter is nil for unauthenticated callers, which is
// only acceptable for anonymous submissions.
func (s *ResponseService) Submit(ctx context.Context, formID uuid.UUID, req *model.SubmitResponseRequest, submitter *uuid.UUID) (*model.Response, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	if !req.IsAnon && submitter == nil {
		return nil, ErrAuthRequired
	}

	resp, err := model.BuildResponse(form, req.Answers, req.IsAnon, submitter)
	if err != nil {
		return nil, err
	}

	if err := s.responses.Submit(ctx, resp); err != nil {
		return nil, fmt.Errorf("submit response: %w", err)
	}

	s.log.Info().
		Str("form_id", formID.String()).
		Str("response_id", resp.ID.String()).
		Int("answers", len(resp.Answers)).
		Bool("anonymous", resp.IsAnon).
		Msg("Response submitted")
	return resp, nil
}

// ListForForm retrieves one page of the enriched responses to one
// form. Only the form's creator may read them.
func (s *ResponseService) ListForForm(ctx context.Context, formID, callerID uuid.UUID, page, perPage int) ([]model.EnrichedResponse, *response.Pagination, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, nil, err
	}
	if form.CreatorID != callerID {
		return nil, nil, ErrNotFormOwner
	}

	page, perPage = clampPaging(page, perPage)
	responses, total, err := s.responses.ListByForm(ctx, formID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if responses == nil {
		responses = []model.EnrichedResponse{}
	}
	return responses, buildPagination(page, perPage, total), nil
}

// ListForUser retrieves the caller's own submissions across forms.
func (s *ResponseService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.EnrichedResponse, error) {
	return s.responses.ListByUser(ctx, userID)
}
