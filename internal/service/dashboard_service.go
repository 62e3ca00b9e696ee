package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/formhive/formhive-backend/internal/repository"
)

// DashboardData bundles everything the creator dashboard shows.
type DashboardData struct {
	Summary          *repository.SummaryCounts      `json:"summary"`
	ResponsesPerForm []repository.FormResponseCount `json:"responses_per_form"`
}

// DashboardService derives real aggregates for a creator's dashboard
// from the stored forms and responses.
type DashboardService struct {
	dashRepo *repository.DashboardRepository
	forms    FormStore
	log      zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashRepo *repository.DashboardRepository, forms FormStore, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		dashRepo: dashRepo,
		forms:    forms,
		log:      log.With().Str("component", "dashboard_service").Logger(),
	}
}

// GetDashboard retrieves the summary counts and per-form response
// volumes for one creator.
func (s *DashboardService) GetDashboard(ctx context.Context, creatorID uuid.UUID) (*DashboardData, error) {
	summary, err := s.dashRepo.GetSummaryCounts(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	perForm, err := s.dashRepo.GetResponsesPerForm(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return &DashboardData{Summary: summary, ResponsesPerForm: perForm}, nil
}

// GetAnswerDistribution groups answer values for one question on one of
// the caller's forms. Ownership and question membership are both
// checked before the aggregate query runs.
func (s *DashboardService) GetAnswerDistribution(ctx context.Context, callerID, formID, questionID uuid.UUID) ([]repository.AnswerBucket, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.CreatorID != callerID {
		return nil, ErrNotFormOwner
	}

	found := false
	for i := range form.Questions {
		if form.Questions[i].ID == questionID {
			found = true
			break
		}
	}
	if !found {
		return nil, repository.ErrNotFound
	}

	return s.dashRepo.GetAnswerDistribution(ctx, questionID)
}
