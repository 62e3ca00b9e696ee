package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/repository"
)

// UserService handles profile reads and updates.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile retrieves one user's profile.
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*model.UserInfo, error) {
	return s.userRepo.GetProfile(ctx, id)
}

// UpdateProfile overwrites the editable profile fields and returns the
// updated profile.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *model.UpdateProfileRequest) (*model.UserInfo, error) {
	info, err := s.userRepo.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	info.FirstName = req.FirstName
	info.LastName = req.LastName
	info.Phone = req.Phone
	info.Organization = req.Organization
	info.Bio = req.Bio

	if err := s.userRepo.UpdateProfile(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
