package services

import (
	"context"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
)

// ProfileService serves the resolved profile view and applies edits
type ProfileService struct {
	profiles  *repositories.ProfileRepository
	users     *repositories.UserRepository
	industry  *repositories.IndustryRepository
	locations *repositories.JobLocationRepository
	degrees   *repositories.DegreeRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	profiles *repositories.ProfileRepository,
	users *repositories.UserRepository,
	industry *repositories.IndustryRepository,
	locations *repositories.JobLocationRepository,
	degrees *repositories.DegreeRepository,
) *ProfileService {
	return &ProfileService{
		profiles:  profiles,
		users:     users,
		industry:  industry,
		locations: locations,
		degrees:   degrees,
	}
}

// GetProfile fetches and resolves one user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.ResolvedProfile, error) {
	row, err := s.profiles.FetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ResolveProfile(row), nil
}

// UpdateProfile validates any newly referenced lookup rows, applies the edit
// and returns the freshly resolved profile. References are checked before
// writing so an edit pointing at a deleted industry fails with not-found
// instead of a constraint violation.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.ResolvedProfile, error) {
	if req.IndustryID != nil {
		if _, err := s.industry.GetByID(ctx, *req.IndustryID); err != nil {
			return nil, err
		}
	}
	if req.JobLocationID != nil {
		if _, err := s.locations.GetByID(ctx, *req.JobLocationID); err != nil {
			return nil, err
		}
	}
	if req.DegreeConcentrationID != nil {
		if _, err := s.degrees.GetByID(ctx, *req.DegreeConcentrationID); err != nil {
			return nil, err
		}
	}

	if err := s.users.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}
