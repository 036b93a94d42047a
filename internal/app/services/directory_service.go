package services

import (
	"context"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/helpers"
)

// DirectoryService serves the paged membership directory
type DirectoryService struct {
	profiles *repositories.ProfileRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(profiles *repositories.ProfileRepository) *DirectoryService {
	return &DirectoryService{
		profiles: profiles,
	}
}

// List returns one page of resolved member profiles. Private profiles never
// appear; the filter narrows by user type and industry.
func (s *DirectoryService) List(ctx context.Context, filter repositories.DirectoryFilter, page, size int) (*dto.DirectoryResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	rows, err := s.profiles.ListDirectory(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.profiles.CountDirectory(ctx, filter)
	if err != nil {
		return nil, err
	}

	members := make([]*models.ResolvedProfile, 0, len(rows))
	for _, row := range rows {
		members = append(members, ResolveProfile(row))
	}

	return &dto.DirectoryResponse{
		Members:    members,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}
