package services

import (
	"context"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
)

// ReferenceService serves the lookup tables used to populate profile forms
type ReferenceService struct {
	industries *repositories.IndustryRepository
	locations  *repositories.JobLocationRepository
	degrees    *repositories.DegreeRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(
	industries *repositories.IndustryRepository,
	locations *repositories.JobLocationRepository,
	degrees *repositories.DegreeRepository,
) *ReferenceService {
	return &ReferenceService{
		industries: industries,
		locations:  locations,
		degrees:    degrees,
	}
}

// ListIndustries returns all industries ordered by name
func (s *ReferenceService) ListIndustries(ctx context.Context) ([]*models.Industry, error) {
	return s.industries.GetAll(ctx)
}

// ListJobLocations returns all job locations
func (s *ReferenceService) ListJobLocations(ctx context.Context) ([]*models.JobLocation, error) {
	return s.locations.GetAll(ctx)
}

// ListDegreeConcentrations returns all degree concentrations
func (s *ReferenceService) ListDegreeConcentrations(ctx context.Context) ([]*models.DegreeConcentration, error) {
	return s.degrees.GetAll(ctx)
}
