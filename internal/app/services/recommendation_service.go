package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
)

// ProfileSource yields the joined profile row for a user.
type ProfileSource interface {
	FetchProfile(ctx context.Context, userID int64) (*models.RawProfileRow, error)
}

// IndustrySource yields industry records by id.
type IndustrySource interface {
	GetByID(ctx context.Context, id int64) (*models.Industry, error)
}

// CompletionClient is the upstream text-generation dependency.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RecommendationService runs the job recommendation pipeline for one user.
type RecommendationService interface {
	Recommend(ctx context.Context, userID int64) ([]models.JobOpportunity, error)
}

type recommendationService struct {
	profiles   ProfileSource
	industries IndustrySource
	completion CompletionClient
	prompts    *PromptBuilder
	log        zerolog.Logger
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(profiles ProfileSource, industries IndustrySource, completion CompletionClient) RecommendationService {
	return &recommendationService{
		profiles:   profiles,
		industries: industries,
		completion: completion,
		prompts:    NewPromptBuilder(),
		log:        logger.WithComponent("recommendation_service"),
	}
}

// Recommend resolves the caller's profile, renders the prompt, calls the
// upstream model exactly once and returns the enriched opportunities. Every
// failure surfaces as a typed error; there are no retries and no partial
// results.
func (s *recommendationService) Recommend(ctx context.Context, userID int64) ([]models.JobOpportunity, error) {
	row, err := s.profiles.FetchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := ResolveProfile(row)

	// A profile with no career pathway configured never reaches the
	// upstream model.
	if profile.Industry == nil {
		return nil, apperrors.ErrMissingCareerPathway
	}

	// Re-fetch the industry rather than trusting the joined copy, so a
	// reference deleted mid-flight fails loudly instead of producing a
	// prompt built on a stale name.
	industry, err := s.industries.GetByID(ctx, profile.Industry.ID)
	if err != nil {
		return nil, err
	}

	prompt, err := s.prompts.Build(profile, industry)
	if err != nil {
		return nil, err
	}

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstream) {
			return nil, err
		}
		return nil, apperrors.NewUpstreamError(err)
	}

	drafts, err := ParseOpportunities(SanitizeResponse(raw), raw)
	if err != nil {
		s.log.Warn().Int64("userId", userID).Err(err).Msg("Upstream response failed validation")
		return nil, err
	}

	s.log.Info().Int64("userId", userID).Int("count", len(drafts)).Msg("Job recommendations generated")

	return EnrichOpportunities(drafts), nil
}
