package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/services"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
)

// RecommendationController exposes the job recommendation pipeline
type RecommendationController struct {
	recommendations services.RecommendationService
	logger          zerolog.Logger
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendations services.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recommendations: recommendations,
		logger:          logger.WithComponent("recommendation_controller"),
	}
}

// GenerateRecommendations runs the pipeline for the authenticated user
// @Summary Generate job recommendations
// @Description Builds a prompt from the caller's profile, queries the generative service once and returns enriched job suggestions
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.JobsResponse
// @Failure 400 {object} dto.ErrorResponse "No desired industry set on profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Profile or industry not found"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure or unparseable response"
// @Router /recommendations [post]
func (c *RecommendationController) GenerateRecommendations(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	jobs, err := c.recommendations.Recommend(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userId", userID).Int("jobs", len(jobs)).Msg("Recommendations served")

	ctx.JSON(http.StatusOK, dto.JobsResponse{Jobs: jobs})
}
