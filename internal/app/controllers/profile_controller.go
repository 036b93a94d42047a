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

// ProfileController serves the caller's resolved profile
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger.WithComponent("profile_controller"),
	}
}

// GetMyProfile returns the authenticated user's resolved profile
// @Summary Get own profile
// @Description Returns the caller's resolved profile with role-selected career pathway
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ResolvedProfile
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profile [get]
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpdateMyProfile applies a partial edit to the authenticated user's profile
// @Summary Update own profile
// @Description Applies the provided fields; career pathway references are written to the columns for the caller's user type
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.ResolvedProfile
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Profile or referenced lookup row not found"
// @Router /profile [put]
func (c *ProfileController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.ValidationErrorMessage(err)))
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
