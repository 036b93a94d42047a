package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/services"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/helpers"
)

// DirectoryController serves the paged membership directory
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// ListMembers lists visible member profiles
// @Summary List directory members
// @Description Paged listing of non-private profiles, optionally filtered by user type and industry
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param userType query string false "Filter by user type (student or mentor)"
// @Param industryId query int false "Filter by industry id"
// @Param page query int false "Page number, 1-based"
// @Param size query int false "Page size, max 100"
// @Success 200 {object} dto.DirectoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /directory [get]
func (c *DirectoryController) ListMembers(ctx *gin.Context) {
	filter := repositories.DirectoryFilter{}

	if userType := ctx.Query("userType"); userType != "" {
		if !models.IsValidUserType(userType) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid userType filter"))
			return
		}
		filter.UserType = userType
	}

	if industryParam := ctx.Query("industryId"); industryParam != "" {
		industryID, err := strconv.ParseInt(industryParam, 10, 64)
		if err != nil || industryID < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid industryId filter"))
			return
		}
		filter.IndustryID = industryID
	}

	page, size := helpers.ParsePaginationParams(ctx)

	listing, err := c.directoryService.List(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, listing)
}
