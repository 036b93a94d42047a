package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/services"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
)

// ReferenceController serves the lookup tables behind the profile forms
type ReferenceController struct {
	referenceService *services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService *services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// ListIndustries lists all industries
// @Summary List industries
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Industry
// @Router /industries [get]
func (c *ReferenceController) ListIndustries(ctx *gin.Context) {
	industries, err := c.referenceService.ListIndustries(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, industries)
}

// ListJobLocations lists all job locations
// @Summary List job locations
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobLocation
// @Router /job-locations [get]
func (c *ReferenceController) ListJobLocations(ctx *gin.Context) {
	locations, err := c.referenceService.ListJobLocations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, locations)
}

// ListDegreeConcentrations lists all degree concentrations
// @Summary List degree concentrations
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DegreeConcentration
// @Router /degree-concentrations [get]
func (c *ReferenceController) ListDegreeConcentrations(ctx *gin.Context) {
	degrees, err := c.referenceService.ListDegreeConcentrations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, degrees)
}
