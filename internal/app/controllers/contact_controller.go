package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/services"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
)

// ContactController handles per-user contact cards
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// GetMyContact returns the authenticated user's contact card
// @Summary Get own contact card
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Contact
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Contact not found"
// @Router /contacts [get]
func (c *ContactController) GetMyContact(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	contact, err := c.contactService.GetContact(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, contact)
}

// SaveMyContact stores or replaces the authenticated user's contact card
// @Summary Save own contact card
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateContactRequest true "Contact fields"
// @Success 200 {object} models.Contact
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /contacts [put]
func (c *ContactController) SaveMyContact(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.UpdateContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.ValidationErrorMessage(err)))
		return
	}

	contact, err := c.contactService.SaveContact(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, contact)
}
