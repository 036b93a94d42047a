package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Malformed
// generative-service responses additionally carry the raw upstream text in
// the body so a client can see what failed to parse.
func HandleAPIError(c *gin.Context, err error) {
	var parseErr *apperrors.ResponseParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "The AI response could not be parsed",
			Raw:   parseErr.Raw,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
	case errors.Is(err, apperrors.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Profile not found"))
	case errors.Is(err, apperrors.ErrIndustryNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Industry not found"))
	case errors.Is(err, apperrors.ErrLocationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Job location not found"))
	case errors.Is(err, apperrors.ErrDegreeNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Degree concentration not found"))
	case errors.Is(err, apperrors.ErrContactNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Contact not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrMissingCareerPathway):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("No desired industry set on profile"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrUpstream):
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
