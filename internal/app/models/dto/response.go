package dto

import "github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"

// ErrorResponse is the uniform failure body. Raw is only set for malformed
// generative-service responses, where the offending text aids debugging.
type ErrorResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw,omitempty"`
}

// NewErrorResponse creates a failure body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// JobsResponse is the success body for the recommendation endpoint
type JobsResponse struct {
	Jobs []models.JobOpportunity `json:"jobs"`
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"20"`
	TotalItems  int64 `json:"totalItems" example:"93"`
}

// DirectoryResponse is the paged membership-directory listing
type DirectoryResponse struct {
	Members    []*models.ResolvedProfile `json:"members"`
	Pagination PaginationInfo            `json:"pagination"`
}
