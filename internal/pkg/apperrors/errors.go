package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrEmailAlreadyExists = errors.New("email already in use")
)

// Profile resolution errors
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrIndustryNotFound = errors.New("industry not found")
	ErrLocationNotFound = errors.New("job location not found")
	ErrDegreeNotFound   = errors.New("degree concentration not found")
	ErrContactNotFound  = errors.New("contact info not found")
)

// ErrMissingCareerPathway is returned when a resolved profile carries no
// industry reference at all. The user must complete their career pathway
// before recommendations can be generated.
var ErrMissingCareerPathway = errors.New("career pathway incomplete")

// Recommendation pipeline errors. These are the only error kinds allowed to
// cross the pipeline boundary; every component failure is mapped onto one of
// them before it reaches a caller.
var (
	ErrUpstream          = errors.New("generative service call failed")
	ErrMalformedResponse = errors.New("malformed generative service response")
)

// UpstreamError wraps a failure of the external generative-text call. The
// underlying cause is preserved for diagnostics but is never actionable for
// the end user.
type UpstreamError struct {
	Cause error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generative service call failed: %v", e.Cause)
	}
	return ErrUpstream.Error()
}

// Unwrap makes errors.Is(err, ErrUpstream) hold for every UpstreamError
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// NewUpstreamError wraps an upstream failure
func NewUpstreamError(cause error) *UpstreamError {
	return &UpstreamError{Cause: cause}
}

// ResponseParseError reports that the sanitized generative-service output was
// not a valid JSON array of objects. Raw carries the original response text
// verbatim so it can be surfaced for debugging.
type ResponseParseError struct {
	Raw   string
	Cause error
}

// Error implements the error interface
func (e *ResponseParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed generative service response: %v", e.Cause)
	}
	return ErrMalformedResponse.Error()
}

// Unwrap makes errors.Is(err, ErrMalformedResponse) hold
func (e *ResponseParseError) Unwrap() error {
	return ErrMalformedResponse
}

// NewResponseParseError wraps a parse failure, keeping the offending text
func NewResponseParseError(raw string, cause error) *ResponseParseError {
	return &ResponseParseError{Raw: raw, Cause: cause}
}
