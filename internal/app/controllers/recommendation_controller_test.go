package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/middleware"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
)

type stubRecommendationService struct {
	jobs []models.JobOpportunity
	err  error
}

func (s *stubRecommendationService) Recommend(ctx context.Context, userID int64) ([]models.JobOpportunity, error) {
	return s.jobs, s.err
}

func recommendationRouter(svc *stubRecommendationService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if authenticated {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserID, int64(1))
		})
	}
	controller := NewRecommendationController(svc)
	router.POST("/recommendations", controller.GenerateRecommendations)
	return router
}

func TestGenerateRecommendations_Success(t *testing.T) {
	svc := &stubRecommendationService{
		jobs: []models.JobOpportunity{{
			JobTitle: "Data Analyst",
			Links: models.JobLinks{
				LinkedIn: "https://www.linkedin.com/jobs/search/?keywords=Data+Analyst",
				Indeed:   "https://www.indeed.com/jobs?q=Data+Analyst",
			},
		}},
	}
	router := recommendationRouter(svc, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/recommendations", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Jobs []models.JobOpportunity `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 1)
	assert.Equal(t, "Data Analyst", body.Jobs[0].JobTitle)
	assert.Contains(t, body.Jobs[0].Links.LinkedIn, "linkedin.com")
}

func TestGenerateRecommendations_Unauthenticated(t *testing.T) {
	router := recommendationRouter(&stubRecommendationService{}, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestGenerateRecommendations_MissingCareerPathway(t *testing.T) {
	router := recommendationRouter(&stubRecommendationService{err: apperrors.ErrMissingCareerPathway}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "desired industry")
}

func TestGenerateRecommendations_ProfileNotFound(t *testing.T) {
	router := recommendationRouter(&stubRecommendationService{err: apperrors.ErrProfileNotFound}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateRecommendations_UpstreamFailure(t *testing.T) {
	router := recommendationRouter(&stubRecommendationService{err: apperrors.NewUpstreamError(nil)}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), `"raw"`)
}

// Parse failures expose the raw upstream text in the body.
func TestGenerateRecommendations_MalformedResponseCarriesRaw(t *testing.T) {
	parseErr := apperrors.NewResponseParseError("not json at all", nil)
	router := recommendationRouter(&stubRecommendationService{err: parseErr}, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error string `json:"error"`
		Raw   string `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, "not json at all", body.Raw)
}
