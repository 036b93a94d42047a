package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
)

type fakeProfileSource struct {
	row *models.RawProfileRow
	err error
}

func (f *fakeProfileSource) FetchProfile(ctx context.Context, userID int64) (*models.RawProfileRow, error) {
	return f.row, f.err
}

type fakeIndustrySource struct {
	industry *models.Industry
	err      error
}

func (f *fakeIndustrySource) GetByID(ctx context.Context, id int64) (*models.Industry, error) {
	return f.industry, f.err
}

type fakeCompletionClient struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.response, f.err
}

func recommendationFixture(response string) (*fakeProfileSource, *fakeIndustrySource, *fakeCompletionClient) {
	profiles := &fakeProfileSource{
		row: &models.RawProfileRow{
			UserID:            1,
			UserType:          models.UserTypeStudent,
			FirstName:         "Ana",
			LastName:          "Vasquez",
			DesiredIndustryID: int64Ptr(7),
			Industry:          &models.Industry{ID: 7, Name: "Information Technology"},
		},
	}
	industries := &fakeIndustrySource{
		industry: &models.Industry{ID: 7, Name: "Information Technology"},
	}
	completion := &fakeCompletionClient{response: response}
	return profiles, industries, completion
}

func TestRecommend_Success(t *testing.T) {
	profiles, industries, completion := recommendationFixture(`[
		{"job_title": "Data Analyst", "suggested_search_query": "data analyst"},
		{"job_title": "BI Developer"}
	]`)
	svc := NewRecommendationService(profiles, industries, completion)

	jobs, err := svc.Recommend(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, 1, completion.calls)
	assert.Contains(t, completion.prompt, "Information Technology")
	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=data+analyst", jobs[0].Links.LinkedIn)
	assert.Equal(t, "https://www.indeed.com/jobs?q=BI+Developer", jobs[1].Links.Indeed)
}

func TestRecommend_SuccessWithFencedResponse(t *testing.T) {
	profiles, industries, completion := recommendationFixture("```json\n[{\"job_title\": \"Data Analyst\"}]\n```")
	svc := NewRecommendationService(profiles, industries, completion)

	jobs, err := svc.Recommend(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Analyst", jobs[0].JobTitle)
}

// A profile with no career pathway must fail before any upstream call.
func TestRecommend_MissingCareerPathway(t *testing.T) {
	profiles, industries, completion := recommendationFixture(`[]`)
	profiles.row = &models.RawProfileRow{
		UserID:   1,
		UserType: models.UserTypeStudent,
	}
	svc := NewRecommendationService(profiles, industries, completion)

	_, err := svc.Recommend(context.Background(), 1)

	require.ErrorIs(t, err, apperrors.ErrMissingCareerPathway)
	assert.Zero(t, completion.calls)
}

func TestRecommend_ProfileNotFound(t *testing.T) {
	profiles, industries, completion := recommendationFixture(`[]`)
	profiles.row = nil
	profiles.err = apperrors.ErrProfileNotFound
	svc := NewRecommendationService(profiles, industries, completion)

	_, err := svc.Recommend(context.Background(), 42)

	require.ErrorIs(t, err, apperrors.ErrProfileNotFound)
	assert.Zero(t, completion.calls)
}

func TestRecommend_IndustryDeletedMidFlight(t *testing.T) {
	profiles, industries, completion := recommendationFixture(`[]`)
	industries.industry = nil
	industries.err = apperrors.ErrIndustryNotFound
	svc := NewRecommendationService(profiles, industries, completion)

	_, err := svc.Recommend(context.Background(), 1)

	require.ErrorIs(t, err, apperrors.ErrIndustryNotFound)
	assert.Zero(t, completion.calls)
}

func TestRecommend_UpstreamFailure(t *testing.T) {
	profiles, industries, completion := recommendationFixture("")
	completion.err = errors.New("connection reset")
	svc := NewRecommendationService(profiles, industries, completion)

	_, err := svc.Recommend(context.Background(), 1)

	require.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, 1, completion.calls)
}

func TestRecommend_MalformedResponse(t *testing.T) {
	profiles, industries, completion := recommendationFixture("I'd be happy to help! Here are some jobs...")
	svc := NewRecommendationService(profiles, industries, completion)

	_, err := svc.Recommend(context.Background(), 1)

	var parseErr *apperrors.ResponseParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "I'd be happy to help! Here are some jobs...", parseErr.Raw)
	assert.Equal(t, 1, completion.calls)
}

func TestRecommend_MentorProfile(t *testing.T) {
	profiles, industries, completion := recommendationFixture(`[{"job_title": "Engineering Manager"}]`)
	profiles.row = &models.RawProfileRow{
		UserID:     2,
		UserType:   models.UserTypeMentor,
		FirstName:  "Daniel",
		LastName:   "Park",
		IndustryID: int64Ptr(7),
		Industry:   &models.Industry{ID: 7, Name: "Information Technology"},
	}
	svc := NewRecommendationService(profiles, industries, completion)

	jobs, err := svc.Recommend(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Contains(t, completion.prompt, "alumni mentor")
}
