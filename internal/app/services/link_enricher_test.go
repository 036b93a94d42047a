package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
)

func TestEnrichOpportunity_UsesSuggestedQuery(t *testing.T) {
	job := EnrichOpportunity(models.JobOpportunityDraft{
		JobTitle:             "Data Analyst",
		SuggestedSearchQuery: "entry level data analyst",
	})

	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=entry+level+data+analyst", job.Links.LinkedIn)
	assert.Equal(t, "https://www.indeed.com/jobs?q=entry+level+data+analyst", job.Links.Indeed)
}

func TestEnrichOpportunity_FallsBackToJobTitle(t *testing.T) {
	job := EnrichOpportunity(models.JobOpportunityDraft{
		JobTitle: "Business Intelligence Developer",
	})

	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=Business+Intelligence+Developer", job.Links.LinkedIn)
	assert.Equal(t, "https://www.indeed.com/jobs?q=Business+Intelligence+Developer", job.Links.Indeed)
}

func TestEnrichOpportunity_BlankQueryFallsBack(t *testing.T) {
	job := EnrichOpportunity(models.JobOpportunityDraft{
		JobTitle:             "QA Engineer",
		SuggestedSearchQuery: "   ",
	})

	assert.Contains(t, job.Links.LinkedIn, "QA+Engineer")
}

func TestEnrichOpportunity_NoQueryAtAll(t *testing.T) {
	job := EnrichOpportunity(models.JobOpportunityDraft{})

	assert.Equal(t, "https://www.linkedin.com/jobs/search/?keywords=", job.Links.LinkedIn)
	assert.Equal(t, "https://www.indeed.com/jobs?q=", job.Links.Indeed)
}

func TestEnrichOpportunity_EscapesSpecialCharacters(t *testing.T) {
	job := EnrichOpportunity(models.JobOpportunityDraft{
		SuggestedSearchQuery: "C++ & .NET developer",
	})

	assert.Equal(t, "https://www.indeed.com/jobs?q=C%2B%2B+%26+.NET+developer", job.Links.Indeed)
}

func TestEnrichOpportunity_PreservesDraftFields(t *testing.T) {
	draft := models.JobOpportunityDraft{
		JobTitle:            "Data Analyst",
		ShortSummary:        "Analyzes data.",
		RecommendedKeywords: []string{"sql"},
		TypicalLocations:    []string{"Remote"},
	}

	job := EnrichOpportunity(draft)

	assert.Equal(t, draft.JobTitle, job.JobTitle)
	assert.Equal(t, draft.ShortSummary, job.ShortSummary)
	assert.Equal(t, draft.RecommendedKeywords, job.RecommendedKeywords)
	assert.Equal(t, draft.TypicalLocations, job.TypicalLocations)
}

func TestEnrichOpportunities_KeepsOrder(t *testing.T) {
	jobs := EnrichOpportunities([]models.JobOpportunityDraft{
		{JobTitle: "First"},
		{JobTitle: "Second"},
	})

	assert.Len(t, jobs, 2)
	assert.Equal(t, "First", jobs[0].JobTitle)
	assert.Equal(t, "Second", jobs[1].JobTitle)
}
