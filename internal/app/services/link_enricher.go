package services

import (
	"net/url"
	"strings"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
)

const (
	linkedinSearchURL = "https://www.linkedin.com/jobs/search/?keywords="
	indeedSearchURL   = "https://www.indeed.com/jobs?q="
)

// EnrichOpportunity attaches job-board search links to a parsed draft. The
// search query falls back from suggested_search_query to job_title and
// finally to the empty string; a draft with neither still gets well-formed
// links pointing at the bare search pages.
func EnrichOpportunity(draft models.JobOpportunityDraft) models.JobOpportunity {
	query := strings.TrimSpace(draft.SuggestedSearchQuery)
	if query == "" {
		query = strings.TrimSpace(draft.JobTitle)
	}
	escaped := url.QueryEscape(query)

	return models.JobOpportunity{
		JobTitle:             draft.JobTitle,
		ShortSummary:         draft.ShortSummary,
		SuggestedSearchQuery: draft.SuggestedSearchQuery,
		RecommendedKeywords:  draft.RecommendedKeywords,
		TypicalLocations:     draft.TypicalLocations,
		Links: models.JobLinks{
			LinkedIn: linkedinSearchURL + escaped,
			Indeed:   indeedSearchURL + escaped,
		},
	}
}

// EnrichOpportunities maps EnrichOpportunity over a parsed batch, keeping
// the upstream ordering.
func EnrichOpportunities(drafts []models.JobOpportunityDraft) []models.JobOpportunity {
	jobs := make([]models.JobOpportunity, 0, len(drafts))
	for _, draft := range drafts {
		jobs = append(jobs, EnrichOpportunity(draft))
	}
	return jobs
}
