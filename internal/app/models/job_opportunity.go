package models

// JobOpportunityDraft is a parsed-but-not-yet-enriched element from the
// generative service's response. Field presence is not guaranteed; missing
// fields render as empty downstream.
type JobOpportunityDraft struct {
	JobTitle             string   `json:"job_title"`
	ShortSummary         string   `json:"short_summary"`
	SuggestedSearchQuery string   `json:"suggested_search_query"`
	RecommendedKeywords  []string `json:"recommended_keywords"`
	TypicalLocations     []string `json:"typical_locations"`
}

// JobLinks holds the deterministic search-engine deep links appended to each
// opportunity. Computed locally, never taken from the AI.
type JobLinks struct {
	LinkedIn string `json:"linkedin"`
	Indeed   string `json:"indeed"`
}

// JobOpportunity is the pipeline's output element. Constructed fresh per
// request, never persisted, never cached.
type JobOpportunity struct {
	JobTitle             string   `json:"job_title"`
	ShortSummary         string   `json:"short_summary"`
	SuggestedSearchQuery string   `json:"suggested_search_query"`
	RecommendedKeywords  []string `json:"recommended_keywords"`
	TypicalLocations     []string `json:"typical_locations"`
	Links                JobLinks `json:"links"`
}
