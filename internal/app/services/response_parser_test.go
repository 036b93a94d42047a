package services

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
)

func TestSanitizeResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", `[{"a":1}]`, `[{"a":1}]`},
		{"surrounding whitespace", "  \n[1]\n ", "[1]"},
		{"fence with language tag", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[1]\n```", "[1]"},
		{"fence without closing", "```json\n[1]", "[1]"},
		{"interior lines preserved", "```json\n[\n  1,\n  2\n]\n```", "[\n  1,\n  2\n]"},
		{"indented closing fence", "```json\n[1]\n  ```", "[1]"},
		{"fenced interior left intact", "```json\n```x\n```", "```json\n```x\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeResponse(tt.in))
		})
	}
}

func TestSanitizeResponse_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n[{\"a\":1}]\n```",
		"[1, 2]",
		"  plain prose  ",
		"```\n```",
		"```json\n```x\n```",
		"```json\n```\n[1]\n```",
	}

	for _, in := range inputs {
		once := SanitizeResponse(in)
		assert.Equal(t, once, SanitizeResponse(once))
	}
}

func TestParseOpportunities_ValidArray(t *testing.T) {
	raw := `[
		{"job_title": "Data Analyst", "short_summary": "Analyzes data.",
		 "suggested_search_query": "data analyst entry level",
		 "recommended_keywords": ["sql", "python"],
		 "typical_locations": ["Los Angeles"]},
		{"job_title": "BI Developer"}
	]`

	drafts, err := ParseOpportunities(raw, raw)

	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Data Analyst", drafts[0].JobTitle)
	assert.Equal(t, []string{"sql", "python"}, drafts[0].RecommendedKeywords)
	assert.Equal(t, "BI Developer", drafts[1].JobTitle)
}

func TestParseOpportunities_EmptyArray(t *testing.T) {
	drafts, err := ParseOpportunities("[]", "[]")

	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestParseOpportunities_RejectsNonArray(t *testing.T) {
	cases := map[string]string{
		"top-level object": `{"jobs": []}`,
		"json null":        `null`,
		"prose":            `Sorry, I cannot help with that.`,
		"empty input":      ``,
		"quoted string":    `"[]"`,
	}

	for name, candidate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOpportunities(candidate, "original text")

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrMalformedResponse))

			var parseErr *apperrors.ResponseParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "original text", parseErr.Raw)
		})
	}
}

func TestParseOpportunities_RejectsNonObjectElements(t *testing.T) {
	cases := map[string]string{
		"string element":       `["just a string"]`,
		"number element":       `[1, 2]`,
		"null elements":        `[null, null]`,
		"null after an object": `[{"job_title": "x"}, null]`,
		"nested array":         `[[{"job_title": "x"}]]`,
	}

	for name, candidate := range cases {
		t.Run(name, func(t *testing.T) {
			drafts, err := ParseOpportunities(candidate, "original text")

			require.Error(t, err)
			assert.Nil(t, drafts)
			assert.True(t, errors.Is(err, apperrors.ErrMalformedResponse))

			var parseErr *apperrors.ResponseParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "original text", parseErr.Raw)
		})
	}
}

// Truncating the diagnostic snippet must not split a multibyte character.
func TestParseOpportunities_TruncatesOnRuneBoundary(t *testing.T) {
	candidate := "Üzgünüm, bu konuda yardımcı olamam."

	_, err := ParseOpportunities(candidate, candidate)

	require.Error(t, err)
	assert.True(t, utf8.ValidString(err.Error()))
	assert.Contains(t, err.Error(), "Üzgünüm, bu konuda y...")
}

func TestParseOpportunities_RejectsTrailingGarbage(t *testing.T) {
	candidate := `[{"job_title": "x"}] trailing`

	_, err := ParseOpportunities(candidate, candidate)

	require.Error(t, err)
}

// The error must carry the upstream text verbatim, not the sanitized
// candidate, so the fence stripping stays invisible to the caller.
func TestParseOpportunities_RawIsOriginalText(t *testing.T) {
	original := "```json\nnot json at all\n```"
	candidate := SanitizeResponse(original)

	_, err := ParseOpportunities(candidate, original)

	var parseErr *apperrors.ResponseParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, original, parseErr.Raw)
}
