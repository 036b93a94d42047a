package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
)

// SanitizeResponse strips a leading markdown code fence (with or without a
// language tag) and its matching closing fence, preserving the interior
// lines verbatim. Text without a leading fence passes through with only
// outer whitespace trimmed. Applying the function twice gives the same
// result as applying it once.
func SanitizeResponse(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}

	stripped := strings.TrimSpace(strings.Join(lines, "\n"))
	if strings.HasPrefix(stripped, "```") {
		// The interior opens with another fence. Stripping again would eat
		// real content, so the text stays as received.
		return text
	}

	return stripped
}

// ParseOpportunities parses the sanitized candidate text as a JSON array of
// opportunity objects. Anything else, including a bare object, a JSON null,
// non-object array elements, or trailing garbage, fails with a
// ResponseParseError carrying the original upstream text for diagnosis.
func ParseOpportunities(candidate, original string) ([]models.JobOpportunityDraft, error) {
	trimmed := strings.TrimSpace(candidate)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, apperrors.NewResponseParseError(original, fmt.Errorf("expected a JSON array, got %q", firstToken(trimmed)))
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &elements); err != nil {
		return nil, apperrors.NewResponseParseError(original, err)
	}

	drafts := make([]models.JobOpportunityDraft, 0, len(elements))
	for i, element := range elements {
		body := strings.TrimSpace(string(element))
		// json.Unmarshal treats null as a no-op on a struct, so object-ness
		// has to be checked before decoding the element.
		if !strings.HasPrefix(body, "{") {
			return nil, apperrors.NewResponseParseError(original, fmt.Errorf("element %d is not an object, got %q", i, firstToken(body)))
		}

		var draft models.JobOpportunityDraft
		if err := json.Unmarshal(element, &draft); err != nil {
			return nil, apperrors.NewResponseParseError(original, err)
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

func firstToken(s string) string {
	runes := []rune(s)
	if len(runes) > 20 {
		return string(runes[:20]) + "..."
	}
	return s
}
