package services

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
)

// jobPromptTemplate is the single deterministic prompt for the job
// recommendation call. The model is instructed to return a bare JSON array
// so the response survives the strict parse step without negotiation.
const jobPromptTemplate = `You are a career advisor for a university alumni mentorship program.

{{if .IsStudent -}}
The person you are advising is a current student planning their career.
{{- else -}}
The person you are advising is an alumni mentor exploring their next career move.
{{- end}}

Their profile:
- Career pathway: {{.IndustryName}}{{if .SubIndustry}} ({{.SubIndustry}}){{end}}
{{- if .Degree}}
- Degree: {{.Degree}}{{if .Concentration}}, concentration in {{.Concentration}}{{end}}
{{- end}}
{{- if .LocationDisplay}}
- Preferred location: {{.LocationDisplay}}
{{- end}}

Suggest between 1 and 5 job titles that fit this profile. For each suggestion
provide exactly these fields:
- "job_title": the title of the role
- "short_summary": one or two sentences describing the role
- "suggested_search_query": a search string suited to job boards
- "recommended_keywords": an array of skill or technology keywords
- "typical_locations": an array of cities or regions where this role is common

Respond with a JSON array of objects and nothing else. Do not include any
prose, explanation, markdown, or code fences before or after the array.`

type promptData struct {
	IsStudent       bool
	IndustryName    string
	SubIndustry     string
	Degree          string
	Concentration   string
	LocationDisplay string
}

// PromptBuilder renders the recommendation prompt from a resolved profile
// and its re-fetched industry. Same inputs always produce the same prompt.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder creates a new PromptBuilder
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		tmpl: template.Must(template.New("jobPrompt").Parse(jobPromptTemplate)),
	}
}

// Build renders the prompt. The industry argument is the authoritative
// record fetched for this call, not the copy embedded in the profile.
func (b *PromptBuilder) Build(profile *models.ResolvedProfile, industry *models.Industry) (string, error) {
	data := promptData{
		IsStudent:    profile.UserType == models.UserTypeStudent,
		IndustryName: industry.Name,
	}
	if industry.SubIndustry != nil {
		data.SubIndustry = *industry.SubIndustry
	}
	if profile.Degree != nil {
		data.Degree = profile.Degree.DegreeName
		if profile.Degree.ConcentrationName != nil {
			data.Concentration = *profile.Degree.ConcentrationName
		}
	}
	if profile.LocationDisplay != nil {
		data.LocationDisplay = *profile.LocationDisplay
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error rendering job prompt: %w", err)
	}

	return buf.String(), nil
}
