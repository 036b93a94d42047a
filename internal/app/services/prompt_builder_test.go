package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
)

func TestPromptBuilder_StudentPrompt(t *testing.T) {
	builder := NewPromptBuilder()

	profile := &models.ResolvedProfile{
		UserType:        models.UserTypeStudent,
		LocationDisplay: strp("Claremont, CA (Southern California)"),
		Degree: &models.DegreeConcentration{
			DegreeName:        "Information Systems & Technology",
			ConcentrationName: strp("Data Science"),
		},
	}
	industry := &models.Industry{Name: "Information Technology", SubIndustry: strp("Software and Services")}

	prompt, err := builder.Build(profile, industry)

	require.NoError(t, err)
	assert.Contains(t, prompt, "current student")
	assert.Contains(t, prompt, "Information Technology (Software and Services)")
	assert.Contains(t, prompt, "Information Systems & Technology, concentration in Data Science")
	assert.Contains(t, prompt, "Claremont, CA (Southern California)")
	assert.Contains(t, prompt, "between 1 and 5 job titles")
	assert.Contains(t, prompt, "JSON array")
}

func TestPromptBuilder_MentorPrompt(t *testing.T) {
	builder := NewPromptBuilder()

	profile := &models.ResolvedProfile{UserType: models.UserTypeMentor}
	industry := &models.Industry{Name: "Consulting"}

	prompt, err := builder.Build(profile, industry)

	require.NoError(t, err)
	assert.Contains(t, prompt, "alumni mentor")
	assert.Contains(t, prompt, "Consulting")
	assert.NotContains(t, prompt, "Degree:")
	assert.NotContains(t, prompt, "Preferred location:")
}

func TestPromptBuilder_Deterministic(t *testing.T) {
	builder := NewPromptBuilder()

	profile := &models.ResolvedProfile{UserType: models.UserTypeStudent}
	industry := &models.Industry{Name: "Healthcare"}

	first, err := builder.Build(profile, industry)
	require.NoError(t, err)
	second, err := builder.Build(profile, industry)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPromptBuilder_ListsRequiredFields(t *testing.T) {
	builder := NewPromptBuilder()

	prompt, err := builder.Build(
		&models.ResolvedProfile{UserType: models.UserTypeStudent},
		&models.Industry{Name: "Finance"})

	require.NoError(t, err)
	for _, field := range []string{"job_title", "short_summary", "suggested_search_query", "recommended_keywords", "typical_locations"} {
		assert.Contains(t, prompt, field)
	}
}
