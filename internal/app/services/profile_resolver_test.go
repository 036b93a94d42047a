package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strp(s string) *string   { return &s }

func studentRow() *models.RawProfileRow {
	return &models.RawProfileRow{
		UserID:              1,
		UserType:            models.UserTypeStudent,
		FirstName:           "Ana",
		LastName:            "Vasquez",
		Email:               "avasquez@cgu.edu",
		ProfileVisibility:   models.VisibilityPublic,
		CurrentYear:         intPtr(2),
		IsSeekingMentorship: boolPtr(true),
	}
}

func TestResolveProfile_StudentVariant(t *testing.T) {
	row := studentRow()
	row.DesiredIndustryID = int64Ptr(7)
	row.Industry = &models.Industry{ID: 7, Name: "Healthcare"}

	profile := ResolveProfile(row)

	require.NotNil(t, profile.Student)
	assert.Nil(t, profile.Mentor)
	assert.Equal(t, "Ana Vasquez", profile.FullName)
	require.NotNil(t, profile.Industry)
	assert.Equal(t, "Healthcare", profile.Industry.Name)
	assert.Equal(t, intPtr(2), profile.Student.CurrentYear)
}

func TestResolveProfile_MentorVariant(t *testing.T) {
	row := &models.RawProfileRow{
		UserID:          2,
		UserType:        models.UserTypeMentor,
		FirstName:       "Daniel",
		LastName:        "Park",
		IndustryID:      int64Ptr(3),
		Industry:        &models.Industry{ID: 3, Name: "Information Technology"},
		GraduationYear:  intPtr(2015),
		IsMentor:        boolPtr(true),
		CurrentPosition: strp("Staff Engineer"),
	}

	profile := ResolveProfile(row)

	require.NotNil(t, profile.Mentor)
	assert.Nil(t, profile.Student)
	assert.Equal(t, strp("Staff Engineer"), profile.Mentor.CurrentPosition)
	require.NotNil(t, profile.Industry)
	assert.Equal(t, int64(3), profile.Industry.ID)
}

// A student row whose mentor-role industry column is populated must resolve
// with no industry: the dormant reference pair is never consulted.
func TestResolveProfile_StudentIgnoresMentorColumns(t *testing.T) {
	row := studentRow()
	row.IndustryID = int64Ptr(9)
	row.JobLocationID = int64Ptr(4)
	row.Industry = &models.Industry{ID: 9, Name: "Finance"}
	row.Location = &models.JobLocation{ID: 4, City: strp("New York")}

	profile := ResolveProfile(row)

	assert.Nil(t, profile.Industry)
	assert.Nil(t, profile.Location)
	assert.Nil(t, profile.LocationDisplay)
}

func TestResolveProfile_MentorIgnoresStudentColumns(t *testing.T) {
	row := &models.RawProfileRow{
		UserID:            3,
		UserType:          models.UserTypeMentor,
		FirstName:         "Lucia",
		LastName:          "Rivera",
		DesiredIndustryID: int64Ptr(5),
		Industry:          &models.Industry{ID: 5, Name: "Consulting"},
	}

	profile := ResolveProfile(row)

	assert.Nil(t, profile.Industry)
	require.NotNil(t, profile.Mentor)
}

func TestResolveProfile_MissingOptionalFields(t *testing.T) {
	profile := ResolveProfile(studentRow())

	assert.Nil(t, profile.Industry)
	assert.Nil(t, profile.Location)
	assert.Nil(t, profile.Degree)
	assert.Nil(t, profile.LocationDisplay)
	require.NotNil(t, profile.Student)
}

func TestComposeLocationDisplay(t *testing.T) {
	tests := []struct {
		name string
		loc  *models.JobLocation
		want *string
	}{
		{"nil location", nil, nil},
		{"all empty", &models.JobLocation{}, nil},
		{"city only", &models.JobLocation{City: strp("Claremont")}, strp("Claremont")},
		{"city and state", &models.JobLocation{City: strp("Claremont"), State: strp("CA")}, strp("Claremont, CA")},
		{
			"city state region",
			&models.JobLocation{City: strp("Claremont"), State: strp("CA"), Region: strp("Southern California")},
			strp("Claremont, CA (Southern California)"),
		},
		{"region only", &models.JobLocation{Region: strp("Remote")}, strp("Remote")},
		{"state and region", &models.JobLocation{State: strp("NY"), Region: strp("Northeast")}, strp("NY (Northeast)")},
		{"empty strings ignored", &models.JobLocation{City: strp(""), Region: strp("Bay Area")}, strp("Bay Area")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composeLocationDisplay(tt.loc)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestResolveProfile_FullNameTrimmed(t *testing.T) {
	row := studentRow()
	row.FirstName = "Ana"
	row.LastName = ""

	profile := ResolveProfile(row)

	assert.Equal(t, "Ana", profile.FullName)
}
