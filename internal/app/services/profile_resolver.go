package services

import (
	"fmt"
	"strings"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
)

// ResolveProfile builds the unified profile view from a raw joined row. Pure
// function: the discriminant is read exactly once and both reference
// selections key off that single read, so a row can never resolve half as
// student and half as mentor. Missing optional fields are representable,
// never an error.
func ResolveProfile(row *models.RawProfileRow) *models.ResolvedProfile {
	userType := row.UserType

	// Role-selected reference columns. The dormant pair may hold stale
	// values and is never consulted.
	var industryRef, locationRef *int64
	if userType == models.UserTypeStudent {
		industryRef = row.DesiredIndustryID
		locationRef = row.DesiredJobLocationID
	} else {
		industryRef = row.IndustryID
		locationRef = row.JobLocationID
	}

	profile := &models.ResolvedProfile{
		UserID:      row.UserID,
		UserType:    userType,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		FullName:    strings.TrimSpace(row.FirstName + " " + row.LastName),
		Email:       row.Email,
		Phone:       row.Phone,
		AboutMe:     row.AboutMe,
		LinkedinURL: row.LinkedinURL,
		Visibility:  row.ProfileVisibility,
		Degree:      row.Degree,
	}

	// The joined entity is only accepted when it matches the live
	// reference for this user type. A populated mentor-role column on a
	// student row stays invisible.
	if industryRef != nil && row.Industry != nil && row.Industry.ID == *industryRef {
		profile.Industry = row.Industry
	}
	if locationRef != nil && row.Location != nil && row.Location.ID == *locationRef {
		profile.Location = row.Location
	}

	profile.LocationDisplay = composeLocationDisplay(profile.Location)

	if userType == models.UserTypeStudent {
		profile.Student = &models.StudentView{
			CurrentYear:            row.CurrentYear,
			ExpectedGraduationYear: row.ExpectedGraduationYear,
			IsSeekingMentorship:    row.IsSeekingMentorship,
		}
	} else {
		profile.Mentor = &models.MentorView{
			GraduationYear:  row.GraduationYear,
			IsMentor:        row.IsMentor,
			CurrentPosition: row.CurrentPosition,
			CompanyName:     row.CompanyName,
		}
	}

	return profile
}

// composeLocationDisplay joins non-empty city and state with ", " and
// appends a present region parenthetically. A region with no city/state
// stands alone; no location fields at all yields nil.
func composeLocationDisplay(loc *models.JobLocation) *string {
	if loc == nil {
		return nil
	}

	var parts []string
	if loc.City != nil && *loc.City != "" {
		parts = append(parts, *loc.City)
	}
	if loc.State != nil && *loc.State != "" {
		parts = append(parts, *loc.State)
	}

	display := strings.Join(parts, ", ")

	if loc.Region != nil && *loc.Region != "" {
		if display == "" {
			display = *loc.Region
		} else {
			display = fmt.Sprintf("%s (%s)", display, *loc.Region)
		}
	}

	if display == "" {
		return nil
	}
	return &display
}
