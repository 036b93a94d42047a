package models

import (
	"time"
)

// UserType discriminates which of the user's parallel attribute sets is
// live: students carry the desired (aspirational) career-pathway references,
// mentors carry the current (actual) ones.
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeMentor  UserType = "mentor"
)

// Visibility controls who can see a profile in the directory
type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityPrivate     Visibility = "private"
	VisibilityInstitution Visibility = "institution-only"
)

// User defines the user model based on the 'users' table. One row per person;
// the role-doubled foreign keys are never both live at once.
type User struct {
	ID        int64    `json:"id" db:"id" example:"1"`
	Email     string   `json:"email" db:"email" example:"user@cgu.edu"`
	Password  string   `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName string   `json:"firstName" db:"first_name" example:"Brandon"`
	LastName  string   `json:"lastName" db:"last_name" example:"Medina"`
	Phone     *string  `json:"phone,omitempty" db:"phone"`
	UserType  UserType `json:"userType" db:"user_type" example:"student"`

	// Shared academic reference
	DegreeConcentrationID *int64 `json:"degreeConcentrationId,omitempty" db:"degree_concentration_id"`

	// Career pathway references. For students only the desired_* pair is
	// live; for mentors only the unprefixed pair is.
	DesiredIndustryID    *int64 `json:"desiredIndustryId,omitempty" db:"desired_industry_id"`
	DesiredJobLocationID *int64 `json:"desiredJobLocationId,omitempty" db:"desired_job_location_id"`
	IndustryID           *int64 `json:"industryId,omitempty" db:"industry_id"`
	JobLocationID        *int64 `json:"jobLocationId,omitempty" db:"job_location_id"`

	// Student-only scalars
	CurrentYear            *int  `json:"currentYear,omitempty" db:"current_year"`
	ExpectedGraduationYear *int  `json:"expectedGraduationYear,omitempty" db:"expected_graduation_year"`
	IsSeekingMentorship    *bool `json:"isSeekingMentorship,omitempty" db:"is_seeking_mentorship"`

	// Mentor-only scalars
	GraduationYear  *int    `json:"graduationYear,omitempty" db:"graduation_year"`
	IsMentor        *bool   `json:"isMentor,omitempty" db:"is_mentor"`
	CurrentPosition *string `json:"currentPosition,omitempty" db:"current_position"`
	CompanyName     *string `json:"companyName,omitempty" db:"company_name"`

	AboutMe           *string    `json:"aboutMe,omitempty" db:"about_me"`
	LinkedinURL       *string    `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	ProfileVisibility Visibility `json:"profileVisibility" db:"profile_visibility" example:"public"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsValidUserType reports whether the given string is a known discriminant value
func IsValidUserType(s string) bool {
	switch UserType(s) {
	case UserTypeStudent, UserTypeMentor:
		return true
	}
	return false
}

// IsValidVisibility reports whether the given string is a known visibility value
func IsValidVisibility(s string) bool {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityPrivate, VisibilityInstitution:
		return true
	}
	return false
}
