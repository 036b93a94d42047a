package dto

// UpdateProfileRequest carries editable profile fields. Pointer fields are
// only written when present in the payload; a single UPDATE statement
// applies them, last writer wins.
type UpdateProfileRequest struct {
	Phone                 *string `json:"phone,omitempty"`
	AboutMe               *string `json:"aboutMe,omitempty"`
	LinkedinURL           *string `json:"linkedinUrl,omitempty"`
	ProfileVisibility     *string `json:"profileVisibility,omitempty" binding:"omitempty,oneof=public private institution-only"`
	DegreeConcentrationID *int64  `json:"degreeConcentrationId,omitempty"`

	// Career pathway: written to the role-selected column pair only
	IndustryID    *int64 `json:"industryId,omitempty"`
	JobLocationID *int64 `json:"jobLocationId,omitempty"`
}

// UpdateContactRequest carries a user's contact card
type UpdateContactRequest struct {
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	LinkedinURL *string `json:"linkedinUrl,omitempty" binding:"omitempty,url"`
	GithubURL   *string `json:"githubUrl,omitempty" binding:"omitempty,url"`
}
