package models

// RawProfileRow is the single joined row produced by the profile store. The
// industry and location columns are already role-selected by the query: only
// the reference that is live for the row's user type is populated, the
// dormant one is never fetched.
type RawProfileRow struct {
	UserID    int64
	UserType  UserType
	FirstName string
	LastName  string
	Email     string
	Phone     *string

	AboutMe           *string
	LinkedinURL       *string
	ProfileVisibility Visibility

	// Raw reference columns, both pairs as stored
	DesiredIndustryID    *int64
	DesiredJobLocationID *int64
	IndustryID           *int64
	JobLocationID        *int64

	// Role-selected references (nil when the live reference column is NULL)
	Industry *Industry
	Location *JobLocation
	Degree   *DegreeConcentration

	// Type-specific scalars, both sets as stored; the resolver gates them
	CurrentYear            *int
	ExpectedGraduationYear *int
	IsSeekingMentorship    *bool
	GraduationYear         *int
	IsMentor               *bool
	CurrentPosition        *string
	CompanyName            *string
}

// StudentView carries the scalars that are only meaningful for students.
type StudentView struct {
	CurrentYear            *int  `json:"currentYear"`
	ExpectedGraduationYear *int  `json:"expectedGraduationYear"`
	IsSeekingMentorship    *bool `json:"isSeekingMentorship"`
}

// MentorView carries the scalars that are only meaningful for mentors/alumni.
type MentorView struct {
	GraduationYear  *int    `json:"graduationYear"`
	IsMentor        *bool   `json:"isMentor"`
	CurrentPosition *string `json:"currentPosition"`
	CompanyName     *string `json:"companyName"`
}

// ResolvedProfile is the flattened, role-selected view of a User row shared
// by the dashboard and the recommendation pipeline. Exactly one of Student
// and Mentor is non-nil, decided by a single read of the discriminant.
// Treated as immutable after construction; edits go through the store layer.
type ResolvedProfile struct {
	UserID      int64      `json:"userId"`
	UserType    UserType   `json:"userType"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	AboutMe     *string    `json:"aboutMe,omitempty"`
	LinkedinURL *string    `json:"linkedinUrl,omitempty"`
	Visibility  Visibility `json:"profileVisibility"`

	Industry *Industry            `json:"industry,omitempty"`
	Location *JobLocation         `json:"jobLocation,omitempty"`
	Degree   *DegreeConcentration `json:"degreeConcentration,omitempty"`

	// LocationDisplay composes city/state/region; nil when no location
	// fields are present at all.
	LocationDisplay *string `json:"locationDisplay,omitempty"`

	Student *StudentView `json:"student,omitempty"`
	Mentor  *MentorView  `json:"mentor,omitempty"`
}
