package models

import "time"

// Contact holds a user's submitted contact card, persisted per user in the
// 'contacts' table.
type Contact struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Email       *string   `json:"email,omitempty" db:"email"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	GithubURL   *string   `json:"githubUrl,omitempty" db:"github_url"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
