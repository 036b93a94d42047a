package models

// JobLocation represents a row of the 'job_locations' reference table.
type JobLocation struct {
	ID               int64   `json:"id" db:"id"`
	OrganizationName *string `json:"organizationName,omitempty" db:"organization_name"`
	City             *string `json:"city,omitempty" db:"city"`
	State            *string `json:"state,omitempty" db:"state"`
	Country          *string `json:"country,omitempty" db:"country"`
	Region           *string `json:"region,omitempty" db:"region"`
}
