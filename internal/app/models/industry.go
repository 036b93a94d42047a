package models

// Industry represents a row of the 'industries' reference table. Referenced
// by User in two different roles (desired vs. current), never both at once.
type Industry struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	SubIndustry *string `json:"subIndustry,omitempty" db:"sub_industry"`
	SectorCode  *string `json:"sectorCode,omitempty" db:"sector_code"`
	Description *string `json:"description,omitempty" db:"description"`
}
