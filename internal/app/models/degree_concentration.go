package models

// DegreeConcentration represents a row of the 'degree_concentrations'
// reference table. Single shared reference for both user types.
type DegreeConcentration struct {
	ID                int64   `json:"id" db:"id"`
	DegreeLevel       string  `json:"degreeLevel" db:"degree_level"`
	DegreeName        string  `json:"degreeName" db:"degree_name"`
	ConcentrationName *string `json:"concentrationName,omitempty" db:"concentration_name"`
}
