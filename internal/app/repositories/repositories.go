package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ProfileRepository     *ProfileRepository
	IndustryRepository    *IndustryRepository
	JobLocationRepository *JobLocationRepository
	DegreeRepository      *DegreeRepository
	ContactRepository     *ContactRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		ProfileRepository:     NewProfileRepository(db),
		IndustryRepository:    NewIndustryRepository(db),
		JobLocationRepository: NewJobLocationRepository(db),
		DegreeRepository:      NewDegreeRepository(db),
		ContactRepository:     NewContactRepository(db),
	}
}
