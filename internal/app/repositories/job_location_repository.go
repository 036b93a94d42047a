package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
)

// JobLocationRepository handles the 'job_locations' reference table
type JobLocationRepository struct {
	db *pgxpool.Pool
}

// NewJobLocationRepository creates a new JobLocationRepository
func NewJobLocationRepository(db *pgxpool.Pool) *JobLocationRepository {
	return &JobLocationRepository{
		db: db,
	}
}

// GetByID retrieves a job location by ID
func (r *JobLocationRepository) GetByID(ctx context.Context, id int64) (*models.JobLocation, error) {
	loc := &models.JobLocation{}
	err := r.db.QueryRow(ctx, `
		SELECT id, organization_name, city, state, country, region
		FROM job_locations
		WHERE id = $1`,
		id).Scan(&loc.ID, &loc.OrganizationName, &loc.City, &loc.State, &loc.Country, &loc.Region)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, fmt.Errorf("error fetching job location: %w", err)
	}

	return loc, nil
}

// GetAll retrieves all job locations
func (r *JobLocationRepository) GetAll(ctx context.Context) ([]*models.JobLocation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, organization_name, city, state, country, region
		FROM job_locations
		ORDER BY city, state`)
	if err != nil {
		return nil, fmt.Errorf("error listing job locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.JobLocation
	for rows.Next() {
		loc := &models.JobLocation{}
		if err := rows.Scan(&loc.ID, &loc.OrganizationName, &loc.City, &loc.State, &loc.Country, &loc.Region); err != nil {
			return nil, fmt.Errorf("error scanning job location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job locations: %w", err)
	}

	return locations, nil
}

// Create inserts a job location, used by seeding
func (r *JobLocationRepository) Create(ctx context.Context, loc *models.JobLocation) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO job_locations (organization_name, city, state, country, region)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		loc.OrganizationName, loc.City, loc.State, loc.Country, loc.Region).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating job location: %w", err)
	}

	return id, nil
}
