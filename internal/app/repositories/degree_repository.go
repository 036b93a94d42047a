package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/dberrors"
)

// DegreeRepository handles the 'degree_concentrations' reference table
type DegreeRepository struct {
	db *pgxpool.Pool
}

// NewDegreeRepository creates a new DegreeRepository
func NewDegreeRepository(db *pgxpool.Pool) *DegreeRepository {
	return &DegreeRepository{
		db: db,
	}
}

// GetByID retrieves a degree concentration by ID
func (r *DegreeRepository) GetByID(ctx context.Context, id int64) (*models.DegreeConcentration, error) {
	degree := &models.DegreeConcentration{}
	err := r.db.QueryRow(ctx, `
		SELECT id, degree_level, degree_name, concentration_name
		FROM degree_concentrations
		WHERE id = $1`,
		id).Scan(&degree.ID, &degree.DegreeLevel, &degree.DegreeName, &degree.ConcentrationName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDegreeNotFound
		}
		return nil, fmt.Errorf("error fetching degree concentration: %w", err)
	}

	return degree, nil
}

// GetAll retrieves all degree concentrations
func (r *DegreeRepository) GetAll(ctx context.Context) ([]*models.DegreeConcentration, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, degree_level, degree_name, concentration_name
		FROM degree_concentrations
		ORDER BY degree_level, degree_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing degree concentrations: %w", err)
	}
	defer rows.Close()

	var degrees []*models.DegreeConcentration
	for rows.Next() {
		degree := &models.DegreeConcentration{}
		if err := rows.Scan(&degree.ID, &degree.DegreeLevel, &degree.DegreeName, &degree.ConcentrationName); err != nil {
			return nil, fmt.Errorf("error scanning degree concentration: %w", err)
		}
		degrees = append(degrees, degree)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating degree concentrations: %w", err)
	}

	return degrees, nil
}

// Create inserts a degree concentration, used by seeding
func (r *DegreeRepository) Create(ctx context.Context, degree *models.DegreeConcentration) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO degree_concentrations (degree_level, degree_name, concentration_name)
		VALUES ($1, $2, $3)
		RETURNING id`,
		degree.DegreeLevel, degree.DegreeName, degree.ConcentrationName).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating degree concentration: %w", err)
	}

	return id, nil
}
