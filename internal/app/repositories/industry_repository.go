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

// IndustryRepository handles the 'industries' reference table
type IndustryRepository struct {
	db *pgxpool.Pool
}

// NewIndustryRepository creates a new IndustryRepository
func NewIndustryRepository(db *pgxpool.Pool) *IndustryRepository {
	return &IndustryRepository{
		db: db,
	}
}

// GetByID retrieves an industry by ID
func (r *IndustryRepository) GetByID(ctx context.Context, id int64) (*models.Industry, error) {
	industry := &models.Industry{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, sub_industry, sector_code, description
		FROM industries
		WHERE id = $1`,
		id).Scan(&industry.ID, &industry.Name, &industry.SubIndustry, &industry.SectorCode, &industry.Description)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIndustryNotFound
		}
		return nil, fmt.Errorf("error fetching industry: %w", err)
	}

	return industry, nil
}

// GetAll retrieves all industries ordered by name
func (r *IndustryRepository) GetAll(ctx context.Context) ([]*models.Industry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, sub_industry, sector_code, description
		FROM industries
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing industries: %w", err)
	}
	defer rows.Close()

	var industries []*models.Industry
	for rows.Next() {
		industry := &models.Industry{}
		if err := rows.Scan(&industry.ID, &industry.Name, &industry.SubIndustry, &industry.SectorCode, &industry.Description); err != nil {
			return nil, fmt.Errorf("error scanning industry: %w", err)
		}
		industries = append(industries, industry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating industries: %w", err)
	}

	return industries, nil
}

// Create inserts an industry, used by seeding
func (r *IndustryRepository) Create(ctx context.Context, industry *models.Industry) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO industries (name, sub_industry, sector_code, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		industry.Name, industry.SubIndustry, industry.SectorCode, industry.Description).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		return 0, fmt.Errorf("error creating industry: %w", err)
	}

	return id, nil
}

// GetByName retrieves an industry by exact name, used by seeding
func (r *IndustryRepository) GetByName(ctx context.Context, name string) (*models.Industry, error) {
	industry := &models.Industry{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, sub_industry, sector_code, description
		FROM industries
		WHERE name = $1`,
		name).Scan(&industry.ID, &industry.Name, &industry.SubIndustry, &industry.SectorCode, &industry.Description)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIndustryNotFound
		}
		return nil, fmt.Errorf("error fetching industry: %w", err)
	}

	return industry, nil
}
