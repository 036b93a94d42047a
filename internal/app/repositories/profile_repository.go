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

// ProfileRepository reads the joined profile view. It never mutates state;
// profile edits go through UserRepository.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// profileColumns is the shared SELECT list for the joined profile row. The
// industry and location joins key off the user_type discriminant once, in
// SQL, so the dormant reference column is never read.
const profileColumns = `
	u.id, u.user_type, u.first_name, u.last_name, u.email, u.phone,
	u.about_me, u.linkedin_url, u.profile_visibility,
	u.current_year, u.expected_graduation_year, u.is_seeking_mentorship,
	u.graduation_year, u.is_mentor, u.current_position, u.company_name,
	u.desired_industry_id, u.desired_job_location_id, u.industry_id, u.job_location_id,
	i.id, i.name, i.sub_industry, i.sector_code, i.description,
	l.id, l.organization_name, l.city, l.state, l.country, l.region,
	d.id, d.degree_level, d.degree_name, d.concentration_name`

const profileJoins = `
	FROM users u
	LEFT JOIN industries i
		ON i.id = CASE WHEN u.user_type = 'student' THEN u.desired_industry_id ELSE u.industry_id END
	LEFT JOIN job_locations l
		ON l.id = CASE WHEN u.user_type = 'student' THEN u.desired_job_location_id ELSE u.job_location_id END
	LEFT JOIN degree_concentrations d
		ON d.id = u.degree_concentration_id`

// FetchProfile performs the single polymorphic read for one user. Returns
// apperrors.ErrProfileNotFound when no row matches, regardless of whether
// the user was deleted or never existed.
func (r *ProfileRepository) FetchProfile(ctx context.Context, userID int64) (*models.RawProfileRow, error) {
	query := `SELECT` + profileColumns + profileJoins + ` WHERE u.id = $1`

	row, err := scanRawProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error fetching profile: %w", err)
	}

	return row, nil
}

// DirectoryFilter narrows the membership-directory listing
type DirectoryFilter struct {
	UserType   string // "" means both
	IndustryID int64  // 0 means any
}

// ListDirectory returns joined profile rows for the membership directory.
// Private profiles are always excluded.
func (r *ProfileRepository) ListDirectory(ctx context.Context, filter DirectoryFilter, offset uint64, limit int) ([]*models.RawProfileRow, error) {
	query := `SELECT` + profileColumns + profileJoins + `
	WHERE u.profile_visibility <> 'private'
		AND ($1 = '' OR u.user_type = $1)
		AND ($2 = 0 OR i.id = $2)
	ORDER BY u.last_name, u.first_name
	OFFSET $3 LIMIT $4`

	rows, err := r.db.Query(ctx, query, filter.UserType, filter.IndustryID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing directory: %w", err)
	}
	defer rows.Close()

	var result []*models.RawProfileRow
	for rows.Next() {
		row, err := scanRawProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning directory row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating directory rows: %w", err)
	}

	return result, nil
}

// CountDirectory counts rows matching the directory filter
func (r *ProfileRepository) CountDirectory(ctx context.Context, filter DirectoryFilter) (int64, error) {
	query := `SELECT COUNT(*)` + profileJoins + `
	WHERE u.profile_visibility <> 'private'
		AND ($1 = '' OR u.user_type = $1)
		AND ($2 = 0 OR i.id = $2)`

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.UserType, filter.IndustryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting directory: %w", err)
	}

	return count, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRawProfile(s rowScanner) (*models.RawProfileRow, error) {
	row := &models.RawProfileRow{}

	var (
		industryID   *int64
		industryName *string
		subIndustry  *string
		sectorCode   *string
		description  *string

		locationID *int64
		orgName    *string
		city       *string
		state      *string
		country    *string
		region     *string

		degreeID          *int64
		degreeLevel       *string
		degreeName        *string
		concentrationName *string
	)

	err := s.Scan(
		&row.UserID, &row.UserType, &row.FirstName, &row.LastName, &row.Email, &row.Phone,
		&row.AboutMe, &row.LinkedinURL, &row.ProfileVisibility,
		&row.CurrentYear, &row.ExpectedGraduationYear, &row.IsSeekingMentorship,
		&row.GraduationYear, &row.IsMentor, &row.CurrentPosition, &row.CompanyName,
		&row.DesiredIndustryID, &row.DesiredJobLocationID, &row.IndustryID, &row.JobLocationID,
		&industryID, &industryName, &subIndustry, &sectorCode, &description,
		&locationID, &orgName, &city, &state, &country, &region,
		&degreeID, &degreeLevel, &degreeName, &concentrationName,
	)
	if err != nil {
		return nil, err
	}

	if industryID != nil {
		row.Industry = &models.Industry{
			ID:          *industryID,
			Name:        deref(industryName),
			SubIndustry: subIndustry,
			SectorCode:  sectorCode,
			Description: description,
		}
	}

	if locationID != nil {
		row.Location = &models.JobLocation{
			ID:               *locationID,
			OrganizationName: orgName,
			City:             city,
			State:            state,
			Country:          country,
			Region:           region,
		}
	}

	if degreeID != nil {
		row.Degree = &models.DegreeConcentration{
			ID:                *degreeID,
			DegreeLevel:       deref(degreeLevel),
			DegreeName:        deref(degreeName),
			ConcentrationName: concentrationName,
		}
	}

	return row, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
