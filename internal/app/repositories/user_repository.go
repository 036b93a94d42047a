package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/dberrors"
)

// UserRepository handles user account rows
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateUser creates a new user account
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, user_type, profile_visibility)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		user.Email, user.Password, user.FirstName, user.LastName, user.UserType, user.ProfileVisibility).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, first_name, last_name, user_type, profile_visibility, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.UserType, &user.ProfileVisibility, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateProfile applies the editable profile fields in one UPDATE statement.
// Absent fields keep their stored value; the career-pathway references are
// written to the column pair selected by the row's own discriminant, so a
// student edit can never touch the mentor-role columns or vice versa.
// Last writer wins, no optimistic-concurrency check.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			phone = COALESCE($2, phone),
			about_me = COALESCE($3, about_me),
			linkedin_url = COALESCE($4, linkedin_url),
			profile_visibility = COALESCE($5, profile_visibility),
			degree_concentration_id = COALESCE($6, degree_concentration_id),
			desired_industry_id = CASE WHEN user_type = 'student'
				THEN COALESCE($7, desired_industry_id) ELSE desired_industry_id END,
			industry_id = CASE WHEN user_type = 'mentor'
				THEN COALESCE($7, industry_id) ELSE industry_id END,
			desired_job_location_id = CASE WHEN user_type = 'student'
				THEN COALESCE($8, desired_job_location_id) ELSE desired_job_location_id END,
			job_location_id = CASE WHEN user_type = 'mentor'
				THEN COALESCE($8, job_location_id) ELSE job_location_id END,
			updated_at = NOW()
		WHERE id = $1`,
		userID, req.Phone, req.AboutMe, req.LinkedinURL, req.ProfileVisibility,
		req.DegreeConcentrationID, req.IndustryID, req.JobLocationID)

	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}
