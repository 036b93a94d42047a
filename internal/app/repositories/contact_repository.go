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

// ContactRepository persists per-user contact cards. One row per user,
// upserted on save.
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// GetByUserID retrieves a user's contact card
func (r *ContactRepository) GetByUserID(ctx context.Context, userID int64) (*models.Contact, error) {
	contact := &models.Contact{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, phone, email, linkedin_url, github_url, updated_at
		FROM contacts
		WHERE user_id = $1`,
		userID).Scan(&contact.ID, &contact.UserID, &contact.Phone, &contact.Email,
		&contact.LinkedinURL, &contact.GithubURL, &contact.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("error fetching contact info: %w", err)
	}

	return contact, nil
}

// Upsert saves a user's contact card, replacing any previous one
func (r *ContactRepository) Upsert(ctx context.Context, contact *models.Contact) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO contacts (user_id, phone, email, linkedin_url, github_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			linkedin_url = EXCLUDED.linkedin_url,
			github_url = EXCLUDED.github_url,
			updated_at = NOW()`,
		contact.UserID, contact.Phone, contact.Email, contact.LinkedinURL, contact.GithubURL)

	if err != nil {
		return fmt.Errorf("error saving contact info: %w", err)
	}

	return nil
}
