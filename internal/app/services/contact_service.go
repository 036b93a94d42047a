package services

import (
	"context"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
)

// ContactService handles per-user contact cards
type ContactService struct {
	contacts *repositories.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contacts *repositories.ContactRepository) *ContactService {
	return &ContactService{
		contacts: contacts,
	}
}

// GetContact returns the caller's stored contact card
func (s *ContactService) GetContact(ctx context.Context, userID int64) (*models.Contact, error) {
	return s.contacts.GetByUserID(ctx, userID)
}

// SaveContact stores or replaces the caller's contact card and returns the
// stored row
func (s *ContactService) SaveContact(ctx context.Context, userID int64, req *dto.UpdateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		UserID:      userID,
		Phone:       req.Phone,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
	}

	if err := s.contacts.Upsert(ctx, contact); err != nil {
		return nil, err
	}

	return s.contacts.GetByUserID(ctx, userID)
}
