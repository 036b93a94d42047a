package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/models/dto"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/app/repositories"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/apperrors"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/auth"
	"github.com/BrandonLMedina/IST-303-TeamJohto/internal/pkg/logger"
)

// AuthService handles registration and login
type AuthService struct {
	users      *repositories.UserRepository
	jwtService *auth.JWTService
	log        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		log:        logger.WithComponent("auth_service"),
	}
}

// Register creates an account and returns an access token for it. New
// profiles start public; everything beyond the account basics is filled in
// later through the profile editor.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:             req.Email,
		Password:          hashed,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		UserType:          models.UserType(req.UserType),
		ProfileVisibility: models.VisibilityPublic,
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.log.Info().Int64("userId", id).Str("userType", req.UserType).Msg("User registered")

	return s.issueToken(user)
}

// Login verifies credentials and returns an access token. An unknown email
// and a wrong password return the same error so the endpoint does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
