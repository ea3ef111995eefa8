package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"movie-catalog-backend/internal/domains/user"
	"movie-catalog-backend/pkg/jwt"
	"movie-catalog-backend/pkg/logger"
)

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo: repo,
		jwt:  jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.UserDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("user_id", created.ID.String()).Str("email", created.Email).Msg("User registered")

	dto := created.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same error for unknown email and bad password, no user enumeration.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Warn().Str("user_id", u.ID.String()).Err(err).Msg("Failed to stamp last login")
	}

	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*user.LoginResponse, error) {
	claims, err := s.jwt.Verify(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	return s.issueTokens(u)
}

func (s *userService) issueTokens(u *user.User) (*user.LoginResponse, error) {
	access, expiresAt, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		User:         u.ToDTO(),
	}, nil
}
