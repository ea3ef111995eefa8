package user

import "context"

// Service defines authentication business logic.
type Service interface {
	// Register creates a new account with a bcrypt-hashed password.
	// Errors: ErrEmailAlreadyExists
	Register(ctx context.Context, req *RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and issues a token pair.
	// Errors: ErrInvalidCredentials, ErrUserInactive
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new pair.
	// Errors: ErrInvalidToken, ErrUserNotFound, ErrUserInactive
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)
}
