package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the users table.
type Repository interface {
	// Create inserts a new user.
	// Errors: ErrEmailAlreadyExists
	Create(ctx context.Context, u *User) (*User, error)

	// GetByID retrieves a user by id.
	// Errors: ErrUserNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email.
	// Errors: ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateLastLogin stamps the successful login time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
