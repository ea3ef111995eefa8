package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ToErrorCode converts an error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrEmailAlreadyExists):
		return "EMAIL_EXISTS"
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrUserInactive):
		return "ACCOUNT_INACTIVE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrEmailAlreadyExists):
		return 409
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return 401
	case errors.Is(err, ErrUserInactive):
		return 403
	default:
		return 500
	}
}
