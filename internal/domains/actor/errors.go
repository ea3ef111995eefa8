package actor

import "errors"

var (
	// Validation errors
	ErrInvalidName      = errors.New("actor name is invalid")
	ErrNameTooLong      = errors.New("actor name exceeds maximum length")
	ErrBiographyTooLong = errors.New("biography exceeds maximum length")
	ErrMissingBirthDate = errors.New("actor date of birth is missing or malformed")

	// Business rule errors
	ErrActorNotFound = errors.New("actor not found")

	// ErrDuplicateActor - the (name, date_of_birth) pair already exists.
	// During cast resolution this is recovered internally by re-reading the
	// existing row; it surfaces as a conflict only on explicit creation.
	ErrDuplicateActor = errors.New("actor with this name and date of birth already exists")
)

// ToErrorCode converts an error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrActorNotFound):
		return "ACTOR_NOT_FOUND"
	case errors.Is(err, ErrDuplicateActor):
		return "DUPLICATE_ACTOR"
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrBiographyTooLong),
		errors.Is(err, ErrMissingBirthDate):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrActorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateActor):
		return 409
	case errors.Is(err, ErrInvalidName),
		errors.Is(err, ErrNameTooLong),
		errors.Is(err, ErrBiographyTooLong),
		errors.Is(err, ErrMissingBirthDate):
		return 400
	default:
		return 500
	}
}
