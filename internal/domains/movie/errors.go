package movie

import (
	"errors"

	"movie-catalog-backend/internal/tmdb"
)

var (
	// Validation errors
	ErrInvalidTitle   = errors.New("movie title is invalid")
	ErrTitleTooLong   = errors.New("movie title exceeds maximum length")
	ErrNegativeAmount = errors.New("budget and revenue must be non-negative")
	ErrInvalidDate    = errors.New("release date is malformed")

	// Business rule errors
	ErrMovieNotFound = errors.New("movie not found")

	// ErrSourceMovieNotFound - the external id passed to the creation
	// workflow is unknown at the provider.
	ErrSourceMovieNotFound = errors.New("movie not found at metadata provider")

	// ErrDuplicateMovie - the (title, release_date) pair already exists.
	// Raised by the database constraint, never by a pre-check.
	ErrDuplicateMovie = errors.New("movie with this title and release date already exists")

	// ErrDirectorNotFound - the provider's crew list has no Director
	// entry. Treated as a data integrity failure of the source record.
	ErrDirectorNotFound = errors.New("no director found in movie credits")
)

// ToErrorCode converts an error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrSourceMovieNotFound):
		return "MOVIE_NOT_FOUND"
	case errors.Is(err, ErrDuplicateMovie):
		return "DUPLICATE_MOVIE"
	case errors.Is(err, ErrDirectorNotFound):
		return "DIRECTOR_NOT_FOUND"
	case errors.Is(err, tmdb.ErrNoTrailer):
		return "TRAILER_NOT_FOUND"
	case errors.Is(err, tmdb.ErrUnavailable), errors.Is(err, tmdb.ErrMissingAPIKey):
		return "EXTERNAL_SERVICE_ERROR"
	case errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidDate):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. Provider
// outages map to 502: the catalog is fine, the upstream is not.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrSourceMovieNotFound):
		return 404
	case errors.Is(err, ErrDuplicateMovie):
		return 409
	case errors.Is(err, ErrDirectorNotFound), errors.Is(err, tmdb.ErrNoTrailer):
		return 422
	case errors.Is(err, tmdb.ErrUnavailable), errors.Is(err, tmdb.ErrMissingAPIKey):
		return 502
	case errors.Is(err, ErrInvalidTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrInvalidDate):
		return 400
	default:
		return 500
	}
}
