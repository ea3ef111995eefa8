package tmdb

import "errors"

var (
	// ErrNotFound - the requested TMDB resource does not exist (HTTP 404).
	ErrNotFound = errors.New("tmdb resource not found")

	// ErrUnavailable - TMDB is unreachable or returned an unexpected status.
	// Surfaced to API clients as a 502.
	ErrUnavailable = errors.New("tmdb service unavailable")

	// ErrMissingAPIKey - no TMDB_KEY configured. The application starts
	// without one; only authenticated provider calls fail.
	ErrMissingAPIKey = errors.New("tmdb api key is not configured")

	// ErrNoDirector - the fetched crew list has no "Director" entry.
	ErrNoDirector = errors.New("no director found in movie credits")

	// ErrNoTrailer - the fetched trailer list is empty.
	ErrNoTrailer = errors.New("no trailer found for movie")
)
