package movie

import (
	"context"

	"movie-catalog-backend/internal/domains/genre"
)

// Repository defines data access for the Movie domain.
type Repository interface {
	// Create inserts a new movie. The (title, release_date) uniqueness
	// check happens at the database constraint, never via a pre-check, so
	// two concurrent creators of the same pair resolve through the
	// storage engine.
	// Errors: ErrDuplicateMovie
	Create(ctx context.Context, m *Movie) (*Movie, error)

	// GetByID retrieves a movie by id.
	// Errors: ErrMovieNotFound
	GetByID(ctx context.Context, id int64) (*Movie, error)

	// GetAll lists movies, optionally filtered by a case-insensitive
	// title substring.
	GetAll(ctx context.Context, search string) ([]Movie, error)

	// Update persists changed fields of an existing movie.
	// Errors: ErrMovieNotFound, ErrDuplicateMovie
	Update(ctx context.Context, m *Movie) (*Movie, error)

	// Delete removes the movie; association rows cascade away.
	// Errors: ErrMovieNotFound
	Delete(ctx context.Context, id int64) error

	// AttachActors links the given actor ids to a movie. Idempotent:
	// attaching an already-linked pair is a no-op, not an error.
	AttachActors(ctx context.Context, movieID int64, actorIDs []int64) error

	// AttachGenres links the given genre ids to a movie. Idempotent like
	// AttachActors.
	AttachGenres(ctx context.Context, movieID int64, genreIDs []int64) error

	// ListGenres returns the genres attached to a movie.
	ListGenres(ctx context.Context, movieID int64) ([]genre.Genre, error)

	// ListByActor returns the movies an actor is attached to.
	ListByActor(ctx context.Context, actorID int64) ([]Movie, error)
}
