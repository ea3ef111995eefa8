package movie

import (
	"context"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/domains/genre"
)

// Service defines business logic for the Movie domain, including the
// orchestrated creation workflow that assembles a movie from the
// metadata provider.
type Service interface {
	// CreateFromTMDB runs the full creation workflow for an external
	// movie id:
	//   1. fetch the primary record, trailer candidates and credits
	//   2. derive the director from the crew and the trailer key from
	//      the candidates; either missing aborts the creation
	//   3. persist the movie; a (title, release_date) collision aborts
	//      with ErrDuplicateMovie and leaves no partial rows
	//   4. resolve and attach up to the cast limit of actors, and
	//      get-or-create the reported genres; failures here are logged
	//      and swallowed, the movie row stands
	// Errors: ErrSourceMovieNotFound, ErrDirectorNotFound,
	// tmdb.ErrNoTrailer, ErrDuplicateMovie, tmdb.ErrUnavailable
	CreateFromTMDB(ctx context.Context, tmdbMovieID int64) (*MovieResponse, error)

	// GetByID retrieves a movie with its genres and actors.
	// Errors: ErrMovieNotFound
	GetByID(ctx context.Context, id int64) (*MovieResponse, error)

	// GetAll lists movies, optionally filtered by title substring.
	GetAll(ctx context.Context, search string) ([]Movie, error)

	// Update applies a partial update.
	// Errors: ErrMovieNotFound, ErrDuplicateMovie, validation errors
	Update(ctx context.Context, id int64, req *UpdateMovieRequest) (*MovieResponse, error)

	// Delete removes a movie and its association rows. Actors and genres
	// themselves survive.
	// Errors: ErrMovieNotFound
	Delete(ctx context.Context, id int64) error

	// SearchTMDB runs a free-text search against the provider without
	// touching local storage.
	// Errors: tmdb.ErrUnavailable
	SearchTMDB(ctx context.Context, query string) ([]*SearchMovieResponse, error)

	// AttachActor links an existing local actor to a movie.
	// Errors: ErrMovieNotFound, actor.ErrActorNotFound
	AttachActor(ctx context.Context, movieID, actorID int64) error

	// AttachGenres get-or-creates the named genres and links them.
	// Errors: ErrMovieNotFound
	AttachGenres(ctx context.Context, movieID int64, names []string) error

	// EnrichGenresFromTMDB fetches the provider record for the external
	// id and attaches whatever genres it reports.
	// Errors: ErrMovieNotFound, ErrSourceMovieNotFound, tmdb.ErrUnavailable
	EnrichGenresFromTMDB(ctx context.Context, movieID, tmdbMovieID int64) error

	// ListGenres returns the genres attached to a movie.
	// Errors: ErrMovieNotFound
	ListGenres(ctx context.Context, movieID int64) ([]genre.Genre, error)

	// ListActors returns the actors attached to a movie, in attachment
	// order.
	// Errors: ErrMovieNotFound
	ListActors(ctx context.Context, movieID int64) ([]actor.Actor, error)

	// ListByActor returns the movies an actor appears in.
	// Errors: actor.ErrActorNotFound
	ListByActor(ctx context.Context, actorID int64) ([]Movie, error)
}
