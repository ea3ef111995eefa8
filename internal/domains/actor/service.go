package actor

import "context"

// Service defines business logic for the Actor domain.
type Service interface {
	// CreateFromTMDB fetches the person record for the given external id
	// and creates an actor from it.
	// Errors: tmdb.ErrNotFound wrapped as ErrActorNotFound if the external
	// id is unknown, ErrDuplicateActor if the identity pair exists,
	// ErrMissingBirthDate if the provider has no parseable birthday.
	CreateFromTMDB(ctx context.Context, tmdbPersonID int64) (*Actor, error)

	// GetByID retrieves an actor.
	// Errors: ErrActorNotFound
	GetByID(ctx context.Context, id int64) (*Actor, error)

	// GetAll lists all actors.
	GetAll(ctx context.Context) ([]Actor, error)

	// Update applies a partial update.
	// Errors: ErrActorNotFound, ErrDuplicateActor, validation errors
	Update(ctx context.Context, id int64, req *UpdateActorRequest) (*Actor, error)

	// Delete removes an actor. Movies referencing it keep existing; only
	// the association rows go away.
	// Errors: ErrActorNotFound
	Delete(ctx context.Context, id int64) error

	// ResolveCast turns cast member ids into actor rows, at most
	// CastResolveLimit of them, in provider order:
	//   - person fetch not-found: skip that id, keep going
	//   - no usable birthday (identity incomplete): skip
	//   - (name, date_of_birth) already taken: reuse the existing row
	//     instead of failing (try create, on conflict re-fetch)
	// A systemic failure (storage down, provider unreachable) returns the
	// actors resolved so far together with the error; the caller decides
	// whether that is fatal.
	ResolveCast(ctx context.Context, castIDs []int64) ([]Actor, error)

	// ListByMovie returns the actors attached to a movie.
	ListByMovie(ctx context.Context, movieID int64) ([]Actor, error)
}
