package actor

import (
	"context"
	"time"
)

// Repository defines data access for the Actor domain.
type Repository interface {
	// Create inserts a new actor.
	// The (name, date_of_birth) uniqueness check happens at the database,
	// never via a pre-check; a violation returns ErrDuplicateActor so the
	// caller can re-read the winning row.
	Create(ctx context.Context, a *Actor) (*Actor, error)

	// GetByID retrieves an actor by id.
	// Errors: ErrActorNotFound
	GetByID(ctx context.Context, id int64) (*Actor, error)

	// GetByIdentity retrieves an actor by its unique (name, date_of_birth)
	// pair. Used to recover from a lost create race.
	// Errors: ErrActorNotFound
	GetByIdentity(ctx context.Context, name string, dateOfBirth *time.Time) (*Actor, error)

	// GetAll lists all actors ordered by name.
	GetAll(ctx context.Context) ([]Actor, error)

	// Update persists changed fields of an existing actor.
	// Errors: ErrActorNotFound, ErrDuplicateActor
	Update(ctx context.Context, a *Actor) (*Actor, error)

	// Delete removes the actor and its movie associations.
	// Errors: ErrActorNotFound
	Delete(ctx context.Context, id int64) error

	// ListByMovie returns the actors attached to a movie, ordered by the
	// order of attachment.
	ListByMovie(ctx context.Context, movieID int64) ([]Actor, error)
}
