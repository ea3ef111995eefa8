package genre

import "context"

// Repository defines data access for the Genre lookup table.
type Repository interface {
	// GetOrCreateByName returns the genre with the given name, inserting it
	// first if absent. Atomic with respect to the unique(name) constraint:
	// two concurrent callers for the same new name both end up with the
	// same row.
	GetOrCreateByName(ctx context.Context, name string) (*Genre, error)

	// GetByName retrieves a genre by exact name.
	// Errors: ErrGenreNotFound
	GetByName(ctx context.Context, name string) (*Genre, error)

	// GetAll lists all genres ordered by name.
	GetAll(ctx context.Context) ([]Genre, error)

	// Seed inserts any missing vocabulary names. Existing rows are left
	// untouched; safe to run on every startup.
	Seed(ctx context.Context, names []string) error
}
