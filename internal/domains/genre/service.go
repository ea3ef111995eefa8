package genre

import "context"

// Service defines business logic for the Genre domain.
type Service interface {
	// GetOrCreateByNames resolves each reported name to a Genre row with
	// get-or-create semantics. Any distinct name yields a distinct row;
	// names are not filtered against the vocabulary. Blank names are
	// dropped. Order of the input is preserved in the output.
	GetOrCreateByNames(ctx context.Context, names []string) ([]Genre, error)

	// GetAll lists the known genres.
	GetAll(ctx context.Context) ([]Genre, error)

	// SeedVocabulary makes sure the canonical vocabulary (plus the "Other"
	// fallback) exists. Called once at process start.
	SeedVocabulary(ctx context.Context) error
}
