package actor

import (
	"strings"
	"time"
)

// Actor represents the core Actor entity.
// Actors have a lifecycle independent of movies: they are shared across
// movies through a many-to-many association and are never deleted when a
// movie is removed.
type Actor struct {
	ID int64 `json:"id" db:"id"`

	// Identity - the pair (Name, DateOfBirth) is unique
	Name        string     `json:"name" db:"name"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`

	// Details
	Biography    string `json:"biography" db:"biography"`
	PlaceOfBirth string `json:"place_of_birth" db:"place_of_birth"`

	// Opaque external keys; full URLs are derived at the response boundary
	IMDBKey   string `json:"imdb_key" db:"imdb_key"`
	PosterKey string `json:"poster_key" db:"poster_key"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	MaxNameLength      = 100
	MaxBiographyLength = 5000

	// CastResolveLimit caps how many cast members are resolved into actors
	// during movie creation. Deliberate scope-limiting policy: only the
	// first entries in provider billing order are kept.
	CastResolveLimit = 5
)

// IsValid validates the Actor entity.
func (a *Actor) IsValid() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidName
	}
	if len(a.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(a.Biography) > MaxBiographyLength {
		return ErrBiographyTooLong
	}
	if a.DateOfBirth == nil {
		return ErrMissingBirthDate
	}
	return nil
}
