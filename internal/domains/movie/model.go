package movie

import "time"

// Validation constants
const (
	MaxTitleLength    = 200
	MaxTaglineLength  = 500
	MaxDirectorLength = 100
)

// Movie is the primary catalog entity. Poster, backdrop, trailer and imdb
// values are stored as the provider's opaque keys; full URLs are derived
// on the way out, never persisted.
type Movie struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Budget      float64    `json:"budget" db:"budget"`
	Duration    int        `json:"duration" db:"duration"`
	ReleaseDate *time.Time `json:"release_date" db:"release_date"`
	PosterKey   string     `json:"poster_key" db:"poster_key"`
	BackdropKey string     `json:"backdrop_key" db:"backdrop_key"`
	Adult       bool       `json:"adult" db:"adult"`
	IMDBKey     string     `json:"imdb_key" db:"imdb_key"`
	Revenue     float64    `json:"revenue" db:"revenue"`
	Status      string     `json:"status" db:"status"`
	Tagline     string     `json:"tagline" db:"tagline"`
	TrailerKey  string     `json:"trailer_key" db:"trailer_key"`
	Director    string     `json:"director" db:"director"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// IsValid checks business rules before persistence.
func (m *Movie) IsValid() error {
	if m.Title == "" {
		return ErrInvalidTitle
	}
	if len(m.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if m.Budget < 0 || m.Revenue < 0 {
		return ErrNegativeAmount
	}
	return nil
}
