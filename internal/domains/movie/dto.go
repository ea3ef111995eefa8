package movie

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/domains/genre"
	"movie-catalog-backend/internal/tmdb"
)

const releaseDateLayout = "2006-01-02"

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateMovieRequest - POST /v1/movies
// Carries only the external movie id; everything else comes from the
// provider through the creation workflow.
type CreateMovieRequest struct {
	MovieID int64 `json:"movie_id"`
}

func (r CreateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID,
			validation.Required.Error("movie_id is required"),
			validation.Min(1).Error("movie_id must be positive"),
		),
	)
}

// UpdateMovieRequest - PUT /v1/movies/:id
// All fields optional for partial updates.
type UpdateMovieRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	ReleaseDate *string  `json:"release_date,omitempty"` // YYYY-MM-DD
	PosterKey   *string  `json:"poster_key,omitempty"`
	BackdropKey *string  `json:"backdrop_key,omitempty"`
	Adult       *bool    `json:"adult,omitempty"`
	IMDBKey     *string  `json:"imdb_key,omitempty"`
	Revenue     *float64 `json:"revenue,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Tagline     *string  `json:"tagline,omitempty"`
	TrailerKey  *string  `json:"trailer_key,omitempty"`
	Director    *string  `json:"director,omitempty"`
}

func (r UpdateMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, MaxTitleLength)),
		validation.Field(&r.ReleaseDate, validation.Date(releaseDateLayout)),
		validation.Field(&r.Budget, validation.Min(0.0)),
		validation.Field(&r.Revenue, validation.Min(0.0)),
		validation.Field(&r.Duration, validation.Min(0)),
		validation.Field(&r.Tagline, validation.Length(0, MaxTaglineLength)),
		validation.Field(&r.Director, validation.Length(0, MaxDirectorLength)),
	)
}

// AttachActorRequest - POST /v1/movies/:id/actors
type AttachActorRequest struct {
	ActorID int64 `json:"actor_id"`
}

func (r AttachActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ActorID,
			validation.Required.Error("actor_id is required"),
			validation.Min(1).Error("actor_id must be positive"),
		),
	)
}

// AttachMovieRequest - POST /v1/actors/:id/movies
type AttachMovieRequest struct {
	MovieID int64 `json:"movie_id"`
}

func (r AttachMovieRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID,
			validation.Required.Error("movie_id is required"),
			validation.Min(1).Error("movie_id must be positive"),
		),
	)
}

// AttachGenresRequest - POST /v1/movies/:id/genres
// Carries either explicit genre names or an external movie id whose
// reported genres are fetched from the provider.
type AttachGenresRequest struct {
	Genres  []string `json:"genres,omitempty"`
	MovieID int64    `json:"movie_id,omitempty"`
}

func (r AttachGenresRequest) Validate() error {
	if len(r.Genres) == 0 && r.MovieID == 0 {
		return validation.Errors{
			"genres": validation.ErrRequired,
		}
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.MovieID, validation.Min(0)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// MovieResponse - detail shape, opaque keys plus their derived URLs.
type MovieResponse struct {
	ID          int64                        `json:"id"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Budget      float64                      `json:"budget"`
	Duration    int                          `json:"duration"`
	ReleaseDate *string                      `json:"release_date"`
	PosterKey   string                       `json:"poster_key,omitempty"`
	PosterURL   *string                      `json:"poster_url"`
	BackdropKey string                       `json:"backdrop_key,omitempty"`
	BackdropURL *string                      `json:"backdrop_url"`
	Adult       bool                         `json:"adult"`
	IMDBKey     string                       `json:"imdb_key,omitempty"`
	IMDBURL     *string                      `json:"imdb_url"`
	Revenue     float64                      `json:"revenue"`
	Status      string                       `json:"status"`
	Tagline     string                       `json:"tagline"`
	TrailerKey  string                       `json:"trailer_key,omitempty"`
	TrailerURL  *string                      `json:"trailer_url"`
	Director    string                       `json:"director"`
	Genres      []string                     `json:"genres"`
	Actors      []*actor.SimpleActorResponse `json:"actors"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// SimpleMovieResponse - list shape.
type SimpleMovieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Director    string  `json:"director"`
	PosterURL   *string `json:"poster_url"`
}

// SearchMovieResponse - one hit of the provider search passthrough.
type SearchMovieResponse struct {
	Title     string  `json:"title"`
	PosterURL *string `json:"poster_url"`
}

// =====================================================
// CONVERSIONS
// =====================================================

// ToResponse converts the entity to the detail DTO. Genres and actors are
// fetched separately by the service and passed in.
func (m Movie) ToResponse(genres []genre.Genre, actors []actor.Actor) *MovieResponse {
	genreNames := make([]string, 0, len(genres))
	for _, g := range genres {
		genreNames = append(genreNames, g.Name)
	}

	actorItems := make([]*actor.SimpleActorResponse, 0, len(actors))
	for _, a := range actors {
		actorItems = append(actorItems, a.ToSimpleResponse())
	}

	return &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Budget:      m.Budget,
		Duration:    m.Duration,
		ReleaseDate: formatReleaseDate(m.ReleaseDate),
		PosterKey:   m.PosterKey,
		PosterURL:   tmdb.ImageURL(m.PosterKey),
		BackdropKey: m.BackdropKey,
		BackdropURL: tmdb.ImageURL(m.BackdropKey),
		Adult:       m.Adult,
		IMDBKey:     m.IMDBKey,
		IMDBURL:     tmdb.IMDBTitleURL(m.IMDBKey),
		Revenue:     m.Revenue,
		Status:      m.Status,
		Tagline:     m.Tagline,
		TrailerKey:  m.TrailerKey,
		TrailerURL:  tmdb.TrailerURL(m.TrailerKey),
		Director:    m.Director,
		Genres:      genreNames,
		Actors:      actorItems,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToSimpleResponse converts the entity to the list shape.
func (m Movie) ToSimpleResponse() *SimpleMovieResponse {
	return &SimpleMovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: formatReleaseDate(m.ReleaseDate),
		Director:    m.Director,
		PosterURL:   tmdb.ImageURL(m.PosterKey),
	}
}

// FromDetails builds a Movie entity from the provider's primary record
// plus the values derived from the credits and trailer payloads.
func FromDetails(details *tmdb.MovieDetails, director, trailerKey string) (*Movie, error) {
	m := &Movie{
		Title:       details.OriginalTitle,
		Description: details.Overview,
		Budget:      details.Budget,
		Duration:    tmdb.IntOrZero(details.Runtime),
		PosterKey:   tmdb.StringOrEmpty(details.PosterPath),
		BackdropKey: tmdb.StringOrEmpty(details.BackdropPath),
		Adult:       details.Adult,
		IMDBKey:     tmdb.StringOrEmpty(details.IMDBID),
		Revenue:     details.Revenue,
		Status:      details.Status,
		Tagline:     tmdb.StringOrEmpty(details.Tagline),
		TrailerKey:  trailerKey,
		Director:    director,
	}

	if details.ReleaseDate != "" {
		released, err := time.Parse(releaseDateLayout, details.ReleaseDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		m.ReleaseDate = &released
	}

	if err := m.IsValid(); err != nil {
		return nil, err
	}
	return m, nil
}

// ApplyToEntity applies a partial update to an existing Movie.
func (r *UpdateMovieRequest) ApplyToEntity(m *Movie) error {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Budget != nil {
		m.Budget = *r.Budget
	}
	if r.Duration != nil {
		m.Duration = *r.Duration
	}
	if r.ReleaseDate != nil {
		released, err := time.Parse(releaseDateLayout, *r.ReleaseDate)
		if err != nil {
			return ErrInvalidDate
		}
		m.ReleaseDate = &released
	}
	if r.PosterKey != nil {
		m.PosterKey = *r.PosterKey
	}
	if r.BackdropKey != nil {
		m.BackdropKey = *r.BackdropKey
	}
	if r.Adult != nil {
		m.Adult = *r.Adult
	}
	if r.IMDBKey != nil {
		m.IMDBKey = *r.IMDBKey
	}
	if r.Revenue != nil {
		m.Revenue = *r.Revenue
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Tagline != nil {
		m.Tagline = *r.Tagline
	}
	if r.TrailerKey != nil {
		m.TrailerKey = *r.TrailerKey
	}
	if r.Director != nil {
		m.Director = *r.Director
	}
	return m.IsValid()
}

// SearchResponsesFrom maps provider search hits to the API shape.
func SearchResponsesFrom(results *tmdb.SearchResults) []*SearchMovieResponse {
	items := make([]*SearchMovieResponse, 0, len(results.Results))
	for _, hit := range results.Results {
		items = append(items, &SearchMovieResponse{
			Title:     hit.Title,
			PosterURL: tmdb.ImageURL(tmdb.StringOrEmpty(hit.PosterPath)),
		})
	}
	return items
}

func formatReleaseDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(releaseDateLayout)
	return &s
}
