package actor

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"movie-catalog-backend/internal/tmdb"
)

const birthDateLayout = "2006-01-02"

// CreateActorRequest - POST /v1/actors
// Carries the external person id; all actor fields come from the provider.
type CreateActorRequest struct {
	ActorID int64 `json:"actor_id"`
}

func (r CreateActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ActorID,
			validation.Required.Error("actor_id is required"),
			validation.Min(1).Error("actor_id must be positive"),
		),
	)
}

// UpdateActorRequest - PUT /v1/actors/:id
// All fields optional for partial updates.
type UpdateActorRequest struct {
	Name         *string `json:"name,omitempty"`
	Biography    *string `json:"biography,omitempty"`
	PlaceOfBirth *string `json:"place_of_birth,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	IMDBKey      *string `json:"imdb_key,omitempty"`
	PosterKey    *string `json:"poster_key,omitempty"`
}

func (r UpdateActorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, MaxNameLength)),
		validation.Field(&r.Biography, validation.Length(0, MaxBiographyLength)),
		validation.Field(&r.DateOfBirth, validation.Date(birthDateLayout)),
	)
}

// ActorResponse - actor with derived resource URLs.
type ActorResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Biography    string     `json:"biography"`
	PlaceOfBirth string     `json:"place_of_birth,omitempty"`
	DateOfBirth  *string    `json:"date_of_birth"`
	IMDBKey      string     `json:"imdb_key,omitempty"`
	IMDBURL      *string    `json:"imdb_url"`
	PosterKey    string     `json:"poster_key,omitempty"`
	PosterURL    *string    `json:"poster_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SimpleActorResponse - list shape.
type SimpleActorResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
	PosterURL   *string `json:"poster_url"`
}

// Conversion methods

// ToResponse converts the entity to the full response DTO.
func (a Actor) ToResponse() *ActorResponse {
	return &ActorResponse{
		ID:           a.ID,
		Name:         a.Name,
		Biography:    a.Biography,
		PlaceOfBirth: a.PlaceOfBirth,
		DateOfBirth:  formatBirthDate(a.DateOfBirth),
		IMDBKey:      a.IMDBKey,
		IMDBURL:      tmdb.IMDBNameURL(a.IMDBKey),
		PosterKey:    a.PosterKey,
		PosterURL:    tmdb.ImageURL(a.PosterKey),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToSimpleResponse converts the entity to the list shape.
func (a Actor) ToSimpleResponse() *SimpleActorResponse {
	return &SimpleActorResponse{
		ID:          a.ID,
		Name:        a.Name,
		DateOfBirth: formatBirthDate(a.DateOfBirth),
		PosterURL:   tmdb.ImageURL(a.PosterKey),
	}
}

// FromPerson builds an Actor entity from a fetched person record.
// Errors with ErrMissingBirthDate when the provider reports no parseable
// birthday: the (name, date_of_birth) identity cannot be established.
func FromPerson(person *tmdb.Person) (*Actor, error) {
	if person.Birthday == nil || *person.Birthday == "" {
		return nil, ErrMissingBirthDate
	}
	born, err := time.Parse(birthDateLayout, *person.Birthday)
	if err != nil {
		return nil, ErrMissingBirthDate
	}

	a := &Actor{
		Name:         person.Name,
		Biography:    person.Biography,
		PlaceOfBirth: tmdb.StringOrEmpty(person.PlaceOfBirth),
		DateOfBirth:  &born,
		IMDBKey:      tmdb.StringOrEmpty(person.IMDBID),
		PosterKey:    tmdb.StringOrEmpty(person.ProfilePath),
	}
	if err := a.IsValid(); err != nil {
		return nil, err
	}
	return a, nil
}

// ApplyToEntity applies a partial update to an existing Actor.
func (r *UpdateActorRequest) ApplyToEntity(a *Actor) error {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Biography != nil {
		a.Biography = *r.Biography
	}
	if r.PlaceOfBirth != nil {
		a.PlaceOfBirth = *r.PlaceOfBirth
	}
	if r.DateOfBirth != nil {
		born, err := time.Parse(birthDateLayout, *r.DateOfBirth)
		if err != nil {
			return ErrMissingBirthDate
		}
		a.DateOfBirth = &born
	}
	if r.IMDBKey != nil {
		a.IMDBKey = *r.IMDBKey
	}
	if r.PosterKey != nil {
		a.PosterKey = *r.PosterKey
	}
	return a.IsValid()
}

func formatBirthDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(birthDateLayout)
	return &s
}
