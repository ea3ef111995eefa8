package actor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/tmdb"
)

func strPtr(s string) *string { return &s }

func TestFromPerson(t *testing.T) {
	t.Run("maps provider fields onto the entity", func(t *testing.T) {
		a, err := FromPerson(&tmdb.Person{
			Name:         "Christian Bale",
			Biography:    "Description",
			PlaceOfBirth: strPtr("Haverfordwest, Pembrokeshire, Wales, UK"),
			Birthday:     strPtr("1974-01-30"),
			IMDBID:       strPtr("nm0000288"),
			ProfilePath:  strPtr("/qCpZn2e3dimwbryLnqxZuI88PTi.jpg"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Christian Bale", a.Name)
		assert.Equal(t, "Haverfordwest, Pembrokeshire, Wales, UK", a.PlaceOfBirth)
		require.NotNil(t, a.DateOfBirth)
		assert.Equal(t, "1974-01-30", a.DateOfBirth.Format("2006-01-02"))
		assert.Equal(t, "nm0000288", a.IMDBKey)
		assert.Equal(t, "/qCpZn2e3dimwbryLnqxZuI88PTi.jpg", a.PosterKey)
	})

	t.Run("nil optional fields flatten to empty strings", func(t *testing.T) {
		a, err := FromPerson(&tmdb.Person{
			Name:     "Christian Bale",
			Birthday: strPtr("1974-01-30"),
		})
		require.NoError(t, err)
		assert.Empty(t, a.PlaceOfBirth)
		assert.Empty(t, a.IMDBKey)
		assert.Empty(t, a.PosterKey)
	})

	t.Run("missing birthday", func(t *testing.T) {
		_, err := FromPerson(&tmdb.Person{Name: "Christian Bale"})
		assert.ErrorIs(t, err, ErrMissingBirthDate)
	})

	t.Run("unparseable birthday", func(t *testing.T) {
		_, err := FromPerson(&tmdb.Person{
			Name:     "Christian Bale",
			Birthday: strPtr("January 30, 1974"),
		})
		assert.ErrorIs(t, err, ErrMissingBirthDate)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := FromPerson(&tmdb.Person{Birthday: strPtr("1974-01-30")})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("oversized name", func(t *testing.T) {
		_, err := FromPerson(&tmdb.Person{
			Name:     strings.Repeat("x", MaxNameLength+1),
			Birthday: strPtr("1974-01-30"),
		})
		assert.ErrorIs(t, err, ErrNameTooLong)
	})
}

func TestActorToResponse(t *testing.T) {
	born := time.Date(1974, 1, 30, 0, 0, 0, 0, time.UTC)

	t.Run("derives resource urls from keys", func(t *testing.T) {
		resp := Actor{
			ID:          1,
			Name:        "Christian Bale",
			DateOfBirth: &born,
			IMDBKey:     "nm0000288",
			PosterKey:   "/qCpZn2e3dimwbryLnqxZuI88PTi.jpg",
		}.ToResponse()

		require.NotNil(t, resp.IMDBURL)
		assert.Equal(t, "https://www.imdb.com/name/nm0000288", *resp.IMDBURL)
		require.NotNil(t, resp.PosterURL)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/qCpZn2e3dimwbryLnqxZuI88PTi.jpg", *resp.PosterURL)
		require.NotNil(t, resp.DateOfBirth)
		assert.Equal(t, "1974-01-30", *resp.DateOfBirth)
	})

	t.Run("empty keys derive nil urls", func(t *testing.T) {
		resp := Actor{ID: 1, Name: "Christian Bale", DateOfBirth: &born}.ToResponse()

		assert.Nil(t, resp.IMDBURL)
		assert.Nil(t, resp.PosterURL)
	})
}

func TestUpdateActorRequestApplyToEntity(t *testing.T) {
	born := time.Date(1974, 1, 30, 0, 0, 0, 0, time.UTC)
	base := func() *Actor {
		return &Actor{ID: 1, Name: "Christian Bale", DateOfBirth: &born, Biography: "Description"}
	}

	t.Run("applies only the set fields", func(t *testing.T) {
		a := base()
		bio := "Updated"
		require.NoError(t, (&UpdateActorRequest{Biography: &bio}).ApplyToEntity(a))
		assert.Equal(t, "Updated", a.Biography)
		assert.Equal(t, "Christian Bale", a.Name)
	})

	t.Run("reparses date of birth", func(t *testing.T) {
		a := base()
		dob := "1980-06-01"
		require.NoError(t, (&UpdateActorRequest{DateOfBirth: &dob}).ApplyToEntity(a))
		assert.Equal(t, "1980-06-01", a.DateOfBirth.Format("2006-01-02"))
	})

	t.Run("bad date rejected", func(t *testing.T) {
		a := base()
		dob := "soon"
		assert.ErrorIs(t, (&UpdateActorRequest{DateOfBirth: &dob}).ApplyToEntity(a), ErrMissingBirthDate)
	})

	t.Run("clearing the name rejected", func(t *testing.T) {
		a := base()
		empty := ""
		assert.ErrorIs(t, (&UpdateActorRequest{Name: &empty}).ApplyToEntity(a), ErrInvalidName)
	})
}
