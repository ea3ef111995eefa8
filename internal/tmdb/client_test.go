package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
	})
	require.NoError(t, err)
	return client, srv
}

func TestClient_FetchMovie(t *testing.T) {
	t.Run("decodes primary record", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/13", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
                "original_title": "Forrest Gump",
                "overview": "Description",
                "budget": 55000000.0,
                "runtime": 142,
                "release_date": "1994-06-23",
                "poster_path": "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg",
                "backdrop_path": "/3h1JZGDhZ8nzxdgvkxha0qBqi05.jpg",
                "adult": false,
                "imdb_id": "tt0109830",
                "revenue": 677387716.0,
                "status": "Released",
                "genres": [{"id": 18, "name": "Drama"}, {"id": 35, "name": "Comedy"}]
            }`))
		})

		details, err := client.FetchMovie(context.Background(), 13)
		require.NoError(t, err)
		assert.Equal(t, "Forrest Gump", details.OriginalTitle)
		assert.Equal(t, 55000000.0, details.Budget)
		require.NotNil(t, details.Runtime)
		assert.Equal(t, 142, *details.Runtime)
		assert.Equal(t, []string{"Drama", "Comedy"}, details.GenreNames())
		assert.Nil(t, details.Tagline)
	})

	t.Run("unknown id maps to ErrNotFound", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.FetchMovie(context.Background(), 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("server failure maps to ErrUnavailable", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.FetchMovie(context.Background(), 13)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unreachable host maps to ErrUnavailable", func(t *testing.T) {
		client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, err := client.FetchMovie(context.Background(), 13)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestClient_MissingAPIKey(t *testing.T) {
	client, err := NewClient(&Config{BaseURL: "https://api.themoviedb.org/3"})
	require.NoError(t, err)

	_, err = client.FetchMovie(context.Background(), 13)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_FetchPerson(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
            "name": "Christian Bale",
            "biography": "Description",
            "place_of_birth": "Haverfordwest, Pembrokeshire, Wales, UK",
            "birthday": "1974-01-30",
            "imdb_id": "nm0000288",
            "profile_path": "/qCpZn2e3dimwbryLnqxZuI88PTi.jpg"
        }`))
	})

	person, err := client.FetchPerson(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Christian Bale", person.Name)
	require.NotNil(t, person.Birthday)
	assert.Equal(t, "1974-01-30", *person.Birthday)
}

func TestClient_SearchMovies(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "Gump", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
            "results": [
                {"title": "Forrest Gump", "poster_path": "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg"}
            ]
        }`))
	})

	results, err := client.SearchMovies(context.Background(), "Gump")
	require.NoError(t, err)
	require.Len(t, results.Results, 1)
	assert.Equal(t, "Forrest Gump", results.Results[0].Title)
}
