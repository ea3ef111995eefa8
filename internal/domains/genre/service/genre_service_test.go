package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/domains/genre"
)

// fakeGenreRepo keeps genres in memory keyed by name.
type fakeGenreRepo struct {
	nextID int64
	byName map[string]genre.Genre
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{byName: make(map[string]genre.Genre)}
}

func (f *fakeGenreRepo) GetOrCreateByName(ctx context.Context, name string) (*genre.Genre, error) {
	if g, ok := f.byName[name]; ok {
		return &g, nil
	}
	f.nextID++
	g := genre.Genre{ID: f.nextID, Name: name}
	f.byName[name] = g
	return &g, nil
}

func (f *fakeGenreRepo) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	g, ok := f.byName[name]
	if !ok {
		return nil, genre.ErrGenreNotFound
	}
	return &g, nil
}

func (f *fakeGenreRepo) GetAll(ctx context.Context) ([]genre.Genre, error) {
	out := make([]genre.Genre, 0, len(f.byName))
	for _, g := range f.byName {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGenreRepo) Seed(ctx context.Context, names []string) error {
	for _, name := range names {
		if _, err := f.GetOrCreateByName(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func TestGetOrCreateByNames(t *testing.T) {
	t.Run("creates missing genres in input order", func(t *testing.T) {
		svc := NewGenreService(newFakeGenreRepo())

		genres, err := svc.GetOrCreateByNames(context.Background(), []string{"Drama", "Comedy"})
		require.NoError(t, err)
		require.Len(t, genres, 2)
		assert.Equal(t, "Drama", genres[0].Name)
		assert.Equal(t, "Comedy", genres[1].Name)
	})

	t.Run("reuses existing rows", func(t *testing.T) {
		repo := newFakeGenreRepo()
		svc := NewGenreService(repo)

		first, err := svc.GetOrCreateByNames(context.Background(), []string{"Drama"})
		require.NoError(t, err)

		second, err := svc.GetOrCreateByNames(context.Background(), []string{"Drama"})
		require.NoError(t, err)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Len(t, repo.byName, 1)
	})

	t.Run("names outside the vocabulary still get rows", func(t *testing.T) {
		svc := NewGenreService(newFakeGenreRepo())

		genres, err := svc.GetOrCreateByNames(context.Background(), []string{"Mockumentary"})
		require.NoError(t, err)
		require.Len(t, genres, 1)
		assert.Equal(t, "Mockumentary", genres[0].Name)
	})

	t.Run("blank names are dropped", func(t *testing.T) {
		svc := NewGenreService(newFakeGenreRepo())

		genres, err := svc.GetOrCreateByNames(context.Background(), []string{"", "  ", "Drama"})
		require.NoError(t, err)
		require.Len(t, genres, 1)
		assert.Equal(t, "Drama", genres[0].Name)
	})

	t.Run("oversized name rejected", func(t *testing.T) {
		svc := NewGenreService(newFakeGenreRepo())

		_, err := svc.GetOrCreateByNames(context.Background(), []string{strings.Repeat("x", genre.MaxNameLength+1)})
		assert.ErrorIs(t, err, genre.ErrInvalidName)
	})
}

func TestSeedVocabulary(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewGenreService(repo)

	require.NoError(t, svc.SeedVocabulary(context.Background()))
	assert.Len(t, repo.byName, len(genre.Vocabulary()))
	assert.Contains(t, repo.byName, genre.FallbackName)

	// Seeding again is a no-op.
	require.NoError(t, svc.SeedVocabulary(context.Background()))
	assert.Len(t, repo.byName, len(genre.Vocabulary()))
}
