package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/tmdb"
)

// fakeTMDB serves canned person records keyed by id.
type fakeTMDB struct {
	tmdb.API
	persons    map[int64]*tmdb.Person
	personErr  error
	fetchCalls []int64
}

func (f *fakeTMDB) FetchPerson(ctx context.Context, personID int64) (*tmdb.Person, error) {
	f.fetchCalls = append(f.fetchCalls, personID)
	if f.personErr != nil {
		return nil, f.personErr
	}
	p, ok := f.persons[personID]
	if !ok {
		return nil, tmdb.ErrNotFound
	}
	return p, nil
}

// fakeActorRepo stores actors in memory and enforces the identity pair.
type fakeActorRepo struct {
	actor.Repository
	nextID    int64
	byID      map[int64]actor.Actor
	createErr error
}

func newFakeActorRepo() *fakeActorRepo {
	return &fakeActorRepo{byID: make(map[int64]actor.Actor)}
}

func (f *fakeActorRepo) identityTaken(name string, dob *time.Time) bool {
	for _, a := range f.byID {
		if a.Name == name && a.DateOfBirth != nil && dob != nil && a.DateOfBirth.Equal(*dob) {
			return true
		}
	}
	return false
}

func (f *fakeActorRepo) Create(ctx context.Context, a *actor.Actor) (*actor.Actor, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.identityTaken(a.Name, a.DateOfBirth) {
		return nil, actor.ErrDuplicateActor
	}
	f.nextID++
	stored := *a
	stored.ID = f.nextID
	f.byID[stored.ID] = stored
	return &stored, nil
}

func (f *fakeActorRepo) GetByIdentity(ctx context.Context, name string, dob *time.Time) (*actor.Actor, error) {
	for _, a := range f.byID {
		if a.Name == name && a.DateOfBirth != nil && dob != nil && a.DateOfBirth.Equal(*dob) {
			found := a
			return &found, nil
		}
	}
	return nil, actor.ErrActorNotFound
}

func (f *fakeActorRepo) GetByID(ctx context.Context, id int64) (*actor.Actor, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, actor.ErrActorNotFound
	}
	return &a, nil
}

func strPtr(s string) *string { return &s }

func testPerson(name, birthday string) *tmdb.Person {
	return &tmdb.Person{
		Name:         name,
		Biography:    "Description",
		PlaceOfBirth: strPtr("Haverfordwest, Pembrokeshire, Wales, UK"),
		Birthday:     strPtr(birthday),
		IMDBID:       strPtr("nm0000288"),
		ProfilePath:  strPtr("/qCpZn2e3dimwbryLnqxZuI88PTi.jpg"),
	}
}

func TestCreateFromTMDB(t *testing.T) {
	t.Run("creates actor from person record", func(t *testing.T) {
		provider := &fakeTMDB{persons: map[int64]*tmdb.Person{
			42: testPerson("Christian Bale", "1974-01-30"),
		}}
		repo := newFakeActorRepo()
		svc := NewActorService(repo, provider)

		created, err := svc.CreateFromTMDB(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "Christian Bale", created.Name)
		require.NotNil(t, created.DateOfBirth)
		assert.Equal(t, "1974-01-30", created.DateOfBirth.Format("2006-01-02"))
		assert.Equal(t, "nm0000288", created.IMDBKey)
	})

	t.Run("unknown person id maps to ErrActorNotFound", func(t *testing.T) {
		provider := &fakeTMDB{persons: map[int64]*tmdb.Person{}}
		svc := NewActorService(newFakeActorRepo(), provider)

		_, err := svc.CreateFromTMDB(context.Background(), 999)
		assert.ErrorIs(t, err, actor.ErrActorNotFound)
	})

	t.Run("missing birthday rejected", func(t *testing.T) {
		person := testPerson("Christian Bale", "")
		person.Birthday = nil
		provider := &fakeTMDB{persons: map[int64]*tmdb.Person{42: person}}
		svc := NewActorService(newFakeActorRepo(), provider)

		_, err := svc.CreateFromTMDB(context.Background(), 42)
		assert.ErrorIs(t, err, actor.ErrMissingBirthDate)
	})

	t.Run("duplicate identity surfaces as conflict", func(t *testing.T) {
		provider := &fakeTMDB{persons: map[int64]*tmdb.Person{
			42: testPerson("Christian Bale", "1974-01-30"),
		}}
		repo := newFakeActorRepo()
		svc := NewActorService(repo, provider)

		_, err := svc.CreateFromTMDB(context.Background(), 42)
		require.NoError(t, err)

		_, err = svc.CreateFromTMDB(context.Background(), 42)
		assert.ErrorIs(t, err, actor.ErrDuplicateActor)
	})
}

func TestResolveCast(t *testing.T) {
	persons := func(n int) map[int64]*tmdb.Person {
		m := make(map[int64]*tmdb.Person, n)
		for i := 1; i <= n; i++ {
			m[int64(i)] = testPerson(fmt.Sprintf("Actor %d", i), "1974-01-30")
		}
		return m
	}

	t.Run("resolves in provider order", func(t *testing.T) {
		provider := &fakeTMDB{persons: persons(3)}
		svc := NewActorService(newFakeActorRepo(), provider)

		resolved, err := svc.ResolveCast(context.Background(), []int64{1, 2, 3})
		require.NoError(t, err)
		require.Len(t, resolved, 3)
		assert.Equal(t, "Actor 1", resolved[0].Name)
		assert.Equal(t, "Actor 3", resolved[2].Name)
	})

	t.Run("caps the cast at the resolve limit", func(t *testing.T) {
		provider := &fakeTMDB{persons: persons(8)}
		svc := NewActorService(newFakeActorRepo(), provider)

		resolved, err := svc.ResolveCast(context.Background(), []int64{1, 2, 3, 4, 5, 6, 7, 8})
		require.NoError(t, err)
		assert.Len(t, resolved, actor.CastResolveLimit)
		// Nothing beyond the cap is even fetched.
		assert.Len(t, provider.fetchCalls, actor.CastResolveLimit)
	})

	t.Run("skips unknown persons and keeps going", func(t *testing.T) {
		p := persons(3)
		delete(p, 2)
		provider := &fakeTMDB{persons: p}
		svc := NewActorService(newFakeActorRepo(), provider)

		resolved, err := svc.ResolveCast(context.Background(), []int64{1, 2, 3})
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		assert.Equal(t, "Actor 1", resolved[0].Name)
		assert.Equal(t, "Actor 3", resolved[1].Name)
	})

	t.Run("skips persons without a usable birthday", func(t *testing.T) {
		p := persons(2)
		p[2].Birthday = nil
		provider := &fakeTMDB{persons: p}
		svc := NewActorService(newFakeActorRepo(), provider)

		resolved, err := svc.ResolveCast(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, "Actor 1", resolved[0].Name)
	})

	t.Run("reuses the existing row on identity conflict", func(t *testing.T) {
		provider := &fakeTMDB{persons: persons(2)}
		repo := newFakeActorRepo()
		svc := NewActorService(repo, provider)

		first, err := svc.ResolveCast(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, first, 2)

		again, err := svc.ResolveCast(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, again, 2)

		// Same rows, no duplicates created.
		assert.Equal(t, first[0].ID, again[0].ID)
		assert.Equal(t, first[1].ID, again[1].ID)
		assert.Len(t, repo.byID, 2)
	})

	t.Run("provider outage returns partial result with error", func(t *testing.T) {
		provider := &fakeTMDB{persons: persons(3)}
		svc := NewActorService(newFakeActorRepo(), provider)

		resolved, err := svc.ResolveCast(context.Background(), []int64{1})
		require.NoError(t, err)
		require.Len(t, resolved, 1)

		provider.personErr = tmdb.ErrUnavailable
		resolved, err = svc.ResolveCast(context.Background(), []int64{2, 3})
		assert.ErrorIs(t, err, tmdb.ErrUnavailable)
		assert.Empty(t, resolved)
	})

	t.Run("storage failure returns actors resolved so far", func(t *testing.T) {
		provider := &fakeTMDB{persons: persons(3)}
		repo := newFakeActorRepo()
		svc := NewActorService(repo, provider)

		resolved, err := svc.ResolveCast(context.Background(), []int64{1})
		require.NoError(t, err)
		require.Len(t, resolved, 1)

		repo.createErr = errors.New("connection reset")
		resolved, err = svc.ResolveCast(context.Background(), []int64{2, 3})
		require.Error(t, err)
		assert.Empty(t, resolved)
	})
}
