package service

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/tmdb"
	"movie-catalog-backend/pkg/logger"
)

type actorService struct {
	repo actor.Repository
	tmdb tmdb.API
}

func NewActorService(repo actor.Repository, tmdbClient tmdb.API) actor.Service {
	return &actorService{
		repo: repo,
		tmdb: tmdbClient,
	}
}

func (s *actorService) CreateFromTMDB(ctx context.Context, tmdbPersonID int64) (*actor.Actor, error) {
	person, err := s.tmdb.FetchPerson(ctx, tmdbPersonID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return nil, actor.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to fetch person %d: %w", tmdbPersonID, err)
	}

	a, err := actor.FromPerson(person)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("actor_id", created.ID).
		Int64("tmdb_person_id", tmdbPersonID).
		Str("name", created.Name).
		Msg("Actor created from metadata provider")

	return created, nil
}

func (s *actorService) GetByID(ctx context.Context, id int64) (*actor.Actor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *actorService) GetAll(ctx context.Context) ([]actor.Actor, error) {
	return s.repo.GetAll(ctx)
}

func (s *actorService) Update(ctx context.Context, id int64, req *actor.UpdateActorRequest) (*actor.Actor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyToEntity(existing); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, existing)
}

func (s *actorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("actor_id", id).Msg("Actor deleted")
	return nil
}

// ResolveCast resolves cast member ids in provider order, capped at
// CastResolveLimit. Per-person problems (unknown id, missing birthday)
// skip that person; systemic failures stop resolution and return what
// was gathered so far alongside the error.
func (s *actorService) ResolveCast(ctx context.Context, castIDs []int64) ([]actor.Actor, error) {
	if len(castIDs) > actor.CastResolveLimit {
		castIDs = castIDs[:actor.CastResolveLimit]
	}

	resolved := make([]actor.Actor, 0, len(castIDs))
	for _, personID := range castIDs {
		person, err := s.tmdb.FetchPerson(ctx, personID)
		if err != nil {
			if errors.Is(err, tmdb.ErrNotFound) {
				logger.Warn().
					Int64("tmdb_person_id", personID).
					Msg("Cast member not found at provider, skipping")
				continue
			}
			return resolved, fmt.Errorf("failed to fetch person %d: %w", personID, err)
		}

		candidate, err := actor.FromPerson(person)
		if err != nil {
			logger.Warn().
				Int64("tmdb_person_id", personID).
				Str("name", person.Name).
				Err(err).
				Msg("Skipping cast member with unusable person record")
			continue
		}

		a, err := s.repo.Create(ctx, candidate)
		if errors.Is(err, actor.ErrDuplicateActor) {
			// Identity pair exists, possibly created by a concurrent
			// request. Reuse the winning row.
			a, err = s.repo.GetByIdentity(ctx, candidate.Name, candidate.DateOfBirth)
		}
		if err != nil {
			return resolved, fmt.Errorf("failed to resolve cast member %d: %w", personID, err)
		}

		resolved = append(resolved, *a)
	}

	return resolved, nil
}

func (s *actorService) ListByMovie(ctx context.Context, movieID int64) ([]actor.Actor, error) {
	return s.repo.ListByMovie(ctx, movieID)
}
