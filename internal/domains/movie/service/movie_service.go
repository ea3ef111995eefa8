package service

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog-backend/internal/domains/actor"
	"movie-catalog-backend/internal/domains/genre"
	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/tmdb"
	"movie-catalog-backend/pkg/logger"
)

type movieService struct {
	repo         movie.Repository
	actorService actor.Service
	genreService genre.Service
	tmdb         tmdb.API
}

func NewMovieService(
	repo movie.Repository,
	actorService actor.Service,
	genreService genre.Service,
	tmdbClient tmdb.API,
) movie.Service {
	return &movieService{
		repo:         repo,
		actorService: actorService,
		genreService: genreService,
		tmdb:         tmdbClient,
	}
}

// CreateFromTMDB assembles a movie from three provider payloads, persists
// it, then enriches it with genres and cast. The enrichment steps run
// after the insert and never undo it: a half-attached movie is still a
// valid movie.
func (s *movieService) CreateFromTMDB(ctx context.Context, tmdbMovieID int64) (*movie.MovieResponse, error) {
	details, err := s.tmdb.FetchMovie(ctx, tmdbMovieID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return nil, movie.ErrSourceMovieNotFound
		}
		return nil, fmt.Errorf("failed to fetch movie %d: %w", tmdbMovieID, err)
	}

	trailers, err := s.tmdb.FetchMovieTrailers(ctx, tmdbMovieID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trailers for movie %d: %w", tmdbMovieID, err)
	}

	credits, err := s.tmdb.FetchMovieCredits(ctx, tmdbMovieID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credits for movie %d: %w", tmdbMovieID, err)
	}

	director, err := credits.Director()
	if err != nil {
		return nil, movie.ErrDirectorNotFound
	}

	trailerKey, err := trailers.TrailerKey()
	if err != nil {
		return nil, err
	}

	entity, err := movie.FromDetails(details, director, trailerKey)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("movie_id", created.ID).
		Int64("tmdb_movie_id", tmdbMovieID).
		Str("title", created.Title).
		Msg("Movie created from metadata provider")

	genres := s.attachGenres(ctx, created.ID, details.GenreNames())
	actors := s.attachCast(ctx, created.ID, credits.CastIDs())

	return created.ToResponse(genres, actors), nil
}

// attachGenres resolves and links the reported genre names. Failures are
// logged, not returned; the movie row already exists and stands.
func (s *movieService) attachGenres(ctx context.Context, movieID int64, names []string) []genre.Genre {
	genres, err := s.genreService.GetOrCreateByNames(ctx, names)
	if err != nil {
		logger.Warn().Int64("movie_id", movieID).Err(err).Msg("Failed to resolve genres, movie kept without them")
		return nil
	}

	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}

	if err := s.repo.AttachGenres(ctx, movieID, ids); err != nil {
		logger.Warn().Int64("movie_id", movieID).Err(err).Msg("Failed to attach genres, movie kept without them")
		return nil
	}

	return genres
}

// attachCast resolves up to the cast limit of actors and links whatever
// resolved. Like attachGenres, errors are non-fatal: the partial set
// returned by the resolver still gets attached.
func (s *movieService) attachCast(ctx context.Context, movieID int64, castIDs []int64) []actor.Actor {
	actors, err := s.actorService.ResolveCast(ctx, castIDs)
	if err != nil {
		logger.Warn().Int64("movie_id", movieID).Err(err).Msg("Cast resolution incomplete, attaching resolved actors only")
	}

	if len(actors) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(actors))
	for _, a := range actors {
		ids = append(ids, a.ID)
	}

	if err := s.repo.AttachActors(ctx, movieID, ids); err != nil {
		logger.Warn().Int64("movie_id", movieID).Err(err).Msg("Failed to attach actors, movie kept without them")
		return nil
	}

	return actors
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*movie.MovieResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := s.repo.ListGenres(ctx, id)
	if err != nil {
		return nil, err
	}

	actors, err := s.actorService.ListByMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	return m.ToResponse(genres, actors), nil
}

func (s *movieService) GetAll(ctx context.Context, search string) ([]movie.Movie, error) {
	return s.repo.GetAll(ctx, search)
}

func (s *movieService) Update(ctx context.Context, id int64, req *movie.UpdateMovieRequest) (*movie.MovieResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyToEntity(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	genres, err := s.repo.ListGenres(ctx, id)
	if err != nil {
		return nil, err
	}

	actors, err := s.actorService.ListByMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	return updated.ToResponse(genres, actors), nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("movie_id", id).Msg("Movie deleted")
	return nil
}

func (s *movieService) SearchTMDB(ctx context.Context, query string) ([]*movie.SearchMovieResponse, error) {
	results, err := s.tmdb.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	return movie.SearchResponsesFrom(results), nil
}

func (s *movieService) AttachActor(ctx context.Context, movieID, actorID int64) error {
	if _, err := s.repo.GetByID(ctx, movieID); err != nil {
		return err
	}
	if _, err := s.actorService.GetByID(ctx, actorID); err != nil {
		return err
	}

	return s.repo.AttachActors(ctx, movieID, []int64{actorID})
}

func (s *movieService) AttachGenres(ctx context.Context, movieID int64, names []string) error {
	if _, err := s.repo.GetByID(ctx, movieID); err != nil {
		return err
	}

	genres, err := s.genreService.GetOrCreateByNames(ctx, names)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}

	return s.repo.AttachGenres(ctx, movieID, ids)
}

func (s *movieService) ListGenres(ctx context.Context, movieID int64) ([]genre.Genre, error) {
	if _, err := s.repo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}

	return s.repo.ListGenres(ctx, movieID)
}

func (s *movieService) ListActors(ctx context.Context, movieID int64) ([]actor.Actor, error) {
	if _, err := s.repo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}

	return s.actorService.ListByMovie(ctx, movieID)
}

func (s *movieService) EnrichGenresFromTMDB(ctx context.Context, movieID, tmdbMovieID int64) error {
	details, err := s.tmdb.FetchMovie(ctx, tmdbMovieID)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotFound) {
			return movie.ErrSourceMovieNotFound
		}
		return fmt.Errorf("failed to fetch movie %d: %w", tmdbMovieID, err)
	}

	return s.AttachGenres(ctx, movieID, details.GenreNames())
}

func (s *movieService) ListByActor(ctx context.Context, actorID int64) ([]movie.Movie, error) {
	if _, err := s.actorService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	return s.repo.ListByActor(ctx, actorID)
}
