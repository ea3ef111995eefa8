package service

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog-backend/internal/domains/genre"
)

// genreService implements genre.Service.
type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) GetOrCreateByNames(ctx context.Context, names []string) ([]genre.Genre, error) {
	genres := make([]genre.Genre, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if len(name) > genre.MaxNameLength {
			return nil, fmt.Errorf("%w: %q exceeds %d characters", genre.ErrInvalidName, name, genre.MaxNameLength)
		}

		g, err := s.repo.GetOrCreateByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve genre %q: %w", name, err)
		}
		genres = append(genres, *g)
	}

	return genres, nil
}

func (s *genreService) GetAll(ctx context.Context) ([]genre.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) SeedVocabulary(ctx context.Context) error {
	if err := s.repo.Seed(ctx, genre.Vocabulary()); err != nil {
		return fmt.Errorf("failed to seed genre vocabulary: %w", err)
	}
	return nil
}
