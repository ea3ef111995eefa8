package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-catalog-backend/internal/domains/genre"
)

// postgresRepository implements genre.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

// GetOrCreateByName inserts the name if missing and returns the row either
// way. ON CONFLICT DO NOTHING returns no row when the name already exists,
// so a plain select follows; the pair is race-safe against the unique(name)
// constraint.
func (r *postgresRepository) GetOrCreateByName(ctx context.Context, name string) (*genre.Genre, error) {
	insert := `
        INSERT INTO genre (name)
        VALUES ($1)
        ON CONFLICT (name) DO NOTHING
        RETURNING id, name, created_at
    `

	var g genre.Genre
	err := r.pool.QueryRow(ctx, insert, name).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err == nil {
		return &g, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to insert genre: %w", err)
	}

	// Conflict path: the row already exists, fetch it.
	return r.GetByName(ctx, name)
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	query := `SELECT id, name, created_at FROM genre WHERE name = $1`

	var g genre.Genre
	err := r.pool.QueryRow(ctx, query, name).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}

	return &g, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]genre.Genre, error) {
	query := `SELECT id, name, created_at FROM genre ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []genre.Genre
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func (r *postgresRepository) Seed(ctx context.Context, names []string) error {
	query := `INSERT INTO genre (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`

	for _, name := range names {
		if _, err := r.pool.Exec(ctx, query, name); err != nil {
			return fmt.Errorf("failed to seed genre %q: %w", name, err)
		}
	}
	return nil
}
