package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-catalog-backend/internal/domains/genre"
	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/pkg/database"
)

// postgresRepository implements movie.Repository using pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) movie.Repository {
	return &postgresRepository{pool: pool}
}

const movieColumns = `id, title, description, budget, duration, release_date,
    poster_key, backdrop_key, adult, imdb_key, revenue, status, tagline,
    trailer_key, director, created_at, updated_at`

func scanMovie(row pgx.Row) (*movie.Movie, error) {
	var m movie.Movie
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.Budget,
		&m.Duration,
		&m.ReleaseDate,
		&m.PosterKey,
		&m.BackdropKey,
		&m.Adult,
		&m.IMDBKey,
		&m.Revenue,
		&m.Status,
		&m.Tagline,
		&m.TrailerKey,
		&m.Director,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) Create(ctx context.Context, m *movie.Movie) (*movie.Movie, error) {
	query := `
        INSERT INTO movie (
            title, description, budget, duration, release_date,
            poster_key, backdrop_key, adult, imdb_key, revenue,
            status, tagline, trailer_key, director
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + movieColumns

	created, err := scanMovie(r.pool.QueryRow(
		ctx,
		query,
		m.Title,
		m.Description,
		m.Budget,
		m.Duration,
		m.ReleaseDate,
		m.PosterKey,
		m.BackdropKey,
		m.Adult,
		m.IMDBKey,
		m.Revenue,
		m.Status,
		m.Tagline,
		m.TrailerKey,
		m.Director,
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique_violation on (title, release_date)
			return nil, movie.ErrDuplicateMovie
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*movie.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie WHERE id = $1`

	m, err := scanMovie(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, movie.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}

	return m, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, search string) ([]movie.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movie`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY release_date DESC NULLS LAST, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

func (r *postgresRepository) Update(ctx context.Context, m *movie.Movie) (*movie.Movie, error) {
	query := `
        UPDATE movie
        SET
            title = $1,
            description = $2,
            budget = $3,
            duration = $4,
            release_date = $5,
            poster_key = $6,
            backdrop_key = $7,
            adult = $8,
            imdb_key = $9,
            revenue = $10,
            status = $11,
            tagline = $12,
            trailer_key = $13,
            director = $14,
            updated_at = NOW()
        WHERE id = $15
        RETURNING ` + movieColumns

	updated, err := scanMovie(r.pool.QueryRow(
		ctx,
		query,
		m.Title,
		m.Description,
		m.Budget,
		m.Duration,
		m.ReleaseDate,
		m.PosterKey,
		m.BackdropKey,
		m.Adult,
		m.IMDBKey,
		m.Revenue,
		m.Status,
		m.Tagline,
		m.TrailerKey,
		m.Director,
		m.ID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, movie.ErrMovieNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, movie.ErrDuplicateMovie
		}
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM movie WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return movie.ErrMovieNotFound
	}

	return nil
}

// AttachActors links actors inside one transaction so a batch attaches
// completely or not at all. ON CONFLICT DO NOTHING makes re-attachment a
// no-op.
func (r *postgresRepository) AttachActors(ctx context.Context, movieID int64, actorIDs []int64) error {
	if len(actorIDs) == 0 {
		return nil
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
            INSERT INTO movie_actor (movie_id, actor_id)
            VALUES ($1, $2)
            ON CONFLICT (movie_id, actor_id) DO NOTHING
        `
		for _, actorID := range actorIDs {
			if _, err := tx.Exec(ctx, query, movieID, actorID); err != nil {
				return fmt.Errorf("failed to attach actor %d: %w", actorID, err)
			}
		}
		return nil
	})
}

func (r *postgresRepository) AttachGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
            INSERT INTO movie_genre (movie_id, genre_id)
            VALUES ($1, $2)
            ON CONFLICT (movie_id, genre_id) DO NOTHING
        `
		for _, genreID := range genreIDs {
			if _, err := tx.Exec(ctx, query, movieID, genreID); err != nil {
				return fmt.Errorf("failed to attach genre %d: %w", genreID, err)
			}
		}
		return nil
	})
}

func (r *postgresRepository) ListGenres(ctx context.Context, movieID int64) ([]genre.Genre, error) {
	query := `
        SELECT g.id, g.name, g.created_at
        FROM genre g
        JOIN movie_genre mg ON mg.genre_id = g.id
        WHERE mg.movie_id = $1
        ORDER BY mg.id
    `

	rows, err := r.pool.Query(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie genres: %w", err)
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

func (r *postgresRepository) ListByActor(ctx context.Context, actorID int64) ([]movie.Movie, error) {
	query := `
        SELECT m.id, m.title, m.description, m.budget, m.duration, m.release_date,
               m.poster_key, m.backdrop_key, m.adult, m.imdb_key, m.revenue,
               m.status, m.tagline, m.trailer_key, m.director, m.created_at, m.updated_at
        FROM movie m
        JOIN movie_actor ma ON ma.movie_id = m.id
        WHERE ma.actor_id = $1
        ORDER BY m.release_date DESC NULLS LAST, m.title
    `

	rows, err := r.pool.Query(ctx, query, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies for actor: %w", err)
	}
	defer rows.Close()

	return collectMovies(rows)
}

func collectMovies(rows pgx.Rows) ([]movie.Movie, error) {
	var movies []movie.Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}

	return movies, nil
}
