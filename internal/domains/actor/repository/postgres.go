package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"movie-catalog-backend/internal/domains/actor"
)

// postgresRepository implements actor.Repository using pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) actor.Repository {
	return &postgresRepository{pool: pool}
}

const actorColumns = `id, name, biography, place_of_birth, date_of_birth, imdb_key, poster_key, created_at, updated_at`

func scanActor(row pgx.Row) (*actor.Actor, error) {
	var a actor.Actor
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Biography,
		&a.PlaceOfBirth,
		&a.DateOfBirth,
		&a.IMDBKey,
		&a.PosterKey,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *actor.Actor) (*actor.Actor, error) {
	query := `
        INSERT INTO actor (name, biography, place_of_birth, date_of_birth, imdb_key, poster_key)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + actorColumns

	created, err := scanActor(r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Biography,
		a.PlaceOfBirth,
		a.DateOfBirth,
		a.IMDBKey,
		a.PosterKey,
	))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// unique_violation on (name, date_of_birth)
			return nil, actor.ErrDuplicateActor
		}
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*actor.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actor WHERE id = $1`

	a, err := scanActor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor by id: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetByIdentity(ctx context.Context, name string, dateOfBirth *time.Time) (*actor.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actor WHERE name = $1 AND date_of_birth = $2`

	a, err := scanActor(r.pool.QueryRow(ctx, query, name, dateOfBirth))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor by identity: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]actor.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actor ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query actors: %w", err)
	}
	defer rows.Close()

	return collectActors(rows)
}

func (r *postgresRepository) Update(ctx context.Context, a *actor.Actor) (*actor.Actor, error) {
	query := `
        UPDATE actor
        SET
            name = $1,
            biography = $2,
            place_of_birth = $3,
            date_of_birth = $4,
            imdb_key = $5,
            poster_key = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING ` + actorColumns

	updated, err := scanActor(r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Biography,
		a.PlaceOfBirth,
		a.DateOfBirth,
		a.IMDBKey,
		a.PosterKey,
		a.ID,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, actor.ErrActorNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, actor.ErrDuplicateActor
		}
		return nil, fmt.Errorf("failed to update actor: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM actor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return actor.ErrActorNotFound
	}

	return nil
}

func (r *postgresRepository) ListByMovie(ctx context.Context, movieID int64) ([]actor.Actor, error) {
	query := `
        SELECT a.id, a.name, a.biography, a.place_of_birth, a.date_of_birth,
               a.imdb_key, a.poster_key, a.created_at, a.updated_at
        FROM actor a
        JOIN movie_actor ma ON ma.actor_id = a.id
        WHERE ma.movie_id = $1
        ORDER BY ma.id
    `

	rows, err := r.pool.Query(ctx, query, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movie actors: %w", err)
	}
	defer rows.Close()

	return collectActors(rows)
}

func collectActors(rows pgx.Rows) ([]actor.Actor, error) {
	var actors []actor.Actor
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan actor: %w", err)
		}
		actors = append(actors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating actors: %w", err)
	}

	return actors, nil
}
