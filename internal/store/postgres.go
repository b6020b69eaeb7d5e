package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS survey_activity (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			kind       TEXT NOT NULL,
			model_id   TEXT NOT NULL,
			model_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS survey_activity_created_at_idx ON survey_activity (created_at DESC);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Record(ctx context.Context, a *Activity) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO survey_activity (kind, model_id, model_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		string(a.Kind), a.ModelID, a.ModelName,
	).Scan(&a.ID, &a.CreatedAt)
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]*Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, kind, model_id, model_name, created_at
		FROM survey_activity
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Activity
	for rows.Next() {
		a := &Activity{}
		var kind string
		if err := rows.Scan(&a.ID, &kind, &a.ModelID, &a.ModelName, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Kind = ActivityKind(kind)
		out = append(out, a)
	}
	return out, rows.Err()
}
