package kv

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by the kv_entries table.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, profile, key string) ([]byte, error) {
	const q = `
SELECT value
FROM kv_entries
WHERE profile = $1 AND key = $2
`
	var value []byte
	if err := r.pool.QueryRow(ctx, q, profile, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (r *postgresRepo) Set(ctx context.Context, profile, key string, value []byte) error {
	const q = `
INSERT INTO kv_entries (profile, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (profile, key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, profile, key, value)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, profile, key string) error {
	const q = `
DELETE FROM kv_entries
WHERE profile = $1 AND key = $2
`
	_, err := r.pool.Exec(ctx, q, profile, key)
	return err
}
