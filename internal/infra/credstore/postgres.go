package credstore

import (
	"context"
	"errors"
	"log/slog"

	"booking-console/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS console_credentials (
	profile    TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (profile, key)
)`

// PostgresStore shares one credentials table between console profiles.
type PostgresStore struct {
	pool    *pgxpool.Pool
	profile string
	logger  *slog.Logger
}

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, profile string, logger *slog.Logger) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, infra.WrapStoreErr(logger, infra.KindQuery, "create console_credentials table", err)
	}
	return &PostgresStore{pool: pool, profile: profile, logger: logger}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	if err := validateKey(s.logger, key); err != nil {
		return "", err
	}

	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM console_credentials WHERE profile = $1 AND key = $2`, s.profile, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", infra.WrapStoreErr(s.logger, infra.KindQuery, "get credential", err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	if err := validateKey(s.logger, key); err != nil {
		return err
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO console_credentials (profile, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (profile, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		s.profile, key, value,
	)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "set credential", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM console_credentials WHERE profile = $1 AND key = $2`, s.profile, key)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "delete credential", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM console_credentials WHERE profile = $1`, s.profile)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "clear credentials", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
