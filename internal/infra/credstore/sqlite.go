package credstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"booking-console/internal/infra"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS credentials (
	profile    TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (profile, key)
)`

// SQLiteStore persists credentials in a local database file, one row per key.
type SQLiteStore struct {
	db      *sql.DB
	profile string
	logger  *slog.Logger
}

func NewSQLiteStore(ctx context.Context, path, profile string, logger *slog.Logger) (*SQLiteStore, error) {
	if path == "" {
		path = "booking-console.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindConnection, "open sqlite", err)
	}
	// A single connection serialises writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, infra.WrapStoreErr(logger, infra.KindQuery, "create credentials table", err)
	}

	return &SQLiteStore{db: db, profile: profile, logger: logger}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	if err := validateKey(s.logger, key); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE profile = ? AND key = ?`, s.profile, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", infra.WrapStoreErr(s.logger, infra.KindQuery, "get credential", err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	if err := validateKey(s.logger, key); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (profile, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (profile, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.profile, key, value,
	)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "set credential", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE profile = ? AND key = ?`, s.profile, key)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "delete credential", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE profile = ?`, s.profile)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "clear credentials", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
