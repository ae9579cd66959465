package credstore

import (
	"context"
	"log/slog"
	"strings"

	"booking-console/internal/infra"
	"booking-console/internal/infra/db"
	"booking-console/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// Store is a durable string map. A missing key reads as "".
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry of the profile.
	Clear(ctx context.Context) error
	Close() error
}

// New opens the store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.SQLitePath, cfg.Profile, logger)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(ctx, client, cfg.RedisPrefix, cfg.Profile, logger)
	default:
		pool, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, infra.WrapStoreErr(logger, infra.KindConnection, "connect postgres", err)
		}
		return NewPostgresStore(ctx, pool, cfg.Profile, logger)
	}
}

func validateKey(logger *slog.Logger, key string) error {
	if strings.TrimSpace(key) == "" {
		return infra.WrapStoreErr(logger, infra.KindInvalidKey, "empty key", nil)
	}
	return nil
}
