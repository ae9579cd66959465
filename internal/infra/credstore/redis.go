package credstore

import (
	"context"
	"errors"
	"log/slog"

	"booking-console/internal/infra"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps each credential under "<prefix><profile>:<key>".
type RedisStore struct {
	client    *redis.Client
	namespace string
	logger    *slog.Logger
}

func NewRedisStore(ctx context.Context, client *redis.Client, prefix, profile string, logger *slog.Logger) (*RedisStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, infra.WrapStoreErr(logger, infra.KindConnection, "ping redis", err)
	}
	return &RedisStore{client: client, namespace: prefix + profile + ":", logger: logger}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if err := validateKey(s.logger, key); err != nil {
		return "", err
	}

	value, err := s.client.Get(ctx, s.namespace+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", infra.WrapStoreErr(s.logger, infra.KindQuery, "get credential", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := validateKey(s.logger, key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.namespace+key, value, 0).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "set credential", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.namespace+key).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "delete credential", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.namespace+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "scan credentials", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindQuery, "clear credentials", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
