package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

type redisDocumentStorage struct {
	rdb *redis.Client
}

// NewRedisDocumentStorage keeps the document as a plain string value.
func NewRedisDocumentStorage(rdb *redis.Client) service.DocumentStorage {
	return &redisDocumentStorage{rdb: rdb}
}

func (s *redisDocumentStorage) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrDocumentNotFound
		}
		return nil, apperror.NewInternal("failed to read document from redis", err)
	}
	return raw, nil
}

func (s *redisDocumentStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return apperror.NewInternal("failed to write document to redis", err)
	}
	return nil
}
