package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

// NewDocumentStorage opens the back end named by cfg.Storage.Driver. The
// returned func releases its connections.
func NewDocumentStorage(cfg config.Config, log logger.Logger) (service.DocumentStorage, func(), error) {
	noop := func() {}
	log.Info("Opening document storage", zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.StorageFile, "":
		s, err := NewFileDocumentStorage(cfg.Storage.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case config.StorageMemory:
		return NewMemoryDocumentStorage(), noop, nil
	case config.StorageRedis:
		rdb, err := NewRedisClient(cfg, log)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisDocumentStorage(rdb), func() { rdb.Close() }, nil
	case config.StoragePostgres:
		pool, err := NewPostgresPool(cfg, log)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgresDocumentRepo(pool, log), pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
