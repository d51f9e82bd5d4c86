package database

import (
	"context"
	"fmt"

	"venue-webapp/config"
)

// KeyValue is the string key-value store every collection is persisted in.
// Values are opaque strings; collections store JSON documents.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the key-value backend selected by the configuration.
func Open(ctx context.Context, cfg config.Config) (KeyValue, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return NewMemoryKV(), nil
	case config.StorageFile:
		return NewFileKV(cfg.FilePath)
	case config.StorageSQLite:
		return NewSQLiteKV(ctx, cfg.SQLitePath)
	case config.StorageRedis:
		return NewRedisKV(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}
