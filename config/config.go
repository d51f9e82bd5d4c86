package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"

	ShowsBackendKV    = "kv"
	ShowsBackendMongo = "mongo"
)

type Config struct {
	Addr string `env:"VENUE_ADDR" envDefault:":8080"`
	Sign string `env:"VENUE_SIGN"`

	Storage     string `env:"VENUE_STORAGE" envDefault:"file"`
	FilePath    string `env:"VENUE_FILE_PATH" envDefault:"./database/venue.json"`
	SQLitePath  string `env:"VENUE_SQLITE_PATH" envDefault:"./database/venue.db"`
	RedisAddr   string `env:"VENUE_REDIS_ADDR"`
	RedisPrefix string `env:"VENUE_REDIS_PREFIX" envDefault:"venue:"`

	ShowsBackend  string `env:"VENUE_SHOWS_BACKEND" envDefault:"kv"`
	MongoURI      string `env:"VENUE_MONGODB_URI"`
	MongoDatabase string `env:"VENUE_MONGODB_DATABASE" envDefault:"venue-service"`

	MediaDir string `env:"VENUE_MEDIA_DIR" envDefault:"./media"`

	AdminEmail    string `env:"VENUE_ADMIN_EMAIL"`
	AdminPassword string `env:"VENUE_ADMIN_PASSWORD"`

	LogLevel  string `env:"VENUE_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"VENUE_LOG_PRETTY" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageFile, StorageSQLite:
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("VENUE_REDIS_ADDR is required for %q storage", c.Storage)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage)
	}

	switch c.ShowsBackend {
	case ShowsBackendKV:
	case ShowsBackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("VENUE_MONGODB_URI is required for %q shows backend", c.ShowsBackend)
		}
	default:
		return fmt.Errorf("unknown shows backend %q", c.ShowsBackend)
	}

	return nil
}
