package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"venue-webapp/clock"
	"venue-webapp/config"
	"venue-webapp/database"
	"venue-webapp/store"
)

// SeededKeys are the collections that start from sample data.
var SeededKeys = []string{store.ShowsKey, store.UsersKey, store.PhotosKey}

// Seed writes the sample shows, users and photos into the configured
// key-value store. Existing data is kept unless reset is set.
func Seed(ctx context.Context, cfg config.Config, reset bool, log zerolog.Logger) error {
	kv, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("cannot open %v storage: %w", cfg.Storage, err)
	}
	defer kv.Close()

	return SeedKV(ctx, kv, clock.NewSystem(), reset, log)
}

func SeedKV(ctx context.Context, kv database.KeyValue, clk clock.Clock, reset bool, log zerolog.Logger) error {
	if reset {
		for _, key := range SeededKeys {
			if err := kv.Delete(ctx, key); err != nil {
				return fmt.Errorf("cannot reset %v: %w", key, err)
			}
		}
	}

	// Loading a missing collection persists its sample data.
	shows := store.NewShows(store.NewKVShowRepository(kv, log), clk)
	listed, err := shows.List(ctx)
	if err != nil {
		return err
	}
	users := store.NewUsers(kv, shows, clk, log)
	if _, err := users.TicketsSold(ctx, ""); err != nil {
		return err
	}
	if _, err := store.NewPhotos(kv, shows, clk, log).Pending(ctx); err != nil {
		return err
	}

	log.Info().Int("shows", len(listed)).Bool("reset", reset).Msg("sample data written")
	return nil
}
