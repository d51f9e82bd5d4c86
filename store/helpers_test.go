package store_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"venue-webapp/clock"
	"venue-webapp/database"
	"venue-webapp/store"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type services struct {
	kv         *database.MemoryKV
	clock      clock.Clock
	shows      *store.Shows
	users      *store.Users
	newsletter *store.Newsletter
	photos     *store.Photos
	shop       *store.Shop
	subs       *store.Submissions
}

func newServices(t *testing.T) services {
	t.Helper()

	kv := database.NewMemoryKV()
	clk := clock.NewFixed(testNow)
	log := zerolog.Nop()
	shows := store.NewShows(store.NewKVShowRepository(kv, log), clk)

	return services{
		kv:         kv,
		clock:      clk,
		shows:      shows,
		users:      store.NewUsers(kv, shows, clk, log),
		newsletter: store.NewNewsletter(kv, clk, log),
		photos:     store.NewPhotos(kv, shows, clk, log),
		shop:       store.NewShop(kv, log),
		subs:       store.NewSubmissions(kv, clk, log),
	}
}

func strPtr(s string) *string {
	return &s
}
