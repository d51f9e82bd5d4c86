package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"venue-webapp/database"
)

// Collection is a JSON array of T kept under a single key. Every change
// reads the whole array, modifies it in memory and writes it back.
// Writers in the same process are serialised; separate processes sharing a
// backend still overwrite each other.
type Collection[T any] struct {
	kv   database.KeyValue
	key  string
	seed func() []T
	log  zerolog.Logger
	mu   sync.Mutex
}

func NewCollection[T any](kv database.KeyValue, key string, seed func() []T, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		kv:   kv,
		key:  key,
		seed: seed,
		log:  log.With().Str("collection", key).Logger(),
	}
}

// Load returns the stored items. A missing key is initialised from the seed.
// An unreadable payload is logged and the seed is served without being
// written back.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err == errCorrupt {
		return c.seeded(), nil
	}
	return items, err
}

// Update applies fn to the stored items and persists the result. Nothing is
// written when fn returns an error.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err == errCorrupt {
		return fmt.Errorf("refusing to overwrite unreadable %s", c.key)
	}
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}
	return c.save(ctx, updated)
}

var (
	errCorrupt  = errors.New("corrupt collection")
	errNoChange = errors.New("no change")
)

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}

	if !ok {
		items := c.seeded()
		if len(items) > 0 {
			if err := c.save(ctx, items); err != nil {
				return nil, err
			}
			c.log.Info().Int("items", len(items)).Msg("collection seeded")
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.log.Error().Err(err).Msg("cannot decode collection")
		return nil, errCorrupt
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) seeded() []T {
	if c.seed == nil {
		return []T{}
	}
	items := c.seed()
	if items == nil {
		return []T{}
	}
	return items
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}
