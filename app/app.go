// Package app assembles the venue service from its configuration.
package app

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"venue-webapp/clock"
	"venue-webapp/config"
	"venue-webapp/database"
	"venue-webapp/events"
	"venue-webapp/handlers"
	"venue-webapp/logger"
	"venue-webapp/media"
	"venue-webapp/router"
	"venue-webapp/seed"
	"venue-webapp/store"
)

// BodyLimit leaves room for multipart overhead on a maximal image upload.
const BodyLimit = media.MaxUploadSize + 1<<20

type App struct {
	cfg     config.Config
	log     zerolog.Logger
	server  *fiber.App
	router  *message.Router
	handler *handlers.Handler
	closers []func() error
}

type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock replaces the system clock, for tests.
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		o.clock = clk
	}
}

// New opens the configured backends and wires every service, handler and
// event subscription. Close releases the backends.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger, opts ...Option) (*App, error) {
	o := options{clock: clock.NewSystem()}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.Sign == "" {
		return nil, fmt.Errorf("VENUE_SIGN must be set to sign session tokens")
	}

	a := &App{cfg: cfg, log: log}
	if err := a.wire(ctx, o); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, o options) error {
	kv, err := database.Open(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("cannot open %v storage: %w", a.cfg.Storage, err)
	}
	a.closers = append(a.closers, kv.Close)

	var (
		showRepo store.ShowRepository = store.NewKVShowRepository(kv, a.log)
		images   media.Storage
	)
	if a.cfg.ShowsBackend == config.ShowsBackendMongo {
		client, err := database.ConnectMongo(ctx, a.cfg.MongoURI)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() error {
			return client.Disconnect(context.Background())
		})

		db := client.Database(a.cfg.MongoDatabase)
		showRepo = store.NewMongoShowRepository(db, a.log)
		if images, err = media.NewGridFSStorage(db); err != nil {
			return err
		}
	} else if images, err = media.NewDirStorage(a.cfg.MediaDir); err != nil {
		return err
	}

	shows := store.NewShows(showRepo, o.clock)
	users := store.NewUsers(kv, shows, o.clock, a.log)
	newsletter := store.NewNewsletter(kv, o.clock, a.log)

	if a.cfg.AdminEmail != "" {
		admin, err := users.EnsureAdmin(ctx, a.cfg.AdminEmail, a.cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("cannot ensure admin account: %w", err)
		}
		a.log.Info().Str("email", admin.Email).Msg("admin account ready")
	}

	wmLogger := logger.NewWatermillAdapter(a.log)
	publisher, subscriber, err := a.pubSub(ctx, kv, wmLogger)
	if err != nil {
		return err
	}
	if a.router, err = events.NewRouter(wmLogger); err != nil {
		return err
	}
	events.NewHandlers(shows, users, newsletter, a.log).Register(a.router, subscriber)

	a.handler = &handlers.Handler{
		Venue:       seed.Venue(),
		Shows:       shows,
		Users:       users,
		Newsletter:  newsletter,
		Submissions: store.NewSubmissions(kv, o.clock, a.log),
		Photos:      store.NewPhotos(kv, shows, o.clock, a.log),
		Shop:        store.NewShop(kv, a.log),
		Media:       images,
		Bus:         events.NewBus(publisher),
		Clock:       o.clock,
		SigningKey:  a.cfg.Sign,
		Log:         a.log,
	}

	a.server = fiber.New(fiber.Config{
		BodyLimit:             BodyLimit,
		DisableStartupMessage: true,
	})
	router.SetupRoutes(a.server, a.handler)
	return nil
}

// pubSub uses Redis streams when Redis is configured and an in-process
// channel otherwise.
func (a *App) pubSub(ctx context.Context, kv database.KeyValue, wmLogger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error) {
	if a.cfg.RedisAddr == "" {
		ch := events.NewGoChannel(wmLogger)
		a.closers = append(a.closers, ch.Close)
		return ch, ch, nil
	}

	var client *redis.Client
	if redisKV, ok := kv.(*database.RedisKV); ok {
		client = redisKV.Client()
	} else {
		var err error
		if client, err = database.NewRedisClient(ctx, a.cfg.RedisAddr); err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, client.Close)
	}

	publisher, subscriber, err := events.NewRedisStream(client, wmLogger)
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, publisher.Close, subscriber.Close)
	return publisher, subscriber, nil
}

// Fiber exposes the HTTP application, mostly for app.Test in tests.
func (a *App) Fiber() *fiber.App {
	return a.server
}

// Running is closed once the event router is processing messages.
func (a *App) Running() <-chan struct{} {
	return a.router.Running()
}

// Run serves HTTP and processes events until ctx is cancelled or either of
// them fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info().Msg("starting event router")
		return a.router.Run(ctx)
	})

	g.Go(func() error {
		select {
		case <-a.Running():
		case <-ctx.Done():
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		a.log.Info().Str("addr", a.cfg.Addr).Msg("starting server")
		return a.server.Listen(a.cfg.Addr)
	})

	g.Go(func() error {
		<-ctx.Done()

		if err := a.server.Shutdown(); err != nil {
			a.log.Err(err).Msg("error stopping server")
			return err
		}
		return nil
	})

	return g.Wait()
}

// Close releases backends in reverse order of opening.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
