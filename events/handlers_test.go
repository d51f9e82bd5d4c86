package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/clock"
	"venue-webapp/database"
	"venue-webapp/events"
	"venue-webapp/logger"
	"venue-webapp/model"
	"venue-webapp/store"
)

type fixture struct {
	shows      *store.Shows
	users      *store.Users
	newsletter *store.Newsletter
	handlers   *events.Handlers
}

func newFixture() fixture {
	kv := database.NewMemoryKV()
	clk := clock.NewFixed(time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC))
	log := zerolog.Nop()
	shows := store.NewShows(store.NewKVShowRepository(kv, log), clk)
	users := store.NewUsers(kv, shows, clk, log)
	newsletter := store.NewNewsletter(kv, clk, log)

	return fixture{
		shows:      shows,
		users:      users,
		newsletter: newsletter,
		handlers:   events.NewHandlers(shows, users, newsletter, log),
	}
}

func (f fixture) limitCapacity(t *testing.T, showID string, capacity int) {
	t.Helper()
	_, err := f.shows.Update(context.Background(), showID, model.ShowPatch{Capacity: &capacity})
	require.NoError(t, err)
}

func TestAnnounceShow(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.newsletter.Subscribe(ctx, model.NewsletterSubscriber{
		Email:       "jazz@example.com",
		Preferences: model.Preferences{Genres: []string{"Jazz"}},
	})
	require.NoError(t, err)

	msg := message.NewMessage(watermill.NewUUID(), []byte(`{"show":{"id":"99","title":"Blue Note","genre":"Jazz"}}`))
	require.NoError(t, f.handlers.AnnounceShow(msg))

	announcements, err := f.newsletter.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, "99", announcements[0].ShowId)
	assert.Equal(t, []string{"jazz@example.com"}, announcements[0].Recipients)
}

func TestMalformedEventsAreSkipped(t *testing.T) {
	f := newFixture()
	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))

	assert.NoError(t, f.handlers.AnnounceShow(msg))
	assert.NoError(t, f.handlers.MarkSoldOut(msg))
}

func TestMarkSoldOut(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.limitCapacity(t, "5", 4)

	purchase := func(quantity int) *message.Message {
		ticket, err := f.users.PurchaseTickets(ctx, "demo-user-1", "5", quantity)
		require.NoError(t, err)
		payload := []byte(`{"userId":"demo-user-1","showId":"5","ticketId":"` + ticket.Id + `","quantity":1}`)
		return message.NewMessage(watermill.NewUUID(), payload)
	}

	require.NoError(t, f.handlers.MarkSoldOut(purchase(3)))
	show, err := f.shows.Get(ctx, "5")
	require.NoError(t, err)
	assert.False(t, show.SoldOut)

	require.NoError(t, f.handlers.MarkSoldOut(purchase(1)))
	show, err = f.shows.Get(ctx, "5")
	require.NoError(t, err)
	assert.True(t, show.SoldOut)
}

func TestMarkSoldOutIgnoresUnlimitedAndDeletedShows(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.limitCapacity(t, "6", 0)

	_, err := f.users.PurchaseTickets(ctx, "demo-user-1", "6", 10)
	require.NoError(t, err)
	require.NoError(t, f.handlers.MarkSoldOut(message.NewMessage(watermill.NewUUID(), []byte(`{"showId":"6"}`))))

	show, err := f.shows.Get(ctx, "6")
	require.NoError(t, err)
	assert.False(t, show.SoldOut)

	assert.NoError(t, f.handlers.MarkSoldOut(message.NewMessage(watermill.NewUUID(), []byte(`{"showId":"gone"}`))))
}

func TestRouterDeliversPublishedEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f := newFixture()
	f.limitCapacity(t, "7", 2)

	wmLogger := logger.NewWatermillAdapter(zerolog.Nop())
	pubSub := events.NewGoChannel(wmLogger)
	defer pubSub.Close()

	router, err := events.NewRouter(wmLogger)
	require.NoError(t, err)
	f.handlers.Register(router, pubSub)
	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()

	bus := events.NewBus(pubSub)
	ticket, err := f.users.PurchaseTickets(ctx, "demo-user-1", "7", 2)
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, events.TopicTicketPurchased, events.TicketPurchased{
		UserId:   "demo-user-1",
		ShowId:   "7",
		TicketId: ticket.Id,
		Quantity: 2,
	}))
	require.NoError(t, bus.Publish(ctx, events.TopicShowCreated, events.ShowCreated{
		Show: model.Show{Id: "new", Title: "Fresh", Genre: "Rock"},
	}))

	require.Eventually(t, func() bool {
		show, err := f.shows.Get(ctx, "7")
		return err == nil && show.SoldOut
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		announcements, err := f.newsletter.Announcements(ctx)
		return err == nil && len(announcements) == 1
	}, 5*time.Second, 20*time.Millisecond)
}
