package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/clock"
	"venue-webapp/database"
	"venue-webapp/model"
	"venue-webapp/store"
)

func validShow() model.Show {
	return model.Show{
		Title:     "  Late Night Jazz ",
		Artist:    "The Quartet",
		Date:      "2025-06-20",
		Time:      "21:00",
		Venue:     "Main Stage",
		Genre:     "Jazz",
		Price:     30,
		TicketUrl: "https://tickets.example.com/late-night-jazz",
		Capacity:  120,
	}
}

func TestShowsSeeded(t *testing.T) {
	s := newServices(t)

	shows, err := s.shows.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, shows, 17)

	show, err := s.shows.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.True(t, show.SoldOut)

	_, err = s.shows.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestShowsCreate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	created, err := s.shows.Create(ctx, validShow())
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "Late Night Jazz", created.Title)
	assert.Equal(t, "2025-03-10T12:00:00Z", created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	stored, err := s.shows.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestShowsCreateValidation(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(*model.Show)
		field       string
	}{
		{"missing title", func(s *model.Show) { s.Title = " " }, "title"},
		{"missing artist", func(s *model.Show) { s.Artist = "" }, "artist"},
		{"bad date", func(s *model.Show) { s.Date = "20/06/2025" }, "date"},
		{"bad time", func(s *model.Show) { s.Time = "9pm" }, "time"},
		{"negative price", func(s *model.Show) { s.Price = -1 }, "price"},
		{"negative capacity", func(s *model.Show) { s.Capacity = -5 }, "capacity"},
		{"relative ticket url", func(s *model.Show) { s.TicketUrl = "tickets/1" }, "ticketUrl"},
		{"javascript image url", func(s *model.Show) { s.ImageUrl = "javascript:alert(1)" }, "imageUrl"},
	}

	s := newServices(t)
	for _, test := range tests {
		show := validShow()
		test.mutate(&show)

		_, err := s.shows.Create(context.Background(), show)
		require.Errorf(t, err, test.description)
		assert.ErrorIsf(t, err, store.ErrInvalidInput, test.description)

		var validationErr *store.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Containsf(t, validationErr.Fields, test.field, test.description)
	}
}

func TestShowsUploadedImageURLIsAccepted(t *testing.T) {
	show := validShow()
	show.ImageUrl = store.MediaPrefix + "show-1-abc.jpg"
	assert.NoError(t, store.ValidateShow(show))
}

func TestShowsUpdateAndReplace(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	price := 50.0
	updated, err := s.shows.Update(ctx, "1", model.ShowPatch{Price: &price, Title: strPtr("Electric Dreams II")})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Price)
	assert.Equal(t, "Electric Dreams II", updated.Title)
	assert.Equal(t, "Electronic", updated.Genre)

	_, err = s.shows.Update(ctx, "1", model.ShowPatch{Date: strPtr("soon")})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	replaced, err := s.shows.Replace(ctx, "1", validShow())
	require.NoError(t, err)
	assert.Equal(t, "1", replaced.Id)
	assert.Equal(t, "Late Night Jazz", replaced.Title)

	_, err = s.shows.Replace(ctx, "missing", validShow())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestShowsPatchDuringUpdateIsKept(t *testing.T) {
	ctx := context.Background()
	repo := store.NewKVShowRepository(database.NewMemoryKV(), zerolog.Nop())
	shows := store.NewShows(repo, clock.NewFixed(testNow))

	done := make(chan error, 1)
	_, err := repo.Modify(ctx, "1", func(show *model.Show) error {
		go func() {
			soldOut := true
			_, err := shows.Update(ctx, "1", model.ShowPatch{SoldOut: &soldOut})
			done <- err
		}()
		time.Sleep(20 * time.Millisecond)
		show.Price = 40
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, <-done)

	stored, err := shows.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 40.0, stored.Price)
	assert.True(t, stored.SoldOut)
}

func TestShowsModifyErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, err := s.shows.Update(ctx, "1", model.ShowPatch{Title: strPtr(" ")})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	show, err := s.shows.Get(ctx, "1")
	require.NoError(t, err)
	assert.NotEmpty(t, show.Title)
}

func TestShowsDelete(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	require.NoError(t, s.shows.Delete(ctx, "17"))
	assert.ErrorIs(t, s.shows.Delete(ctx, "17"), store.ErrNotFound)

	shows, err := s.shows.List(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, 16)
}

func TestLegacyShowPayload(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	legacy := `[{"id":"old-1","title":"Old Show","artistName":"Old Artist","date":"2024-12-01","time":"20:00","genre":"Rock","ticketPrice":15}]`
	require.NoError(t, s.kv.Set(ctx, store.ShowsKey, legacy))

	show, err := s.shows.Get(ctx, "old-1")
	require.NoError(t, err)
	assert.Equal(t, "Old Artist", show.Artist)
	assert.Equal(t, 15.0, show.Price)
}
