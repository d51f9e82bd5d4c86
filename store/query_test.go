package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/model"
	"venue-webapp/seed"
	"venue-webapp/store"
)

func ids(shows []model.Show) []string {
	out := make([]string, 0, len(shows))
	for _, show := range shows {
		out = append(out, show.Id)
	}
	return out
}

func TestFilter(t *testing.T) {
	shows := seed.Shows()

	tests := []struct {
		description string
		query       store.ShowQuery
		expected    []string
	}{
		{"genre", store.ShowQuery{Genre: "jazz"}, []string{"2", "10"}},
		{"all genres", store.ShowQuery{Genre: store.AllGenres}, ids(shows)},
		{"search title", store.ShowQuery{Search: "REVIVAL"}, []string{"3", "14"}},
		{"from date", store.ShowQuery{From: "2025-05-24"}, []string{"15", "16", "17"}},
		{"combined", store.ShowQuery{Genre: "Electronic", From: "2025-04-01"}, []string{"8", "16"}},
		{"no match", store.ShowQuery{Search: "polka"}, []string{}},
	}

	for _, test := range tests {
		assert.Equalf(t, test.expected, ids(store.Filter(shows, test.query)), test.description)
	}
}

func TestSortByDate(t *testing.T) {
	shows := []model.Show{
		{Id: "b", Date: "2025-01-02", Time: "20:00"},
		{Id: "c", Date: "2025-01-02", Time: "19:00"},
		{Id: "a", Date: "2025-01-01", Time: "23:00"},
	}
	store.SortByDate(shows)
	assert.Equal(t, []string{"a", "c", "b"}, ids(shows))
}

func TestGenres(t *testing.T) {
	genres := store.Genres(seed.Shows())
	assert.Equal(t, []string{
		"Blues", "Country", "Electronic", "Folk", "Hip-Hop", "Indie", "Jazz", "Mixed", "Reggae", "Rock", "World",
	}, genres)
}

func TestCalendar(t *testing.T) {
	shows := seed.Shows()

	assert.Equal(t, []string{"4"}, ids(store.OnDate(shows, "2025-03-08")))
	assert.Empty(t, store.OnDate(shows, "2025-03-09"))

	assert.Equal(t,
		[]string{"2025-03-01", "2025-03-08", "2025-03-15", "2025-03-22", "2025-03-29"},
		store.DatesInMonth(shows, 2025, time.March))
	assert.Empty(t, store.DatesInMonth(shows, 2024, time.March))
}

func TestUpcoming(t *testing.T) {
	shows := seed.Shows()

	upcoming := store.Upcoming(shows, testNow, 3)
	assert.Equal(t, []string{"5", "6", "7"}, ids(upcoming))

	all := store.Upcoming(shows, testNow, 0)
	assert.Len(t, all, 13)

	onTheDay := store.Upcoming(shows, time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC), 1)
	assert.Equal(t, []string{"5"}, ids(onTheDay), "a show stays upcoming on its own date")
}

func TestArchive(t *testing.T) {
	shows := seed.Shows()

	archive := store.Archive(shows, testNow, "", "")
	assert.Equal(t, []string{"4", "3", "2", "1"}, ids(archive.Shows), "newest first")
	assert.Equal(t, 4, archive.Stats.TotalShows)
	assert.Equal(t, 1, archive.Stats.SoldOutShows)
	assert.Equal(t, 1, archive.Stats.YearsActive)
	assert.Equal(t, []string{"2025"}, archive.Years)
	assert.Equal(t, []string{"Electronic", "Indie", "Jazz", "Rock"}, archive.Genres)

	jazz := store.Archive(shows, testNow, "2025", "Jazz")
	require.Len(t, jazz.Shows, 1)
	assert.Equal(t, "2", jazz.Shows[0].Id)
	assert.Equal(t, 4, jazz.Stats.TotalShows, "stats cover the whole archive")

	assert.Empty(t, store.Archive(shows, testNow, "2023", "").Shows)
}
