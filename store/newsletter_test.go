package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-webapp/model"
	"venue-webapp/store"
)

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	sub, err := s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{
		Email:       " Fan@Example.com",
		Preferences: model.Preferences{Genres: []string{"Jazz", " jazz ", "Rock", ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", sub.Email)
	assert.True(t, sub.Active)
	assert.Equal(t, model.FrequencyEventsOnly, sub.Preferences.Frequency)
	assert.Equal(t, []string{"Jazz", "Rock"}, sub.Preferences.Genres)

	_, err = s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{Email: "nope"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{
		Email:       "other@example.com",
		Preferences: model.Preferences{Frequency: "daily"},
	})
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

func TestResubscribeReactivates(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	first, err := s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{Email: "fan@example.com", FirstName: "Fan"})
	require.NoError(t, err)

	found, err := s.newsletter.Unsubscribe(ctx, "FAN@example.com")
	require.NoError(t, err)
	assert.True(t, found)

	again, err := s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{
		Email:       "fan@example.com",
		Preferences: model.Preferences{Frequency: model.FrequencyWeekly},
	})
	require.NoError(t, err)
	assert.Equal(t, first.Id, again.Id)
	assert.Equal(t, "Fan", again.FirstName)
	assert.True(t, again.Active)

	subs, err := s.newsletter.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	found, err = s.newsletter.Unsubscribe(ctx, "stranger@example.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	_, err := s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{Email: "fan@example.com"})
	require.NoError(t, err)

	found, err := s.newsletter.UpdatePreferences(ctx, "fan@example.com", model.Preferences{
		Genres:    []string{"Blues"},
		Frequency: model.FrequencyMonthly,
	})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.newsletter.UpdatePreferences(ctx, "stranger@example.com", model.Preferences{})
	require.NoError(t, err)
	assert.False(t, found)

	subs, err := s.newsletter.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, model.FrequencyMonthly, subs[0].Preferences.Frequency)
}

func TestResubscribeWithoutPreferencesKeepsThem(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, err := s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{
		Email:       "fan@example.com",
		Preferences: model.Preferences{Genres: []string{"Jazz"}, Frequency: model.FrequencyWeekly},
	})
	require.NoError(t, err)
	_, err = s.newsletter.Unsubscribe(ctx, "fan@example.com")
	require.NoError(t, err)

	again, err := s.newsletter.Subscribe(ctx, model.NewsletterSubscriber{Email: "fan@example.com", FirstName: "Fan"})
	require.NoError(t, err)
	assert.True(t, again.Active)
	assert.Equal(t, []string{"Jazz"}, again.Preferences.Genres)
	assert.Equal(t, model.FrequencyWeekly, again.Preferences.Frequency)
}

func TestNewsletterStatsAndRecipients(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	for _, sub := range []model.NewsletterSubscriber{
		{Email: "jazz@example.com", Preferences: model.Preferences{Genres: []string{"Jazz"}, Frequency: model.FrequencyWeekly}},
		{Email: "rock@example.com", Preferences: model.Preferences{Genres: []string{"Rock"}}},
		{Email: "all@example.com"},
		{Email: "gone@example.com", Preferences: model.Preferences{Genres: []string{"Jazz"}}},
	} {
		_, err := s.newsletter.Subscribe(ctx, sub)
		require.NoError(t, err)
	}
	_, err := s.newsletter.Unsubscribe(ctx, "gone@example.com")
	require.NoError(t, err)

	stats, err := s.newsletter.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, map[string]int{"Jazz": 1, "Rock": 1}, stats.ByGenre)
	assert.Equal(t, 1, stats.ByFrequency[model.FrequencyWeekly])
	assert.Equal(t, 2, stats.ByFrequency[model.FrequencyEventsOnly])

	recipients, err := s.newsletter.Recipients(ctx, "jazz")
	require.NoError(t, err)
	assert.Equal(t, []string{"all@example.com", "jazz@example.com"}, recipients)

	announcement, err := s.newsletter.Announce(ctx, model.Show{Id: "42", Title: "Blue Note", Genre: "Jazz"})
	require.NoError(t, err)
	assert.Equal(t, recipients, announcement.Recipients)

	announcements, err := s.newsletter.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, "42", announcements[0].ShowId)
}
