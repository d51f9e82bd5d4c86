package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"venue-webapp/clock"
	"venue-webapp/database"
	"venue-webapp/model"
)

const (
	NewsletterKey    = "swan-dive-newsletter"
	AnnouncementsKey = "swan-dive-announcements"
)

type Newsletter struct {
	subscribers   *Collection[model.NewsletterSubscriber]
	announcements *Collection[model.Announcement]
	clock         clock.Clock
}

func NewNewsletter(kv database.KeyValue, clk clock.Clock, log zerolog.Logger) *Newsletter {
	return &Newsletter{
		subscribers:   NewCollection[model.NewsletterSubscriber](kv, NewsletterKey, nil, log),
		announcements: NewCollection[model.Announcement](kv, AnnouncementsKey, nil, log),
		clock:         clk,
	}
}

func validFrequency(f model.Frequency) bool {
	switch f {
	case model.FrequencyWeekly, model.FrequencyMonthly, model.FrequencyEventsOnly:
		return true
	}
	return false
}

func normalizePreferences(prefs model.Preferences, v *ValidationError) model.Preferences {
	if prefs.Frequency == "" {
		prefs.Frequency = model.FrequencyEventsOnly
	}
	if !validFrequency(prefs.Frequency) {
		v.add("preferences.frequency", "must be one of weekly, monthly, events-only")
	}

	genres := []string{}
	seen := map[string]bool{}
	for _, genre := range prefs.Genres {
		genre = strings.TrimSpace(genre)
		if genre == "" || seen[strings.ToLower(genre)] {
			continue
		}
		seen[strings.ToLower(genre)] = true
		genres = append(genres, genre)
	}
	prefs.Genres = genres
	return prefs
}

// Subscribe adds a subscriber or, when the email is already known, updates
// the stored record and reactivates it. A known subscriber keeps their
// preferences when none are given.
func (n *Newsletter) Subscribe(ctx context.Context, sub model.NewsletterSubscriber) (model.NewsletterSubscriber, error) {
	keepPreferences := sub.Preferences.Frequency == "" && len(sub.Preferences.Genres) == 0
	sub.Email = normalizeEmail(sub.Email)
	sub.FirstName = strings.TrimSpace(sub.FirstName)
	sub.LastName = strings.TrimSpace(sub.LastName)

	v := &ValidationError{}
	if !validEmail(sub.Email) {
		v.add("email", "must be a valid email address")
	}
	sub.Preferences = normalizePreferences(sub.Preferences, v)
	if err := v.orNil(); err != nil {
		return model.NewsletterSubscriber{}, err
	}

	var saved model.NewsletterSubscriber
	err := n.subscribers.Update(ctx, func(subs []model.NewsletterSubscriber) ([]model.NewsletterSubscriber, error) {
		for i, existing := range subs {
			if existing.Email != sub.Email {
				continue
			}
			if sub.FirstName != "" {
				existing.FirstName = sub.FirstName
			}
			if sub.LastName != "" {
				existing.LastName = sub.LastName
			}
			if !keepPreferences {
				existing.Preferences = sub.Preferences
			}
			existing.Active = true
			subs[i] = existing
			saved = existing
			return subs, nil
		}

		sub.Id = newID("newsletter-")
		sub.SubscribedAt = timestamp(n.clock.Now())
		sub.Active = true
		saved = sub
		return append(subs, sub), nil
	})
	if err != nil {
		return model.NewsletterSubscriber{}, err
	}
	return saved, nil
}

// Unsubscribe deactivates the subscriber. It reports false when the email
// is unknown.
func (n *Newsletter) Unsubscribe(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	found := false
	err := n.subscribers.Update(ctx, func(subs []model.NewsletterSubscriber) ([]model.NewsletterSubscriber, error) {
		for i := range subs {
			if subs[i].Email == email {
				subs[i].Active = false
				found = true
				return subs, nil
			}
		}
		return nil, errNoChange
	})
	if err == errNoChange {
		return false, nil
	}
	return found, err
}

func (n *Newsletter) UpdatePreferences(ctx context.Context, email string, prefs model.Preferences) (bool, error) {
	email = normalizeEmail(email)
	v := &ValidationError{}
	prefs = normalizePreferences(prefs, v)
	if err := v.orNil(); err != nil {
		return false, err
	}

	found := false
	err := n.subscribers.Update(ctx, func(subs []model.NewsletterSubscriber) ([]model.NewsletterSubscriber, error) {
		for i := range subs {
			if subs[i].Email == email {
				subs[i].Preferences = prefs
				found = true
				return subs, nil
			}
		}
		return nil, errNoChange
	})
	if err == errNoChange {
		return false, nil
	}
	return found, err
}

func (n *Newsletter) List(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	return n.subscribers.Load(ctx)
}

// Stats counts subscribers; the genre and frequency breakdowns only cover
// active subscribers.
func (n *Newsletter) Stats(ctx context.Context) (model.NewsletterStats, error) {
	subs, err := n.subscribers.Load(ctx)
	if err != nil {
		return model.NewsletterStats{}, err
	}

	stats := model.NewsletterStats{
		Total:       len(subs),
		ByGenre:     map[string]int{},
		ByFrequency: map[model.Frequency]int{},
	}
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		stats.Active++
		for _, genre := range sub.Preferences.Genres {
			stats.ByGenre[genre]++
		}
		stats.ByFrequency[sub.Preferences.Frequency]++
	}
	return stats, nil
}

// Recipients lists the emails of active subscribers interested in genre.
// Subscribers without genre preferences receive every announcement.
func (n *Newsletter) Recipients(ctx context.Context, genre string) ([]string, error) {
	subs, err := n.subscribers.Load(ctx)
	if err != nil {
		return nil, err
	}

	recipients := []string{}
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		if len(sub.Preferences.Genres) == 0 || containsFold(sub.Preferences.Genres, genre) {
			recipients = append(recipients, sub.Email)
		}
	}
	sort.Strings(recipients)
	return recipients, nil
}

// Announce queues an announcement of show for its interested subscribers.
func (n *Newsletter) Announce(ctx context.Context, show model.Show) (model.Announcement, error) {
	recipients, err := n.Recipients(ctx, show.Genre)
	if err != nil {
		return model.Announcement{}, err
	}

	announcement := model.Announcement{
		Id:         newID("announcement-"),
		ShowId:     show.Id,
		ShowTitle:  show.Title,
		Genre:      show.Genre,
		Recipients: recipients,
		CreatedAt:  timestamp(n.clock.Now()),
	}
	err = n.announcements.Update(ctx, func(items []model.Announcement) ([]model.Announcement, error) {
		return append(items, announcement), nil
	})
	if err != nil {
		return model.Announcement{}, fmt.Errorf("cannot queue announcement for show %v: %w", show.Id, err)
	}
	return announcement, nil
}

func (n *Newsletter) Announcements(ctx context.Context) ([]model.Announcement, error) {
	return n.announcements.Load(ctx)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
