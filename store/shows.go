package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"venue-webapp/clock"
	"venue-webapp/database"
	"venue-webapp/model"
	"venue-webapp/seed"
)

const ShowsKey = "music-venue-shows"

// ShowRepository persists shows. Modify and Remove return ErrNotFound for
// unknown ids.
type ShowRepository interface {
	All(ctx context.Context) ([]model.Show, error)
	ByID(ctx context.Context, id string) (model.Show, error)
	Insert(ctx context.Context, show model.Show) error
	// Modify applies fn to the stored show and saves the result as one step.
	// Nothing is written when fn returns an error.
	Modify(ctx context.Context, id string, fn func(*model.Show) error) (model.Show, error)
	Remove(ctx context.Context, id string) error
}

type KVShowRepository struct {
	shows *Collection[model.Show]
}

func NewKVShowRepository(kv database.KeyValue, log zerolog.Logger) *KVShowRepository {
	return &KVShowRepository{shows: NewCollection(kv, ShowsKey, seed.Shows, log)}
}

func (r *KVShowRepository) All(ctx context.Context) ([]model.Show, error) {
	return r.shows.Load(ctx)
}

func (r *KVShowRepository) ByID(ctx context.Context, id string) (model.Show, error) {
	shows, err := r.shows.Load(ctx)
	if err != nil {
		return model.Show{}, err
	}
	for _, show := range shows {
		if show.Id == id {
			return show, nil
		}
	}
	return model.Show{}, fmt.Errorf("show %v: %w", id, ErrNotFound)
}

func (r *KVShowRepository) Insert(ctx context.Context, show model.Show) error {
	return r.shows.Update(ctx, func(shows []model.Show) ([]model.Show, error) {
		for _, existing := range shows {
			if existing.Id == show.Id {
				return nil, fmt.Errorf("show %v: %w", show.Id, ErrAlreadyExists)
			}
		}
		return append(shows, show), nil
	})
}

func (r *KVShowRepository) Modify(ctx context.Context, id string, fn func(*model.Show) error) (model.Show, error) {
	var updated model.Show
	err := r.shows.Update(ctx, func(shows []model.Show) ([]model.Show, error) {
		for i := range shows {
			if shows[i].Id != id {
				continue
			}
			show := shows[i]
			if err := fn(&show); err != nil {
				return nil, err
			}
			shows[i] = show
			updated = show
			return shows, nil
		}
		return nil, fmt.Errorf("show %v: %w", id, ErrNotFound)
	})
	if err != nil {
		return model.Show{}, err
	}
	return updated, nil
}

func (r *KVShowRepository) Remove(ctx context.Context, id string) error {
	return r.shows.Update(ctx, func(shows []model.Show) ([]model.Show, error) {
		kept := shows[:0]
		for _, show := range shows {
			if show.Id != id {
				kept = append(kept, show)
			}
		}
		if len(kept) == len(shows) {
			return nil, fmt.Errorf("show %v: %w", id, ErrNotFound)
		}
		return kept, nil
	})
}

// Shows validates and timestamps show changes before they reach the
// repository.
type Shows struct {
	repo  ShowRepository
	clock clock.Clock
}

func NewShows(repo ShowRepository, clk clock.Clock) *Shows {
	return &Shows{repo: repo, clock: clk}
}

func (s *Shows) List(ctx context.Context) ([]model.Show, error) {
	return s.repo.All(ctx)
}

func (s *Shows) Get(ctx context.Context, id string) (model.Show, error) {
	return s.repo.ByID(ctx, id)
}

func (s *Shows) Create(ctx context.Context, show model.Show) (model.Show, error) {
	show = trimShow(show)
	if err := ValidateShow(show); err != nil {
		return model.Show{}, err
	}

	now := timestamp(s.clock.Now())
	show.Id = newID("")
	show.CreatedAt = now
	show.UpdatedAt = now

	if err := s.repo.Insert(ctx, show); err != nil {
		return model.Show{}, err
	}
	return show, nil
}

// Replace overwrites every editable field of an existing show.
func (s *Shows) Replace(ctx context.Context, id string, show model.Show) (model.Show, error) {
	return s.repo.Modify(ctx, id, func(existing *model.Show) error {
		replaced := trimShow(show)
		replaced.Id = existing.Id
		replaced.CreatedAt = existing.CreatedAt
		if err := ValidateShow(replaced); err != nil {
			return err
		}
		replaced.UpdatedAt = timestamp(s.clock.Now())
		*existing = replaced
		return nil
	})
}

// Update merges the non-nil fields of patch into the stored show.
func (s *Shows) Update(ctx context.Context, id string, patch model.ShowPatch) (model.Show, error) {
	return s.repo.Modify(ctx, id, func(existing *model.Show) error {
		updated := trimShow(patch.Apply(*existing))
		if err := ValidateShow(updated); err != nil {
			return err
		}
		updated.UpdatedAt = timestamp(s.clock.Now())
		*existing = updated
		return nil
	})
}

func (s *Shows) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

func trimShow(show model.Show) model.Show {
	show.Title = strings.TrimSpace(show.Title)
	show.Artist = strings.TrimSpace(show.Artist)
	show.Date = strings.TrimSpace(show.Date)
	show.Time = strings.TrimSpace(show.Time)
	show.Venue = strings.TrimSpace(show.Venue)
	show.Genre = strings.TrimSpace(show.Genre)
	show.TicketUrl = strings.TrimSpace(show.TicketUrl)
	show.ImageUrl = strings.TrimSpace(show.ImageUrl)
	return show
}

func ValidateShow(show model.Show) error {
	v := &ValidationError{}
	required(v, "title", show.Title)
	required(v, "artist", show.Artist)

	if !validDate(show.Date) {
		v.add("date", "must be formatted as YYYY-MM-DD")
	}
	if !validTime(show.Time) {
		v.add("time", "must be formatted as HH:MM")
	}
	if show.Price < 0 {
		v.add("price", "cannot be negative")
	}
	if show.Capacity < 0 {
		v.add("capacity", "cannot be negative")
	}
	if show.TicketUrl != "" && !validHTTPURL(show.TicketUrl) {
		v.add("ticketUrl", "must be an absolute http(s) url")
	}
	if show.ImageUrl != "" && !validHTTPURL(show.ImageUrl) && !strings.HasPrefix(show.ImageUrl, MediaPrefix) {
		v.add("imageUrl", "must be an absolute http(s) url or an uploaded image")
	}

	return v.orNil()
}

// MediaPrefix is the path uploaded images are served under.
const MediaPrefix = "/media/"
