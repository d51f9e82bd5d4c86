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
	"venue-webapp/seed"
)

const PhotosKey = "swan-dive-photos"

// Photos holds fan photos. New photos wait for approval before they are
// shown in a gallery.
type Photos struct {
	photos *Collection[model.ShowPhoto]
	shows  *Shows
	clock  clock.Clock
}

func NewPhotos(kv database.KeyValue, shows *Shows, clk clock.Clock, log zerolog.Logger) *Photos {
	return &Photos{
		photos: NewCollection(kv, PhotosKey, seed.Photos, log),
		shows:  shows,
		clock:  clk,
	}
}

func (p *Photos) Submit(ctx context.Context, photo model.ShowPhoto) (model.ShowPhoto, error) {
	photo.Url = strings.TrimSpace(photo.Url)
	photo.Caption = strings.TrimSpace(photo.Caption)

	v := &ValidationError{}
	if !validHTTPURL(photo.Url) && !strings.HasPrefix(photo.Url, MediaPrefix) {
		v.add("url", "must be an absolute http(s) url or an uploaded image")
	}
	required(v, "uploadedBy", photo.UploadedBy)
	if err := v.orNil(); err != nil {
		return model.ShowPhoto{}, err
	}
	if _, err := p.shows.Get(ctx, photo.ShowId); err != nil {
		return model.ShowPhoto{}, err
	}

	photo.Id = newID("photo-")
	photo.UploadedAt = timestamp(p.clock.Now())
	photo.Approved = false

	err := p.photos.Update(ctx, func(items []model.ShowPhoto) ([]model.ShowPhoto, error) {
		return append(items, photo), nil
	})
	if err != nil {
		return model.ShowPhoto{}, err
	}
	return photo, nil
}

// ForShow lists the approved photos of a show, oldest first.
func (p *Photos) ForShow(ctx context.Context, showID string) ([]model.ShowPhoto, error) {
	return p.list(ctx, func(photo model.ShowPhoto) bool {
		return photo.ShowId == showID && photo.Approved
	})
}

func (p *Photos) Pending(ctx context.Context) ([]model.ShowPhoto, error) {
	return p.list(ctx, func(photo model.ShowPhoto) bool { return !photo.Approved })
}

func (p *Photos) Approve(ctx context.Context, id string) (model.ShowPhoto, error) {
	var approved model.ShowPhoto
	err := p.photos.Update(ctx, func(items []model.ShowPhoto) ([]model.ShowPhoto, error) {
		for i := range items {
			if items[i].Id == id {
				items[i].Approved = true
				approved = items[i]
				return items, nil
			}
		}
		return nil, fmt.Errorf("photo %v: %w", id, ErrNotFound)
	})
	if err != nil {
		return model.ShowPhoto{}, err
	}
	return approved, nil
}

func (p *Photos) Delete(ctx context.Context, id string) error {
	return p.photos.Update(ctx, func(items []model.ShowPhoto) ([]model.ShowPhoto, error) {
		kept := items[:0]
		for _, item := range items {
			if item.Id != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(items) {
			return nil, fmt.Errorf("photo %v: %w", id, ErrNotFound)
		}
		return kept, nil
	})
}

func (p *Photos) list(ctx context.Context, keep func(model.ShowPhoto) bool) ([]model.ShowPhoto, error) {
	items, err := p.photos.Load(ctx)
	if err != nil {
		return nil, err
	}
	listed := []model.ShowPhoto{}
	for _, item := range items {
		if keep(item) {
			listed = append(listed, item)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool { return listed[i].UploadedAt < listed[j].UploadedAt })
	return listed, nil
}
