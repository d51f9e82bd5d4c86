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
	SubmissionsKey     = "swan-dive-submissions"
	BookingRequestsKey = "swan-dive-booking-requests"
)

// Submissions stores artist-portal applications and booking requests.
type Submissions struct {
	artists  *Collection[model.ArtistSubmission]
	bookings *Collection[model.BookingRequest]
	clock    clock.Clock
}

func NewSubmissions(kv database.KeyValue, clk clock.Clock, log zerolog.Logger) *Submissions {
	return &Submissions{
		artists:  NewCollection[model.ArtistSubmission](kv, SubmissionsKey, nil, log),
		bookings: NewCollection[model.BookingRequest](kv, BookingRequestsKey, nil, log),
		clock:    clk,
	}
}

func (s *Submissions) SubmitArtist(ctx context.Context, sub model.ArtistSubmission) (model.ArtistSubmission, error) {
	sub.ArtistName = strings.TrimSpace(sub.ArtistName)
	sub.ContactName = strings.TrimSpace(sub.ContactName)
	sub.Email = normalizeEmail(sub.Email)
	sub.MusicSamples = strings.TrimSpace(sub.MusicSamples)

	v := &ValidationError{}
	required(v, "artistName", sub.ArtistName)
	required(v, "contactName", sub.ContactName)
	if !validEmail(sub.Email) {
		v.add("email", "must be a valid email address")
	}
	required(v, "musicSamples", sub.MusicSamples)
	if sub.Website != "" && !validHTTPURL(sub.Website) {
		v.add("website", "must be an absolute http(s) url")
	}
	if err := v.orNil(); err != nil {
		return model.ArtistSubmission{}, err
	}

	sub.Id = newID("artist-")
	sub.SubmittedAt = timestamp(s.clock.Now())
	sub.Status = model.StatusPending
	sub.Notes = ""

	err := s.artists.Update(ctx, func(items []model.ArtistSubmission) ([]model.ArtistSubmission, error) {
		return append(items, sub), nil
	})
	if err != nil {
		return model.ArtistSubmission{}, err
	}
	return sub, nil
}

// Artists lists submissions newest first, optionally narrowed to status.
func (s *Submissions) Artists(ctx context.Context, status model.SubmissionStatus) ([]model.ArtistSubmission, error) {
	items, err := s.artists.Load(ctx)
	if err != nil {
		return nil, err
	}
	listed := []model.ArtistSubmission{}
	for _, item := range items {
		if status == "" || item.Status == status {
			listed = append(listed, item)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool { return listed[i].SubmittedAt > listed[j].SubmittedAt })
	return listed, nil
}

func (s *Submissions) SetArtistStatus(ctx context.Context, id string, update model.StatusUpdate) (model.ArtistSubmission, error) {
	if err := validateStatus(update.Status); err != nil {
		return model.ArtistSubmission{}, err
	}

	var updated model.ArtistSubmission
	err := s.artists.Update(ctx, func(items []model.ArtistSubmission) ([]model.ArtistSubmission, error) {
		for i := range items {
			if items[i].Id == id {
				items[i].Status = update.Status
				if update.Notes != nil {
					items[i].Notes = strings.TrimSpace(*update.Notes)
				}
				updated = items[i]
				return items, nil
			}
		}
		return nil, fmt.Errorf("submission %v: %w", id, ErrNotFound)
	})
	if err != nil {
		return model.ArtistSubmission{}, err
	}
	return updated, nil
}

func (s *Submissions) RequestBooking(ctx context.Context, req model.BookingRequest) (model.BookingRequest, error) {
	req.ArtistName = strings.TrimSpace(req.ArtistName)
	req.ContactName = strings.TrimSpace(req.ContactName)
	req.Email = normalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.EventTitle = strings.TrimSpace(req.EventTitle)
	req.Genre = strings.TrimSpace(req.Genre)
	req.PreferredDates = strings.TrimSpace(req.PreferredDates)

	v := &ValidationError{}
	required(v, "artistName", req.ArtistName)
	required(v, "contactName", req.ContactName)
	if !validEmail(req.Email) {
		v.add("email", "must be a valid email address")
	}
	required(v, "phone", req.Phone)
	required(v, "eventTitle", req.EventTitle)
	required(v, "genre", req.Genre)
	required(v, "preferredDates", req.PreferredDates)
	if req.Website != "" && !validHTTPURL(req.Website) {
		v.add("website", "must be an absolute http(s) url")
	}
	if err := v.orNil(); err != nil {
		return model.BookingRequest{}, err
	}

	req.Id = newID("booking-")
	req.SubmittedAt = timestamp(s.clock.Now())
	req.Status = model.StatusPending
	req.Notes = ""

	err := s.bookings.Update(ctx, func(items []model.BookingRequest) ([]model.BookingRequest, error) {
		return append(items, req), nil
	})
	if err != nil {
		return model.BookingRequest{}, err
	}
	return req, nil
}

func (s *Submissions) BookingRequests(ctx context.Context, status model.SubmissionStatus) ([]model.BookingRequest, error) {
	items, err := s.bookings.Load(ctx)
	if err != nil {
		return nil, err
	}
	listed := []model.BookingRequest{}
	for _, item := range items {
		if status == "" || item.Status == status {
			listed = append(listed, item)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool { return listed[i].SubmittedAt > listed[j].SubmittedAt })
	return listed, nil
}

func (s *Submissions) SetBookingStatus(ctx context.Context, id string, update model.StatusUpdate) (model.BookingRequest, error) {
	if err := validateStatus(update.Status); err != nil {
		return model.BookingRequest{}, err
	}

	var updated model.BookingRequest
	err := s.bookings.Update(ctx, func(items []model.BookingRequest) ([]model.BookingRequest, error) {
		for i := range items {
			if items[i].Id == id {
				items[i].Status = update.Status
				if update.Notes != nil {
					items[i].Notes = strings.TrimSpace(*update.Notes)
				}
				updated = items[i]
				return items, nil
			}
		}
		return nil, fmt.Errorf("booking request %v: %w", id, ErrNotFound)
	})
	if err != nil {
		return model.BookingRequest{}, err
	}
	return updated, nil
}

func validateStatus(status model.SubmissionStatus) error {
	if status.Valid() {
		return nil
	}
	v := &ValidationError{}
	v.add("status", "must be one of pending, approved, rejected, scheduled")
	return v
}
