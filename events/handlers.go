package events

import (
	"encoding/json"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"venue-webapp/model"
	"venue-webapp/store"
)

// Handlers reacts to published events.
type Handlers struct {
	shows      *store.Shows
	users      *store.Users
	newsletter *store.Newsletter
	log        zerolog.Logger
}

func NewHandlers(shows *store.Shows, users *store.Users, newsletter *store.Newsletter, log zerolog.Logger) *Handlers {
	return &Handlers{shows: shows, users: users, newsletter: newsletter, log: log}
}

// Register subscribes every handler on router.
func (h *Handlers) Register(router *message.Router, subscriber message.Subscriber) {
	router.AddNoPublisherHandler("announce_new_show", TopicShowCreated, subscriber, h.AnnounceShow)
	router.AddNoPublisherHandler("mark_show_sold_out", TopicTicketPurchased, subscriber, h.MarkSoldOut)
}

// AnnounceShow queues an announcement of a new show for the newsletter.
func (h *Handlers) AnnounceShow(msg *message.Message) error {
	var event ShowCreated
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.log.Error().Err(err).Str("message_uuid", msg.UUID).Msg("skipping malformed show.created event")
		return nil
	}

	announcement, err := h.newsletter.Announce(msg.Context(), event.Show)
	if err != nil {
		return err
	}

	h.log.Info().
		Str("show_id", event.Show.Id).
		Int("recipients", len(announcement.Recipients)).
		Msg("show announcement queued")
	return nil
}

// MarkSoldOut flags a show as sold out once its confirmed tickets reach
// capacity. Shows without a capacity are never flagged.
func (h *Handlers) MarkSoldOut(msg *message.Message) error {
	var event TicketPurchased
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.log.Error().Err(err).Str("message_uuid", msg.UUID).Msg("skipping malformed ticket.purchased event")
		return nil
	}

	ctx := msg.Context()
	show, err := h.shows.Get(ctx, event.ShowId)
	if errors.Is(err, store.ErrNotFound) {
		h.log.Warn().Str("show_id", event.ShowId).Msg("tickets purchased for a deleted show")
		return nil
	}
	if err != nil {
		return err
	}
	if show.Capacity <= 0 || show.SoldOut {
		return nil
	}

	sold, err := h.users.TicketsSold(ctx, show.Id)
	if err != nil {
		return err
	}
	if sold < show.Capacity {
		return nil
	}

	soldOut := true
	if _, err := h.shows.Update(ctx, show.Id, model.ShowPatch{SoldOut: &soldOut}); err != nil {
		return err
	}
	h.log.Info().Str("show_id", show.Id).Int("sold", sold).Msg("show sold out")
	return nil
}
