package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"venue-webapp/clock"
	"venue-webapp/events"
	"venue-webapp/media"
	"venue-webapp/model"
	"venue-webapp/store"
)

// Handler holds everything the HTTP handlers read from or write to.
type Handler struct {
	Venue       model.VenueInfo
	Shows       *store.Shows
	Users       *store.Users
	Newsletter  *store.Newsletter
	Submissions *store.Submissions
	Photos      *store.Photos
	Shop        *store.Shop
	Media       media.Storage
	Bus         *events.Bus
	Clock       clock.Clock
	SigningKey  string
	Log         zerolog.Logger
}

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data})
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return respond(c, fiber.StatusOK, message, data)
}

// publish sends an event without failing the request that caused it.
func (h *Handler) publish(ctx context.Context, topic string, payload interface{}) {
	if h.Bus == nil {
		return
	}
	if err := h.Bus.Publish(ctx, topic, payload); err != nil {
		h.Log.Error().Err(err).Str("topic", topic).Msg("event was not published")
	}
}

func (h *Handler) GetVenue(c *fiber.Ctx) error {
	return ok(c, "venue info", h.Venue)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return ok(c, "ok", nil)
}
