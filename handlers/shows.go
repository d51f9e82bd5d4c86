package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/events"
	"venue-webapp/model"
	"venue-webapp/store"
)

func (h *Handler) GetShows(c *fiber.Ctx) error {
	shows, err := h.Shows.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	query := store.ShowQuery{
		Genre:  c.Query("genre"),
		Search: c.Query("q"),
		From:   c.Query("from"),
	}
	if query.From != "" && !isDate(query.From) {
		return errors.RaiseBadRequestError(c, "from must be formatted as YYYY-MM-DD")
	}

	filtered := store.Filter(shows, query)
	return ok(c, fmt.Sprintf("showing %d of %d shows", len(filtered), len(shows)), filtered)
}

func (h *Handler) GetGenres(c *fiber.Ctx) error {
	shows, err := h.Shows.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "genres", store.Genres(shows))
}

func (h *Handler) GetUpcomingShows(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return errors.RaiseBadRequestError(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	shows, err := h.Shows.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "upcoming shows", store.Upcoming(shows, h.Clock.Now(), limit))
}

func (h *Handler) GetShow(c *fiber.Ctx) error {
	show, err := h.Shows.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "show", show)
}

func (h *Handler) CreateShow(c *fiber.Ctx) error {
	newShow := new(model.Show)
	if err := c.BodyParser(newShow); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable show parameters: %v", err))
	}

	show, err := h.Shows.Create(c.Context(), *newShow)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	h.publish(c.Context(), events.TopicShowCreated, events.ShowCreated{Show: show})
	return respond(c, fiber.StatusCreated, "show created", show)
}

func (h *Handler) ReplaceShow(c *fiber.Ctx) error {
	updatedShow := new(model.Show)
	if err := c.BodyParser(updatedShow); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable show parameters: %v", err))
	}

	show, err := h.Shows.Replace(c.Context(), c.Params("id"), *updatedShow)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "show updated", show)
}

func (h *Handler) UpdateShow(c *fiber.Ctx) error {
	patch := new(model.ShowPatch)
	if err := c.BodyParser(patch); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable show parameters: %v", err))
	}

	show, err := h.Shows.Update(c.Context(), c.Params("id"), *patch)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "show updated", show)
}

func (h *Handler) DeleteShow(c *fiber.Ctx) error {
	if err := h.Shows.Delete(c.Context(), c.Params("id")); err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "entity deleted", fmt.Sprintf("show with id %v was deleted", c.Params("id")))
}

func (h *Handler) GetShowSales(c *fiber.Ctx) error {
	show, err := h.Shows.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	sold, err := h.Users.TicketsSold(c.Context(), show.Id)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "show sales", fiber.Map{
		"showId":   show.Id,
		"sold":     sold,
		"capacity": show.Capacity,
		"soldOut":  show.SoldOut})
}
