package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/clock"
	"venue-webapp/errors"
	"venue-webapp/store"
)

func isDate(s string) bool {
	_, err := time.Parse(clock.DateLayout, s)
	return err == nil
}

// GetShowsOnDate lists the shows of one day; the day defaults to today.
func (h *Handler) GetShowsOnDate(c *fiber.Ctx) error {
	date := c.Query("date", clock.Today(h.Clock))
	if !isDate(date) {
		return errors.RaiseBadRequestError(c, "date must be formatted as YYYY-MM-DD")
	}

	shows, err := h.Shows.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "shows on "+date, store.OnDate(shows, date))
}

func (h *Handler) GetShowDatesInMonth(c *fiber.Ctx) error {
	year, yearErr := strconv.Atoi(c.Params("year"))
	month, monthErr := strconv.Atoi(c.Params("month"))
	if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
		return errors.RaiseBadRequestError(c, "calendar path must be /calendar/<year>/<month 1-12>")
	}

	shows, err := h.Shows.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "show dates", store.DatesInMonth(shows, year, time.Month(month)))
}

func (h *Handler) GetArchive(c *fiber.Ctx) error {
	year := c.Query("year")
	if year != "" {
		if _, err := strconv.Atoi(year); err != nil || len(year) != 4 {
			return errors.RaiseBadRequestError(c, "year must have four digits")
		}
	}

	shows, err := h.Shows.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "archive", store.Archive(shows, h.Clock.Now(), year, c.Query("genre")))
}
