package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/model"
)

func statusFilter(c *fiber.Ctx) (model.SubmissionStatus, bool) {
	status := model.SubmissionStatus(c.Query("status"))
	return status, status == "" || status.Valid()
}

func (h *Handler) SubmitArtist(c *fiber.Ctx) error {
	sub := new(model.ArtistSubmission)
	if err := c.BodyParser(sub); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable submission parameters: %v", err))
	}

	saved, err := h.Submissions.SubmitArtist(c.Context(), *sub)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return respond(c, fiber.StatusCreated, "submission received", saved)
}

func (h *Handler) GetArtistSubmissions(c *fiber.Ctx) error {
	status, valid := statusFilter(c)
	if !valid {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown status %q", status))
	}

	subs, err := h.Submissions.Artists(c.Context(), status)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, fmt.Sprintf("%d submissions", len(subs)), subs)
}

func (h *Handler) SetArtistSubmissionStatus(c *fiber.Ctx) error {
	update := new(model.StatusUpdate)
	if err := c.BodyParser(update); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable status parameters: %v", err))
	}

	sub, err := h.Submissions.SetArtistStatus(c.Context(), c.Params("id"), *update)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "submission updated", sub)
}

func (h *Handler) RequestBooking(c *fiber.Ctx) error {
	req := new(model.BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}

	saved, err := h.Submissions.RequestBooking(c.Context(), *req)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return respond(c, fiber.StatusCreated, "booking request received", saved)
}

func (h *Handler) GetBookingRequests(c *fiber.Ctx) error {
	status, valid := statusFilter(c)
	if !valid {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unknown status %q", status))
	}

	reqs, err := h.Submissions.BookingRequests(c.Context(), status)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, fmt.Sprintf("%d booking requests", len(reqs)), reqs)
}

func (h *Handler) SetBookingRequestStatus(c *fiber.Ctx) error {
	update := new(model.StatusUpdate)
	if err := c.BodyParser(update); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable status parameters: %v", err))
	}

	req, err := h.Submissions.SetBookingStatus(c.Context(), c.Params("id"), *update)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "booking request updated", req)
}
