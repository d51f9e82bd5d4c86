package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/model"
)

type emailInput struct {
	Email string `json:"email"`
}

type preferencesInput struct {
	Email       string            `json:"email"`
	Preferences model.Preferences `json:"preferences"`
}

func (h *Handler) Subscribe(c *fiber.Ctx) error {
	sub := new(model.NewsletterSubscriber)
	if err := c.BodyParser(sub); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable subscription parameters: %v", err))
	}

	saved, err := h.Newsletter.Subscribe(c.Context(), *sub)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return respond(c, fiber.StatusCreated, "subscribed", saved)
}

func (h *Handler) Unsubscribe(c *fiber.Ctx) error {
	input := new(emailInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable parameters: %v", err))
	}

	found, err := h.Newsletter.Unsubscribe(c.Context(), input.Email)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("%v is not subscribed", input.Email))
	}
	return ok(c, "unsubscribed", nil)
}

func (h *Handler) UpdatePreferences(c *fiber.Ctx) error {
	input := new(preferencesInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable preference parameters: %v", err))
	}

	found, err := h.Newsletter.UpdatePreferences(c.Context(), input.Email, input.Preferences)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	if !found {
		return errors.RaiseNotFoundError(c, fmt.Sprintf("%v is not subscribed", input.Email))
	}
	return ok(c, "preferences updated", nil)
}

func (h *Handler) GetSubscribers(c *fiber.Ctx) error {
	subs, err := h.Newsletter.List(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, fmt.Sprintf("%d subscribers", len(subs)), subs)
}

func (h *Handler) GetNewsletterStats(c *fiber.Ctx) error {
	stats, err := h.Newsletter.Stats(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "newsletter stats", stats)
}

func (h *Handler) GetAnnouncements(c *fiber.Ctx) error {
	announcements, err := h.Newsletter.Announcements(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "announcements", announcements)
}
