package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/events"
	"venue-webapp/middleware"
	"venue-webapp/model"
)

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := h.Users.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "profile", user.Public())
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	patch := new(model.ProfilePatch)
	if err := c.BodyParser(patch); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable profile parameters: %v", err))
	}

	user, err := h.Users.UpdateProfile(c.Context(), middleware.UserID(c), *patch)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "profile updated", user.Public())
}

func (h *Handler) GetFavorites(c *fiber.Ctx) error {
	shows, err := h.Users.Favorites(c.Context(), middleware.UserID(c))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "favorite shows", shows)
}

func (h *Handler) AddFavorite(c *fiber.Ctx) error {
	user, err := h.Users.AddFavorite(c.Context(), middleware.UserID(c), c.Params("showId"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "favorite added", user.Public().Favorites)
}

func (h *Handler) RemoveFavorite(c *fiber.Ctx) error {
	user, err := h.Users.RemoveFavorite(c.Context(), middleware.UserID(c), c.Params("showId"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "favorite removed", user.Public().Favorites)
}

func (h *Handler) GetTickets(c *fiber.Ctx) error {
	history, err := h.Users.Tickets(c.Context(), middleware.UserID(c))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "ticket history", history)
}

type purchaseInput struct {
	ShowId   string `json:"showId"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) PurchaseTickets(c *fiber.Ctx) error {
	input := new(purchaseInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable purchase parameters: %v", err))
	}

	userID := middleware.UserID(c)
	ticket, err := h.Users.PurchaseTickets(c.Context(), userID, input.ShowId, input.Quantity)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	h.publish(c.Context(), events.TopicTicketPurchased, events.TicketPurchased{
		UserId:   userID,
		ShowId:   ticket.ShowId,
		TicketId: ticket.Id,
		Quantity: ticket.Quantity,
	})
	return respond(c, fiber.StatusCreated, "tickets purchased", ticket)
}

func (h *Handler) CancelTicket(c *fiber.Ctx) error {
	ticket, err := h.Users.CancelTicket(c.Context(), middleware.UserID(c), c.Params("ticketId"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "ticket cancelled", ticket)
}

// ToggleNewsletter flips the account flag and keeps the subscriber list in
// step with it.
func (h *Handler) ToggleNewsletter(c *fiber.Ctx) error {
	user, err := h.Users.ToggleNewsletter(c.Context(), middleware.UserID(c))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	if user.NewsletterSubscribed {
		_, err = h.Newsletter.Subscribe(c.Context(), model.NewsletterSubscriber{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	} else {
		_, err = h.Newsletter.Unsubscribe(c.Context(), user.Email)
	}
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "newsletter preference updated", user.Public())
}
