package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/middleware"
	"venue-webapp/model"
)

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) session(c *fiber.Ctx, status int, message string, user model.User) error {
	// Expiry is checked by the jwt middleware against the wall clock.
	token, err := middleware.IssueToken(h.SigningKey, user, time.Now())
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("failed to issue token: %v", err))
	}
	return respond(c, status, message, fiber.Map{
		"token": token,
		"user":  user.Public()})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	reg := new(model.Registration)
	if err := c.BodyParser(reg); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable registration parameters: %v", err))
	}

	user, err := h.Users.Register(c.Context(), *reg)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return h.session(c, fiber.StatusCreated, "account created", user)
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable login parameters: %v", err))
	}

	user, err := h.Users.Authenticate(c.Context(), input.Email, input.Password)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return h.session(c, fiber.StatusOK, "logged in", user)
}
