package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/middleware"
	"venue-webapp/model"
)

func (h *Handler) GetProducts(c *fiber.Ctx) error {
	return ok(c, "products", h.Shop.Products(c.Query("category")))
}

func (h *Handler) GetCategories(c *fiber.Ctx) error {
	return ok(c, "categories", h.Shop.Categories())
}

func (h *Handler) GetCart(c *fiber.Ctx) error {
	cart, err := h.Shop.Cart(c.Context(), middleware.UserID(c))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "cart", cart)
}

func (h *Handler) AddToCart(c *fiber.Ctx) error {
	add := new(model.CartAddition)
	if err := c.BodyParser(add); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable cart parameters: %v", err))
	}

	cart, err := h.Shop.AddToCart(c.Context(), middleware.UserID(c), *add)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "item added", cart)
}

func (h *Handler) RemoveFromCart(c *fiber.Ctx) error {
	cart, err := h.Shop.RemoveFromCart(c.Context(), middleware.UserID(c), c.Params("cartId"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "item removed", cart)
}

func (h *Handler) ClearCart(c *fiber.Ctx) error {
	cart, err := h.Shop.ClearCart(c.Context(), middleware.UserID(c))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "cart cleared", cart)
}
