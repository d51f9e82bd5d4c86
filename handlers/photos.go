package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/middleware"
	"venue-webapp/model"
)

func (h *Handler) GetShowPhotos(c *fiber.Ctx) error {
	if _, err := h.Shows.Get(c.Context(), c.Params("id")); err != nil {
		return errors.RaiseStoreError(c, err)
	}

	photos, err := h.Photos.ForShow(c.Context(), c.Params("id"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "show photos", photos)
}

// SubmitPhoto queues a photo for moderation under the caller's account.
func (h *Handler) SubmitPhoto(c *fiber.Ctx) error {
	photo := new(model.ShowPhoto)
	if err := c.BodyParser(photo); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable photo parameters: %v", err))
	}
	photo.ShowId = c.Params("id")
	photo.UploadedBy = middleware.UserID(c)

	saved, err := h.Photos.Submit(c.Context(), *photo)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return respond(c, fiber.StatusCreated, "photo awaiting approval", saved)
}

func (h *Handler) GetPendingPhotos(c *fiber.Ctx) error {
	photos, err := h.Photos.Pending(c.Context())
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, fmt.Sprintf("%d photos pending", len(photos)), photos)
}

func (h *Handler) ApprovePhoto(c *fiber.Ctx) error {
	photo, err := h.Photos.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "photo approved", photo)
}

func (h *Handler) DeletePhoto(c *fiber.Ctx) error {
	if err := h.Photos.Delete(c.Context(), c.Params("id")); err != nil {
		return errors.RaiseStoreError(c, err)
	}
	return ok(c, "entity deleted", fmt.Sprintf("photo with id %v was deleted", c.Params("id")))
}
