package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/errors"
	"venue-webapp/media"
	"venue-webapp/model"
	"venue-webapp/store"
)

// ImageField is the multipart field an admin uploads a show image under.
const ImageField = "image"

func (h *Handler) GetMedia(c *fiber.Ctx) error {
	body, contentType, err := h.Media.Open(c.Context(), c.Params("name"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	// fasthttp closes the stream once the response is written.
	return c.Status(fiber.StatusOK).SendStream(body)
}

// UploadShowImage stores an image for a show and points the show's imageUrl
// at it. A previously uploaded image is removed.
func (h *Handler) UploadShowImage(c *fiber.Ctx) error {
	show, err := h.Shows.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	header, err := c.FormFile(ImageField)
	if err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("missing %q file: %v", ImageField, err))
	}
	if header.Size > media.MaxUploadSize {
		return errors.RaiseStoreError(c, fmt.Errorf("%v is %d bytes: %w", header.Filename, header.Size, store.ErrMediaTooLarge))
	}

	contentType := header.Header.Get(fiber.HeaderContentType)
	name, err := media.NewName(show.Id, contentType)
	if err != nil {
		return errors.RaiseStoreError(c, err)
	}

	file, err := header.Open()
	if err != nil {
		return errors.RaiseInternalServerError(c, fmt.Sprintf("cannot read upload: %v", err))
	}
	defer file.Close()

	if err := h.Media.Save(c.Context(), name, contentType, file); err != nil {
		return errors.RaiseStoreError(c, err)
	}

	url := media.URL(name)
	updated, err := h.Shows.Update(c.Context(), show.Id, model.ShowPatch{ImageUrl: &url})
	if err != nil {
		if delErr := h.Media.Delete(c.Context(), name); delErr != nil {
			h.Log.Warn().Err(delErr).Str("name", name).Msg("orphaned upload")
		}
		return errors.RaiseStoreError(c, err)
	}

	if previous, ok := media.NameFromURL(show.ImageUrl); ok && previous != name {
		if err := h.Media.Delete(c.Context(), previous); err != nil {
			h.Log.Warn().Err(err).Str("name", previous).Msg("previous show image was not removed")
		}
	}
	return respond(c, fiber.StatusCreated, "image uploaded", updated)
}
