package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"venue-webapp/store"
)

func RaiseError(context *fiber.Ctx, status int, message string, data interface{}) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data interface{}) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

func RaiseConflictError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusConflict, "conflict", data)
}

// RaiseStoreError maps an error returned by the store package to a response.
func RaiseStoreError(context *fiber.Ctx, err error) error {
	var validationErr *store.ValidationError
	switch {
	case stderrors.As(err, &validationErr):
		return RaiseBadRequestError(context, validationErr.Fields)
	case stderrors.Is(err, store.ErrInvalidInput):
		return RaiseBadRequestError(context, err.Error())
	case stderrors.Is(err, store.ErrNotFound):
		return RaiseNotFoundError(context, err.Error())
	case stderrors.Is(err, store.ErrInvalidCredentials):
		return RaiseError(context, fiber.StatusUnauthorized, "invalid credentials", nil)
	case stderrors.Is(err, store.ErrAlreadyExists),
		stderrors.Is(err, store.ErrConflict),
		stderrors.Is(err, store.ErrSoldOut),
		stderrors.Is(err, store.ErrInsufficientCapacity),
		stderrors.Is(err, store.ErrInvalidTransition),
		stderrors.Is(err, store.ErrOutOfStock):
		return RaiseConflictError(context, err.Error())
	case stderrors.Is(err, store.ErrUnsupportedMediaType):
		return RaiseError(context, fiber.StatusUnsupportedMediaType, "unsupported media type", err.Error())
	case stderrors.Is(err, store.ErrMediaTooLarge):
		return RaiseError(context, fiber.StatusRequestEntityTooLarge, "media file too large", err.Error())
	}
	return RaiseInternalServerError(context, err.Error())
}
