package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"venue-webapp/errors"
	"venue-webapp/model"
)

const IdentityKey = "identity"

func Authorize(signingKey string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(signingKey),
		ErrorHandler: jwtError,
		ContextKey:   IdentityKey,
	})
}

// RequireAdmin must run after Authorize.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return errors.RaisePermissionsError(c, "only admin can perform this operation")
		}
		return c.Next()
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

func claims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals(IdentityKey).(*jwt.Token)
	if !ok {
		return nil
	}
	mapClaims, _ := token.Claims.(jwt.MapClaims)
	return mapClaims
}

// UserID returns the subject of the request's token, or "" when the request
// is anonymous.
func UserID(c *fiber.Ctx) string {
	sub, _ := claims(c)["sub"].(string)
	return sub
}

func IsAdmin(c *fiber.Ctx) bool {
	role, _ := claims(c)["role"].(string)
	return role == model.RoleAdmin
}
