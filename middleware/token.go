package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"venue-webapp/model"
)

const TokenLifetime = time.Hour * 8

// IssueToken signs an HS256 token identifying user.
func IssueToken(signingKey string, user model.User, now time.Time) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = user.Id
	claims["email"] = user.Email
	claims["role"] = user.Role
	claims["exp"] = now.Add(TokenLifetime).Unix()

	return token.SignedString([]byte(signingKey))
}
