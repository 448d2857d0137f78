package auth

import (
	"time"

	"mercato/globals"
	"mercato/middleware"
	"mercato/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 30 * time.Hour

// sessionsHash is the redis hash caching the active token per user.
const sessionsHash = "sessions"

func generateToken(u models.User) (string, error) {
	claims := &middleware.Claims{
		Name:   u.Name,
		UserID: u.UserID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
