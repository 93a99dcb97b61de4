package middleware

import (
	"strings"

	"video-platform/internal/usecases"
	"video-platform/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// Authenticate rejects requests without a valid bearer token.
func Authenticate(jwtSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := bearerClaims(c, jwtSecret)
		if err != nil {
			return errors.HandleError(c, err)
		}
		applyClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuthenticate picks the user up when a token is present but lets
// anonymous requests through untouched.
func OptionalAuthenticate(jwtSecret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, err := bearerClaims(c, jwtSecret); err == nil {
			applyClaims(c, claims)
		}
		return c.Next()
	}
}

// AdminOnly assumes Authenticate already ran: an authenticated non-admin is
// forbidden, not unauthorized.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := IdentityFrom(c)
		if !ident.IsAdmin {
			return errors.HandleError(c, errors.ErrForbidden("bu alan sadece adminler için"))
		}
		return c.Next()
	}
}

func bearerClaims(c *fiber.Ctx, jwtSecret []byte) (*usecases.Claims, error) {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, errors.ErrUnauthorized("token gerekli")
	}
	return usecases.ParseToken(token, jwtSecret)
}

func applyClaims(c *fiber.Ctx, claims *usecases.Claims) {
	ident := IdentityFrom(c)
	userID := claims.UserID
	ident.UserID = &userID
	ident.Email = claims.Email
	ident.IsAdmin = claims.IsAdmin
	setIdentity(c, ident)
}
