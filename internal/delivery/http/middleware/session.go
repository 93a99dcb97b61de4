package middleware

import (
	"time"

	"video-platform/internal/domain/entities"
	"video-platform/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const identityKey = "identity"

// ResolveSession is the single place anonymous identity is established.
// With mint=true a missing cookie gets a fresh HTTP-only token; read-only
// routes pass mint=false and simply see an empty token.
func ResolveSession(mint bool, maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident := IdentityFrom(c)

		token := c.Cookies(constants.SessionCookieName)
		if token == "" && mint && !ident.Authenticated() {
			token = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     constants.SessionCookieName,
				Value:    token,
				HTTPOnly: true,
				Path:     "/",
				Expires:  time.Now().Add(maxAge),
			})
		}
		ident.SessionToken = token

		c.Locals(identityKey, ident)
		return c.Next()
	}
}

func IdentityFrom(c *fiber.Ctx) entities.Identity {
	if ident, ok := c.Locals(identityKey).(entities.Identity); ok {
		return ident
	}
	return entities.Identity{}
}

func setIdentity(c *fiber.Ctx, ident entities.Identity) {
	c.Locals(identityKey, ident)
}
