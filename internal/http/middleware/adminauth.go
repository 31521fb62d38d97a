package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// adminRealm is advertised in the WWW-Authenticate challenge.
const adminRealm = "admin"

// AdminAuth gates admin routes behind HTTP Basic auth against a single
// shared password. Any username is accepted; only the password is compared,
// in constant time. There are no sessions or tokens; every protected
// request re-authenticates from scratch.
func AdminAuth(password string) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: adminRealm,
		Authorizer: func(_, pass string) bool {
			return subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="`+adminRealm+`"`)
			return fiber.ErrUnauthorized
		},
	})
}
