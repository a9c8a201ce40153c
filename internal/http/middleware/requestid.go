package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID ensures every request has a request ID.
//
// An incoming X-Request-ID is kept unless it is longer than 128 bytes; otherwise a UUID is generated.
// The id is stored in locals under RequestIDLocalKey, echoed in the response header, and attached
// to a child of base placed on the request's user context, so zerolog.Ctx(ctx) in services and
// repositories logs it.
func RequestID(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		l := base.With().Str(RequestIDLocalKey, id).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		return c.Next()
	}
}
