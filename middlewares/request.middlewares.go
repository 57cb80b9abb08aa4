package middlewares

import (
	"BEARSTY_server/errors"
	"BEARSTY_server/global"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/gofiber/fiber/v2"
)

// RequestID tags the request with a nanoid, echoed in X-Request-ID
func RequestID(c *fiber.Ctx) error {
	id, err := nanoid.GenerateString(global.VALID_NANOID_CHAR, 12)
	if err != nil {
		return errors.HandleInternalError(c, "request_id", err.Error())
	}
	c.Locals(errors.RequestIDKey, id)
	c.Set(fiber.HeaderXRequestID, id)
	return c.Next()
}
