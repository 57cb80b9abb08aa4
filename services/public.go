package services

import (
	"BEARSTY_server/schemas"

	"github.com/gofiber/fiber/v2"
)

// Health reports that the server is up
func (s *Service) Health(c *fiber.Ctx) error {
	return c.JSON(schemas.StatusResponse{Status: "ok"})
}
