package routes

import (
	"BEARSTY_server/services"

	"github.com/gofiber/fiber/v2"
)

func publicRoutes(api fiber.Router, svc *services.Service) {
	api.Get("/", chain(noBody, svc.Health)...)
}
