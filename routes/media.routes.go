package routes

import (
	"BEARSTY_server/middlewares"
	"BEARSTY_server/services"

	"github.com/gofiber/fiber/v2"
)

func mediaRoutes(api fiber.Router, svc *services.Service) {
	api.Put("/arts/:id/image", middlewares.AcceptJSON, svc.UploadArtImage)
	api.Put("/galleries/:id/profile", middlewares.AcceptJSON, svc.UploadGalleryProfile)
	api.Put("/users/:id/profile", middlewares.AcceptJSON, svc.UploadUserProfile)
}
