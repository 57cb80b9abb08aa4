package routes

import (
	"BEARSTY_server/middlewares"
	"BEARSTY_server/schemas"
	"BEARSTY_server/services"

	"github.com/gofiber/fiber/v2"
)

func galleryRoutes(api fiber.Router, svc *services.Service) {
	galleries := api.Group("/galleries")

	galleries.Post("/", chain(jsonBody(middlewares.Rules{}), svc.CreateGallery)...)
	galleries.Get("/", chain(noBody, svc.GetGalleries)...)

	galleries.Get("/:id", chain(noBody, svc.GetGallery)...)
	galleries.Put("/:id", chain(jsonBody(middlewares.Rules{Required: schemas.GalleryMutableFields}), svc.UpdateGallery)...)
	galleries.Patch("/:id", chain(jsonBody(middlewares.Rules{AtLeastOne: schemas.GalleryMutableFields}), svc.UpdateGallery)...)
	galleries.Delete("/:id", chain(noBody, svc.DeleteGallery)...)

	galleries.Get("/:id/arts", chain(noBody, svc.GetGalleryArts)...)
	galleries.Patch("/:galleryID/arts/:artID", chain(noBody, svc.LinkArt)...)
	galleries.Delete("/:galleryID/arts/:artID", chain(noBody, svc.UnlinkArt)...)
}
