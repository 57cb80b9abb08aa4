package routes

import (
	"BEARSTY_server/middlewares"
	"BEARSTY_server/schemas"
	"BEARSTY_server/services"

	"github.com/gofiber/fiber/v2"
)

func artRoutes(api fiber.Router, svc *services.Service) {
	arts := api.Group("/arts")

	arts.Post("/", chain(jsonBody(middlewares.Rules{}), svc.CreateArt)...)
	arts.Get("/", chain(noBody, svc.GetArts)...)

	arts.Get("/:id", chain(noBody, svc.GetArt)...)
	arts.Put("/:id", chain(jsonBody(middlewares.Rules{Required: schemas.ArtMutableFields}), svc.UpdateArt)...)
	arts.Patch("/:id", chain(jsonBody(middlewares.Rules{AtLeastOne: schemas.ArtMutableFields}), svc.UpdateArt)...)
	arts.Delete("/:id", chain(noBody, svc.DeleteArt)...)

	arts.Get("/:id/galleries", chain(noBody, svc.GetArtGalleries)...)
}
