package routes

import (
	"BEARSTY_server/config"
	"BEARSTY_server/errors"
	"BEARSTY_server/middlewares"
	"BEARSTY_server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// noBody is the chain of endpoints without a request body
var noBody = []fiber.Handler{middlewares.AcceptJSON, middlewares.RejectBody}

// jsonBody is the chain of endpoints taking a JSON object
func jsonBody(rules middlewares.Rules) []fiber.Handler {
	return []fiber.Handler{middlewares.AcceptJSON, middlewares.ContentTypeJSON, middlewares.JSONBody(rules)}
}

func chain(handlers []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	return append(append([]fiber.Handler(nil), handlers...), handler)
}

// SetRoutes sets all routes of server
func SetRoutes(app *fiber.App, svc *services.Service, cfg config.JSONConfig) {
	app.Use(recover.New())
	app.Use(middlewares.RequestID)
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Origin,
	}))

	publicRoutes(app, svc)
	userRoutes(app, svc)
	artRoutes(app, svc)
	galleryRoutes(app, svc)
	if svc.Media != nil {
		mediaRoutes(app, svc)
	}

	app.Use(func(c *fiber.Ctx) error {
		return errors.HandleNotFoundError(c)
	})
}
