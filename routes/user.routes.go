package routes

import (
	"BEARSTY_server/middlewares"
	"BEARSTY_server/schemas"
	"BEARSTY_server/services"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(api fiber.Router, svc *services.Service) {
	users := api.Group("/users")

	users.Post("/", chain(jsonBody(middlewares.Rules{}), svc.CreateUser)...)
	users.Get("/", chain(noBody, svc.GetUsers)...)
	users.Patch("/", chain(jsonBody(middlewares.Rules{Required: []string{"request_method"}}), svc.RefreshUsers)...)

	users.Get("/:id", chain(noBody, svc.GetUser)...)
	users.Put("/:id", chain(jsonBody(middlewares.Rules{Required: schemas.UserMutableFields}), svc.UpdateUser)...)
	users.Patch("/:id", chain(jsonBody(middlewares.Rules{AtLeastOne: schemas.UserMutableFields}), svc.UpdateUser)...)
	users.Delete("/:id", chain(noBody, svc.DeleteUser)...)

	users.Patch("/:userID/users/:friendID", chain(noBody, svc.AddFriend)...)
	users.Delete("/:userID/users/:friendID", chain(noBody, svc.RemoveFriend)...)
}
