package routes

import (
	"Backend-Pesquisa/src/controllers"
	"Backend-Pesquisa/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func inviteRoutes(router fiber.Router) {
	invites := router.Group("/invites")

	// Token validation is public: the respond page resolves the invite
	// before the respondent is authorized.
	invites.Get("/:token", controllers.ValidateInvite)

	invites.Post("/", middleware.AuthJWT, controllers.CreateInvite)
	invites.Get("/", middleware.AuthJWT, controllers.GetInvites)
	invites.Delete("/:id", middleware.AuthJWT, controllers.DeleteInvite)
}
