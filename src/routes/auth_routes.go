package routes

import (
	"Backend-Pesquisa/src/controllers"
	"Backend-Pesquisa/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.Refresh)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
