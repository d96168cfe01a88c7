package routes

import (
	"Backend-Pesquisa/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// responseRoutes are the unauthenticated respondent endpoints.
func responseRoutes(router fiber.Router) {
	router.Post("/access/validate", controllers.ValidateAccess)
	router.Post("/responses/public", controllers.SubmitPublicResponses)
}
