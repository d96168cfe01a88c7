package routes

import (
	"Backend-Pesquisa/src/controllers"
	"Backend-Pesquisa/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func companyRoutes(router fiber.Router) {
	companies := router.Group("/companies", middleware.AuthJWT)

	companies.Post("/", controllers.CreateCompany)
	companies.Get("/", controllers.GetCompanies)
	companies.Put("/:id", controllers.UpdateCompany)
	companies.Delete("/:id", controllers.DeleteCompany)
}
