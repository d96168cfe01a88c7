package routes

import (
	"Backend-Pesquisa/src/controllers"
	"Backend-Pesquisa/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func employeeRoutes(router fiber.Router) {
	employees := router.Group("/employees", middleware.AuthJWT)

	employees.Post("/", controllers.CreateEmployee)
	employees.Get("/", controllers.GetEmployees)
	employees.Put("/:id", controllers.UpdateEmployee)
	employees.Delete("/:id", controllers.DeleteEmployee)
}
