package routes

import (
	"Backend-Pesquisa/src/controllers"
	"Backend-Pesquisa/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func questionnaireRoutes(router fiber.Router) {
	forms := router.Group("/questionnaires")

	// The published questionnaire is fetched unauthenticated by the public
	// respond page. Must be registered before "/:id".
	forms.Get("/published", controllers.GetPublishedQuestionnaire)

	forms.Post("/", middleware.AuthJWT, controllers.CreateQuestionnaire)
	forms.Get("/", middleware.AuthJWT, controllers.GetQuestionnaires)
	forms.Get("/:id", middleware.AuthJWT, controllers.GetQuestionnaireByID)
	forms.Put("/:id", middleware.AuthJWT, controllers.UpdateQuestionnaire)
	forms.Delete("/:id", middleware.AuthJWT, controllers.DeleteQuestionnaire)
	forms.Post("/:id/publish", middleware.AuthJWT, controllers.PublishQuestionnaire)
	forms.Post("/:id/unpublish", middleware.AuthJWT, controllers.UnpublishQuestionnaire)
	forms.Get("/:id/submissions", middleware.AuthJWT, controllers.GetSubmissions)
}
