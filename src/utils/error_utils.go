package utils

import (
	"Backend-Pesquisa/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleValidationError returns a 400 carrying one message per offending
// field. No persisted state has changed when this is sent.
func HandleValidationError(c *fiber.Ctx, fields []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: "validation failed",
		Errors:  fields,
	})
}
