package controllers

import (
	"context"
	"strings"
	"time"

	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/services"
	"Backend-Pesquisa/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Login godoc
// @Summary      Authenticate an admin user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.LoginResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var in models.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.AuthenticateUser(ctx, in.Email, in.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

type refreshIn struct {
	UserID       string `json:"userId"`
	RefreshToken string `json:"refreshToken"`
}

// Refresh godoc
// @Summary      Trade a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body refreshIn true "User ID and refresh token"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func Refresh(c *fiber.Ctx) error {
	var in refreshIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accessToken, err := services.RefreshAccessToken(ctx, in.UserID, in.RefreshToken)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"accessToken": accessToken})
}

// Logout godoc
// @Summary      Revoke the current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	if err := services.Logout(userID, token); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to logout")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}
