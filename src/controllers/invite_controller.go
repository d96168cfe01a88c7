package controllers

import (
	"context"
	"strconv"
	"time"

	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/services"
	"Backend-Pesquisa/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type inviteIn struct {
	QuestionnaireID string `json:"questionnaireId"`
	EmployeeID      string `json:"employeeId"`
}

// CreateInvite godoc
// @Summary      Issue a single-use invite token
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        body body inviteIn true "Questionnaire and employee"
// @Success      201  {object}  models.Invite
// @Failure      400  {object}  models.ErrorResponse
// @Router       /invites [post]
func CreateInvite(c *fiber.Ctx) error {
	var in inviteIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	formID, err := primitive.ObjectIDFromHex(in.QuestionnaireID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaireId")
	}
	employeeID, err := primitive.ObjectIDFromHex(in.EmployeeID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid employeeId")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	invite, err := services.CreateInvite(ctx, formID, employeeID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(invite)
}

// GetInvites godoc
// @Summary      List invites
// @Tags         invites
// @Produce      json
// @Param        page            query  int     false  "Page number" default(1)
// @Param        limit           query  int     false  "Items per page" default(10)
// @Param        questionnaireId query  string  false  "Filter by questionnaire"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /invites [get]
func GetInvites(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))

	var formID *primitive.ObjectID
	if hex := c.Query("questionnaireId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaireId")
		}
		formID = &id
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.GetInvites(ctx, formID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch invites")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// ValidateInvite godoc
// @Summary      Validate an invite token
// @Description  Unauthenticated. Resolves an invite for the public respond flow.
// @Tags         public
// @Produce      json
// @Param        token  path  string  true  "Invite token"
// @Success      200  {object}  models.Invite
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /invites/{token} [get]
func ValidateInvite(c *fiber.Ctx) error {
	token := c.Params("token")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	invite, err := services.GetInviteByToken(ctx, token)
	if err != nil {
		if err == services.ErrInviteNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Invite not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to validate invite")
	}
	if invite.UsedAt != nil {
		return utils.HandleError(c, fiber.StatusForbidden, "Invite has already been used")
	}

	return c.Status(fiber.StatusOK).JSON(invite)
}

// DeleteInvite godoc
// @Summary      Delete an invite
// @Tags         invites
// @Produce      json
// @Param        id  path  string  true  "Invite ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /invites/{id} [delete]
func DeleteInvite(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid invite ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := services.DeleteInvite(ctx, id); err != nil {
		if err == services.ErrInviteNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Invite not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete invite")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Invite deleted"})
}
