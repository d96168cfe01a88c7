package controllers

import (
	"context"
	"strconv"
	"time"

	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/services/questionnaires"
	"Backend-Pesquisa/src/services/responses"
	"Backend-Pesquisa/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type validateAccessIn struct {
	QuestionnaireID string `json:"questionnaireId"`
	AccessCode      string `json:"accessCode"`
}

// ValidateAccess godoc
// @Summary      Validate a respondent access code
// @Description  Unauthenticated. Grants a short-lived response token for the published questionnaire.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body body validateAccessIn true "Questionnaire ID and access code"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /access/validate [post]
func ValidateAccess(c *fiber.Ctx) error {
	var in validateAccessIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := responses.ValidateAccess(ctx, in.QuestionnaireID, in.AccessCode)
	if err != nil {
		return accessError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Access granted",
		"accessToken": token,
	})
}

// SubmitPublicResponses godoc
// @Summary      Submit a complete response set
// @Description  Unauthenticated. Accepts all answers at once; every question must be answered.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body body models.PublicSubmissionRequest true "Answers keyed by question ID plus a credential"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /responses/public [post]
func SubmitPublicResponses(c *fiber.Ctx) error {
	var in models.PublicSubmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	submission, err := responses.SubmitPublic(ctx, &in)
	if err != nil {
		switch err {
		case responses.ErrIncomplete:
			return utils.HandleError(c, fiber.StatusBadRequest, "Answer all questions before submitting")
		case responses.ErrUnavailable, responses.ErrInvalidCode, responses.ErrInvalidToken,
			responses.ErrInviteUsed, responses.ErrAlreadyResponded, responses.ErrNoCredential:
			return accessError(c, err)
		default:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}

// GetSubmissions godoc
// @Summary      List submissions for a questionnaire
// @Tags         questionnaires
// @Produce      json
// @Param        id     path   string  true   "Questionnaire ID"
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/submissions [get]
func GetSubmissions(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := responses.GetSubmissions(ctx, id, params)
	if err != nil {
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// accessError maps access-gating failures to the right status with the
// human-readable reason preserved.
func accessError(c *fiber.Ctx, err error) error {
	switch err {
	case responses.ErrUnavailable:
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case responses.ErrAlreadyResponded, responses.ErrInviteUsed:
		return utils.HandleError(c, fiber.StatusForbidden, err.Error())
	case responses.ErrInvalidCode, responses.ErrInvalidToken, responses.ErrNoCredential:
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to validate access")
	}
}
