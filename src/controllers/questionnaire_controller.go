package controllers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/services/questionnaires"
	"Backend-Pesquisa/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --------- Input DTOs ---------

type questionIn struct {
	ID      string   `json:"id,omitempty"`
	Prompt  string   `json:"prompt"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

type questionnaireIn struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CompanyID   string       `json:"companyId,omitempty"`
	Questions   []questionIn `json:"questions"`
}

// editorFromInput rebuilds the draft editor from the submitted payload so
// every save goes through the same validation and renumbering as the
// interactive editing operations.
func editorFromInput(in *questionnaireIn, id *primitive.ObjectID) (*questionnaires.Editor, error) {
	ed := questionnaires.NewEditor()
	ed.ID = id
	ed.Title = in.Title
	ed.Description = in.Description

	if in.CompanyID != "" {
		companyOID, err := primitive.ObjectIDFromHex(in.CompanyID)
		if err != nil {
			return nil, errors.New("invalid companyId")
		}
		ed.CompanyID = &companyOID
	}

	for _, q := range in.Questions {
		qType := models.QuestionType(q.Type)
		if _, ok := models.TypeInfo(qType); !ok {
			return nil, errors.New("unknown question type: " + q.Type)
		}

		dq := questionnaires.DraftQuestion{
			Prompt:  q.Prompt,
			Type:    qType,
			Options: q.Options,
		}
		if dq.Options == nil {
			dq.Options = []string{}
		}
		if q.ID != "" {
			qOID, err := primitive.ObjectIDFromHex(q.ID)
			if err != nil {
				return nil, errors.New("invalid question id")
			}
			dq.ID = &qOID
		}
		ed.Questions = append(ed.Questions, dq)
	}

	// Position in the submitted list wins over whatever order values the
	// client may still be holding.
	ed.Renumber()
	return ed, nil
}

func saveDraft(c *fiber.Ctx, ed *questionnaires.Editor, createdStatus int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := questionnaires.Save(ctx, ed)
	if err != nil {
		var invalid *questionnaires.ErrInvalidDraft
		if errors.As(err, &invalid) {
			return utils.HandleValidationError(c, invalid.Fields)
		}
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save questionnaire")
	}

	return c.Status(createdStatus).JSON(doc)
}

// CreateQuestionnaire godoc
// @Summary      Create a questionnaire
// @Description  Create a questionnaire with its questions
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        body body questionnaireIn true "Questionnaire and questions"
// @Success      201  {object}  models.QuestionnaireWithQuestions
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires [post]
func CreateQuestionnaire(c *fiber.Ctx) error {
	var in questionnaireIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ed, err := editorFromInput(&in, nil)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return saveDraft(c, ed, fiber.StatusCreated)
}

// UpdateQuestionnaire godoc
// @Summary      Update a questionnaire
// @Description  Replace a questionnaire's fields and question set
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "Questionnaire ID"
// @Param        body body questionnaireIn true "Questionnaire and questions"
// @Success      200  {object}  models.QuestionnaireWithQuestions
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [put]
func UpdateQuestionnaire(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	var in questionnaireIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ed, err := editorFromInput(&in, &id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return saveDraft(c, ed, fiber.StatusOK)
}

// GetQuestionnaires godoc
// @Summary      List questionnaires
// @Description  List questionnaires with pagination and title search
// @Tags         questionnaires
// @Produce      json
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Param        search query  string  false  "Title search"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires [get]
func GetQuestionnaires(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := questionnaires.GetAll(ctx, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questionnaires")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// GetQuestionnaireByID godoc
// @Summary      Get a questionnaire by ID
// @Description  Get a questionnaire with its questions sorted by order
// @Tags         questionnaires
// @Produce      json
// @Param        id  path  string  true  "Questionnaire ID"
// @Success      200  {object}  models.QuestionnaireWithQuestions
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [get]
func GetQuestionnaireByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := questionnaires.GetByID(ctx, id)
	if err != nil {
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questionnaire")
	}

	return c.Status(fiber.StatusOK).JSON(doc)
}

// DeleteQuestionnaire godoc
// @Summary      Delete a questionnaire
// @Description  Delete a questionnaire, its questions and invites. Irreversible.
// @Tags         questionnaires
// @Produce      json
// @Param        id  path  string  true  "Questionnaire ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [delete]
func DeleteQuestionnaire(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := questionnaires.Delete(ctx, id); err != nil {
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete questionnaire")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Questionnaire deleted successfully"})
}

type publishIn struct {
	EndsAt *time.Time `json:"endsAt,omitempty"`
}

// PublishQuestionnaire godoc
// @Summary      Publish a questionnaire
// @Description  Make this questionnaire the active public one, optionally with an end date
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        id   path  string     true   "Questionnaire ID"
// @Param        body body  publishIn  false  "Optional end date"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/publish [post]
func PublishQuestionnaire(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	var in publishIn
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := questionnaires.Publish(ctx, id, in.EndsAt); err != nil {
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to publish questionnaire")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Questionnaire published"})
}

// UnpublishQuestionnaire godoc
// @Summary      Unpublish a questionnaire
// @Tags         questionnaires
// @Produce      json
// @Param        id  path  string  true  "Questionnaire ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/unpublish [post]
func UnpublishQuestionnaire(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid questionnaire ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := questionnaires.Unpublish(ctx, id); err != nil {
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Questionnaire not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to unpublish questionnaire")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Questionnaire unpublished"})
}

// GetPublishedQuestionnaire godoc
// @Summary      Get the active public questionnaire
// @Description  Unauthenticated. Questions come sorted by order with decoded option lists.
// @Tags         public
// @Produce      json
// @Success      200  {object}  models.PublicQuestionnaire
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/published [get]
func GetPublishedQuestionnaire(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pub, err := questionnaires.GetPublished(ctx)
	if err != nil {
		if err == questionnaires.ErrNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "No published questionnaire available")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch questionnaire")
	}

	return c.Status(fiber.StatusOK).JSON(pub)
}
