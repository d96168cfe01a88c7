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

// CreateCompany godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body body models.Company true "Company"
// @Success      201  {object}  models.Company
// @Failure      400  {object}  models.ErrorResponse
// @Router       /companies [post]
func CreateCompany(c *fiber.Ctx) error {
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := services.CreateCompany(ctx, &company)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetCompanies godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Param        search query  string  false  "Name search"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /companies [get]
func GetCompanies(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.GetCompanies(ctx, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch companies")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// UpdateCompany godoc
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id   path  string         true  "Company ID"
// @Param        body body  models.Company true  "Company"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /companies/{id} [put]
func UpdateCompany(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company ID")
	}

	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := services.UpdateCompany(ctx, id, &company); err != nil {
		if err == services.ErrCompanyNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Company not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Company updated"})
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id  path  string  true  "Company ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /companies/{id} [delete]
func DeleteCompany(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid company ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := services.DeleteCompany(ctx, id); err != nil {
		if err == services.ErrCompanyNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Company not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete company")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Company deleted"})
}
