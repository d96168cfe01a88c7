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

// CreateEmployee godoc
// @Summary      Register an employee
// @Description  Creates a respondent. A unique access code is generated when none is given.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body body models.Employee true "Employee"
// @Success      201  {object}  models.Employee
// @Failure      400  {object}  models.ErrorResponse
// @Router       /employees [post]
func CreateEmployee(c *fiber.Ctx) error {
	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := services.CreateEmployee(ctx, &employee)
	if err != nil {
		if err == services.ErrCodeTaken {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetEmployees godoc
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        page      query  int     false  "Page number" default(1)
// @Param        limit     query  int     false  "Items per page" default(10)
// @Param        search    query  string  false  "Name search"
// @Param        companyId query  string  false  "Filter by company"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /employees [get]
func GetEmployees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)

	var companyID *primitive.ObjectID
	if hex := c.Query("companyId"); hex != "" {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid companyId")
		}
		companyID = &id
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := services.GetEmployees(ctx, companyID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// UpdateEmployee godoc
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id   path  string          true  "Employee ID"
// @Param        body body  models.Employee true  "Employee"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /employees/{id} [put]
func UpdateEmployee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid employee ID")
	}

	var employee models.Employee
	if err := c.BodyParser(&employee); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := services.UpdateEmployee(ctx, id, &employee); err != nil {
		if err == services.ErrEmployeeNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Employee not found")
		}
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee updated"})
}

// DeleteEmployee godoc
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "Employee ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /employees/{id} [delete]
func DeleteEmployee(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid employee ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := services.DeleteEmployee(ctx, id); err != nil {
		if err == services.ErrEmployeeNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Employee not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Employee deleted"})
}
