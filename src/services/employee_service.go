package services

import (
	"context"
	"errors"

	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCodeTaken        = errors.New("access code is already in use")
)

// CreateEmployee registers a respondent. When no access code is given a
// random one is generated; codes must be unique across all employees.
func CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if err := validate.Struct(employee); err != nil {
		return nil, err
	}
	if err := companyExists(ctx, employee.CompanyID); err != nil {
		return nil, err
	}

	if employee.Code == "" {
		employee.Code = utils.GenerateRandomString(8)
	}

	count, err := database.EmployeeCollection.CountDocuments(ctx, bson.M{"code": employee.Code})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeTaken
	}

	res, err := database.EmployeeCollection.InsertOne(ctx, employee)
	if err != nil {
		return nil, err
	}
	employee.ID = res.InsertedID.(primitive.ObjectID)
	return employee, nil
}

func GetEmployees(ctx context.Context, companyID *primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if companyID != nil {
		filter["companyId"] = *companyID
	}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.EmployeeCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := database.EmployeeCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := make([]models.Employee, 0)
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(employees, total, params), nil
}

func UpdateEmployee(ctx context.Context, id primitive.ObjectID, employee *models.Employee) error {
	if err := validate.Struct(employee); err != nil {
		return err
	}

	res, err := database.EmployeeCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":      employee.Name,
			"companyId": employee.CompanyID,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func DeleteEmployee(ctx context.Context, id primitive.ObjectID) error {
	res, err := database.EmployeeCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
