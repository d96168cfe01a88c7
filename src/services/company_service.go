package services

import (
	"context"
	"errors"

	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var ErrCompanyNotFound = errors.New("company not found")

func CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := validate.Struct(company); err != nil {
		return nil, err
	}

	res, err := database.CompanyCollection.InsertOne(ctx, company)
	if err != nil {
		return nil, err
	}
	company.ID = res.InsertedID.(primitive.ObjectID)
	return company, nil
}

func GetCompanies(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.CompanyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := database.CompanyCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	companies := make([]models.Company, 0)
	if err = cursor.All(ctx, &companies); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(companies, total, params), nil
}

func UpdateCompany(ctx context.Context, id primitive.ObjectID, company *models.Company) error {
	if err := validate.Struct(company); err != nil {
		return err
	}

	res, err := database.CompanyCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": company.Name, "cnpj": company.CNPJ}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func DeleteCompany(ctx context.Context, id primitive.ObjectID) error {
	res, err := database.CompanyCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func companyExists(ctx context.Context, id primitive.ObjectID) error {
	err := database.CompanyCollection.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrCompanyNotFound
	}
	return err
}
