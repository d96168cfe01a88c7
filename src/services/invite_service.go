package services

import (
	"context"
	"errors"
	"time"

	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrInviteNotFound = errors.New("invite not found")

// CreateInvite issues a single-use response token for one employee on one
// questionnaire. The alternate access strategy next to shared access codes.
func CreateInvite(ctx context.Context, questionnaireID, employeeID primitive.ObjectID) (*models.Invite, error) {
	if err := database.QuestionnaireCollection.FindOne(ctx, bson.M{"_id": questionnaireID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("questionnaire not found")
		}
		return nil, err
	}
	if err := database.EmployeeCollection.FindOne(ctx, bson.M{"_id": employeeID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	invite := &models.Invite{
		Token:           uuid.NewString(),
		QuestionnaireID: questionnaireID,
		EmployeeID:      employeeID,
		CreatedAt:       time.Now(),
	}

	res, err := database.InviteCollection.InsertOne(ctx, invite)
	if err != nil {
		return nil, err
	}
	invite.ID = res.InsertedID.(primitive.ObjectID)
	return invite, nil
}

// GetInviteByToken resolves an invite for the public respond flow. Used
// invites are still returned so the caller can show a precise message.
func GetInviteByToken(ctx context.Context, token string) (*models.Invite, error) {
	var invite models.Invite
	err := database.InviteCollection.FindOne(ctx, bson.M{"token": token}).Decode(&invite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	return &invite, nil
}

func GetInvites(ctx context.Context, questionnaireID *primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if questionnaireID != nil {
		filter["questionnaireId"] = *questionnaireID
	}

	total, err := database.InviteCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := database.InviteCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	invites := make([]models.Invite, 0)
	if err = cursor.All(ctx, &invites); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(invites, total, params), nil
}

func DeleteInvite(ctx context.Context, id primitive.ObjectID) error {
	res, err := database.InviteCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrInviteNotFound
	}
	return nil
}
