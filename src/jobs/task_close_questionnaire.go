package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Pesquisa/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleCloseQuestionnaireTask unpublishes a questionnaire at its scheduled
// end date. A questionnaire deleted or already unpublished in the meantime is
// not an error; the task just completes.
func HandleCloseQuestionnaireTask(ctx context.Context, t *asynq.Task) error {
	var payload QuestionnairePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.QuestionnaireID)
	if err != nil {
		return err
	}

	collection := database.GetCollection(database.DBName, "questionnaires")

	var form bson.M
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("Questionnaire not found. Possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		return err
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"published": false}},
	)
	if err == nil {
		log.Println("Questionnaire auto-closed at end date:", id.Hex())
	}
	return err
}
