package questionnaires

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/jobs"
	"Backend-Pesquisa/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("questionnaire not found")

// ErrInvalidDraft wraps the field errors produced by Editor.Validate so the
// controller can return them without a storage call having been made.
type ErrInvalidDraft struct {
	Fields []models.FieldError
}

func (e *ErrInvalidDraft) Error() string { return "questionnaire draft failed validation" }

// Save validates the editor draft and persists it: an insert when the draft
// has no identity yet, a full replace of questionnaire and questions
// otherwise. On success the returned document carries the server-assigned
// identities; on any storage failure nothing about the draft is touched, so
// the caller can retry as-is.
func Save(ctx context.Context, ed *Editor) (*models.QuestionnaireWithQuestions, error) {
	if fieldErrs := ed.Validate(); len(fieldErrs) > 0 {
		return nil, &ErrInvalidDraft{Fields: fieldErrs}
	}

	doc := ed.Document()
	now := time.Now()
	doc.UpdatedAt = now

	if doc.ID.IsZero() {
		doc.CreatedAt = now
		doc.Published = false
		return insert(ctx, doc)
	}
	return update(ctx, doc)
}

func insert(ctx context.Context, doc *models.QuestionnaireWithQuestions) (*models.QuestionnaireWithQuestions, error) {
	res, err := database.QuestionnaireCollection.InsertOne(ctx, doc.Questionnaire)
	if err != nil {
		return nil, err
	}
	doc.Questionnaire.ID = res.InsertedID.(primitive.ObjectID)

	if err := replaceQuestions(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func update(ctx context.Context, doc *models.QuestionnaireWithQuestions) (*models.QuestionnaireWithQuestions, error) {
	res, err := database.QuestionnaireCollection.UpdateOne(ctx,
		bson.M{"_id": doc.Questionnaire.ID},
		bson.M{"$set": bson.M{
			"title":       doc.Title,
			"description": doc.Description,
			"companyId":   doc.CompanyID,
			"updatedAt":   doc.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	if err := replaceQuestions(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// replaceQuestions rewrites the question set of a questionnaire. Questions
// without an identity get one here, which is how a duplicated question
// becomes a new entity on save.
func replaceQuestions(ctx context.Context, doc *models.QuestionnaireWithQuestions) error {
	formID := doc.Questionnaire.ID

	if _, err := database.QuestionCollection.DeleteMany(ctx, bson.M{"questionnaireId": formID}); err != nil {
		return err
	}

	if len(doc.Questions) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(doc.Questions))
	for i := range doc.Questions {
		q := &doc.Questions[i]
		if q.ID.IsZero() {
			q.ID = primitive.NewObjectID()
		}
		q.QuestionnaireID = formID
		docs = append(docs, *q)
	}

	_, err := database.QuestionCollection.InsertMany(ctx, docs)
	return err
}

// GetByID loads a questionnaire with its questions sorted by order. Orders
// coming back from storage are renumbered when gaps or duplicates are
// detected rather than trusted.
func GetByID(ctx context.Context, id primitive.ObjectID) (*models.QuestionnaireWithQuestions, error) {
	var form models.Questionnaire
	err := database.QuestionnaireCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	questions, err := questionsFor(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.QuestionnaireWithQuestions{
		Questionnaire: form,
		Questions:     questions,
	}, nil
}

// GetAll lists questionnaires with pagination, newest first, optionally
// filtered by a title search.
func GetAll(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := database.QuestionnaireCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := database.QuestionnaireCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := make([]models.Questionnaire, 0)
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(forms, total, params), nil
}

// Delete removes a questionnaire and everything hanging off it. Irreversible.
func Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := database.QuestionnaireCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	if _, err := database.QuestionCollection.DeleteMany(ctx, bson.M{"questionnaireId": id}); err != nil {
		return err
	}
	_, err = database.InviteCollection.DeleteMany(ctx, bson.M{"questionnaireId": id})
	return err
}

// Publish makes a questionnaire the active public one. Only a single
// questionnaire may be published at a time, so any previously published one
// is unset first. When endsAt is given, an auto-close task is scheduled.
func Publish(ctx context.Context, id primitive.ObjectID, endsAt *time.Time) error {
	var form models.Questionnaire
	if err := database.QuestionnaireCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}

	if _, err := database.QuestionnaireCollection.UpdateMany(ctx,
		bson.M{"published": true},
		bson.M{"$set": bson.M{"published": false}},
	); err != nil {
		return err
	}

	updateDoc := bson.M{"published": true, "updatedAt": time.Now()}
	if endsAt != nil {
		updateDoc["endsAt"] = *endsAt
	}
	if _, err := database.QuestionnaireCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	); err != nil {
		return err
	}

	if endsAt != nil && database.AsynqClient != nil {
		task, err := jobs.NewCloseQuestionnaireTask(id.Hex())
		if err != nil {
			return err
		}
		if _, err := database.AsynqClient.Enqueue(task, asynq.ProcessAt(*endsAt)); err != nil {
			log.Println("Failed to enqueue close task:", err)
		}
	}

	return nil
}

// Unpublish takes the questionnaire off the public respond page.
func Unpublish(ctx context.Context, id primitive.ObjectID) error {
	res, err := database.QuestionnaireCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"published": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetPublished returns the active questionnaire in its respondent view:
// questions in ascending order, option lists decoded, with the empty-list
// fallback applied per question.
func GetPublished(ctx context.Context) (*models.PublicQuestionnaire, error) {
	var form models.Questionnaire
	err := database.QuestionnaireCollection.FindOne(ctx, bson.M{"published": true}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	questions, err := questionsFor(ctx, form.ID)
	if err != nil {
		return nil, err
	}

	pub := &models.PublicQuestionnaire{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Questions:   make([]models.PublicQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		pub.Questions = append(pub.Questions, models.PublicQuestion{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Type:    q.Type,
			Options: DecodeOptions(q.Options),
			Order:   q.Order,
		})
	}
	return pub, nil
}

// QuestionsFor exposes the sorted question list to sibling services.
func QuestionsFor(ctx context.Context, formID primitive.ObjectID) ([]models.Question, error) {
	return questionsFor(ctx, formID)
}

func questionsFor(ctx context.Context, formID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := database.QuestionCollection.Find(ctx, bson.M{"questionnaireId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := make([]models.Question, 0)
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	renumberLoaded(questions)
	return questions, nil
}

// renumberLoaded restores the 1..N invariant on questions read from storage.
// The list is already sorted by the stored order; position wins over any
// stale value.
func renumberLoaded(questions []models.Question) {
	for i := range questions {
		questions[i].Order = i + 1
	}
}
