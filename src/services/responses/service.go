package responses

import (
	"context"
	"errors"
	"strconv"
	"time"

	"Backend-Pesquisa/src/database"
	"Backend-Pesquisa/src/models"
	"Backend-Pesquisa/src/services/questionnaires"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const accessTokenTTL = 2 * time.Hour

var (
	ErrUnavailable      = errors.New("no published questionnaire available")
	ErrInvalidCode      = errors.New("invalid access code")
	ErrAlreadyResponded = errors.New("this code has already responded to the questionnaire")
	ErrInvalidToken     = errors.New("invalid or expired access token")
	ErrInviteUsed       = errors.New("invite has already been used")
	ErrNoCredential     = errors.New("an access code, access token or invite token is required")
)

// ValidateAccess checks an employee access code against the published
// questionnaire and, when Redis is available, issues a short-lived response
// token proving the one-time right to answer. Without Redis the code itself
// is revalidated at submit time.
func ValidateAccess(ctx context.Context, questionnaireID, accessCode string) (string, error) {
	formID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return "", ErrUnavailable
	}

	var form models.Questionnaire
	err = database.QuestionnaireCollection.FindOne(ctx,
		bson.M{"_id": formID, "published": true}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrUnavailable
		}
		return "", err
	}

	employee, err := employeeByCode(ctx, &form, accessCode)
	if err != nil {
		return "", err
	}

	if err := ensureNotResponded(ctx, formID, employee.ID); err != nil {
		return "", err
	}

	if database.RedisClient == nil {
		return "", nil
	}

	token := uuid.NewString()
	key := "access_token:" + token
	if err := database.RedisClient.Set(ctx, key, employee.ID.Hex(), accessTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// SubmitPublic accepts one complete response set, atomically. The credential
// is resolved first (invite token, access token or raw code), then every
// answer is checked for completeness and per-type validity before anything is
// written.
func SubmitPublic(ctx context.Context, req *models.PublicSubmissionRequest) (*models.Submission, error) {
	pub, err := questionnaires.GetPublished(ctx)
	if err != nil {
		if err == questionnaires.ErrNotFound {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	if pub.ID.Hex() != req.QuestionnaireID {
		return nil, ErrUnavailable
	}

	var (
		employeeID primitive.ObjectID
		invite     *models.Invite
	)
	switch {
	case req.InviteToken != "":
		invite, err = unusedInvite(ctx, pub.ID, req.InviteToken)
		if err != nil {
			return nil, err
		}
		employeeID = invite.EmployeeID
	case req.AccessToken != "":
		employeeID, err = employeeFromToken(ctx, req.AccessToken)
		if err != nil {
			return nil, err
		}
	case req.AccessCode != "":
		var form models.Questionnaire
		if err := database.QuestionnaireCollection.FindOne(ctx,
			bson.M{"_id": pub.ID}).Decode(&form); err != nil {
			return nil, err
		}
		employee, err := employeeByCode(ctx, &form, req.AccessCode)
		if err != nil {
			return nil, err
		}
		employeeID = employee.ID
	default:
		return nil, ErrNoCredential
	}

	if err := ensureNotResponded(ctx, pub.ID, employeeID); err != nil {
		return nil, err
	}

	if err := validateAnswers(req.Answers, pub.Questions); err != nil {
		return nil, err
	}

	submission := &models.Submission{
		QuestionnaireID: pub.ID,
		EmployeeID:      employeeID,
		Answers:         answersInOrder(req.Answers, pub.Questions),
		SubmittedAt:     time.Now(),
	}

	res, err := database.SubmissionCollection.InsertOne(ctx, submission)
	if err != nil {
		return nil, err
	}
	submission.ID = res.InsertedID.(primitive.ObjectID)

	if invite != nil {
		now := time.Now()
		_, _ = database.InviteCollection.UpdateOne(ctx,
			bson.M{"_id": invite.ID},
			bson.M{"$set": bson.M{"usedAt": now}},
		)
	}
	if req.AccessToken != "" && database.RedisClient != nil {
		_ = database.RedisClient.Del(ctx, "access_token:"+req.AccessToken).Err()
	}

	return submission, nil
}

// GetSubmissions lists a questionnaire's submissions, newest first.
func GetSubmissions(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	var form models.Questionnaire
	err := database.QuestionnaireCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, questionnaires.ErrNotFound
		}
		return nil, err
	}

	filter := bson.M{"questionnaireId": formID}
	total, err := database.SubmissionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, err := database.SubmissionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]models.Submission, 0)
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(submissions, total, params), nil
}

// LiveGateway adapts the service functions to the Gateway interface consumed
// by Collector, so an embedding client can drive a full respondent session
// against real storage.
type LiveGateway struct{}

func (LiveGateway) ValidateAccess(ctx context.Context, questionnaireID, accessCode string) (string, error) {
	return ValidateAccess(ctx, questionnaireID, accessCode)
}

func (LiveGateway) SubmitResponses(ctx context.Context, req models.PublicSubmissionRequest) error {
	_, err := SubmitPublic(ctx, &req)
	return err
}

// --- credential resolution ---

func employeeByCode(ctx context.Context, form *models.Questionnaire, code string) (*models.Employee, error) {
	if code == "" {
		return nil, ErrInvalidCode
	}

	filter := bson.M{"code": code}
	if form.CompanyID != nil {
		filter["companyId"] = *form.CompanyID
	}

	var employee models.Employee
	if err := database.EmployeeCollection.FindOne(ctx, filter).Decode(&employee); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCode
		}
		return nil, err
	}
	return &employee, nil
}

func employeeFromToken(ctx context.Context, token string) (primitive.ObjectID, error) {
	if database.RedisClient == nil {
		return primitive.NilObjectID, ErrInvalidToken
	}

	hex, err := database.RedisClient.Get(ctx, "access_token:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return primitive.NilObjectID, ErrInvalidToken
		}
		return primitive.NilObjectID, err
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}

func unusedInvite(ctx context.Context, formID primitive.ObjectID, token string) (*models.Invite, error) {
	var invite models.Invite
	err := database.InviteCollection.FindOne(ctx,
		bson.M{"token": token, "questionnaireId": formID}).Decode(&invite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if invite.UsedAt != nil {
		return nil, ErrInviteUsed
	}
	return &invite, nil
}

func ensureNotResponded(ctx context.Context, formID, employeeID primitive.ObjectID) error {
	count, err := database.SubmissionCollection.CountDocuments(ctx,
		bson.M{"questionnaireId": formID, "employeeId": employeeID})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadyResponded
	}
	return nil
}

// --- answer validation ---

// validateAnswers enforces the submission precondition: every question has a
// recorded answer and each value fits its question type. Nothing is written
// when this fails.
func validateAnswers(answers map[string]string, questions []models.PublicQuestion) error {
	if len(answers) < len(questions) {
		return ErrIncomplete
	}
	for _, q := range questions {
		value, ok := answers[q.ID.Hex()]
		if !ok {
			return ErrIncomplete
		}
		if err := validateAnswerValue(value, q); err != nil {
			return err
		}
	}
	return nil
}

func validateAnswerValue(value string, q models.PublicQuestion) error {
	info, ok := models.TypeInfo(q.Type)
	if !ok {
		// Unknown types render as free text; accept any non-empty value.
		info = models.QuestionTypeInfo{}
	}

	if value == "" {
		return errors.New("empty answer for question: " + q.Prompt)
	}

	switch {
	case info.Numeric:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return errors.New("numeric value required for question: " + q.Prompt)
		}
	case info.Boolean:
		if value != models.AnswerYes && value != models.AnswerNo {
			return errors.New("yes/no value required for question: " + q.Prompt)
		}
	case info.UsesOptions && len(q.Options) > 0:
		for _, opt := range q.Options {
			if opt == value {
				return nil
			}
		}
		return errors.New("invalid option selected for question: " + q.Prompt)
	}
	return nil
}

// answersInOrder flattens the answer map into the stored form, following the
// questionnaire's question order.
func answersInOrder(answers map[string]string, questions []models.PublicQuestion) []models.Answer {
	out := make([]models.Answer, 0, len(questions))
	for _, q := range questions {
		if value, ok := answers[q.ID.Hex()]; ok {
			out = append(out, models.Answer{QuestionID: q.ID, Value: value})
		}
	}
	return out
}
