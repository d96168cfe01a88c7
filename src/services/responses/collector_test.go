package responses

import (
	"context"
	"errors"
	"testing"

	"Backend-Pesquisa/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeGateway records calls and returns scripted results.
type fakeGateway struct {
	validateCalls int
	submitCalls   int

	validateErr error
	submitErr   error

	token   string
	lastReq models.PublicSubmissionRequest
}

func (f *fakeGateway) ValidateAccess(ctx context.Context, questionnaireID, accessCode string) (string, error) {
	f.validateCalls++
	if f.validateErr != nil {
		return "", f.validateErr
	}
	return f.token, nil
}

func (f *fakeGateway) SubmitResponses(ctx context.Context, req models.PublicSubmissionRequest) error {
	f.submitCalls++
	f.lastReq = req
	return f.submitErr
}

func publicForm(questionCount int) *models.PublicQuestionnaire {
	form := &models.PublicQuestionnaire{
		ID:    primitive.NewObjectID(),
		Title: "Pesquisa",
	}
	for i := 0; i < questionCount; i++ {
		form.Questions = append(form.Questions, models.PublicQuestion{
			ID:     primitive.NewObjectID(),
			Prompt: "q",
			Type:   models.QuestionShortText,
			Order:  i + 1,
		})
	}
	return form
}

func TestAuthorizeHappyPath(t *testing.T) {
	gw := &fakeGateway{token: "tok-1"}
	c := NewCollector(gw, publicForm(1))

	assert.Equal(t, StateUnauthorized, c.State())
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))
	assert.Equal(t, StateAuthorized, c.State())
	assert.Equal(t, 1, gw.validateCalls)

	// Re-authorizing an authorized session is a no-op.
	assert.NoError(t, c.Authorize(context.Background(), "other"))
	assert.Equal(t, 1, gw.validateCalls)
}

func TestAuthorizeEmptyCode(t *testing.T) {
	gw := &fakeGateway{}
	c := NewCollector(gw, publicForm(1))

	assert.ErrorIs(t, c.Authorize(context.Background(), ""), ErrEmptyCode)
	assert.Equal(t, StateUnauthorized, c.State())
	assert.Equal(t, 0, gw.validateCalls)
}

func TestInvalidCodeStaysUnauthorized(t *testing.T) {
	gw := &fakeGateway{validateErr: ErrInvalidCode}
	c := NewCollector(gw, publicForm(1))

	err := c.Authorize(context.Background(), "WRONG")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Equal(t, StateUnauthorized, c.State())

	assert.ErrorIs(t, c.Record("x", "y"), ErrNotAuthorized)
	assert.ErrorIs(t, c.Submit(context.Background()), ErrNotAuthorized)
	assert.Equal(t, 0, gw.submitCalls)

	// The respondent may retry with a valid code.
	gw.validateErr = nil
	assert.NoError(t, c.Authorize(context.Background(), "RIGHT"))
	assert.Equal(t, StateAuthorized, c.State())
}

func TestProgressIsRoundedPercentage(t *testing.T) {
	form := publicForm(4)
	c := NewCollector(&fakeGateway{}, form)
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))

	assert.Equal(t, 0, c.Progress())

	assert.NoError(t, c.Record(form.Questions[0].ID.Hex(), "a"))
	assert.NoError(t, c.Record(form.Questions[1].ID.Hex(), "b"))
	assert.Equal(t, 50, c.Progress())

	// Re-recording the same question does not double count.
	assert.NoError(t, c.Record(form.Questions[1].ID.Hex(), "b2"))
	assert.Equal(t, 50, c.Progress())

	assert.NoError(t, c.Record(form.Questions[2].ID.Hex(), "c"))
	assert.Equal(t, 75, c.Progress())

	// Answers for unknown question ids never count.
	assert.NoError(t, c.Record("not-a-question", "z"))
	assert.Equal(t, 75, c.Progress())
}

func TestProgressOnEmptyForm(t *testing.T) {
	c := NewCollector(&fakeGateway{}, publicForm(0))
	assert.Equal(t, 0, c.Progress())
}

func TestSubmitRefusedWhileIncomplete(t *testing.T) {
	form := publicForm(3)
	gw := &fakeGateway{}
	c := NewCollector(gw, form)
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))

	assert.NoError(t, c.Record(form.Questions[0].ID.Hex(), "a"))
	assert.NoError(t, c.Record(form.Questions[2].ID.Hex(), "c"))

	assert.ErrorIs(t, c.Submit(context.Background()), ErrIncomplete)
	assert.Equal(t, 0, gw.submitCalls, "incomplete submit must not reach the gateway")
	assert.Equal(t, StateAuthorized, c.State())
}

func TestSubmitHappyPath(t *testing.T) {
	form := publicForm(2)
	gw := &fakeGateway{token: "tok-1"}
	c := NewCollector(gw, form)
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))
	assert.NoError(t, c.Record(form.Questions[0].ID.Hex(), "first"))
	assert.NoError(t, c.Record(form.Questions[1].ID.Hex(), "second"))

	assert.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, StateCompleted, c.State())
	assert.Equal(t, 1, gw.submitCalls)
	assert.Equal(t, form.ID.Hex(), gw.lastReq.QuestionnaireID)
	assert.Equal(t, "EMP42", gw.lastReq.AccessCode)
	assert.Equal(t, "tok-1", gw.lastReq.AccessToken)
	assert.Equal(t, "first", gw.lastReq.Answers[form.Questions[0].ID.Hex()])
}

func TestCompletedIsTerminal(t *testing.T) {
	form := publicForm(1)
	gw := &fakeGateway{}
	c := NewCollector(gw, form)
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))
	assert.NoError(t, c.Record(form.Questions[0].ID.Hex(), "done"))
	assert.NoError(t, c.Submit(context.Background()))

	assert.ErrorIs(t, c.Submit(context.Background()), ErrCompleted)
	assert.ErrorIs(t, c.Record(form.Questions[0].ID.Hex(), "again"), ErrCompleted)
	assert.ErrorIs(t, c.Authorize(context.Background(), "EMP42"), ErrCompleted)
	assert.Equal(t, 1, gw.submitCalls)
}

func TestFailedSubmitKeepsAnswers(t *testing.T) {
	form := publicForm(2)
	transport := errors.New("connection reset")
	gw := &fakeGateway{submitErr: transport}
	c := NewCollector(gw, form)
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))
	assert.NoError(t, c.Record(form.Questions[0].ID.Hex(), "a"))
	assert.NoError(t, c.Record(form.Questions[1].ID.Hex(), "b"))

	assert.ErrorIs(t, c.Submit(context.Background()), transport)
	assert.Equal(t, StateAuthorized, c.State())
	assert.Equal(t, map[string]string{
		form.Questions[0].ID.Hex(): "a",
		form.Questions[1].ID.Hex(): "b",
	}, c.Answers())

	// Retry succeeds without re-entering anything.
	gw.submitErr = nil
	assert.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, StateCompleted, c.State())
	assert.Equal(t, 2, gw.submitCalls)
}

func TestAnswersReturnsACopy(t *testing.T) {
	form := publicForm(1)
	c := NewCollector(&fakeGateway{}, form)
	assert.NoError(t, c.Authorize(context.Background(), "EMP42"))
	qid := form.Questions[0].ID.Hex()
	assert.NoError(t, c.Record(qid, "original"))

	snapshot := c.Answers()
	snapshot[qid] = "mutated"
	assert.Equal(t, "original", c.Answers()[qid])
}
