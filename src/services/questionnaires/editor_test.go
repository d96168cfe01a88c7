package questionnaires

import (
	"testing"

	"Backend-Pesquisa/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func orders(ed *Editor) []int {
	out := make([]int, 0, len(ed.Questions))
	for _, q := range ed.Questions {
		out = append(out, q.Order)
	}
	return out
}

func TestOrdersStayContiguousAcrossMutations(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()
	ed.AddQuestion()
	ed.AddQuestion()
	ed.AddQuestion()
	assert.Equal(t, []int{1, 2, 3, 4}, orders(ed))

	ed.MoveQuestion(0, +1)
	assert.Equal(t, []int{1, 2, 3, 4}, orders(ed))

	assert.NoError(t, ed.DuplicateQuestion(2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, orders(ed))

	assert.NoError(t, ed.RequestRemove(1))
	ed.ConfirmRemove()
	assert.Equal(t, []int{1, 2, 3, 4}, orders(ed))

	ed.MoveQuestion(3, -1)
	assert.Equal(t, []int{1, 2, 3, 4}, orders(ed))
}

func TestMovePastEitherEndIsANoOp(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()
	ed.AddQuestion()
	first := "first"
	second := "second"
	assert.NoError(t, ed.UpdateQuestion(0, QuestionPatch{Prompt: &first}))
	assert.NoError(t, ed.UpdateQuestion(1, QuestionPatch{Prompt: &second}))

	ed.MoveQuestion(0, -1)
	ed.MoveQuestion(1, +1)

	assert.Equal(t, "first", ed.Questions[0].Prompt)
	assert.Equal(t, "second", ed.Questions[1].Prompt)
	assert.Equal(t, []int{1, 2}, orders(ed))
}

func TestDuplicateClonesWithoutIdentity(t *testing.T) {
	id := primitive.NewObjectID()
	ed := NewEditor()
	ed.AddQuestion()
	ed.AddQuestion()
	ed.Questions[0].ID = &id
	ed.Questions[0].Prompt = "Favorite color"
	ed.Questions[0].Type = models.QuestionMultipleChoice
	ed.Questions[0].Options = []string{"Red", "Blue"}
	ed.Questions[1].Prompt = "tail"

	assert.NoError(t, ed.DuplicateQuestion(0))

	assert.Len(t, ed.Questions, 3)
	clone := ed.Questions[1]
	assert.Nil(t, clone.ID)
	assert.Equal(t, "Favorite color (copy)", clone.Prompt)
	assert.Equal(t, models.QuestionMultipleChoice, clone.Type)
	assert.Equal(t, []string{"Red", "Blue"}, clone.Options)
	assert.Equal(t, "tail", ed.Questions[2].Prompt)
	assert.Equal(t, []int{1, 2, 3}, orders(ed))

	// Options are an independent copy.
	clone.Options[0] = "Green"
	assert.Equal(t, "Red", ed.Questions[0].Options[0])
}

func TestRemoveRequiresConfirmation(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()
	ed.AddQuestion()
	ed.AddQuestion()

	assert.Equal(t, -1, ed.PendingRemove())

	assert.NoError(t, ed.RequestRemove(2))
	assert.Equal(t, 2, ed.PendingRemove())
	assert.Len(t, ed.Questions, 3, "request alone must not mutate")

	// A second request replaces the pending target.
	assert.NoError(t, ed.RequestRemove(0))
	assert.Equal(t, 0, ed.PendingRemove())

	ed.CancelRemove()
	assert.Equal(t, -1, ed.PendingRemove())
	assert.Len(t, ed.Questions, 3)

	// Confirm with nothing pending does nothing.
	ed.ConfirmRemove()
	assert.Len(t, ed.Questions, 3)

	assert.NoError(t, ed.RequestRemove(1))
	ed.ConfirmRemove()
	assert.Len(t, ed.Questions, 2)
	assert.Equal(t, -1, ed.PendingRemove())
	assert.Equal(t, []int{1, 2}, orders(ed))
}

func TestSetTypePreservesOptions(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()
	ed.Questions[0].Options = []string{"A", "B"}

	assert.NoError(t, ed.SetType(0, models.QuestionLikert))
	assert.Equal(t, []string{"A", "B"}, ed.Questions[0].Options)

	assert.NoError(t, ed.SetType(0, models.QuestionShortText))
	assert.Equal(t, []string{"A", "B"}, ed.Questions[0].Options)
}

func TestFillLikertDefaults(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()
	assert.NoError(t, ed.SetType(0, models.QuestionLikert))
	assert.Empty(t, ed.Questions[0].Options, "SetType must not fill options")

	assert.NoError(t, ed.FillLikertDefaults(0))
	assert.Equal(t, models.LikertDefaults, ed.Questions[0].Options)

	// The filled slice is a copy of the package default.
	ed.Questions[0].Options[0] = "changed"
	assert.Equal(t, "Disagree", models.LikertDefaults[0])
}

func TestOptionEditing(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()

	assert.NoError(t, ed.AddOption(0))
	assert.NoError(t, ed.AddOption(0))
	assert.Equal(t, []string{"", ""}, ed.Questions[0].Options)

	assert.NoError(t, ed.UpdateOption(0, 0, "Yes"))
	assert.NoError(t, ed.UpdateOption(0, 1, "No"))
	assert.Equal(t, []string{"Yes", "No"}, ed.Questions[0].Options)

	assert.NoError(t, ed.RemoveOption(0, 0))
	assert.Equal(t, []string{"No"}, ed.Questions[0].Options)

	assert.ErrorIs(t, ed.UpdateOption(0, 5, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.RemoveOption(0, -1), ErrIndexOutOfRange)
}

func TestOutOfRangeIndexesFailLoudly(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()

	prompt := "p"
	assert.ErrorIs(t, ed.UpdateQuestion(1, QuestionPatch{Prompt: &prompt}), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.SetType(-1, models.QuestionNumber), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.FillLikertDefaults(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.RequestRemove(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.DuplicateQuestion(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, ed.AddOption(9), ErrIndexOutOfRange)
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	ed := NewEditor()
	ed.AddQuestion()
	ed.AddQuestion()
	filled := "What is your role?"
	assert.NoError(t, ed.UpdateQuestion(1, QuestionPatch{Prompt: &filled}))

	errs := ed.Validate()
	assert.Len(t, errs, 2)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "questions[0].prompt", errs[1].Field)

	ed.Title = "Pesquisa"
	blank := ""
	assert.NoError(t, ed.UpdateQuestion(1, QuestionPatch{Prompt: &blank}))
	errs = ed.Validate()
	assert.Len(t, errs, 2)
	assert.Equal(t, "questions[0].prompt", errs[0].Field)
	assert.Equal(t, "questions[1].prompt", errs[1].Field)

	prompt0 := "First"
	assert.NoError(t, ed.UpdateQuestion(0, QuestionPatch{Prompt: &prompt0}))
	assert.NoError(t, ed.UpdateQuestion(1, QuestionPatch{Prompt: &filled}))
	assert.Nil(t, ed.Validate())
}

func TestDocumentRoundTripKeepsOptions(t *testing.T) {
	ed := NewEditor()
	ed.Title = "Pesquisa"
	ed.AddQuestion()
	prompt := "Pick one"
	assert.NoError(t, ed.UpdateQuestion(0, QuestionPatch{
		Prompt:  &prompt,
		Options: []string{"A", "B"},
	}))
	assert.NoError(t, ed.SetType(0, models.QuestionMultipleChoice))

	doc := ed.Document()
	assert.Equal(t, "Pesquisa", doc.Title)
	assert.Equal(t, `["A","B"]`, doc.Questions[0].Options)

	reloaded := NewEditorFromDocument(doc)
	assert.Equal(t, "Pesquisa", reloaded.Title)
	assert.Len(t, reloaded.Questions, 1)
	assert.Equal(t, "Pick one", reloaded.Questions[0].Prompt)
	assert.Equal(t, models.QuestionMultipleChoice, reloaded.Questions[0].Type)
	assert.Equal(t, []string{"A", "B"}, reloaded.Questions[0].Options)
	assert.Equal(t, []int{1}, orders(reloaded))
}

func TestLoadRenumbersGappedOrders(t *testing.T) {
	doc := &models.QuestionnaireWithQuestions{
		Questionnaire: models.Questionnaire{Title: "Gapped"},
		Questions: []models.Question{
			{Prompt: "a", Type: models.QuestionShortText, Options: "[]", Order: 3},
			{Prompt: "b", Type: models.QuestionShortText, Options: "[]", Order: 7},
		},
	}

	ed := NewEditorFromDocument(doc)
	assert.Equal(t, []int{1, 2}, orders(ed))
}
