package responses

import (
	"testing"

	"Backend-Pesquisa/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func question(t models.QuestionType, opts ...string) models.PublicQuestion {
	return models.PublicQuestion{
		ID:      primitive.NewObjectID(),
		Prompt:  "q",
		Type:    t,
		Options: opts,
	}
}

func TestValidateAnswerValuePerType(t *testing.T) {
	cases := []struct {
		name  string
		q     models.PublicQuestion
		value string
		ok    bool
	}{
		{"short text accepts anything non-empty", question(models.QuestionShortText), "hello", true},
		{"long text accepts anything non-empty", question(models.QuestionLongText), "a longer paragraph", true},
		{"empty answer rejected", question(models.QuestionShortText), "", false},

		{"number accepts integer", question(models.QuestionNumber), "42", true},
		{"number accepts decimal", question(models.QuestionNumber), "3.14", true},
		{"number accepts negative", question(models.QuestionNumber), "-7", true},
		{"number rejects text", question(models.QuestionNumber), "forty two", false},

		{"yes_no accepts yes", question(models.QuestionYesNo), "yes", true},
		{"yes_no accepts no", question(models.QuestionYesNo), "no", true},
		{"yes_no rejects other literals", question(models.QuestionYesNo), "true", false},

		{"multiple_choice requires membership", question(models.QuestionMultipleChoice, "Red", "Blue"), "Blue", true},
		{"multiple_choice rejects non-member", question(models.QuestionMultipleChoice, "Red", "Blue"), "Green", false},
		{"likert requires membership", question(models.QuestionLikert, models.LikertDefaults...), "Neutral", true},
		{"likert rejects non-member", question(models.QuestionLikert, models.LikertDefaults...), "Meh", false},
		{"custom_list requires membership", question(models.QuestionCustomList, "HR", "IT"), "IT", true},

		{"optioned type with empty list accepts free text", question(models.QuestionMultipleChoice), "anything", true},
		{"unknown type accepts free text", question(models.QuestionType("mystery")), "value", true},
		{"unknown type still rejects empty", question(models.QuestionType("mystery")), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAnswerValue(tc.value, tc.q)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateAnswersCompleteness(t *testing.T) {
	q1 := question(models.QuestionShortText)
	q2 := question(models.QuestionYesNo)
	questions := []models.PublicQuestion{q1, q2}

	err := validateAnswers(map[string]string{q1.ID.Hex(): "hi"}, questions)
	assert.ErrorIs(t, err, ErrIncomplete)

	// Extra keys do not make up for a missing question.
	err = validateAnswers(map[string]string{
		q1.ID.Hex():                   "hi",
		primitive.NewObjectID().Hex(): "stray",
	}, questions)
	assert.ErrorIs(t, err, ErrIncomplete)

	err = validateAnswers(map[string]string{
		q1.ID.Hex(): "hi",
		q2.ID.Hex(): models.AnswerNo,
	}, questions)
	assert.NoError(t, err)
}

func TestAnswersInOrderFollowsQuestionOrder(t *testing.T) {
	q1 := question(models.QuestionShortText)
	q2 := question(models.QuestionShortText)
	q3 := question(models.QuestionShortText)
	questions := []models.PublicQuestion{q1, q2, q3}

	answers := map[string]string{
		q3.ID.Hex(): "third",
		q1.ID.Hex(): "first",
		q2.ID.Hex(): "second",
	}

	flat := answersInOrder(answers, questions)
	assert.Equal(t, []models.Answer{
		{QuestionID: q1.ID, Value: "first"},
		{QuestionID: q2.ID, Value: "second"},
		{QuestionID: q3.ID, Value: "third"},
	}, flat)
}
