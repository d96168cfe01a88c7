package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCloseQuestionnaire = "questionnaire:close"

type QuestionnairePayload struct {
	QuestionnaireID string `json:"questionnaire_id"`
}

// NewCloseQuestionnaireTask builds the task that unpublishes a questionnaire
// when its end date is reached.
func NewCloseQuestionnaireTask(questionnaireID string) (*asynq.Task, error) {
	payload, err := json.Marshal(QuestionnairePayload{QuestionnaireID: questionnaireID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCloseQuestionnaire, payload), nil
}
