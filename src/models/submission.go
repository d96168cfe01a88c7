package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one employee's complete set of answers to a questionnaire,
// written once on a successful public submit.
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionnaireID primitive.ObjectID `bson:"questionnaireId" json:"questionnaireId"`
	EmployeeID      primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	Answers         []Answer           `bson:"answers" json:"answers"`
	SubmittedAt     time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// Answer records the value given for a single question. Value is always the
// string form: free text, number-as-text, a yes/no literal or the selected
// option, depending on the question type.
type Answer struct {
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	Value      string             `bson:"value" json:"value"`
}

// PublicSubmissionRequest is the one-shot payload sent by the respond flow.
// Exactly one credential must be present: the employee access code, the
// short-lived token issued by access validation, or an unused invite token.
type PublicSubmissionRequest struct {
	QuestionnaireID string            `json:"questionnaireId"`
	AccessCode      string            `json:"accessCode,omitempty"`
	AccessToken     string            `json:"accessToken,omitempty"`
	InviteToken     string            `json:"inviteToken,omitempty"`
	Answers         map[string]string `json:"answers"`
}
