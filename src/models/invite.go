package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invite is the alternate access credential: a single-use token bound to one
// employee and one questionnaire. UsedAt is set on the first accepted
// submission; a used invite no longer grants access.
type Invite struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Token           string             `bson:"token" json:"token"`
	QuestionnaireID primitive.ObjectID `bson:"questionnaireId" json:"questionnaireId"`
	EmployeeID      primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UsedAt          *time.Time         `bson:"usedAt,omitempty" json:"usedAt,omitempty"`
}
