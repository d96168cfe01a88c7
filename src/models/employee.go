package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is a survey respondent. Code is the shared access code the
// employee types in on the public respond page; it must be unique.
type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Code      string             `bson:"code" json:"code"`
	CompanyID primitive.ObjectID `bson:"companyId" json:"companyId"`
}
