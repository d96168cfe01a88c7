package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is the organizational entity a questionnaire may belong to.
type Company struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name" validate:"required"`
	CNPJ string             `bson:"cnpj,omitempty" json:"cnpj,omitempty"`
}
