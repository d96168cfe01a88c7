package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType is the closed set of question kinds a questionnaire may use.
type QuestionType string

const (
	QuestionShortText      QuestionType = "short_text"
	QuestionLongText       QuestionType = "long_text"
	QuestionNumber         QuestionType = "number"
	QuestionYesNo          QuestionType = "yes_no"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionLikert         QuestionType = "likert"
	QuestionCustomList     QuestionType = "custom_list"
)

// Fixed answer literals for yes_no questions.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// QuestionTypeInfo describes how a question type is rendered and answered.
type QuestionTypeInfo struct {
	Label       string
	UsesOptions bool // option list is consulted on render/validation
	Numeric     bool // answer must be the text form of a number
	Boolean     bool // answer must be one of the yes/no literals
}

// questionTypeTable is the single dispatch table for the type taxonomy.
// Adding a type means adding exactly one entry here.
var questionTypeTable = map[QuestionType]QuestionTypeInfo{
	QuestionShortText:      {Label: "Short text"},
	QuestionLongText:       {Label: "Paragraph"},
	QuestionNumber:         {Label: "Number", Numeric: true},
	QuestionYesNo:          {Label: "Yes / No", Boolean: true},
	QuestionMultipleChoice: {Label: "Multiple choice", UsesOptions: true},
	QuestionLikert:         {Label: "Likert 1-5", UsesOptions: true},
	QuestionCustomList:     {Label: "Custom list", UsesOptions: true},
}

// DefaultQuestionType is the type assigned to a newly added question.
const DefaultQuestionType = QuestionShortText

// TypeInfo returns the dispatch entry for t and whether t is a known type.
func TypeInfo(t QuestionType) (QuestionTypeInfo, bool) {
	info, ok := questionTypeTable[t]
	return info, ok
}

// QuestionTypes returns every known question type (for listings and tests).
func QuestionTypes() []QuestionType {
	types := make([]QuestionType, 0, len(questionTypeTable))
	for t := range questionTypeTable {
		types = append(types, t)
	}
	return types
}

// UsesOptions reports whether the option list is meaningful for t.
// Unknown types never consult options.
func (t QuestionType) UsesOptions() bool {
	return questionTypeTable[t].UsesOptions
}

// LikertDefaults is the default 5-point labelled scale offered as an explicit
// fill action in the editor. It is never applied as a side effect of changing
// a question's type.
var LikertDefaults = []string{
	"Disagree",
	"Partially disagree",
	"Neutral",
	"Agree",
	"Fully agree",
}

// --- Questionnaire ---

type Questionnaire struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description" json:"description"`
	CompanyID   *primitive.ObjectID `bson:"companyId,omitempty" json:"companyId,omitempty"`
	Published   bool                `bson:"published" json:"published"`
	EndsAt      *time.Time          `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Question is the stored form of one question. Options carries the option list
// in its wire form: a JSON-encoded array of strings, "[]" when the list is
// empty. It is decoded on the way out by the questionnaires codec.
type Question struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	QuestionnaireID primitive.ObjectID `bson:"questionnaireId,omitempty" json:"questionnaireId,omitempty"`
	Prompt          string             `bson:"prompt" json:"prompt"`
	Type            QuestionType       `bson:"type" json:"type"`
	Options         string             `bson:"options" json:"options"`
	Order           int                `bson:"order" json:"order"`
}

// QuestionnaireWithQuestions is the admin view: stored questions, options still
// in wire form.
type QuestionnaireWithQuestions struct {
	Questionnaire `bson:",inline"`
	Questions     []Question `json:"questions"`
}

// PublicQuestion is the respondent view of a question: option list decoded.
type PublicQuestion struct {
	ID      primitive.ObjectID `json:"id"`
	Prompt  string             `json:"prompt"`
	Type    QuestionType       `json:"type"`
	Options []string           `json:"options"`
	Order   int                `json:"order"`
}

// PublicQuestionnaire is what the unauthenticated respond flow fetches.
type PublicQuestionnaire struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Questions   []PublicQuestion   `json:"questions"`
}
