package questionnaires

import (
	"errors"
	"strconv"

	"Backend-Pesquisa/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Editor mutates a questionnaire draft in memory. Every structural mutation
// (add, remove, move, duplicate) renumbers question orders back to exactly
// 1..N, so a draft is always safe to serialize. Removal is gated behind an
// explicit confirmation step; only one removal may be pending at a time.

// ErrIndexOutOfRange is returned when an operation targets a question index
// outside the current draft. The original UI silently grew a sparse list in
// this case, which we treat as a programming error and fail loudly.
var ErrIndexOutOfRange = errors.New("question index out of range")

// CopySuffix is appended to the prompt of a duplicated question.
const CopySuffix = " (copy)"

// DraftQuestion is the in-memory form of a question: identity optional until
// first persisted, options as a plain list (wire encoding happens only in
// Document).
type DraftQuestion struct {
	ID      *primitive.ObjectID
	Prompt  string
	Type    models.QuestionType
	Options []string
	Order   int
}

// QuestionPatch is a partial update applied by UpdateQuestion. Nil fields are
// left untouched.
type QuestionPatch struct {
	Prompt  *string
	Type    *models.QuestionType
	Options []string
}

// Editor holds one draft and its pending-removal state.
type Editor struct {
	ID          *primitive.ObjectID
	Title       string
	Description string
	CompanyID   *primitive.ObjectID
	Questions   []DraftQuestion

	pendingRemove int // index awaiting confirmation, -1 when idle
}

// NewEditor starts an empty draft for a new questionnaire.
func NewEditor() *Editor {
	return &Editor{pendingRemove: -1}
}

// NewEditorFromDocument loads a persisted questionnaire into a draft,
// decoding each question's option text and renumbering in case storage
// returned stale or gapped orders.
func NewEditorFromDocument(doc *models.QuestionnaireWithQuestions) *Editor {
	ed := &Editor{
		Title:       doc.Title,
		Description: doc.Description,
		CompanyID:   doc.CompanyID,
		Questions:   make([]DraftQuestion, 0, len(doc.Questions)),

		pendingRemove: -1,
	}
	if !doc.ID.IsZero() {
		id := doc.ID
		ed.ID = &id
	}

	for _, q := range doc.Questions {
		dq := DraftQuestion{
			Prompt:  q.Prompt,
			Type:    q.Type,
			Options: DecodeOptions(q.Options),
		}
		if !q.ID.IsZero() {
			id := q.ID
			dq.ID = &id
		}
		ed.Questions = append(ed.Questions, dq)
	}
	ed.renumber()
	return ed
}

// AddQuestion appends a blank question of the default type.
func (e *Editor) AddQuestion() {
	e.Questions = append(e.Questions, DraftQuestion{
		Type:    models.DefaultQuestionType,
		Options: []string{},
		Order:   len(e.Questions) + 1,
	})
}

// UpdateQuestion merges a partial update into the question at index.
func (e *Editor) UpdateQuestion(index int, patch QuestionPatch) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	q := &e.Questions[index]
	if patch.Prompt != nil {
		q.Prompt = *patch.Prompt
	}
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Options != nil {
		q.Options = patch.Options
	}
	return nil
}

// SetType changes the question's type. Any option list the user already
// entered is preserved so toggling types back and forth loses nothing;
// FillLikertDefaults exists as the explicit convenience action.
func (e *Editor) SetType(index int, t models.QuestionType) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	e.Questions[index].Type = t
	return nil
}

// FillLikertDefaults replaces the question's options with the default 5-point
// labelled scale. Offered as a user action for likert questions, never run as
// a side effect of SetType.
func (e *Editor) FillLikertDefaults(index int) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	opts := make([]string, len(models.LikertDefaults))
	copy(opts, models.LikertDefaults)
	e.Questions[index].Options = opts
	return nil
}

// RequestRemove marks the question at index for removal, pending
// confirmation. Requesting a new removal while one is pending replaces the
// pending target.
func (e *Editor) RequestRemove(index int) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	e.pendingRemove = index
	return nil
}

// PendingRemove returns the index awaiting confirmation, or -1.
func (e *Editor) PendingRemove() int {
	return e.pendingRemove
}

// ConfirmRemove applies the pending removal and renumbers. A no-op when
// nothing is pending.
func (e *Editor) ConfirmRemove() {
	if e.pendingRemove < 0 {
		return
	}
	i := e.pendingRemove
	e.Questions = append(e.Questions[:i], e.Questions[i+1:]...)
	e.pendingRemove = -1
	e.renumber()
}

// CancelRemove drops the pending removal without mutating the draft.
func (e *Editor) CancelRemove() {
	e.pendingRemove = -1
}

// DuplicateQuestion inserts a clone right after index. The clone has no
// identity (it becomes a new question on the next save), its prompt gains the
// copy suffix, and type and options are inherited.
func (e *Editor) DuplicateQuestion(index int) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	src := e.Questions[index]
	clone := DraftQuestion{
		Prompt:  src.Prompt + CopySuffix,
		Type:    src.Type,
		Options: append([]string{}, src.Options...),
	}
	e.Questions = append(e.Questions, DraftQuestion{})
	copy(e.Questions[index+2:], e.Questions[index+1:])
	e.Questions[index+1] = clone
	e.renumber()
	return nil
}

// MoveQuestion swaps the question at index with its neighbor (-1 = up,
// +1 = down). Moves past either end are silent no-ops.
func (e *Editor) MoveQuestion(index, dir int) {
	to := index + dir
	if index < 0 || index >= len(e.Questions) || to < 0 || to >= len(e.Questions) {
		return
	}
	e.Questions[index], e.Questions[to] = e.Questions[to], e.Questions[index]
	e.renumber()
}

// AddOption appends an empty option to the question's list.
func (e *Editor) AddOption(index int) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	e.Questions[index].Options = append(e.Questions[index].Options, "")
	return nil
}

// UpdateOption sets the text of one option.
func (e *Editor) UpdateOption(index, optIndex int, text string) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	opts := e.Questions[index].Options
	if optIndex < 0 || optIndex >= len(opts) {
		return ErrIndexOutOfRange
	}
	opts[optIndex] = text
	return nil
}

// RemoveOption deletes one option from the question's list.
func (e *Editor) RemoveOption(index, optIndex int) error {
	if index < 0 || index >= len(e.Questions) {
		return ErrIndexOutOfRange
	}
	opts := e.Questions[index].Options
	if optIndex < 0 || optIndex >= len(opts) {
		return ErrIndexOutOfRange
	}
	e.Questions[index].Options = append(opts[:optIndex], opts[optIndex+1:]...)
	return nil
}

// Validate checks the draft is ready to save: non-empty title and a non-empty
// prompt on every question. One field error per missing field.
func (e *Editor) Validate() []models.FieldError {
	var errs []models.FieldError
	if e.Title == "" {
		errs = append(errs, models.FieldError{Field: "title", Message: "title is required"})
	}
	for i, q := range e.Questions {
		if q.Prompt == "" {
			errs = append(errs, models.FieldError{
				Field:   questionField(i, "prompt"),
				Message: "question prompt is required",
			})
		}
	}
	return errs
}

// Document serializes the draft for persistence, encoding each option list to
// its wire form.
func (e *Editor) Document() *models.QuestionnaireWithQuestions {
	doc := &models.QuestionnaireWithQuestions{
		Questionnaire: models.Questionnaire{
			Title:       e.Title,
			Description: e.Description,
			CompanyID:   e.CompanyID,
		},
	}
	if e.ID != nil {
		doc.Questionnaire.ID = *e.ID
	}

	doc.Questions = make([]models.Question, 0, len(e.Questions))
	for _, q := range e.Questions {
		mq := models.Question{
			Prompt:  q.Prompt,
			Type:    q.Type,
			Options: EncodeOptions(q.Options),
			Order:   q.Order,
		}
		if q.ID != nil {
			mq.ID = *q.ID
		}
		doc.Questions = append(doc.Questions, mq)
	}
	return doc
}

// Renumber restores the 1..N order invariant. Called after every structural
// mutation, and by callers that fill Questions directly from a payload.
func (e *Editor) Renumber() {
	e.renumber()
}

func (e *Editor) renumber() {
	for i := range e.Questions {
		e.Questions[i].Order = i + 1
	}
}

func questionField(i int, name string) string {
	return "questions[" + strconv.Itoa(i) + "]." + name
}
