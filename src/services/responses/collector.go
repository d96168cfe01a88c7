package responses

import (
	"context"
	"errors"

	"Backend-Pesquisa/src/models"
)

// Collector drives a single respondent session over a published
// questionnaire: access gating, answer accumulation, progress and the
// one-shot submit. All mutation happens in direct reaction to respondent
// input, never concurrently.
//
// State machine:
//
//	Unauthorized -> Validating -> Authorized -> Submitting -> Completed
//
// Validation and submission failures fall back to the prior interactive
// state with the error returned inline; Completed is terminal.

type State int

const (
	StateUnauthorized State = iota
	StateValidating
	StateAuthorized
	StateSubmitting
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateUnauthorized:
		return "unauthorized"
	case StateValidating:
		return "validating"
	case StateAuthorized:
		return "authorized"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Gateway is the external storage the collector talks to. The live
// implementation is LiveGateway; tests substitute fakes.
type Gateway interface {
	ValidateAccess(ctx context.Context, questionnaireID, accessCode string) (token string, err error)
	SubmitResponses(ctx context.Context, req models.PublicSubmissionRequest) error
}

var (
	ErrNotAuthorized = errors.New("respondent is not authorized")
	ErrIncomplete    = errors.New("all questions must be answered before submitting")
	ErrCompleted     = errors.New("responses were already submitted")
	ErrEmptyCode     = errors.New("access code is required")
)

type Collector struct {
	gw   Gateway
	form *models.PublicQuestionnaire

	state   State
	code    string
	token   string
	answers map[string]string // question id (hex) -> value
}

// NewCollector starts an unauthorized session over the given questionnaire.
func NewCollector(gw Gateway, form *models.PublicQuestionnaire) *Collector {
	return &Collector{
		gw:      gw,
		form:    form,
		state:   StateUnauthorized,
		answers: make(map[string]string),
	}
}

func (c *Collector) State() State { return c.state }

// Authorize validates an access code with the gateway. On failure the session
// stays unauthorized and the respondent may retry with another code.
func (c *Collector) Authorize(ctx context.Context, accessCode string) error {
	switch c.state {
	case StateCompleted:
		return ErrCompleted
	case StateUnauthorized:
		// proceed
	default:
		return nil // already authorized; nothing to do
	}

	if accessCode == "" {
		return ErrEmptyCode
	}

	c.state = StateValidating
	token, err := c.gw.ValidateAccess(ctx, c.form.ID.Hex(), accessCode)
	if err != nil {
		c.state = StateUnauthorized
		return err
	}

	c.code = accessCode
	c.token = token
	c.state = StateAuthorized
	return nil
}

// Record stores the answer for one question, replacing any earlier value.
func (c *Collector) Record(questionID, value string) error {
	if c.state != StateAuthorized {
		if c.state == StateCompleted {
			return ErrCompleted
		}
		return ErrNotAuthorized
	}
	c.answers[questionID] = value
	return nil
}

// Answers returns a copy of everything recorded so far.
func (c *Collector) Answers() map[string]string {
	out := make(map[string]string, len(c.answers))
	for k, v := range c.answers {
		out[k] = v
	}
	return out
}

// Progress is the share of answered questions as a rounded percentage.
// Advisory only; Submit applies the real gate.
func (c *Collector) Progress() int {
	total := len(c.form.Questions)
	if total == 0 {
		return 0
	}
	answered := 0
	for _, q := range c.form.Questions {
		if _, ok := c.answers[q.ID.Hex()]; ok {
			answered++
		}
	}
	return int(float64(answered)/float64(total)*100 + 0.5)
}

// Submit sends the accumulated answers exactly once. While any question is
// unanswered the submission is refused locally without touching the gateway.
// A gateway failure returns the session to Authorized with every answer
// preserved, so the respondent retries without re-entering anything.
func (c *Collector) Submit(ctx context.Context) error {
	switch c.state {
	case StateCompleted:
		return ErrCompleted
	case StateAuthorized:
		// proceed
	default:
		return ErrNotAuthorized
	}

	for _, q := range c.form.Questions {
		if _, ok := c.answers[q.ID.Hex()]; !ok {
			return ErrIncomplete
		}
	}

	c.state = StateSubmitting
	err := c.gw.SubmitResponses(ctx, models.PublicSubmissionRequest{
		QuestionnaireID: c.form.ID.Hex(),
		AccessCode:      c.code,
		AccessToken:     c.token,
		Answers:         c.Answers(),
	})
	if err != nil {
		c.state = StateAuthorized
		return err
	}

	c.state = StateCompleted
	return nil
}
