package models

// ErrorResponse is the standard error body returned by every handler.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// FieldError points a validation message at the offending field, e.g.
// "questions[2].prompt".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned for 400s caused by missing or invalid
// fields. No storage call has been made when this is returned.
type ValidationErrorResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}
