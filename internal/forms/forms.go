// Package forms implements the signup, login and task form controllers:
// draft field state, client-side validation and submission.
package forms

// ValidationError is a client-side validation failure. It blocks
// submission; no network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
