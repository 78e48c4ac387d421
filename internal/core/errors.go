package core

import "errors"

const (
	notConfiguredMessage = "API key not configured. Please add your API key to continue."
	fallbackErrorMessage = "An error occurred while generating store names"
)

var (
	// ErrNotConfigured means no generator is available. Its message is shown
	// to the user verbatim.
	ErrNotConfigured = errors.New(notConfiguredMessage)

	ErrEmptyDescription = errors.New("store description is empty")
	ErrRequestInFlight  = errors.New("a generation request is already in progress")
)

// RequestError wraps any fault raised while calling the generator.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return fallbackErrorMessage
	}
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
