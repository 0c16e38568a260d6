package llm

import (
	"errors"
	"fmt"
)

// ConnectionError means the backend was unreachable. Callers map it to a
// distinct user-facing apology.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("inference backend unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// InferenceError covers every other backend failure: HTTP error status,
// malformed payload, timeout.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// IsConnectionError reports whether err is a backend-unreachable failure.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}
