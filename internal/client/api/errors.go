package api

import (
	"errors"
	"fmt"
)

// ErrUnexpectedSchema is returned when a response body matches neither the
// error shape nor the expected success shape. This is a fatal condition
// distinct from a server-reported error.
var ErrUnexpectedSchema = errors.New("unexpected response schema")

// APIError is a failure reported by the backend itself: the response body
// decoded cleanly as the error shape. Kind carries the backend's error
// discriminant (e.g. "NotFound", "MissingPermission").
type APIError struct {
	Kind string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s", e.Kind)
}
