package api

import (
	"encoding/json"
	"fmt"
)

// errorShape is the backend's error payload. It shares the transport channel
// with success payloads and carries no out-of-band discriminator, so bodies
// have to be probed structurally.
type errorShape struct {
	Type string `json:"type"`
}

// probeError attempts to decode body as the error shape. It returns a
// non-nil *APIError when the body is a JSON object with a non-empty string
// "type" discriminant. The probe is lenient about extra fields: error
// payloads may carry context beyond the discriminant (e.g. the missing
// permission), while no success schema in this API has a top-level "type".
func probeError(body []byte) *APIError {
	var e errorShape
	if err := json.Unmarshal(body, &e); err != nil {
		return nil
	}
	if e.Type == "" {
		return nil
	}
	return &APIError{Kind: e.Type}
}

// Decode disambiguates a raw response body and decodes it as T.
//
// The body is probed as the error shape first; if the probe matches, the
// resulting *APIError is returned and the body is never decoded again as T.
// Otherwise the body is decoded as T; a failure at that point means the
// payload matched neither shape and is reported as ErrUnexpectedSchema.
func Decode[T any](body []byte) (*T, error) {
	if apiErr := probeError(body); apiErr != nil {
		return nil, apiErr
	}

	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedSchema, err)
	}
	return &v, nil
}
