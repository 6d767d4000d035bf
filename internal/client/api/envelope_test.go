package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type successShape struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecode_ErrorShapeWins(t *testing.T) {
	body := []byte(`{"type":"MissingPermission"}`)

	v, err := Decode[successShape](body)
	require.Nil(t, v)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "MissingPermission", apiErr.Kind)
}

func TestDecode_Success(t *testing.T) {
	body := []byte(`{"name":"general","count":3}`)

	v, err := Decode[successShape](body)
	require.NoError(t, err)
	require.Equal(t, "general", v.Name)
	require.Equal(t, 3, v.Count)
}

func TestDecode_ErrorWithExtraFieldsIsStillAnError(t *testing.T) {
	// Error payloads can carry context beyond the discriminant. They must
	// not fall through to the success decode: that path would hand the
	// caller a zero value and let it overwrite the cache.
	body := []byte(`{"type":"MissingPermission","permission":"ManageServer"}`)

	v, err := Decode[successShape](body)
	require.Nil(t, v)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "MissingPermission", apiErr.Kind)
}

func TestDecode_NeitherShape(t *testing.T) {
	body := []byte(`"just a string"`)

	_, err := Decode[successShape](body)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnexpectedSchema))

	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestDecode_EmptyTypeIsNotAnError(t *testing.T) {
	body := []byte(`{"type":""}`)

	_, err := Decode[successShape](body)
	// Decodes as successShape with zero values.
	require.NoError(t, err)
}

func TestProbeError_MutualExclusivity(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		isError bool
	}{
		{"plain error", `{"type":"NotFound"}`, true},
		{"error with context fields", `{"type":"NotFound","detail":"gone"}`, true},
		{"success object", `{"name":"x","count":0}`, false},
		{"array body", `[1,2,3]`, false},
		{"empty object", `{}`, false},
		{"malformed json", `{"type":`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := probeError([]byte(tc.body))
			require.Equal(t, tc.isError, got != nil)
		})
	}
}
