package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_Get_SendsTokenAndQuery(t *testing.T) {
	var gotToken, gotQuery string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-session-token")
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret-token", nil, nil)

	q := url.Values{}
	q.Set("exclude_offline", "true")

	body, err := c.Get(context.Background(), "/servers/S1/members", q)
	require.NoError(t, err)
	require.Equal(t, "secret-token", gotToken)
	require.Equal(t, "exclude_offline=true", gotQuery)
	require.JSONEq(t, `{"ok":true}`, string(body))
}

func TestClient_Patch_SendsJSONBody(t *testing.T) {
	var gotCT string
	var gotBody []byte

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "tok", nil, nil)

	_, err := c.Patch(context.Background(), "/servers/S1", map[string]any{"name": "X"})
	require.NoError(t, err)
	require.Equal(t, "application/json", gotCT)
	require.JSONEq(t, `{"name":"X"}`, string(gotBody))
}

func TestClient_Delete_PassesQueryFlag(t *testing.T) {
	var gotMethod, gotQuery string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "tok", nil, nil)

	q := url.Values{}
	q.Set("leave_silently", "false")

	require.NoError(t, c.Delete(context.Background(), "/servers/S1", q))
	require.Equal(t, http.MethodDelete, gotMethod)
	require.Equal(t, "leave_silently=false", gotQuery)
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close() // force a connection error

	c := NewClient(ts.URL, "tok", nil, nil)

	_, err := c.Get(context.Background(), "/servers/S1", nil)
	require.Error(t, err)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", "tok", nil, nil)

	require.NoError(t, c.Put(context.Background(), "/servers/S1/ack"))
	require.Equal(t, "/servers/S1/ack", gotPath)
}
