package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("X-Secret"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"name":"pro"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, GetJSON(context.Background(), srv.Client(), srv.URL, map[string]string{"X-Secret": "key"}, &out))
	assert.Equal(t, "pro", out.Name)
}

func TestGetJSONNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	var out map[string]any
	err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestGetJSONTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		_, _ = w.Write([]byte(`{"name":`))
	}))
	defer srv.Close()

	var out map[string]any
	err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, &out)
	assert.ErrorContains(t, err, "read response")
}

func TestGetJSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	var out map[string]any
	err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, &out)
	assert.ErrorContains(t, err, "decode response")
}
