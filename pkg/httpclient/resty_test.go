package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "abc", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":"ticker not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second)

	t.Run("ok", func(t *testing.T) {
		resp, err := client.Get(context.Background(), "/ok", map[string]string{"q": "abc"}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"success":true,"data":{}}`, string(resp.Body))
	})

	t.Run("non 2xx keeps body", func(t *testing.T) {
		resp, err := client.Get(context.Background(), "/missing", map[string]string{"q": "abc"}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "ticker not found")
	})
}

func TestRestyClient_GetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(url, time.Second)
	_, err := client.Get(context.Background(), "/", nil, nil, nil)
	assert.Error(t, err)
}
