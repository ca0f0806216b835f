package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"prefixes":[]}`))
	}))
	defer server.Close()

	client := NewDefaultClient(0)
	body, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, `{"prefixes":[]}`, string(body))
}

func TestDefaultClient_Get_NonOKStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		expectErr  bool
	}{
		{name: "ok", statusCode: http.StatusOK, expectErr: false},
		{name: "no content", statusCode: http.StatusNoContent, expectErr: false},
		{name: "not found", statusCode: http.StatusNotFound, expectErr: true},
		{name: "server error", statusCode: http.StatusInternalServerError, expectErr: true},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, expectErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewDefaultClient(0)
			_, err := client.Get(context.Background(), server.URL)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.statusCode, httpErr.StatusCode)
			assert.Equal(t, server.URL, httpErr.URL)
		})
	}
}

func TestDefaultClient_Get_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(5 * time.Second):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewDefaultClient(0)
	_, err := client.Get(ctx, server.URL)
	assert.Error(t, err)
}

func TestDefaultClient_Get_InvalidURL(t *testing.T) {
	t.Parallel()

	client := NewDefaultClient(0)
	_, err := client.Get(context.Background(), "http://127.0.0.1:0/nope")
	assert.Error(t, err)
}
