package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestShortener(t *testing.T, handler http.HandlerFunc) *ShortenerClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewShortenerClient(srv.URL, "https://example.com", 2*time.Second, zap.NewNop())
}

func TestShorten_Success(t *testing.T) {
	var gotAPI, gotURL string
	client := newTestShortener(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPI = r.URL.Query().Get("api")
		gotURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","shortenedUrl":"https://short.example/x1"}`))
	})

	short, err := client.Shorten(context.Background(), "my-key", "https://redirect.example/?url=abc")

	require.NoError(t, err)
	assert.Equal(t, "https://short.example/x1", short)
	assert.Equal(t, "my-key", gotAPI)
	assert.Equal(t, "https://redirect.example/?url=abc", gotURL)
}

func TestShorten_NonSuccessStatus(t *testing.T) {
	client := newTestShortener(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"invalid api key"}`))
	})

	_, err := client.Shorten(context.Background(), "bad-key", "https://redirect.example/?url=abc")

	assert.ErrorIs(t, err, ErrShorten)
}

func TestShorten_MalformedBody(t *testing.T) {
	client := newTestShortener(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.Shorten(context.Background(), "key", "https://redirect.example/?url=abc")

	assert.ErrorIs(t, err, ErrShorten)
}

func TestShorten_HTTPError(t *testing.T) {
	client := newTestShortener(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Shorten(context.Background(), "key", "https://redirect.example/?url=abc")

	assert.ErrorIs(t, err, ErrShorten)
}

func TestShorten_SuccessWithoutURL(t *testing.T) {
	// status=success без shortenedUrl - нарушение контракта, fail closed
	client := newTestShortener(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	})

	_, err := client.Shorten(context.Background(), "key", "https://redirect.example/?url=abc")

	assert.ErrorIs(t, err, ErrShorten)
}

func TestShorten_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	client := NewShortenerClient(srv.URL, "https://example.com", 50*time.Millisecond, zap.NewNop())

	_, err := client.Shorten(context.Background(), "key", "https://redirect.example/?url=abc")

	assert.ErrorIs(t, err, ErrShorten)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{
			name:     "Valid key",
			body:     `{"status":"success","shortenedUrl":"https://short.example/v"}`,
			expected: true,
		},
		{
			name:     "Invalid key",
			body:     `{"status":"error"}`,
			expected: false,
		},
		{
			name:     "Malformed body",
			body:     `oops`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotURL string
			client := newTestShortener(t, func(w http.ResponseWriter, r *http.Request) {
				gotURL = r.URL.Query().Get("url")
				w.Write([]byte(tt.body))
			})

			ok := client.ValidateKey(context.Background(), "some-key")

			assert.Equal(t, tt.expected, ok)
			// Валидация всегда идет на фиксированный тестовый URL
			assert.Equal(t, "https://example.com", gotURL)
		})
	}
}
