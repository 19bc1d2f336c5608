package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getMe", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"id":13,"is_bot":true,"username":"terabis_bot"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 2*time.Second)

	me, err := client.GetMe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(13), me.ID)
	assert.Equal(t, "terabis_bot", me.Username)
}

func TestGetMe_BadToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-token", 2*time.Second)

	_, err := client.GetMe(context.Background())

	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestGetUpdates_AdvancesOffset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(100), req["offset"])

		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":100,"message":{"message_id":1,"chat":{"id":5},"from":{"id":7},"text":"hi"}},
			{"update_id":101,"message":{"message_id":2,"chat":{"id":5},"from":{"id":7},"text":"again"}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 2*time.Second)

	updates, next, err := client.GetUpdates(context.Background(), 100, time.Second)

	require.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, int64(102), next)
}

func TestSendMessage(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 2*time.Second)

	err := client.SendMessage(context.Background(), 5, "hello", "Markdown")

	require.NoError(t, err)
	assert.Equal(t, float64(5), got["chat_id"])
	assert.Equal(t, "hello", got["text"])
	assert.Equal(t, "Markdown", got["parse_mode"])
}

func TestSendPhoto_ReusesFileID(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendPhoto", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", 2*time.Second)

	err := client.SendPhoto(context.Background(), 5, "photo-file-id", "caption", "")

	require.NoError(t, err)
	assert.Equal(t, "photo-file-id", got["photo"])
	assert.Equal(t, "caption", got["caption"])
	_, hasParseMode := got["parse_mode"]
	assert.False(t, hasParseMode)
}
