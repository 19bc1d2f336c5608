package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc-dev/terabis-bot/internal/model"
)

func TestInboundFromUpdate(t *testing.T) {
	tests := []struct {
		name     string
		update   Update
		expected model.InboundMessage
		accepted bool
	}{
		{
			name: "Text message",
			update: Update{UpdateID: 1, Message: &Message{
				MessageID: 10,
				Chat:      &Chat{ID: 5},
				From:      &User{ID: 7, FirstName: "Alice"},
				Text:      "hello",
			}},
			expected: model.InboundMessage{
				ChatID:      5,
				MessageID:   10,
				UserID:      7,
				DisplayName: "Alice",
				Text:        "hello",
			},
			accepted: true,
		},
		{
			name: "Photo with caption picks largest size",
			update: Update{UpdateID: 2, Message: &Message{
				MessageID: 11,
				Chat:      &Chat{ID: 5},
				From:      &User{ID: 7, Username: "alice"},
				Caption:   "look",
				Photo: []PhotoSize{
					{FileID: "small", Width: 90, Height: 60},
					{FileID: "large", Width: 1280, Height: 720},
					{FileID: "medium", Width: 320, Height: 240},
				},
			}},
			expected: model.InboundMessage{
				ChatID:      5,
				MessageID:   11,
				UserID:      7,
				DisplayName: "@alice",
				Text:        "look",
				Media:       model.MediaPhoto,
				FileID:      "large",
			},
			accepted: true,
		},
		{
			name: "Video attachment",
			update: Update{UpdateID: 3, Message: &Message{
				MessageID: 12,
				Chat:      &Chat{ID: 5},
				From:      &User{ID: 7, FirstName: "Alice", LastName: "Smith"},
				Caption:   "clip",
				Video:     &Video{FileID: "video-1"},
			}},
			expected: model.InboundMessage{
				ChatID:      5,
				MessageID:   12,
				UserID:      7,
				DisplayName: "Alice Smith",
				Text:        "clip",
				Media:       model.MediaVideo,
				FileID:      "video-1",
			},
			accepted: true,
		},
		{
			name: "Document attachment",
			update: Update{UpdateID: 4, Message: &Message{
				MessageID: 13,
				Chat:      &Chat{ID: 5},
				From:      &User{ID: 7},
				Document:  &Document{FileID: "doc-1", FileName: "share.txt"},
			}},
			expected: model.InboundMessage{
				ChatID:    5,
				MessageID: 13,
				UserID:    7,
				Media:     model.MediaDocument,
				FileID:    "doc-1",
			},
			accepted: true,
		},
		{
			name:     "Update without message",
			update:   Update{UpdateID: 5},
			accepted: false,
		},
		{
			name: "Message from bot",
			update: Update{UpdateID: 6, Message: &Message{
				MessageID: 14,
				Chat:      &Chat{ID: 5},
				From:      &User{ID: 8, IsBot: true},
				Text:      "beep",
			}},
			accepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := inboundFromUpdate(tt.update)

			require.Equal(t, tt.accepted, ok)
			if tt.accepted {
				assert.Equal(t, tt.expected, msg)
			}
		})
	}
}
