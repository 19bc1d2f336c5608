package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avc-dev/terabis-bot/internal/model"
)

func TestCompose_EmptyResults(t *testing.T) {
	c := NewComposer()
	inbound := model.InboundMessage{
		ChatID: 100,
		Media:  model.MediaPhoto,
		FileID: "photo-file-id",
	}

	reply := c.Compose(inbound, nil)

	// Без результатов - только текстовая подсказка, медиа не отправляется
	assert.Equal(t, int64(100), reply.ChatID)
	assert.Equal(t, noLinkReplyText, reply.Text)
	assert.Equal(t, model.MediaNone, reply.Media)
	assert.Empty(t, reply.FileID)
}

func TestCompose_NumberedLines(t *testing.T) {
	c := NewComposer()
	inbound := model.InboundMessage{ChatID: 100}

	reply := c.Compose(inbound, []model.ShortenResult{
		{ShortURL: "https://short.example/a"},
		{ShortURL: "https://short.example/b"},
	})

	assert.Equal(t, "Link 1: https://short.example/a\nLink 2: https://short.example/b", reply.Text)
	assert.Equal(t, model.MediaNone, reply.Media)
}

func TestCompose_MediaKinds(t *testing.T) {
	tests := []struct {
		name  string
		media model.MediaKind
	}{
		{name: "Photo reply carries photo asset", media: model.MediaPhoto},
		{name: "Video reply carries video asset", media: model.MediaVideo},
		{name: "Document reply carries document asset", media: model.MediaDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer()
			inbound := model.InboundMessage{
				ChatID: 7,
				Media:  tt.media,
				FileID: "inbound-file-id",
			}

			reply := c.Compose(inbound, []model.ShortenResult{
				{ShortURL: "https://short.example/x"},
			})

			// Вложение ответа - всегда исходное из входящего сообщения
			assert.Equal(t, tt.media, reply.Media)
			assert.Equal(t, "inbound-file-id", reply.FileID)
			assert.Equal(t, "Link 1: https://short.example/x", reply.Text)
		})
	}
}

func TestCompose_TextMessage(t *testing.T) {
	c := NewComposer()
	inbound := model.InboundMessage{ChatID: 1, Media: model.MediaNone}

	reply := c.Compose(inbound, []model.ShortenResult{
		{ShortURL: "https://short.example/x"},
	})

	assert.Equal(t, model.MediaNone, reply.Media)
	assert.Empty(t, reply.FileID)
}
