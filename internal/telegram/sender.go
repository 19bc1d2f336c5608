package telegram

import (
	"context"
	"fmt"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// parseModeMarkdown включает легаси-разметку Markdown в исходящих сообщениях
const parseModeMarkdown = "Markdown"

// Sender доставляет исходящие ответы через Bot API.
// Медиа-ответы пересылают исходное вложение по file_id, ничего не скачивая
type Sender struct {
	client *Client
}

// NewSender создает отправитель поверх клиента Bot API
func NewSender(client *Client) *Sender {
	return &Sender{client: client}
}

// Send отправляет ответ методом, соответствующим типу вложения
func (s *Sender) Send(ctx context.Context, reply model.OutboundReply) error {
	parseMode := ""
	if reply.Markdown {
		parseMode = parseModeMarkdown
	}

	switch reply.Media {
	case model.MediaPhoto:
		return s.client.SendPhoto(ctx, reply.ChatID, reply.FileID, reply.Text, parseMode)
	case model.MediaVideo:
		return s.client.SendVideo(ctx, reply.ChatID, reply.FileID, reply.Text, parseMode)
	case model.MediaDocument:
		return s.client.SendDocument(ctx, reply.ChatID, reply.FileID, reply.Text, parseMode)
	case model.MediaNone:
		return s.client.SendMessage(ctx, reply.ChatID, reply.Text, parseMode)
	default:
		return fmt.Errorf("unsupported media kind %q", reply.Media)
	}
}
