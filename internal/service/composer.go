package service

import (
	"fmt"
	"strings"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// noLinkReplyText отправляется, когда в сообщении не нашлось подходящей
// ссылки или все обмены завершились неудачей
const noLinkReplyText = "Please send a valid Terabox link."

// Composer собирает исходящий ответ по типу входящего сообщения
type Composer struct{}

// NewComposer создает Composer
func NewComposer() *Composer {
	return &Composer{}
}

// Compose строит ответ на входящее сообщение
// Пустой results - текстовая подсказка без медиа. Непустой - нумерованные
// строки одним блоком, прикрепленные к вложению исходного сообщения:
// бот никогда не перекодирует медиа, только переиспользует file_id
func (c *Composer) Compose(inbound model.InboundMessage, results []model.ShortenResult) model.OutboundReply {
	if len(results) == 0 {
		return model.OutboundReply{
			ChatID: inbound.ChatID,
			Text:   noLinkReplyText,
		}
	}

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Link %d: %s", i+1, res.ShortURL)
	}

	reply := model.OutboundReply{
		ChatID: inbound.ChatID,
		Text:   b.String(),
	}

	switch inbound.Media {
	case model.MediaPhoto, model.MediaVideo, model.MediaDocument:
		reply.Media = inbound.Media
		reply.FileID = inbound.FileID
	}

	return reply
}
