package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
	"github.com/avc-dev/terabis-bot/internal/store"
)

// ConvertLinks обрабатывает одно входящее сообщение со ссылками
// Порядок жесткий: проверка ключа предшествует извлечению ссылок,
// поэтому неподключенный пользователь не порождает сетевых вызовов
func (u *BotUsecase) ConvertLinks(ctx context.Context, msg model.InboundMessage) error {
	apiKey, err := u.repo.GetCredential(ctx, msg.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return u.reply(ctx, msg, replyPleaseConnect, false)
		}

		u.logger.Error("credential lookup failed",
			zap.String("user_id", msg.UserID.String()),
			zap.Error(err),
		)
		return u.reply(ctx, msg, replyGenericError, false)
	}

	links := u.canonicalizer.ExtractAndCanonicalize(msg.Text)
	if len(links) == 0 {
		reply := u.composer.Compose(msg, nil)
		return u.sender.Send(ctx, reply)
	}

	// Ссылки обмениваются последовательно, порядок сохраняется
	// Неудавшийся обмен молча выбрасывает свою ссылку, не прерывая остальные
	results := make([]model.ShortenResult, 0, len(links))
	for _, link := range links {
		short, err := u.shortener.Shorten(ctx, apiKey, link.CanonicalURL)
		if err != nil {
			u.logger.Warn("shorten failed, link dropped",
				zap.String("user_id", msg.UserID.String()),
				zap.String("canonical_url", link.CanonicalURL),
				zap.Error(err),
			)
			continue
		}
		results = append(results, model.ShortenResult{
			CanonicalURL: link.CanonicalURL,
			ShortURL:     short,
		})
	}

	reply := u.composer.Compose(msg, results)
	if err := u.sender.Send(ctx, reply); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}
