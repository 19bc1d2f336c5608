package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
	"github.com/avc-dev/terabis-bot/internal/store"
)

// Start приветствует пользователя, различая подключенных и новых
func (u *BotUsecase) Start(ctx context.Context, msg model.InboundMessage) error {
	name := msg.DisplayName
	if name == "" {
		name = "there"
	}

	_, err := u.repo.GetCredential(ctx, msg.UserID)
	switch {
	case err == nil:
		return u.reply(ctx, msg, fmt.Sprintf(replyGreetingConnected, name), false)
	case errors.Is(err, store.ErrNotFound):
		return u.reply(ctx, msg, fmt.Sprintf(replyGreetingNew, name), false)
	default:
		u.logger.Error("credential lookup failed",
			zap.String("user_id", msg.UserID.String()),
			zap.Error(err),
		)
		return u.reply(ctx, msg, replyGenericError, false)
	}
}

// Connect проверяет ключ у внешнего сервиса и только после успеха сохраняет
// Валидация всегда предшествует записи: непригодный ключ в хранилище не попадает
func (u *BotUsecase) Connect(ctx context.Context, msg model.InboundMessage, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return u.reply(ctx, msg, replyConnectUsage, false)
	}

	if !u.shortener.ValidateKey(ctx, model.APIKey(apiKey)) {
		return u.reply(ctx, msg, replyInvalidKey, false)
	}

	if err := u.repo.SetCredential(ctx, msg.UserID, model.APIKey(apiKey)); err != nil {
		// Корректность состояния ключей значима - ошибку не глотаем молча
		u.logger.Error("credential save failed",
			zap.String("user_id", msg.UserID.String()),
			zap.Error(err),
		)
		return u.reply(ctx, msg, replyGenericError, false)
	}

	return u.reply(ctx, msg, replyConnected, false)
}

// Help отправляет инструкцию по подключению ключа
func (u *BotUsecase) Help(ctx context.Context, msg model.InboundMessage) error {
	return u.reply(ctx, msg, replyHelp, false)
}

// Commands отправляет список доступных команд
func (u *BotUsecase) Commands(ctx context.Context, msg model.InboundMessage) error {
	return u.reply(ctx, msg, replyCommands, true)
}

// Disconnect удаляет ключ, различая "отключен" и "не был подключен"
func (u *BotUsecase) Disconnect(ctx context.Context, msg model.InboundMessage) error {
	existed, err := u.repo.DeleteCredential(ctx, msg.UserID)
	if err != nil {
		u.logger.Error("credential delete failed",
			zap.String("user_id", msg.UserID.String()),
			zap.Error(err),
		)
		return u.reply(ctx, msg, replyGenericError, false)
	}

	if !existed {
		return u.reply(ctx, msg, replyNotConnected, false)
	}

	return u.reply(ctx, msg, replyDisconnected, false)
}

// View показывает подключенный ключ
func (u *BotUsecase) View(ctx context.Context, msg model.InboundMessage) error {
	apiKey, err := u.repo.GetCredential(ctx, msg.UserID)
	switch {
	case err == nil:
		return u.reply(ctx, msg, fmt.Sprintf(replyViewKey, apiKey), true)
	case errors.Is(err, store.ErrNotFound):
		return u.reply(ctx, msg, replyViewNoKey, false)
	default:
		u.logger.Error("credential lookup failed",
			zap.String("user_id", msg.UserID.String()),
			zap.Error(err),
		)
		return u.reply(ctx, msg, replyGenericError, false)
	}
}
