package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// Handle разбирает сообщение и направляет его в нужную операцию.
// Сообщение без команды считается запросом на конвертацию ссылок
func (h *Handler) Handle(ctx context.Context, msg model.InboundMessage) {
	h.service.ObserveUser(ctx, msg)

	command, args := parseCommand(msg.Text)

	var err error
	switch command {
	case "/start":
		err = h.service.Start(ctx, msg)
	case "/connect":
		err = h.service.Connect(ctx, msg, args)
	case "/disconnect":
		err = h.service.Disconnect(ctx, msg)
	case "/view":
		err = h.service.View(ctx, msg)
	case "/help":
		err = h.service.Help(ctx, msg)
	case "/commands":
		err = h.service.Commands(ctx, msg)
	case "/broadcast":
		err = h.service.Broadcast(ctx, msg, args, model.ScopeAll)
	case "/broadcast_credentialed":
		err = h.service.Broadcast(ctx, msg, args, model.ScopeCredentialed)
	default:
		err = h.service.ConvertLinks(ctx, msg)
	}

	if err != nil {
		h.logger.Error("message handling failed",
			zap.String("command", command),
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
	}
}

// parseCommand выделяет команду и хвост аргументов.
// Суффикс @botname после команды отбрасывается, неизвестные команды
// и обычный текст возвращаются с пустой командой
func parseCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	command := text
	args := ""
	if idx := strings.IndexAny(text, " \n"); idx >= 0 {
		command = text[:idx]
		args = strings.TrimSpace(text[idx+1:])
	}
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}
	return command, args
}
