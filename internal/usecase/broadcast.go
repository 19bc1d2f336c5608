package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// Broadcast рассылает сообщение администратора всем получателям области
// Доставка по получателям независима: сбой одного логируется и не
// останавливает остальных. Повторов нет - повторная рассылка задублирует
// сообщения уже охваченным получателям
func (u *BotUsecase) Broadcast(ctx context.Context, msg model.InboundMessage, text string, scope model.BroadcastScope) error {
	if int64(msg.UserID) != u.cfg.AdminID {
		return u.reply(ctx, msg, replyNotAuthorized, false)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return u.reply(ctx, msg, replyBroadcastUsage, false)
	}

	recipients, err := u.listRecipients(ctx, scope)
	if err != nil {
		u.logger.Error("broadcast recipient listing failed",
			zap.String("scope", string(scope)),
			zap.Error(err),
		)
		return u.reply(ctx, msg, replyGenericError, false)
	}

	// Идентификатор рассылки связывает записи лога одного прогона
	jobID := uuid.NewString()
	u.logger.Info("broadcast started",
		zap.String("job_id", jobID),
		zap.String("scope", string(scope)),
		zap.Int("recipients", len(recipients)),
	)

	delivered, failed := 0, 0
	for _, recipient := range recipients {
		err := u.sender.Send(ctx, model.OutboundReply{
			ChatID: int64(recipient),
			Text:   text,
		})
		if err != nil {
			failed++
			u.logger.Warn("broadcast send failed",
				zap.String("job_id", jobID),
				zap.String("recipient", recipient.String()),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}

	u.logger.Info("broadcast finished",
		zap.String("job_id", jobID),
		zap.Int("delivered", delivered),
		zap.Int("failed", failed),
	)

	return u.reply(ctx, msg, fmt.Sprintf(replyBroadcastDone, delivered, failed), false)
}

func (u *BotUsecase) listRecipients(ctx context.Context, scope model.BroadcastScope) ([]model.UserID, error) {
	if scope == model.ScopeCredentialed {
		return u.repo.ListCredentialedUsers(ctx)
	}
	return u.repo.ListAllUsers(ctx)
}
