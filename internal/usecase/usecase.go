package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/config"
	"github.com/avc-dev/terabis-bot/internal/model"
)

// CredentialRepository определяет интерфейс хранилища аккаунтов и ключей
type CredentialRepository interface {
	UpsertAccount(ctx context.Context, userID model.UserID, displayName string) error
	GetCredential(ctx context.Context, userID model.UserID) (model.APIKey, error)
	SetCredential(ctx context.Context, userID model.UserID, key model.APIKey) error
	DeleteCredential(ctx context.Context, userID model.UserID) (bool, error)
	ListAllUsers(ctx context.Context) ([]model.UserID, error)
	ListCredentialedUsers(ctx context.Context) ([]model.UserID, error)
}

// Canonicalizer извлекает и канонизирует share-ссылки из текста
type Canonicalizer interface {
	ExtractAndCanonicalize(text string) []model.CanonicalLink
}

// Shortener обменивает каноническую ссылку на сокращенную и проверяет ключи
type Shortener interface {
	Shorten(ctx context.Context, apiKey model.APIKey, canonicalURL string) (string, error)
	ValidateKey(ctx context.Context, apiKey model.APIKey) bool
}

// Composer собирает исходящий ответ по типу входящего сообщения
type Composer interface {
	Compose(inbound model.InboundMessage, results []model.ShortenResult) model.OutboundReply
}

// Sender отправляет исходящие ответы через транспорт сообщений
type Sender interface {
	Send(ctx context.Context, reply model.OutboundReply) error
}

// BotUsecase содержит бизнес-логику бота
type BotUsecase struct {
	repo          CredentialRepository
	canonicalizer Canonicalizer
	shortener     Shortener
	composer      Composer
	sender        Sender
	cfg           *config.Config
	logger        *zap.Logger
}

// New создает новый экземпляр BotUsecase
func New(
	repo CredentialRepository,
	canonicalizer Canonicalizer,
	shortener Shortener,
	composer Composer,
	sender Sender,
	cfg *config.Config,
	logger *zap.Logger,
) *BotUsecase {
	return &BotUsecase{
		repo:          repo,
		canonicalizer: canonicalizer,
		shortener:     shortener,
		composer:      composer,
		sender:        sender,
		cfg:           cfg,
		logger:        logger,
	}
}

// ObserveUser обновляет учетную запись по любому входящему сообщению
// Учет аккаунтов - best-effort: ошибка логируется и не прерывает поток
func (u *BotUsecase) ObserveUser(ctx context.Context, msg model.InboundMessage) {
	if err := u.repo.UpsertAccount(ctx, msg.UserID, msg.DisplayName); err != nil {
		u.logger.Warn("account upsert failed",
			zap.String("user_id", msg.UserID.String()),
			zap.Error(err),
		)
	}
}

// reply отправляет текстовый ответ в чат входящего сообщения
func (u *BotUsecase) reply(ctx context.Context, msg model.InboundMessage, text string, markdown bool) error {
	return u.sender.Send(ctx, model.OutboundReply{
		ChatID:   msg.ChatID,
		Text:     text,
		Markdown: markdown,
	})
}
