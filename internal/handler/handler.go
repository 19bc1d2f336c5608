package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/config/db"
	"github.com/avc-dev/terabis-bot/internal/model"
)

// BotService определяет операции бизнес-логики, доступные диспетчеру команд
type BotService interface {
	ObserveUser(ctx context.Context, msg model.InboundMessage)
	Start(ctx context.Context, msg model.InboundMessage) error
	Connect(ctx context.Context, msg model.InboundMessage, apiKey string) error
	Disconnect(ctx context.Context, msg model.InboundMessage) error
	View(ctx context.Context, msg model.InboundMessage) error
	Help(ctx context.Context, msg model.InboundMessage) error
	Commands(ctx context.Context, msg model.InboundMessage) error
	ConvertLinks(ctx context.Context, msg model.InboundMessage) error
	Broadcast(ctx context.Context, msg model.InboundMessage, text string, scope model.BroadcastScope) error
}

// Handler разбирает входящие сообщения на команды и вызывает бизнес-логику.
// Также обслуживает HTTP-эндпоинт проверки живости
type Handler struct {
	service BotService
	logger  *zap.Logger
	db      db.Database
}

// New создает новый экземпляр Handler
func New(service BotService, logger *zap.Logger, database db.Database) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		db:      database,
	}
}
