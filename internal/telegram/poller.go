package telegram

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/model"
)

// Handler обрабатывает одно входящее сообщение
type Handler interface {
	Handle(ctx context.Context, msg model.InboundMessage)
}

// Poller читает ленту getUpdates и раздает сообщения обработчику.
// Параллелизм ограничен семафором, очередность внутри чата не гарантируется
type Poller struct {
	client      *Client
	handler     Handler
	logger      *zap.Logger
	pollTimeout time.Duration
	semaphore   chan struct{}
}

// NewPoller создает цикл опроса с ограничением параллелизма
func NewPoller(client *Client, handler Handler, logger *zap.Logger, pollTimeout time.Duration, maxConcurrency int) *Poller {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Poller{
		client:      client,
		handler:     handler,
		logger:      logger,
		pollTimeout: pollTimeout,
		semaphore:   make(chan struct{}, maxConcurrency),
	}
}

// Run крутит long-poll до отмены контекста.
// Offset подтверждается сразу после получения порции, поэтому сообщение
// обрабатывается не более одного раза даже при сбое обработчика
func (p *Poller) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	var offset int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, next, err := p.client.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !IsPollTimeout(err) {
				p.logger.Warn("poll failed", zap.Error(err))
				// Пауза гасит плотный цикл ошибок при недоступном API
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(3 * time.Second):
				}
			}
			continue
		}
		offset = next

		for _, update := range updates {
			msg, ok := inboundFromUpdate(update)
			if !ok {
				continue
			}

			wg.Add(1)
			p.semaphore <- struct{}{}
			go func(msg model.InboundMessage) {
				defer wg.Done()
				defer func() { <-p.semaphore }()
				p.handler.Handle(ctx, msg)
			}(msg)
		}
	}
}

// inboundFromUpdate переводит обновление Bot API во внутреннюю модель.
// Обновления без сообщения, а также сообщения от ботов отбрасываются
func inboundFromUpdate(update Update) (model.InboundMessage, bool) {
	m := update.Message
	if m == nil || m.Chat == nil || m.From == nil || m.From.IsBot {
		return model.InboundMessage{}, false
	}

	msg := model.InboundMessage{
		ChatID:      m.Chat.ID,
		MessageID:   m.MessageID,
		UserID:      model.UserID(m.From.ID),
		DisplayName: m.From.DisplayName(),
		Text:        m.Text,
	}

	switch {
	case len(m.Photo) > 0:
		msg.Media = model.MediaPhoto
		msg.FileID = m.LargestPhoto()
	case m.Video != nil:
		msg.Media = model.MediaVideo
		msg.FileID = m.Video.FileID
	case m.Document != nil:
		msg.Media = model.MediaDocument
		msg.FileID = m.Document.FileID
	}
	// У медиа-сообщений текст лежит в подписи
	if msg.Media != model.MediaNone && msg.Text == "" {
		msg.Text = m.Caption
	}

	return msg, true
}
