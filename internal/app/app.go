package app

import (
	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/cache"
	"github.com/avc-dev/terabis-bot/internal/config"
	"github.com/avc-dev/terabis-bot/internal/config/db"
	"github.com/avc-dev/terabis-bot/internal/handler"
	"github.com/avc-dev/terabis-bot/internal/telegram"
)

// App представляет приложение бота
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	poller  *telegram.Poller
	dbPool  db.Database
	cache   *cache.Cache
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: deps.handler,
		poller:  deps.poller,
		dbPool:  deps.dbPool,
		cache:   deps.cache,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start()
}

// Close освобождает внешние соединения приложения
func (a *App) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
	}
}
