package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/cache"
	"github.com/avc-dev/terabis-bot/internal/config"
	"github.com/avc-dev/terabis-bot/internal/config/db"
	"github.com/avc-dev/terabis-bot/internal/handler"
	"github.com/avc-dev/terabis-bot/internal/migrations"
	"github.com/avc-dev/terabis-bot/internal/repository"
	"github.com/avc-dev/terabis-bot/internal/service"
	"github.com/avc-dev/terabis-bot/internal/store"
	"github.com/avc-dev/terabis-bot/internal/telegram"
	"github.com/avc-dev/terabis-bot/internal/usecase"
)

const initTimeout = 30 * time.Second

// dependencies собирает компоненты, которыми владеет приложение
type dependencies struct {
	handler *handler.Handler
	poller  *telegram.Poller
	dbPool  db.Database
	cache   *cache.Cache
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	storage, dbPool, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	credentialCache, err := initCache(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	// repository.New принимает nil кэш, когда Redis не настроен
	var repoCache repository.CredentialCache
	if credentialCache != nil {
		repoCache = credentialCache
	}
	repo := repository.New(storage, repoCache, logger)

	canonicalizer := service.NewCanonicalizer(cfg.RedirectBase)
	shortener := service.NewShortenerClient(cfg.ShortenerEndpoint, cfg.ValidationURL, cfg.RequestTimeout, logger)
	composer := service.NewComposer()

	client := telegram.NewClient(telegram.DefaultBaseURL, cfg.BotToken, cfg.RequestTimeout)
	me, err := client.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reach telegram: %w", err)
	}
	logger.Info("Bot authorized", zap.String("username", me.Username))

	sender := telegram.NewSender(client)
	botUsecase := usecase.New(repo, canonicalizer, shortener, composer, sender, cfg, logger)
	h := handler.New(botUsecase, logger, dbPool)
	poller := telegram.NewPoller(client, h, logger, cfg.PollTimeout, cfg.MaxConcurrency)

	return &dependencies{
		handler: h,
		poller:  poller,
		dbPool:  dbPool,
		cache:   credentialCache,
	}, nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory storage")
		return store.NewMemoryStore(), nil, nil
	}

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Using database storage")
	return store.NewDatabaseStore(database), database, nil
}

// initCache подключает Redis для кэша ключей, если он настроен
func initCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*cache.Cache, error) {
	if cfg.RedisURL == "" {
		logger.Info("Credential cache disabled")
		return nil, nil
	}

	credentialCache, err := cache.New(ctx, cfg.RedisURL, cfg.CredentialCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Using redis credential cache")
	return credentialCache, nil
}
