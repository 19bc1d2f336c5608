package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// start запускает опрос Telegram и служебный HTTP-сервер
// и блокируется до сигнала завершения
func (a *App) start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    a.config.HealthAddress.String(),
		Handler: newRouter(a.handler, a.logger),
	}

	go func() {
		a.logger.Info("Starting liveness server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Liveness server failed", zap.Error(err))
		}
	}()

	a.logger.Info("Starting update polling")
	err := a.poller.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		a.logger.Warn("Liveness server shutdown failed", zap.Error(shutdownErr))
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.logger.Info("Shutdown complete")
	return nil
}
