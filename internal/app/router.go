package app

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/handler"
	"github.com/avc-dev/terabis-bot/internal/middleware"
)

// newRouter создает и настраивает роутер служебного HTTP-сервера
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))

	r.Get("/ping", h.Ping)

	return r
}
