package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет доступность хранилища.
// При in-memory хранилище база не настроена и эндпоинт отвечает отказом
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		http.Error(w, "database is not configured", http.StatusInternalServerError)
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		http.Error(w, "database is unavailable", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
