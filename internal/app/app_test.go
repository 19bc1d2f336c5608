package app

import (
	"testing"

	"go.uber.org/zap"

	"github.com/avc-dev/terabis-bot/internal/mocks"
)

func TestApp_Close(t *testing.T) {
	t.Run("database pool exists", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		mockDB.EXPECT().Close().Once()

		app := &App{
			logger: zap.NewNop(),
			dbPool: mockDB,
		}

		app.Close()

		mockDB.AssertExpectations(t)
	})

	t.Run("database pool is nil", func(t *testing.T) {
		app := &App{
			logger: zap.NewNop(),
			dbPool: nil,
		}

		// Не должно паниковать
		app.Close()
	})
}
