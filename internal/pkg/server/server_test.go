package server

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	l, err := logger.NewZapLogger(models.LoggerConfig{Level: "error", Format: "console"})
	require.NoError(t, err)
	return l
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	cfg := models.ServerConfig{Port: 8080, ReadTimeout: 15, WriteTimeout: 20, ShutdownTimeout: 30}
	gs := NewGracefulServer(e, newTestLogger(t), cfg)
	assert.NotNil(t, gs)

	// Configured timeouts land on the underlying http.Server
	assert.Equal(t, 15*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, e.Server.WriteTimeout)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	t.Run("never-started server shuts down cleanly", func(t *testing.T) {
		e := echo.New()
		gs := NewGracefulServer(e, newTestLogger(t), models.ServerConfig{ShutdownTimeout: 5})
		assert.NoError(t, gs.Shutdown())
	})

	t.Run("zero shutdown timeout falls back to a sane default", func(t *testing.T) {
		e := echo.New()
		gs := NewGracefulServer(e, newTestLogger(t), models.ServerConfig{})
		assert.NoError(t, gs.Shutdown())
	})
}

func TestShutdownManager_Register(t *testing.T) {
	t.Run("single cleanup function", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		called := false

		sm.Register(func(ctx context.Context) error {
			called = true
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("multiple cleanup functions run in order", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var mu sync.Mutex
		callOrder := []int{}

		for i := 0; i < 5; i++ {
			index := i
			sm.Register(func(ctx context.Context) error {
				mu.Lock()
				callOrder = append(callOrder, index)
				mu.Unlock()
				return nil
			})
		}

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, callOrder)
	})
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("continues past failing cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup1")
			return nil
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup2")
			return fmt.Errorf("cleanup2 failed")
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup3")
			return nil
		})

		err := sm.Shutdown(context.Background())
		// Errors are logged, not returned, so the remaining components still close
		assert.NoError(t, err)
		assert.Equal(t, []string{"cleanup1", "cleanup2", "cleanup3"}, results)
	})

	t.Run("no cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		assert.NoError(t, sm.Shutdown(context.Background()))
	})

	t.Run("slow cleanup completes", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		done := false
		sm.Register(func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			done = true
			return nil
		})

		start := time.Now()
		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.True(t, done)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})
}
