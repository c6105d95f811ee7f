package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    ServiceInfo `json:"data"`
}

func TestNewPingHandler(t *testing.T) {
	t.Run("Identifies the running build", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("chalna-api", "1.2.0")
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp pingEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "pong", resp.Message)
		assert.Equal(t, "chalna-api", resp.Data.Service)
		assert.Equal(t, "1.2.0", resp.Data.Version)
		assert.Equal(t, runtime.Version(), resp.Data.GoVersion)
		assert.NotEmpty(t, resp.Data.Hostname)
		assert.False(t, resp.Data.ServerTime.IsZero())
	})

	t.Run("Empty version reports a dev build", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewPingHandler("chalna-api", "")
		require.NoError(t, handler(c))

		var resp pingEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "development", resp.Data.Version)
	})
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "chalna-api", "1.0.0")

	t.Run("Liveness endpoints answer ok", func(t *testing.T) {
		for _, path := range []string{"/health", "/healthz", "/ready"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, path)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), path)
			assert.Equal(t, "ok", body["status"], path)
		}
	})

	t.Run("Ping answers in the envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp pingEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "chalna-api", resp.Data.Service)
	})

	t.Run("Only GET is allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
