package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/utils"
)

// ServiceInfo is the /ping payload: enough to tell which build of the API
// answered behind a load balancer.
type ServiceInfo struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	ServerTime time.Time `json:"server_time"`
}

// NewPingHandler serves service identification in the standard response
// envelope. Version comes from config; empty means a local dev build.
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	return func(c echo.Context) error {
		info := ServiceInfo{
			Service:    serviceName,
			Version:    version,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now().UTC(),
		}
		return utils.SuccessResponse(c, http.StatusOK, "pong", info)
	}
}

// RegisterHealthEndpoints registers the flat unversioned liveness endpoints.
// Dependency-checking probes live under /health/* and are registered by
// RegisterEnhancedHealthEndpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string) {
	e.GET("/ping", NewPingHandler(serviceName, version))

	alive := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	e.GET("/health", alive)
	e.GET("/healthz", alive)
	e.GET("/ready", alive)
}
