package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Pinger is anything whose reachability the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDependenciesHandler handles GET /health/ready — readiness probe.
// Checks Redis and upstream API connectivity before declaring ready.
type HealthDependenciesHandler struct {
	redis    *redis.Client
	upstream Pinger
}

func NewHealthDependenciesHandler(rdb *redis.Client, upstream Pinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		redis:    rdb,
		upstream: upstream,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := map[string]dependencyStatus{
		"redis":    {Status: "ok"},
		"upstream": {Status: "ok"},
	}
	healthy := true

	if err := h.redis.Ping(ctx).Err(); err != nil {
		deps["redis"] = dependencyStatus{Status: "down", Error: err.Error()}
		healthy = false
	}
	if err := h.upstream.Ping(ctx); err != nil {
		deps["upstream"] = dependencyStatus{Status: "down", Error: err.Error()}
		healthy = false
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	return c.JSON(status, readinessResponse{
		Status:       overall,
		Dependencies: deps,
	})
}
