package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"coursebridge/config"
	"coursebridge/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// dbPingTimeout bounds the health probe so a wedged database cannot hang
// the endpoint.
const dbPingTimeout = 2 * time.Second

// HealthHandler reports service liveness and database reachability.
type HealthHandler struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(cfg *config.Config, logger *slog.Logger, db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

type healthStatus struct {
	Status         string  `json:"status"`
	Timestamp      string  `json:"timestamp"`
	Version        string  `json:"version"`
	Environment    string  `json:"environment"`
	Database       string  `json:"database,omitempty"`
	ResponseTimeMs float64 `json:"response_time_ms"`
}

// Check reports full service health including a database ping.
func (h *HealthHandler) Check(c echo.Context) error {
	start := time.Now()
	status := "healthy"
	database := "up"
	httpStatus := http.StatusOK

	if err := h.pingDatabase(c.Request().Context()); err != nil {
		h.logger.Warn("Health check database ping failed", slog.Any("error", err))
		status = "degraded"
		database = "down"
		httpStatus = http.StatusServiceUnavailable
	}

	return response.Success(c, httpStatus, healthStatus{
		Status:         status,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Version:        Version,
		Environment:    h.cfg.Env.Env,
		Database:       database,
		ResponseTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// CheckSimple reports liveness without touching the database. Load
// balancers poll this one.
func (h *HealthHandler) CheckSimple(c echo.Context) error {
	return response.Success(c, http.StatusOK, healthStatus{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Version:     Version,
		Environment: h.cfg.Env.Env,
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(pingCtx)
}
