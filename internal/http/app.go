// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"nftsub_backend/platform/config"
	"nftsub_backend/platform/logger"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and store settings only).
	Config interface {
		config.HTTPConfig
		config.StoreConfig
	}
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks against the merchant store. A ping
	// failure means the durable backend is serving in degraded mode, not that
	// the service is down.
	Health HealthChecker
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
