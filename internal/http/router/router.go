// Package router assembles the gin engine from the application's modules.
package router

import (
	"net/http"

	apphttp "nftsub_backend/internal/http"
	"nftsub_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the HTTP router: global middleware, the health endpoint, and
// every module's routes under /api.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(cors.New(corsConfig(app)))

	engine.GET("/api/health", healthHandler(app))

	ctx := &apphttp.RouterContext{
		Engine:              engine,
		API:                 engine.Group("/api"),
		RegisterRateLimiter: httpkit.NewRegisterRateLimiter(app.Logger),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("registered module routes", "module", module.Name())
	}

	return engine
}

// corsConfig mirrors the permissive cross-origin policy the metadata
// endpoints are consumed under: NFT marketplaces and wallets resolve token
// URIs from arbitrary origins.
func corsConfig(app *apphttp.App) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	cfg.OptionsResponseStatusCode = http.StatusOK

	if app.Config.GetCORSAllowAll() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = app.Config.GetCORSOrigins()
	}

	return cfg
}

// healthHandler reports liveness plus which store backend is serving. A
// failing ping against the durable backend is reported as degraded: the
// service keeps answering from the in-memory fallback.
func healthHandler(app *apphttp.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		degraded := false
		if err := app.Health.Ping(c.Request.Context()); err != nil {
			degraded = true
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"store":    app.Config.GetStoreBackend(),
			"degraded": degraded,
		})
	}
}
