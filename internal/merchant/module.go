// Package merchant provides the merchant metadata bounded context module.
package merchant

import (
	apphttp "nftsub_backend/internal/http"
	"nftsub_backend/internal/merchant/handler"
	"nftsub_backend/internal/merchant/repository"
	"nftsub_backend/internal/merchant/service"
	"nftsub_backend/platform/logger"
	"nftsub_backend/platform/validator"
)

// Module is the merchant bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	store   repository.Store
}

// NewModule creates and initializes the merchant module. The store is
// injected by the composition root, which selects the backend once at
// process start.
func NewModule(store repository.Store, cfg service.Config, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, cfg, log)
	h := handler.New(svc, val, log)

	return &Module{
		handler: h,
		service: svc,
		store:   store,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "merchant"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Store returns the underlying merchant store for read access by other
// modules (the NFT metadata endpoint resolves token IDs against it).
func (m *Module) Store() repository.Store {
	return m.store
}

// RegisterRoutes mounts merchant routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/merchant")

	group.POST("/register", ctx.RegisterRateLimiter.RateLimit(), m.handler.Register)
	group.GET("/register", m.handler.Query)
	group.OPTIONS("/register", m.handler.Preflight)
	group.GET("/setup-qr/:merchantId", m.handler.SetupQR)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
