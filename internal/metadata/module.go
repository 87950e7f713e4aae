// Package metadata provides the NFT token metadata bounded context module.
package metadata

import (
	apphttp "nftsub_backend/internal/http"
	"nftsub_backend/internal/metadata/handler"
	"nftsub_backend/internal/metadata/service"
)

// Module is the metadata bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the metadata module. It reads merchant
// records through the narrow MerchantReader interface, so tests and the
// composition root can supply any store implementation.
func NewModule(merchants service.MerchantReader, cfg service.Config) *Module {
	svc := service.New(merchants, cfg)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "metadata"
}

// RegisterRoutes mounts metadata routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/metadata")

	group.GET("/:chainId/:tokenId", m.handler.TokenMetadata)
	group.OPTIONS("/:chainId/:tokenId", m.handler.Preflight)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
