// Package handler exposes the NFT token metadata HTTP endpoint.
package handler

import (
	"net/http"

	"nftsub_backend/internal/metadata/service"
	"nftsub_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for token metadata.
type Handler struct {
	svc *service.Service
}

// New creates a new metadata handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// TokenMetadata returns the synthesized metadata document for a token.
// GET /api/metadata/:chainId/:tokenId
func (h *Handler) TokenMetadata(c *gin.Context) {
	chainID := c.Param("chainId")
	tokenID := c.Param("tokenId")

	metadata, err := h.svc.TokenMetadata(c.Request.Context(), chainID, tokenID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, metadata)
}

// Preflight answers non-preflight OPTIONS probes; real CORS preflights are
// handled by the CORS middleware before reaching here.
// OPTIONS /api/metadata/:chainId/:tokenId
func (h *Handler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}
