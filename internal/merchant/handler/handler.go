// Package handler exposes the merchant registration HTTP endpoints.
package handler

import (
	"net/http"

	"nftsub_backend/internal/merchant/service"
	"nftsub_backend/internal/merchant/transport"
	"nftsub_backend/platform/httpkit"
	"nftsub_backend/platform/logger"
	"nftsub_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgMissingRequiredFields = "merchantId and name are required"

// Handler handles HTTP requests for merchant registration.
type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

// New creates a new merchant registration handler.
func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

// Register creates or updates a merchant's display metadata.
// POST /api/merchant/register
func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that fails to decode is an unexpected caller error, not a
		// field validation failure. It is logged and answered generically.
		h.log.WithContext(c.Request.Context()).Error("failed to decode registration body", "error", err)
		httpkit.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgMissingRequiredFields)
		return
	}

	merchant, err := h.svc.CreateMerchant(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.RegisterMerchantResponse{
		Success:    true,
		MerchantID: merchant.MerchantID,
		Message:    "Merchant metadata saved successfully",
		Merchant:   merchant,
	})
}

// Query returns a single record when the merchantId query parameter is
// present, or all records (logos redacted) otherwise.
// GET /api/merchant/register
func (h *Handler) Query(c *gin.Context) {
	merchantID := c.Query("merchantId")

	if merchantID != "" {
		merchant, err := h.svc.GetMerchant(c.Request.Context(), merchantID)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, merchant)
		return
	}

	merchants, err := h.svc.ListMerchants(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, merchants)
}

// Preflight answers non-preflight OPTIONS probes; real CORS preflights are
// handled by the CORS middleware before reaching here.
// OPTIONS /api/merchant/register
func (h *Handler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// SetupQR returns a PNG QR code linking to the merchant's setup page.
// GET /api/merchant/setup-qr/:merchantId
func (h *Handler) SetupQR(c *gin.Context) {
	merchantID := c.Param("merchantId")
	if merchantID == "" {
		httpkit.Error(c, http.StatusBadRequest, "merchantId is required")
		return
	}

	png, err := h.svc.SetupQR(merchantID)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
