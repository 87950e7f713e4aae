// Package service implements the merchant metadata store's public contract on
// top of the key-value Store.
package service

import (
	"context"
	"fmt"
	"time"

	"nftsub_backend/internal/merchant/repository"
	"nftsub_backend/internal/merchant/transport"
	"nftsub_backend/platform/apperr"
	"nftsub_backend/platform/imageutil"
	"nftsub_backend/platform/logger"

	qrcode "github.com/skip2/go-qrcode"
)

// setupQRSize is the pixel width of generated setup QR codes.
const setupQRSize = 256

// Service provides business logic for merchant display metadata.
type Service struct {
	store         repository.Store
	maxLogoBytes  int
	publicBaseURL string
	log           *logger.Logger
}

// Config carries the settings the merchant service needs.
type Config interface {
	GetMaxLogoBytes() int
	GetPublicBaseURL() string
}

// New creates a new merchant service.
func New(store repository.Store, cfg Config, log *logger.Logger) *Service {
	return &Service{
		store:         store,
		maxLogoBytes:  cfg.GetMaxLogoBytes(),
		publicBaseURL: cfg.GetPublicBaseURL(),
		log:           log,
	}
}

// CreateMerchant creates or overwrites the merchant record for the given ID
// (upsert). The logo is normalized first: oversized logos are rejected before
// any store write, and values that are not embedded-image data URIs are
// stored as nil. On overwrite the original createdAt is preserved while
// updatedAt is refreshed.
func (s *Service) CreateMerchant(ctx context.Context, req transport.RegisterMerchantRequest) (transport.MerchantResponse, error) {
	logo, err := imageutil.NormalizeLogo(req.Logo, s.maxLogoBytes)
	if err != nil {
		return transport.MerchantResponse{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	record := repository.Record{
		MerchantID:  req.MerchantID,
		Name:        req.Name,
		Description: req.Description,
		Logo:        logo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Upsert keeps the original creation time of an existing record.
	if existing, err := s.store.Get(ctx, req.MerchantID); err == nil {
		record.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Put(ctx, record); err != nil {
		s.log.StoreError("create_merchant", err)
		return transport.MerchantResponse{}, apperr.Internal("Failed to save merchant metadata")
	}

	return toResponse(record), nil
}

// GetMerchant retrieves a single merchant record, logo included.
func (s *Service) GetMerchant(ctx context.Context, merchantID string) (transport.MerchantResponse, error) {
	record, err := s.store.Get(ctx, merchantID)
	if err != nil {
		return transport.MerchantResponse{}, err
	}
	return toResponse(record), nil
}

// ListMerchants retrieves all merchant records with every non-nil logo
// replaced by a placeholder, so bulk listings never carry full payloads.
func (s *Service) ListMerchants(ctx context.Context) ([]transport.MerchantResponse, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		s.log.StoreError("list_merchants", err)
		return nil, apperr.Internal("Failed to fetch merchants")
	}

	responses := make([]transport.MerchantResponse, 0, len(records))
	for _, record := range records {
		resp := toResponse(record)
		if resp.Logo != nil {
			placeholder := transport.LogoRedactedPlaceholder
			resp.Logo = &placeholder
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// UpdateMerchant merges partial fields into an existing record. It fails with
// not-found when no record exists; merchantId and createdAt are preserved and
// updatedAt is refreshed.
func (s *Service) UpdateMerchant(ctx context.Context, merchantID string, req transport.UpdateMerchantRequest) (transport.MerchantResponse, error) {
	record, err := s.store.Get(ctx, merchantID)
	if err != nil {
		return transport.MerchantResponse{}, err
	}

	if req.Name != nil {
		record.Name = *req.Name
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Logo != nil {
		logo, err := imageutil.NormalizeLogo(req.Logo, s.maxLogoBytes)
		if err != nil {
			return transport.MerchantResponse{}, err
		}
		record.Logo = logo
	}

	record.MerchantID = merchantID
	record.UpdatedAt = time.Now().UTC().Format(time.RFC3339Nano)

	if err := s.store.Put(ctx, record); err != nil {
		s.log.StoreError("update_merchant", err)
		return transport.MerchantResponse{}, apperr.Internal("Failed to update merchant metadata")
	}

	return toResponse(record), nil
}

// DeleteMerchant removes a merchant record and reports whether one existed.
func (s *Service) DeleteMerchant(ctx context.Context, merchantID string) (bool, error) {
	existed, err := s.store.Delete(ctx, merchantID)
	if err != nil {
		s.log.StoreError("delete_merchant", err)
		return false, apperr.Internal("Failed to delete merchant metadata")
	}
	return existed, nil
}

// SetupQR renders a PNG QR code pointing at the merchant's public setup page,
// the same path the NFT metadata 404 hint directs unregistered merchants to.
func (s *Service) SetupQR(merchantID string) ([]byte, error) {
	url := fmt.Sprintf("%s/merchant/setup/%s", s.publicBaseURL, merchantID)

	png, err := qrcode.Encode(url, qrcode.Medium, setupQRSize)
	if err != nil {
		return nil, apperr.Internal("Failed to generate setup QR code")
	}

	return png, nil
}

func toResponse(record repository.Record) transport.MerchantResponse {
	return transport.MerchantResponse{
		MerchantID:  record.MerchantID,
		Name:        record.Name,
		Description: record.Description,
		Logo:        record.Logo,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}
