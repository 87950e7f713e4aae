// Package service synthesizes NFT metadata documents from merchant records.
// Every call is a pure read-and-transform with no cross-call state.
package service

import (
	"context"
	"fmt"

	"nftsub_backend/internal/merchant/repository"
	"nftsub_backend/internal/metadata/transport"
	"nftsub_backend/platform/apperr"
)

// MerchantReader is the slice of the merchant store this module needs: token
// IDs resolve to merchant records one-to-one.
type MerchantReader interface {
	Get(ctx context.Context, merchantID string) (repository.Record, error)
}

// Config carries the settings the metadata service needs.
type Config interface {
	GetPublicBaseURL() string
}

// Service builds token metadata documents.
type Service struct {
	merchants     MerchantReader
	publicBaseURL string
}

// New creates a new metadata service.
func New(merchants MerchantReader, cfg Config) *Service {
	return &Service{
		merchants:     merchants,
		publicBaseURL: cfg.GetPublicBaseURL(),
	}
}

// TokenMetadata resolves the merchant record for the given token ID and
// synthesizes its metadata document. An unregistered token yields a
// not-found error whose hint directs the merchant to the setup page, since
// marketplaces surface this message to the token holder.
func (s *Service) TokenMetadata(ctx context.Context, chainID, tokenID string) (transport.TokenMetadataResponse, error) {
	record, err := s.merchants.Get(ctx, tokenID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return transport.TokenMetadataResponse{}, apperr.NotFound("Merchant not registered").
				WithHint(fmt.Sprintf("Merchant %s has not completed metadata registration. Please visit /merchant/setup/%s to add your business information.", tokenID, tokenID))
		}
		return transport.TokenMetadataResponse{}, err
	}

	description := record.Description
	if description == "" {
		description = fmt.Sprintf("Active subscription to %s", record.Name)
	}

	return transport.TokenMetadataResponse{
		Name:        fmt.Sprintf("%s - Subscription", record.Name),
		Description: description,
		Image:       record.Logo,
		ExternalURL: fmt.Sprintf("%s/subscription/%s", s.publicBaseURL, tokenID),
		Attributes: []transport.Attribute{
			{TraitType: "Merchant", Value: record.Name},
			{TraitType: "Token ID", Value: tokenID},
			{TraitType: "Chain", Value: ChainName(chainID)},
			{TraitType: "Status", Value: "Active"},
			{TraitType: "Type", Value: "Premium Subscription"},
		},
	}, nil
}
