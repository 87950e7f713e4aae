package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nftsub_backend/internal/merchant/repository"
	"nftsub_backend/internal/metadata/service"
	"nftsub_backend/internal/metadata/transport"

	"github.com/gin-gonic/gin"
)

type testConfig struct{}

func (testConfig) GetPublicBaseURL() string { return "https://nft-sub.vercel.app" }

func newTestRouter(t *testing.T, records ...repository.Record) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemory()
	for _, record := range records {
		if err := store.Put(context.Background(), record); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	h := New(service.New(store, testConfig{}))

	engine := gin.New()
	engine.GET("/api/metadata/:chainId/:tokenId", h.TokenMetadata)
	engine.OPTIONS("/api/metadata/:chainId/:tokenId", h.Preflight)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestTokenMetadata_Success(t *testing.T) {
	engine := newTestRouter(t, repository.Record{MerchantID: "42", Name: "Acme"})

	rec := get(engine, "/api/metadata/1/42")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.TokenMetadataResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Name != "Acme - Subscription" {
		t.Fatalf("unexpected name %q", resp.Name)
	}
	if resp.ExternalURL != "https://nft-sub.vercel.app/subscription/42" {
		t.Fatalf("unexpected external url %q", resp.ExternalURL)
	}
	if len(resp.Attributes) != 5 {
		t.Fatalf("expected 5 attributes, got %d", len(resp.Attributes))
	}

	// The null image must be serialized explicitly, not omitted.
	if !strings.Contains(rec.Body.String(), `"image":null`) {
		t.Fatalf("expected explicit null image, got %s", rec.Body.String())
	}
}

func TestTokenMetadata_UnregisteredReturns404WithGuidance(t *testing.T) {
	engine := newTestRouter(t)

	rec := get(engine, "/api/metadata/1/42")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["error"] != "Merchant not registered" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
	if !strings.Contains(resp["message"], "42") || !strings.Contains(resp["message"], "/merchant/setup/42") {
		t.Fatalf("expected remediation message referencing the token id, got %q", resp["message"])
	}
}

func TestPreflight(t *testing.T) {
	engine := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/metadata/1/42", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", rec.Body.String())
	}
}
