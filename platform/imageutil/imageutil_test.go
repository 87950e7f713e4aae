package imageutil

import (
	"strings"
	"testing"

	"nftsub_backend/platform/apperr"
)

const maxTestLogoBytes = 500 * 1024

func dataURIWithPayloadLen(n int) string {
	return "data:image/png;base64," + strings.Repeat("A", n)
}

func TestEstimateDataURISize(t *testing.T) {
	// 1000 encoded chars decode to 750 bytes.
	uri := dataURIWithPayloadLen(1000)
	if got := EstimateDataURISize(uri); got != 750 {
		t.Fatalf("expected estimated size 750, got %d", got)
	}
}

func TestEstimateDataURISize_CountsPadding(t *testing.T) {
	// Padding characters count toward the encoded length; the estimate is a
	// pure floor(len*3/4) over the payload.
	uri := "data:image/png;base64," + strings.Repeat("A", 998) + "=="
	if got := EstimateDataURISize(uri); got != 750 {
		t.Fatalf("expected estimated size 750, got %d", got)
	}
}

func TestNormalizeLogo_BoundaryUsesRawEstimate(t *testing.T) {
	// A payload estimating to exactly one byte over the cap is rejected even
	// when padding would bring the true decoded size back under it.
	max := 750
	value := "data:image/png;base64," + strings.Repeat("A", 1000) + "=="
	logo, err := NormalizeLogo(&value, max)
	if err == nil {
		t.Fatal("expected validation error at the estimate boundary")
	}
	if logo != nil {
		t.Fatal("expected nil logo on rejection")
	}
}

func TestNormalizeLogo_AbsentIsNil(t *testing.T) {
	logo, err := NormalizeLogo(nil, maxTestLogoBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo != nil {
		t.Fatalf("expected nil logo, got %q", *logo)
	}

	empty := ""
	logo, err = NormalizeLogo(&empty, maxTestLogoBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo != nil {
		t.Fatalf("expected nil logo for empty string, got %q", *logo)
	}
}

func TestNormalizeLogo_NonImageSilentlyDropped(t *testing.T) {
	value := "https://example.com/logo.png"
	logo, err := NormalizeLogo(&value, maxTestLogoBytes)
	if err != nil {
		t.Fatalf("expected non-image value to be dropped, got error: %v", err)
	}
	if logo != nil {
		t.Fatalf("expected nil logo, got %q", *logo)
	}
}

func TestNormalizeLogo_WithinLimitKept(t *testing.T) {
	value := dataURIWithPayloadLen(1000)
	logo, err := NormalizeLogo(&value, maxTestLogoBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo == nil || *logo != value {
		t.Fatalf("expected logo to be kept unchanged")
	}
}

func TestNormalizeLogo_OversizedRejected(t *testing.T) {
	// 700000 encoded chars decode to 525000 bytes, above the 512000 cap.
	value := dataURIWithPayloadLen(700000)
	logo, err := NormalizeLogo(&value, maxTestLogoBytes)
	if err == nil {
		t.Fatal("expected validation error for oversized logo")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation kind, got %v", apperr.GetKind(err))
	}
	if !strings.Contains(err.Error(), "500KB") {
		t.Fatalf("expected error message to name the 500KB cap, got %q", err.Error())
	}
	if logo != nil {
		t.Fatal("expected nil logo on rejection")
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(500 * 1024); got != "500KB" {
		t.Fatalf("expected 500KB, got %q", got)
	}
	if got := FormatSize(2 * 1024 * 1024); got != "2MB" {
		t.Fatalf("expected 2MB, got %q", got)
	}
	if got := FormatSize(512); got != "512 bytes" {
		t.Fatalf("expected 512 bytes, got %q", got)
	}
}
