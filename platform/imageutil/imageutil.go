// Package imageutil validates data-URI-encoded merchant logos.
// It is the single size-validation implementation shared by every call site
// that accepts a logo, parameterized by the maximum decoded size.
package imageutil

import (
	"fmt"
	"strings"

	"nftsub_backend/platform/apperr"
)

// imageDataURIPrefix marks an embedded image payload. Anything else is not a
// logo this service will persist.
const imageDataURIPrefix = "data:image"

// IsImageDataURI reports whether the value is an embedded-image data URI.
func IsImageDataURI(value string) bool {
	return strings.HasPrefix(value, imageDataURIPrefix)
}

// EstimateDataURISize estimates the decoded byte size of a base64 data URI
// from its encoded payload length: floor(encodedLen * 3/4). Padding is
// deliberately counted; the estimate defines the accept/reject boundary and
// may overshoot the exact decoded size by up to two bytes.
func EstimateDataURISize(dataURI string) int {
	payload := dataURI
	if idx := strings.IndexByte(dataURI, ','); idx >= 0 {
		payload = dataURI[idx+1:]
	}

	return (len(payload) * 3) / 4
}

// NormalizeLogo applies the store's logo policy to a submitted value:
//   - absent (nil or empty) logos normalize to nil;
//   - values that are not embedded-image data URIs are silently dropped
//     (stored as nil) rather than rejected;
//   - embedded images whose estimated decoded size exceeds maxBytes are
//     rejected with a validation error before any store write.
func NormalizeLogo(logo *string, maxBytes int) (*string, error) {
	if logo == nil || *logo == "" {
		return nil, nil
	}

	if !IsImageDataURI(*logo) {
		return nil, nil
	}

	if EstimateDataURISize(*logo) > maxBytes {
		return nil, apperr.Validation(fmt.Sprintf("Logo too large. Max size is %s", FormatSize(maxBytes)))
	}

	return logo, nil
}

// FormatSize renders a byte count for user-facing messages.
func FormatSize(bytes int) string {
	const k = 1024
	switch {
	case bytes >= k*k:
		return fmt.Sprintf("%dMB", bytes/(k*k))
	case bytes >= k:
		return fmt.Sprintf("%dKB", bytes/k)
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
