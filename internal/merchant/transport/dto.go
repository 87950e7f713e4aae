package transport

// LogoRedactedPlaceholder replaces non-nil logos in bulk listings so full
// base64 payloads are never transmitted in list form.
const LogoRedactedPlaceholder = "base64..."

// RegisterMerchantRequest contains data for creating or updating a merchant's
// display metadata. A second submission for the same merchantId overwrites
// the earlier one.
type RegisterMerchantRequest struct {
	MerchantID  string  `json:"merchantId" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Logo        *string `json:"logo"`
}

// UpdateMerchantRequest contains partial fields for updating an existing
// merchant. The merchant ID itself is immutable and never part of the patch.
type UpdateMerchantRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

// MerchantResponse represents a merchant record in API responses.
type MerchantResponse struct {
	MerchantID  string  `json:"merchantId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Logo        *string `json:"logo"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// RegisterMerchantResponse wraps a successful registration.
type RegisterMerchantResponse struct {
	Success    bool             `json:"success"`
	MerchantID string           `json:"merchantId"`
	Message    string           `json:"message"`
	Merchant   MerchantResponse `json:"merchant"`
}
