package transport

// Attribute is a single trait/value pair in the conventional NFT metadata
// attributes array.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TokenMetadataResponse is the metadata document returned when a wallet or
// marketplace resolves a subscription token's metadata URI. The field set and
// attribute order follow the conventions those consumers expect.
type TokenMetadataResponse struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       *string     `json:"image"`
	ExternalURL string      `json:"external_url"`
	Attributes  []Attribute `json:"attributes"`
}
