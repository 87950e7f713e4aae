package service

import "fmt"

// chainNames maps EVM chain IDs to the human-readable names wallets and
// marketplaces display in the Chain attribute.
var chainNames = map[string]string{
	"1":        "Ethereum",
	"11155111": "Sepolia",
	"137":      "Polygon",
	"8453":     "Base",
	"42161":    "Arbitrum",
	"10":       "Optimism",
	"56":       "BSC",
	"43114":    "Avalanche",
}

// ChainName resolves a chain ID to its display name, falling back to
// "Chain <id>" for unrecognized IDs.
func ChainName(chainID string) string {
	if name, ok := chainNames[chainID]; ok {
		return name
	}
	return fmt.Sprintf("Chain %s", chainID)
}
