package models

import "context"

// BlockchainService reads wallet and token data from a chain indexer.
type BlockchainService interface {
	// FetchLatest returns the most recent transaction of a wallet.
	// Failures are reported through the result, never as a panic or error return.
	FetchLatest(ctx context.Context, wallet Wallet) FetchResult
	// GetToken returns market data for a token symbol.
	GetToken(ctx context.Context, symbol string) (*TokenInfo, error)
}
