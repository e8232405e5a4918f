package models

// TokenInfo is market data for a single token.
type TokenInfo struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	Volume24h string `json:"volume_24h"`
	Sentiment string `json:"sentiment"`
}
