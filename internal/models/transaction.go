package models

import "fmt"

// Placeholders substituted for fields the provider leaves out.
const (
	UnknownValue  = "Unknown"
	MissingAmount = "N/A"
	DefaultSymbol = "SOL"
)

// Transaction is the normalized view of a provider transaction.
type Transaction struct {
	// Signature identifies the transaction and drives delta detection.
	Signature string `json:"signature"`
	Amount    string `json:"amount"`
	Symbol    string `json:"symbol"`
	Timestamp string `json:"timestamp"`
}

// FetchStatus classifies the outcome of a fetch.
type FetchStatus int

const (
	FetchError FetchStatus = iota
	FetchEmpty
	FetchOK
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchEmpty:
		return "empty"
	default:
		return "error"
	}
}

// FetchResult is the outcome of one transaction fetch for a wallet.
// Transaction is set only for FetchOK and Err only for FetchError.
type FetchResult struct {
	Status      FetchStatus
	Transaction Transaction
	Err         error
}

func FetchedTransaction(tx Transaction) FetchResult {
	return FetchResult{Status: FetchOK, Transaction: tx}
}

func FetchedNothing() FetchResult {
	return FetchResult{Status: FetchEmpty}
}

func FetchFailed(err error) FetchResult {
	if err == nil {
		err = fmt.Errorf("fetch failed")
	}
	return FetchResult{Status: FetchError, Err: err}
}
