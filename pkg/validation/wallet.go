package validation

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyWallet is returned for blank wallet arguments.
	ErrEmptyWallet = errors.New("wallet address cannot be empty")
	// ErrEmptySymbol is returned for blank token symbols.
	ErrEmptySymbol = errors.New("token symbol cannot be empty")
)

// ValidateWallet checks a wallet address. Addresses are provider specific,
// so anything that is not blank is accepted.
func ValidateWallet(wallet string) error {
	if strings.TrimSpace(wallet) == "" {
		return ErrEmptyWallet
	}
	return nil
}

// NormalizeWallet strips surrounding whitespace and the backticks users
// sometimes paste together with an address copied from a bot message.
func NormalizeWallet(wallet string) string {
	return strings.Trim(strings.TrimSpace(wallet), "`")
}

// ValidateAndNormalizeWallet normalizes a wallet and validates the result.
func ValidateAndNormalizeWallet(wallet string) (string, error) {
	normalized := NormalizeWallet(wallet)
	if err := ValidateWallet(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// NormalizeSymbol upper-cases a token symbol and drops a leading "$".
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(symbol), "$"))
	if s == "" {
		return "", ErrEmptySymbol
	}
	return s, nil
}
