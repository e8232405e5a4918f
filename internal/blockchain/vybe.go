package blockchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

const (
	// APIKeyHeader carries the Vybe API key on every request.
	APIKeyHeader = "x-api-key"

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 4 << 20
	// maxErrorBodySize caps the body kept in a StatusError.
	maxErrorBodySize = 512
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Body)
}

// Vybe is a client for the Vybe Solana indexer API.
type Vybe struct {
	logger  *logger.Logger
	baseURL string
	apiKey  string
	txPath  string
	client  *http.Client
}

// NewVybe creates a new Vybe client. txPath is the last segment of the
// wallet transactions endpoint ("txs" or "transactions" depending on the API version).
func NewVybe(baseURL, apiKey, txPath string, timeout time.Duration, logger *logger.Logger) *Vybe {
	if txPath == "" {
		txPath = "txs"
	}
	return &Vybe{
		logger:  logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		txPath:  strings.Trim(txPath, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchLatest performs exactly one request for the wallet's transaction list
// and classifies the outcome. It never retries.
func (v *Vybe) FetchLatest(ctx context.Context, wallet models.Wallet) models.FetchResult {
	path := fmt.Sprintf("/wallets/%s/%s", url.PathEscape(string(wallet)), v.txPath)

	body, err := v.get(ctx, path)
	if err != nil {
		v.logFetchError(wallet, err)
		return models.FetchFailed(fmt.Errorf("failed to fetch transactions for %s: %w", wallet, err))
	}

	tx, found, err := ParseLatestTransaction(body)
	if err != nil {
		v.logger.Warn("Failed to parse transactions response", "wallet", wallet, "error", err)
		return models.FetchFailed(fmt.Errorf("failed to parse transactions for %s: %w", wallet, err))
	}
	if !found {
		v.logger.Debug("Wallet has no transactions", "wallet", wallet)
		return models.FetchedNothing()
	}
	return models.FetchedTransaction(tx)
}

// GetToken fetches market data for a token symbol.
func (v *Vybe) GetToken(ctx context.Context, symbol string) (*models.TokenInfo, error) {
	body, err := v.get(ctx, "/tokens/"+url.PathEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token %s: %w", symbol, err)
	}
	token, err := ParseToken(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token %s: %w", symbol, err)
	}
	return token, nil
}

func (v *Vybe) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(APIKeyHeader, v.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody := string(body)
		if len(errBody) > maxErrorBodySize {
			errBody = errBody[:maxErrorBodySize]
		}
		return nil, &StatusError{Code: resp.StatusCode, Body: errBody}
	}
	return body, nil
}

func (v *Vybe) logFetchError(wallet models.Wallet, err error) {
	var se *StatusError
	if errors.As(err, &se) {
		v.logger.Warn("Transaction API returned an error", "wallet", wallet, "code", se.Code, "body", se.Body)
		return
	}
	v.logger.Warn("Transaction API request failed", "wallet", wallet, "error", err)
}
