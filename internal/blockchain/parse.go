package blockchain

import (
	"errors"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/alpharadar/alpharadar/internal/models"
)

var (
	ErrInvalidJSON        = errors.New("response is not valid JSON")
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)

// signatureFields lists the keys different API versions use for the transaction id.
var signatureFields = []string{"signature", "tx_hash", "txHash", "hash"}

// ParseLatestTransaction extracts the first (most recent) transaction from a
// transactions response. The body may be a bare array or an object with a
// "transactions" array. found is false when the list is empty or absent.
// Missing fields are replaced by placeholders instead of failing.
func ParseLatestTransaction(body []byte) (tx models.Transaction, found bool, err error) {
	if !gjson.ValidBytes(body) {
		return tx, false, ErrInvalidJSON
	}

	root := gjson.ParseBytes(body)
	var list gjson.Result
	switch {
	case root.IsArray():
		list = root
	case root.IsObject():
		list = root.Get("transactions")
		if !list.Exists() || list.Type == gjson.Null {
			return tx, false, nil
		}
		if !list.IsArray() {
			return tx, false, ErrUnexpectedResponse
		}
	default:
		return tx, false, ErrUnexpectedResponse
	}

	items := list.Array()
	if len(items) == 0 {
		return tx, false, nil
	}
	latest := items[0]
	if !latest.IsObject() {
		return tx, false, ErrUnexpectedResponse
	}

	tx = models.Transaction{
		Signature: firstString(latest, models.UnknownValue, signatureFields...),
		Amount:    firstString(latest, models.MissingAmount, "amount"),
		Symbol:    firstString(latest, models.DefaultSymbol, "symbol"),
		Timestamp: formatTimestamp(latest.Get("timestamp")),
	}
	return tx, true, nil
}

// ParseToken reads token market data. The object may be wrapped in "data".
func ParseToken(body []byte) (*models.TokenInfo, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if data := root.Get("data"); data.IsObject() {
		root = data
	}
	if !root.IsObject() {
		return nil, ErrUnexpectedResponse
	}

	return &models.TokenInfo{
		Name:      firstString(root, models.MissingAmount, "name"),
		Symbol:    firstString(root, models.MissingAmount, "symbol"),
		Price:     firstString(root, models.MissingAmount, "price"),
		Volume24h: firstString(root, models.MissingAmount, "volume_24h", "volume24h"),
		Sentiment: firstString(root, models.MissingAmount, "sentiment"),
	}, nil
}

func firstString(obj gjson.Result, fallback string, keys ...string) string {
	for _, k := range keys {
		r := obj.Get(k)
		if !r.Exists() || r.Type == gjson.Null {
			continue
		}
		if s := strings.TrimSpace(r.String()); s != "" {
			return s
		}
	}
	return fallback
}

// formatTimestamp renders unix seconds (or milliseconds) as RFC3339 in UTC.
// String timestamps are passed through unchanged.
func formatTimestamp(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		n := r.Int()
		if n <= 0 {
			return models.UnknownValue
		}
		if n > 1e12 {
			return time.UnixMilli(n).UTC().Format(time.RFC3339)
		}
		return time.Unix(n, 0).UTC().Format(time.RFC3339)
	case gjson.String:
		if s := strings.TrimSpace(r.String()); s != "" {
			return s
		}
	}
	return models.UnknownValue
}
