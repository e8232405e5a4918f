package radar

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alpharadar/alpharadar/internal/config"
	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/internal/repository"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

// MockChain is a models.BlockchainService driven by function fields.
type MockChain struct {
	FetchLatestFunc func(ctx context.Context, wallet models.Wallet) models.FetchResult
	GetTokenFunc    func(ctx context.Context, symbol string) (*models.TokenInfo, error)

	mu      sync.Mutex
	fetches map[models.Wallet]int
}

func (m *MockChain) FetchLatest(ctx context.Context, wallet models.Wallet) models.FetchResult {
	m.mu.Lock()
	if m.fetches == nil {
		m.fetches = make(map[models.Wallet]int)
	}
	m.fetches[wallet]++
	m.mu.Unlock()

	if m.FetchLatestFunc == nil {
		return models.FetchedNothing()
	}
	return m.FetchLatestFunc(ctx, wallet)
}

func (m *MockChain) GetToken(ctx context.Context, symbol string) (*models.TokenInfo, error) {
	return m.GetTokenFunc(ctx, symbol)
}

func (m *MockChain) Fetches(wallet models.Wallet) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[wallet]
}

// MockNotificator records every notification it is asked to send.
type MockNotificator struct {
	SendFunc func(ctx context.Context, recipient models.SubscriberID, message string) error

	mu   sync.Mutex
	Sent []SentNotification
}

type SentNotification struct {
	Recipient models.SubscriberID
	Message   string
}

func (m *MockNotificator) SendNotification(ctx context.Context, recipient models.SubscriberID, message string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, recipient, message); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentNotification{Recipient: recipient, Message: message})
	return nil
}

func (m *MockNotificator) SentTo(recipient models.SubscriberID) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, s := range m.Sent {
		if s.Recipient == recipient {
			out = append(out, s.Message)
		}
	}
	return out
}

func (m *MockNotificator) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// scriptedTx returns a fetch func that serves the given signature per wallet.
// Missing wallets return FetchEmpty.
func scriptedTx(txs map[models.Wallet]string) func(context.Context, models.Wallet) models.FetchResult {
	var mu sync.Mutex
	return func(_ context.Context, wallet models.Wallet) models.FetchResult {
		mu.Lock()
		defer mu.Unlock()
		sig, ok := txs[wallet]
		if !ok {
			return models.FetchedNothing()
		}
		return models.FetchedTransaction(models.Transaction{
			Signature: sig,
			Amount:    "5",
			Symbol:    "SOL",
			Timestamp: models.UnknownValue,
		})
	}
}

func testConfig() *config.Config {
	return &config.Config{
		PollInterval:  time.Minute,
		FetchTimeout:  time.Second,
		ExplorerTxURL: "https://solscan.io/tx",
	}
}

type testRadar struct {
	*Radar
	registry *repository.Registry
	tracker  *repository.Tracker
	chain    *MockChain
	notif    *MockNotificator
}

func newTestRadar(t *testing.T, cfg *config.Config) *testRadar {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	log := logger.NewNop()
	tr := &testRadar{
		registry: repository.NewRegistry(log),
		tracker:  repository.NewTracker(),
		chain:    &MockChain{},
		notif:    &MockNotificator{},
	}
	tr.Radar = NewRadar(tr.registry, tr.tracker, tr.chain, tr.notif, log, cfg)
	return tr
}
