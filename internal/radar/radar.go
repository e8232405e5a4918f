package radar

import (
	"sync"
	"time"

	"github.com/alpharadar/alpharadar/internal/config"
	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

const (
	defaultPollInterval = 60 * time.Second
	defaultFetchTimeout = 10 * time.Second
)

// Radar is the main struct of the application.
// It owns the subscription registry and the delta tracker, answers bot
// commands and runs the polling loop that detects new wallet transactions.
type Radar struct {
	logger *logger.Logger
	config *config.Config

	registry    models.Registry
	tracker     models.DeltaTracker
	chain       models.BlockchainService
	notificator models.NotificationService

	mu       sync.RWMutex
	ticks    uint64
	lastTick time.Time
}

// NewRadar creates a new Radar instance
func NewRadar(
	registry models.Registry,
	tracker models.DeltaTracker,
	chain models.BlockchainService,
	notificator models.NotificationService,
	logger *logger.Logger,
	config *config.Config,
) *Radar {
	return &Radar{
		registry:    registry,
		tracker:     tracker,
		chain:       chain,
		notificator: notificator,
		logger:      logger,
		config:      config,
	}
}

// Status reports registry sizes and poller progress.
func (r *Radar) Status() models.Status {
	subscribers, wallets := r.registry.Stats()

	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.Status{
		Subscribers: subscribers,
		Wallets:     wallets,
		Tracked:     r.tracker.Len(),
		Ticks:       r.ticks,
		LastTick:    r.lastTick,
	}
}

func (r *Radar) pollInterval() time.Duration {
	if r.config.PollInterval <= 0 {
		return defaultPollInterval
	}
	return r.config.PollInterval
}

func (r *Radar) fetchTimeout() time.Duration {
	if r.config.FetchTimeout <= 0 {
		return defaultFetchTimeout
	}
	return r.config.FetchTimeout
}

var _ models.RadarI = (*Radar)(nil)
