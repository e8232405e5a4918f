package models

import (
	"context"
	"time"
)

type RadarI interface {
	// Run polls watched wallets until ctx is cancelled
	Run(ctx context.Context)

	// HandleCommand answers a bot command sent by a subscriber
	HandleCommand(ctx context.Context, subscriber SubscriberID, text string) string

	// Follow starts watching a wallet for the subscriber
	Follow(subscriber SubscriberID, wallet string) (Wallet, error)

	// ListWallets returns the wallets watched by the subscriber
	ListWallets(subscriber SubscriberID) []Wallet

	// Status reports registry sizes and poller progress
	Status() Status
}

// Status is a point-in-time view of the poller.
type Status struct {
	Subscribers int       `json:"subscribers"`
	Wallets     int       `json:"wallets"`
	Tracked     int       `json:"tracked"`
	Ticks       uint64    `json:"ticks"`
	LastTick    time.Time `json:"last_tick"`
}
