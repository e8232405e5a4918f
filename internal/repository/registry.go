package repository

import (
	"sort"
	"sync"

	"github.com/alpharadar/alpharadar/internal/models"
	"github.com/alpharadar/alpharadar/pkg/logger"
)

// Registry is an in-memory models.Registry.
// All reads return copies, so callers never hold references into the maps.
type Registry struct {
	logger *logger.Logger

	mu   sync.RWMutex
	subs map[models.SubscriberID]map[models.Wallet]struct{}
}

func NewRegistry(logger *logger.Logger) *Registry {
	return &Registry{
		logger: logger,
		subs:   make(map[models.SubscriberID]map[models.Wallet]struct{}),
	}
}

func (r *Registry) Follow(subscriber models.SubscriberID, wallet models.Wallet) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[subscriber]
	if !ok {
		set = make(map[models.Wallet]struct{})
		r.subs[subscriber] = set
	}
	if _, exists := set[wallet]; exists {
		return false
	}
	set[wallet] = struct{}{}
	r.logger.Debug("Wallet followed", "subscriber", subscriber, "wallet", wallet)
	return true
}

// Unfollow keeps the subscriber entry even when its watch set becomes empty.
func (r *Registry) Unfollow(subscriber models.SubscriberID, wallet models.Wallet) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.subs[subscriber]
	if !ok {
		return false
	}
	if _, exists := set[wallet]; !exists {
		return false
	}
	delete(set, wallet)
	r.logger.Debug("Wallet unfollowed", "subscriber", subscriber, "wallet", wallet)
	return true
}

func (r *Registry) List(subscriber models.SubscriberID) []models.Wallet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.subs[subscriber]
	wallets := make([]models.Wallet, 0, len(set))
	for w := range set {
		wallets = append(wallets, w)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i] < wallets[j] })
	return wallets
}

func (r *Registry) IsFollowing(subscriber models.SubscriberID, wallet models.Wallet) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.subs[subscriber][wallet]
	return ok
}

// AllSubscriptions is ordered by subscriber and then wallet.
func (r *Registry) AllSubscriptions() []models.Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Subscription, 0, len(r.subs))
	for sub, set := range r.subs {
		for w := range set {
			all = append(all, models.Subscription{Subscriber: sub, Wallet: w})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Subscriber != all[j].Subscriber {
			return all[i].Subscriber < all[j].Subscriber
		}
		return all[i].Wallet < all[j].Wallet
	})
	return all
}

func (r *Registry) Stats() (int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := make(map[models.Wallet]struct{})
	for _, set := range r.subs {
		for w := range set {
			wallets[w] = struct{}{}
		}
	}
	return len(r.subs), len(wallets)
}
