package repository

import (
	"sync"

	"github.com/alpharadar/alpharadar/internal/models"
)

// Tracker is an in-memory models.DeltaTracker.
// Entries are never evicted.
type Tracker struct {
	mu   sync.RWMutex
	last map[models.Wallet]string
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[models.Wallet]string)}
}

func (t *Tracker) GetLast(wallet models.Wallet) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ref, ok := t.last[wallet]
	return ref, ok
}

func (t *Tracker) SetLast(wallet models.Wallet, ref string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last[wallet] = ref
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.last)
}
