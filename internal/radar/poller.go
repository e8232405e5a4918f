package radar

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/alpharadar/alpharadar/internal/metrics"
	"github.com/alpharadar/alpharadar/internal/models"
)

// TickReport summarizes one pass over all subscriptions.
type TickReport struct {
	// Wallets is the number of distinct wallets in the snapshot.
	Wallets int
	// OK, Empty and Failed count fetch outcomes. Failed includes recovered panics.
	OK     int
	Empty  int
	Failed int
	// New counts wallets whose latest transaction changed.
	New int
	// Delivered and DeliveryFailed count notifications.
	Delivered      int
	DeliveryFailed int
}

// Run waits for the initial delay and then ticks once per poll interval
// until ctx is cancelled. Ticks never overlap.
func (r *Radar) Run(ctx context.Context) {
	r.logger.Info("Starting wallet poller",
		"interval", r.pollInterval(),
		"initial_delay", r.config.InitialDelay,
		"seed_on_first_sight", r.config.SeedOnFirstSight)

	if !sleep(ctx, r.config.InitialDelay) {
		r.logger.Info("Wallet poller stopped before first tick")
		return
	}

	for {
		r.Tick(ctx)
		if !sleep(ctx, r.pollInterval()) {
			r.logger.Info("Wallet poller stopped")
			return
		}
	}
}

// Tick checks every watched wallet once. A failure or panic while handling
// one wallet never prevents the others from being checked.
func (r *Radar) Tick(ctx context.Context) TickReport {
	var report TickReport
	if ctx.Err() != nil {
		return report
	}
	start := time.Now()

	wallets, watchers := groupByWallet(r.registry.AllSubscriptions())
	report.Wallets = len(wallets)

	for _, wallet := range wallets {
		if ctx.Err() != nil {
			r.logger.Info("Tick interrupted", "remaining", report.Wallets-report.OK-report.Empty-report.Failed)
			break
		}
		r.safeCheckWallet(ctx, wallet, watchers[wallet], &report)
	}

	elapsed := time.Since(start)
	metrics.ObserveTick(elapsed)

	r.mu.Lock()
	r.ticks++
	r.lastTick = time.Now()
	r.mu.Unlock()

	r.logger.Debug("Tick finished",
		"wallets", report.Wallets,
		"ok", report.OK,
		"empty", report.Empty,
		"failed", report.Failed,
		"new", report.New,
		"delivered", report.Delivered,
		"delivery_failed", report.DeliveryFailed,
		"elapsed", elapsed)
	return report
}

func (r *Radar) safeCheckWallet(ctx context.Context, wallet models.Wallet, watchers []models.SubscriberID, report *TickReport) {
	defer func() {
		if rec := recover(); rec != nil {
			report.Failed++
			metrics.IncWalletPanic()
			r.logger.Error("Wallet check panicked",
				"wallet", wallet,
				"panic", rec,
				"stack", string(debug.Stack()))
		}
	}()
	r.checkWallet(ctx, wallet, watchers, report)
}

func (r *Radar) checkWallet(ctx context.Context, wallet models.Wallet, watchers []models.SubscriberID, report *TickReport) {
	res := r.fetch(ctx, wallet)
	metrics.IncFetch(res.Status.String())
	switch res.Status {
	case models.FetchOK:
		report.OK++
	case models.FetchEmpty:
		report.Empty++
		return
	default:
		report.Failed++
		r.logger.Debug("Skipping wallet after fetch error", "wallet", wallet, "error", res.Err)
		return
	}

	tx := res.Transaction
	last, seen := r.tracker.GetLast(wallet)
	if seen && last == tx.Signature {
		return
	}
	r.tracker.SetLast(wallet, tx.Signature)

	if !seen && r.config.SeedOnFirstSight {
		r.logger.Info("Seeded wallet baseline", "wallet", wallet, "signature", tx.Signature)
		return
	}

	report.New++
	metrics.IncNewTransaction()
	r.logger.Info("New transaction detected", "wallet", wallet, "signature", tx.Signature, "watchers", len(watchers))

	for _, subscriber := range watchers {
		// The subscriber may have unfollowed since the snapshot was taken.
		if !r.registry.IsFollowing(subscriber, wallet) {
			continue
		}
		event := models.NotificationEvent{
			Recipient:   subscriber,
			Wallet:      wallet,
			Transaction: tx,
		}
		if err := r.deliver(ctx, &event); err != nil {
			report.DeliveryFailed++
			r.logger.Warn("Notification not delivered", "recipient", subscriber, "wallet", wallet, "error", err)
			continue
		}
		report.Delivered++
	}
}

// fetch bounds a single wallet fetch by the configured timeout.
func (r *Radar) fetch(ctx context.Context, wallet models.Wallet) models.FetchResult {
	ctx, cancel := context.WithTimeout(ctx, r.fetchTimeout())
	defer cancel()
	return r.chain.FetchLatest(ctx, wallet)
}

func (r *Radar) deliver(ctx context.Context, event *models.NotificationEvent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("delivery panicked: %v", rec)
		}
	}()
	return r.notificator.SendNotification(ctx, event.Recipient, event.Markdown(r.config.ExplorerTxURL))
}

// groupByWallet returns the distinct wallets in first-appearance order and
// the subscribers watching each of them.
func groupByWallet(subs []models.Subscription) ([]models.Wallet, map[models.Wallet][]models.SubscriberID) {
	var wallets []models.Wallet
	watchers := make(map[models.Wallet][]models.SubscriberID)
	for _, s := range subs {
		if _, ok := watchers[s.Wallet]; !ok {
			wallets = append(wallets, s.Wallet)
		}
		watchers[s.Wallet] = append(watchers[s.Wallet], s.Subscriber)
	}
	return wallets, watchers
}

// sleep waits for d or until ctx is done. It reports whether ctx is still live.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
