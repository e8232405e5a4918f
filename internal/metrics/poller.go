package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(ticksTotal, tickDuration, fetchTotal, newTransactionsTotal, notificationsTotal, walletPanicsTotal)
}

var (
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticks_total",
		Help:      "Completed polling ticks.",
	})

	tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tick_duration_seconds",
		Help:      "Duration of a polling tick.",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Wallet transaction fetches by result.",
		},
		[]string{"result"}, // ok, empty, error
	)

	newTransactionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "new_transactions_total",
		Help:      "New wallet transactions detected.",
	})

	notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by status.",
		},
		[]string{"status"}, // sent, failed
	)

	walletPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_panics_total",
		Help:      "Recovered panics while processing a single wallet.",
	})
)

func ObserveTick(d time.Duration) {
	ticksTotal.Inc()
	tickDuration.Observe(d.Seconds())
}

func IncFetch(result string) {
	fetchTotal.WithLabelValues(result).Inc()
}

func IncNewTransaction() {
	newTransactionsTotal.Inc()
}

func IncNotification(sent bool) {
	status := "sent"
	if !sent {
		status = "failed"
	}
	notificationsTotal.WithLabelValues(status).Inc()
}

func IncWalletPanic() {
	walletPanicsTotal.Inc()
}
