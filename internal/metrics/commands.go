package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(commandsTotal) }

var commandsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Bot commands handled, labeled by command.",
	},
	[]string{"command"},
)

func IncCommand(command string) {
	commandsTotal.WithLabelValues(strings.ToLower(strings.TrimSpace(command))).Inc()
}
