// Package telemetry provides Prometheus metrics and correlation-id aware logging helpers.
package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// Counters
	MessagesReceived prometheus.Counter
	CommandsResolved *prometheus.CounterVec // label: outcome
	RepliesSent      prometheus.Counter
	RepliesFailed    prometheus.Counter

	// Histograms (seconds)
	ResolveDuration prometheus.Observer

	// Gauges
	ChatConnected prometheus.Gauge // 1=connected,0=disconnected
)

// Init registers metrics (idempotent).
func Init() {
	once.Do(func() {
		MessagesReceived = promauto.NewCounter(prometheus.CounterOpts{Name: "chat_messages_received_total", Help: "Number of chat lines received"})
		CommandsResolved = promauto.NewCounterVec(prometheus.CounterOpts{Name: "chat_commands_resolved_total", Help: "Command resolutions by outcome"}, []string{"outcome"})
		RepliesSent = promauto.NewCounter(prometheus.CounterOpts{Name: "chat_replies_sent_total", Help: "Number of chat replies sent"})
		RepliesFailed = promauto.NewCounter(prometheus.CounterOpts{Name: "chat_replies_failed_total", Help: "Number of chat replies that could not be sent"})
		ResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "chat_command_resolve_duration_seconds",
			Help:    "Time spent resolving a command line",
			Buckets: []float64{0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001},
		})
		ChatConnected = promauto.NewGauge(prometheus.GaugeOpts{Name: "chat_connected", Help: "Chat connection up=1 down=0"})
	})
}

// RecordResolution counts one resolution under its outcome label.
func RecordResolution(outcome string) {
	if CommandsResolved != nil {
		CommandsResolved.WithLabelValues(outcome).Inc()
	}
}

// SetChatConnected sets gauge to 1 if connected else 0.
func SetChatConnected(up bool) {
	if ChatConnected == nil {
		return
	}
	if up {
		ChatConnected.Set(1)
	} else {
		ChatConnected.Set(0)
	}
}

// Inc increments c if it has been registered.
func Inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}

// TimeFunc measures the duration of fn and records in observer if non-nil.
func TimeFunc(obs prometheus.Observer, fn func()) time.Duration {
	start := time.Now()
	fn()
	d := time.Since(start)
	if obs != nil {
		obs.Observe(d.Seconds())
	}
	return d
}

// Correlation ID helpers ----------------------------------------------------
type corrKeyType struct{}

var corrKey corrKeyType

// WithCorrelation returns a new context embedding the correlation id.
func WithCorrelation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, corrKey, id)
}

// GetCorrelation returns correlation id or empty string.
func GetCorrelation(ctx context.Context) string {
	if s, ok := ctx.Value(corrKey).(string); ok {
		return s
	}
	return ""
}

// LoggerWithCorr returns a logger with corr attribute if present.
func LoggerWithCorr(ctx context.Context) *slog.Logger {
	if id := GetCorrelation(ctx); id != "" {
		return slog.Default().With(slog.String("corr", id))
	}
	return slog.Default()
}
