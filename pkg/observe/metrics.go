package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/toastkit-dev/toastkit/pkg/toast"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "toastkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "toastkit",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a toast.Observer exporting Prometheus metrics:
//
//	<ns>_notifications_total{kind,position}  counter
//	<ns>_dismissals_total{kind,reason}       counter
//	<ns>_clears_total                        counter
//	<ns>_active_notifications                gauge
type Metrics struct {
	shown     *prometheus.CounterVec
	dismissed *prometheus.CounterVec
	clears    prometheus.Counter
	active    prometheus.Gauge
}

// NewMetrics creates and registers the Prometheus observer.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "notifications_total",
			Help:        "Total notifications shown, by kind and position.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind", "position"}),
		dismissed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "dismissals_total",
			Help:        "Total notification dismissals, by kind and reason.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind", "reason"}),
		clears: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "clears_total",
			Help:        "Total bulk clears.",
			ConstLabels: cfg.ConstLabels,
		}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "active_notifications",
			Help:        "Notifications currently on screen.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Shown implements toast.Observer.
func (m *Metrics) Shown(kind toast.Kind, position toast.Position) {
	m.shown.WithLabelValues(string(kind), string(position)).Inc()
	m.active.Inc()
}

// Dismissed implements toast.Observer.
func (m *Metrics) Dismissed(kind toast.Kind, reason toast.DismissReason) {
	m.dismissed.WithLabelValues(string(kind), string(reason)).Inc()
	m.active.Dec()
}

// Cleared implements toast.Observer.
func (m *Metrics) Cleared(containers, items int) {
	m.clears.Inc()
	m.active.Sub(float64(items))
}
