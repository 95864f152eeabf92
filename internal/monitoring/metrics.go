package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the engine.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Engine state gauges
	PanesVisible  prometheus.Gauge
	ChatSessions  prometheus.Gauge
	TerminalTabs  prometheus.Gauge
	PortsDetected prometheus.Gauge
	WSConnections prometheus.Gauge

	// Transition counters
	Transitions       *prometheus.CounterVec
	CapRejections     prometheus.Counter
	ProjectResets     prometheus.Counter
	SnapshotsSaved    prometheus.Counter
	SnapshotsRestored prometheus.Counter

	startTime time.Time
	Uptime    prometheus.Gauge
}

// NewMetrics creates and registers the metric set.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "engine_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),

		PanesVisible: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engine_panes_visible",
			Help: "Number of panes currently visible",
		}),
		ChatSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engine_chat_sessions",
			Help: "Number of live chat sessions",
		}),
		TerminalTabs: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engine_terminal_tabs",
			Help: "Number of open terminal tabs",
		}),
		PortsDetected: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engine_ports_detected",
			Help: "Number of ports in the registry",
		}),
		WSConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engine_ws_connections",
			Help: "Number of connected rendering clients",
		}),

		Transitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_transitions_total",
				Help: "State transitions applied, by kind",
			},
			[]string{"kind"},
		),
		CapRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "engine_pane_cap_rejections_total",
			Help: "Pane toggles rejected by the visible cap",
		}),
		ProjectResets: promauto.NewCounter(prometheus.CounterOpts{
			Name: "engine_project_resets_total",
			Help: "Ephemeral state wipes on project switch",
		}),
		SnapshotsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "engine_snapshots_saved_total",
			Help: "Durable snapshots written",
		}),
		SnapshotsRestored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "engine_snapshots_restored_total",
			Help: "Durable snapshots restored",
		}),

		Uptime: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "engine_uptime_seconds",
			Help: "Seconds since engine start",
		}),
	}
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordTransition counts one applied state transition.
func (m *Metrics) RecordTransition(kind string) {
	m.Transitions.WithLabelValues(kind).Inc()
}

// UpdateUptime refreshes the uptime gauge.
func (m *Metrics) UpdateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
