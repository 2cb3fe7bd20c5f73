// Package metrics provides Prometheus metrics for the teamsheet roster.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation and outcome label values.
const (
	OpInsert  = "insert"
	OpDelete  = "delete"
	OpFind    = "find"
	OpAtMost  = "at_most"
	OpAll     = "all"
	OpClear   = "clear"
	OutcomeOK = "ok"
)

// Manager owns every Prometheus collector used by the roster.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer

	operations       *prometheus.CounterVec
	operationLatency *prometheus.HistogramVec
	players          prometheus.Gauge
	commands         *prometheus.CounterVec
	errorsByKind     *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "teamsheet",
		subsystem:        "roster",
		histogramBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		enabled:          true,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.operations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "operations_total",
		Help:        "Roster operations by operation and outcome",
		ConstLabels: m.constLabels,
	}, []string{"op", "outcome"})

	m.operationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "operation_latency_milliseconds",
		Help:        "Roster operation latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"op"})

	m.players = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "players",
		Help:        "Number of players currently on the roster",
		ConstLabels: m.constLabels,
	})

	m.commands = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "console_commands_total",
		Help:        "Console commands dispatched, by command letter",
		ConstLabels: m.constLabels,
	}, []string{"command"})

	m.errorsByKind = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Errors by component and kind",
		ConstLabels: m.constLabels,
	}, []string{"component", "kind"})
}

// RecordOperation counts one roster operation with its outcome.
func (m *Manager) RecordOperation(op, outcome string) {
	if !m.enabled {
		return
	}
	m.operations.WithLabelValues(op, outcome).Inc()
}

// RecordOperationLatency observes the latency of a roster operation.
func (m *Manager) RecordOperationLatency(op string, ms float64) {
	if !m.enabled {
		return
	}
	m.operationLatency.WithLabelValues(op).Observe(ms)
}

// UpdatePlayers sets the roster size gauge.
func (m *Manager) UpdatePlayers(n int) {
	if !m.enabled {
		return
	}
	m.players.Set(float64(n))
}

// RecordCommand counts one console command.
func (m *Manager) RecordCommand(command string) {
	if !m.enabled {
		return
	}
	m.commands.WithLabelValues(command).Inc()
}

// RecordError counts one error for a component.
func (m *Manager) RecordError(component, kind string) {
	if !m.enabled {
		return
	}
	m.errorsByKind.WithLabelValues(component, kind).Inc()
}

// RecordOperation counts a roster operation on the global manager.
func RecordOperation(op, outcome string) { globalManager.RecordOperation(op, outcome) }

// RecordOperationLatency observes latency on the global manager.
func RecordOperationLatency(op string, ms float64) { globalManager.RecordOperationLatency(op, ms) }

// UpdatePlayers sets the roster size gauge on the global manager.
func UpdatePlayers(n int) { globalManager.UpdatePlayers(n) }

// RecordCommand counts a console command on the global manager.
func RecordCommand(command string) { globalManager.RecordCommand(command) }

// RecordError counts an error on the global manager.
func RecordError(component, kind string) { globalManager.RecordError(component, kind) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
