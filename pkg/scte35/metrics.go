package scte35

import "github.com/prometheus/client_golang/prometheus"

const metricsService = "scte35gen"

// Metrics is an optional collaborator that records generator activity
// for scraping by the surrounding pipeline's Prometheus endpoint. A nil
// *Metrics is valid everywhere it is accepted; all methods become no-ops.
type Metrics struct {
	sectionsEmitted  *prometheus.CounterVec
	synthesisFailure *prometheus.CounterVec
	reassemblyWarn   *prometheus.CounterVec
	pendingDepth     prometheus.Gauge
}

// NewMetrics registers a fresh set of collectors with prometheus's
// default registry and returns a Metrics ready to pass to NewGenerator's
// collaborator-style constructors (see cmd/scte35gend).
func NewMetrics() *Metrics {
	m := &Metrics{
		sectionsEmitted: newCounterVec(
			"sections_emitted_total",
			"PSI sections emitted, partitioned by splice command type and form.",
			[]string{"command", "form"},
		),
		synthesisFailure: newCounterVec(
			"synthesis_failures_total",
			"Command synthesis failures, partitioned by splice command type.",
			[]string{"command"},
		),
		reassemblyWarn: newCounterVec(
			"reassembly_warnings_total",
			"Non-fatal reassembly conditions, partitioned by reason.",
			[]string{"reason"},
		),
		pendingDepth: newGauge(
			"pending_messages",
			"Number of synthesized Messages currently awaiting emission.",
		),
	}
	return m
}

func (m *Metrics) observeEmit(command CommandType, form string) {
	if m == nil {
		return
	}
	m.sectionsEmitted.WithLabelValues(command.String(), form).Inc()
}

func (m *Metrics) observeSynthesisFailure(command CommandType) {
	if m == nil {
		return
	}
	m.synthesisFailure.WithLabelValues(command.String()).Inc()
}

func (m *Metrics) observeReassemblyWarning(reason string) {
	if m == nil {
		return
	}
	m.reassemblyWarn.WithLabelValues(reason).Inc()
}

func (m *Metrics) setPendingDepth(n int) {
	if m == nil {
		return
	}
	m.pendingDepth.Set(float64(n))
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        name,
			Help:        help,
			ConstLabels: prometheus.Labels{"service": metricsService},
		},
		labels,
	)
	prometheus.MustRegister(cv)
	return cv
}

func newGauge(name, help string) prometheus.Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        name,
		Help:        help,
		ConstLabels: prometheus.Labels{"service": metricsService},
	})
	prometheus.MustRegister(g)
	return g
}
