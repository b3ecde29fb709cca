package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "payroll"

// PayrollMetrics counts salary summary outcomes on its own registry.
type PayrollMetrics struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	rejected  *prometheus.CounterVec
}

func NewPayrollMetrics() *PayrollMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &PayrollMetrics{
		registry: registry,
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_generated_total",
			Help:      "Salary summaries persisted, by currency.",
		}, []string{"currency"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_rejected_total",
			Help:      "Salary summary submissions rejected, by reason.",
		}, []string{"reason"}),
	}
	registry.MustRegister(m.generated, m.rejected)

	return m
}

func (m *PayrollMetrics) SummaryGenerated(currency string) {
	m.generated.WithLabelValues(currency).Inc()
}

func (m *PayrollMetrics) SummaryRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PayrollMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Generated and Rejected expose the raw collectors for tests.
func (m *PayrollMetrics) Generated() *prometheus.CounterVec { return m.generated }

func (m *PayrollMetrics) Rejected() *prometheus.CounterVec { return m.rejected }
