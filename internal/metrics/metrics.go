// metrics - prometheus-коллекторы компаньон-сервиса.
// Все методы безопасны для nil-получателя: в тестах метрики можно не передавать.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sortashort"

type Metrics struct {
	Registry *prometheus.Registry

	upstreamRequests  *prometheus.CounterVec
	upstreamDuration  *prometheus.HistogramVec
	reconcilerState   *prometheus.GaugeVec
	optimisticReverts prometheus.Counter
}

// New создаёт отдельный реестр (не глобальный DefaultRegisterer).
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Requests to the Sort a Short REST API by endpoint and outcome.",
		}, []string{"method", "endpoint", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests to the Sort a Short REST API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		reconcilerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciler",
			Name:      "state",
			Help:      "Current profile reconciler state (1 for the active state).",
		}, []string{"state"}),
		optimisticReverts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "social",
			Name:      "optimistic_reverts_total",
			Help:      "Optimistic follow toggles reverted after a failed call.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.upstreamRequests,
		m.upstreamDuration,
		m.reconcilerState,
		m.optimisticReverts,
	)

	return m
}

// Handler - HTTP-обработчик для /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveUpstream учитывает один исходящий запрос; outcome - "ok" или класс ошибки.
func (m *Metrics) ObserveUpstream(method, endpoint, outcome string, dur time.Duration) {
	if m == nil {
		return
	}

	m.upstreamRequests.WithLabelValues(method, endpoint, outcome).Inc()
	m.upstreamDuration.WithLabelValues(method, endpoint).Observe(dur.Seconds())
}

// SetReconcilerState выставляет 1 для текущего состояния и сбрасывает остальные.
func (m *Metrics) SetReconcilerState(state string) {
	if m == nil {
		return
	}

	m.reconcilerState.Reset()
	m.reconcilerState.WithLabelValues(state).Set(1)
}

func (m *Metrics) IncOptimisticRevert() {
	if m == nil {
		return
	}

	m.optimisticReverts.Inc()
}
