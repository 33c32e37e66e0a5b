// Package metrics expone contadores Prometheus del dashboard: ajustes de estoque,
// finalizaciones de venta, documentos NF-e generados y latencia de llamadas al backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "infostock"

// Metrics agrupa los colectores en un registro propio (aislado del global para tests).
// Todos los métodos aceptan receptor nil.
type Metrics struct {
	registry         *prometheus.Registry
	stockSubmissions *prometheus.CounterVec
	checkouts        *prometheus.CounterVec
	invoiceDocuments *prometheus.CounterVec
	backendLatency   *prometheus.HistogramVec
}

// New registra los colectores y las métricas de runtime de Go.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stockSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stock_submissions_total",
			Help:      "Ajustes de estoque enviados al backend por tipo y resultado.",
		}, []string{"type", "outcome"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Finalizaciones de venta por resultado.",
		}, []string{"outcome"}),
		invoiceDocuments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_documents_total",
			Help:      "Documentos NF-e generados por resultado.",
		}, []string{"outcome"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latencia de llamadas al backend REST.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "status"}),
	}
	m.registry.MustRegister(
		m.stockSubmissions,
		m.checkouts,
		m.invoiceDocuments,
		m.backendLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler endpoint /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry registro subyacente (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// StockSubmitted cuenta un ajuste de estoque.
func (m *Metrics) StockSubmitted(movementType string, ok bool) {
	if m == nil {
		return
	}
	m.stockSubmissions.WithLabelValues(movementType, outcome(ok)).Inc()
}

// CheckoutFinished cuenta una finalización de venta.
func (m *Metrics) CheckoutFinished(ok bool) {
	if m == nil {
		return
	}
	m.checkouts.WithLabelValues(outcome(ok)).Inc()
}

// InvoiceDocumentGenerated cuenta un documento NF-e.
func (m *Metrics) InvoiceDocumentGenerated(ok bool) {
	if m == nil {
		return
	}
	m.invoiceDocuments.WithLabelValues(outcome(ok)).Inc()
}

// ObserveBackendCall registra latencia; status 0 = fallo de transporte.
func (m *Metrics) ObserveBackendCall(operation string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.backendLatency.WithLabelValues(operation, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
