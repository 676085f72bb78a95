// Package metrics registra los contadores Prometheus del servicio. Los
// observadores toleran llamadas antes de Init (quedan en no-op), así los
// casos de uso se pueden probar sin registrar nada.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "acueducto_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	batchRuns       prometheus.Counter
	batchInvoices   *prometheus.CounterVec
	batchLatency    prometheus.Histogram
	sweepMarked     prometheus.Counter
	paymentsTotal   *prometheus.CounterVec
	pdfGenerated    *prometheus.CounterVec
	pdfLatency      prometheus.Histogram
)

// Init registra las métricas del servicio. Idempotente.
func Init() {
	registerOnce.Do(func() {
		batchRuns = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "batch_runs_total",
				Help: "Corridas de facturación masiva ejecutadas",
			},
		)
		batchInvoices = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "batch_invoices_total",
				Help: "Facturas procesadas en corridas masivas, por resultado",
			},
			[]string{"result"},
		)
		batchLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "batch_run_latency_seconds",
				Help:    "Duración de la corrida de facturación masiva",
				Buckets: prometheus.DefBuckets,
			},
		)
		sweepMarked = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "overdue_sweep_marked_total",
				Help: "Facturas marcadas en_mora por el barrido de vencidas",
			},
		)
		paymentsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "payments_total",
				Help: "Pagos registrados, por método",
			},
			[]string{"metodo"},
		)
		pdfGenerated = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "invoice_pdf_total",
				Help: "PDFs de factura generados, por resultado",
			},
			[]string{"result"},
		)
		pdfLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "invoice_pdf_latency_seconds",
				Help:    "Duración de la generación del PDF de factura",
				Buckets: prometheus.DefBuckets,
			},
		)

		prometheus.MustRegister(
			batchRuns,
			batchInvoices,
			batchLatency,
			sweepMarked,
			paymentsTotal,
			pdfGenerated,
			pdfLatency,
		)
	})
}

// ObserveBatchRun registra el resultado de una corrida de facturación masiva.
func ObserveBatchRun(created, failed int, duration time.Duration) {
	if batchRuns != nil {
		batchRuns.Inc()
	}
	if batchInvoices != nil {
		batchInvoices.WithLabelValues(resultSuccess).Add(float64(created))
		batchInvoices.WithLabelValues(resultError).Add(float64(failed))
	}
	if batchLatency != nil {
		batchLatency.Observe(duration.Seconds())
	}
}

// AddSweepMarked suma facturas marcadas en_mora por el barrido.
func AddSweepMarked(count int) {
	if count <= 0 {
		return
	}
	if sweepMarked != nil {
		sweepMarked.Add(float64(count))
	}
}

// IncPayment cuenta un pago registrado.
func IncPayment(metodo string) {
	if metodo == "" {
		metodo = "unknown"
	}
	if paymentsTotal != nil {
		paymentsTotal.WithLabelValues(metodo).Inc()
	}
}

// ObservePDF registra la generación de un PDF de factura.
func ObservePDF(err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if pdfGenerated != nil {
		pdfGenerated.WithLabelValues(result).Inc()
	}
	if pdfLatency != nil {
		pdfLatency.Observe(duration.Seconds())
	}
}
