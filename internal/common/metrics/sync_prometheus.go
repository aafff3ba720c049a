package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type SyncPrometheusMetrics struct {
	ordersProcessed      *prometheus.CounterVec
	transactionsIngested *prometheus.CounterVec
	cabinetSyncDuration  *prometheus.HistogramVec
}

func newSyncPrometheusMetrics(reg prometheus.Registerer) *SyncPrometheusMetrics {
	mtc := &SyncPrometheusMetrics{
		ordersProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cabinet_sync_orders_total",
				Help: "Number of finished sync orders by terminal status",
			},
			[]string{"status"},
		),
		transactionsIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cabinet_sync_transactions_total",
				Help: "Number of ingested external transactions by outcome",
			},
			[]string{"outcome"},
		),
		cabinetSyncDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cabinet_sync_duration_seconds",
				Help:    "Duration of one cabinet sync in seconds.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"success"},
		),
	}

	reg.MustRegister(mtc.ordersProcessed, mtc.transactionsIngested, mtc.cabinetSyncDuration)

	return mtc
}

func (m *SyncPrometheusMetrics) RecordOrderFinished(status string) {
	if m == nil {
		return
	}

	m.ordersProcessed.WithLabelValues(status).Inc()
}

func (m *SyncPrometheusMetrics) RecordIngestion(newTransactions, duplicates int) {
	if m == nil {
		return
	}

	m.transactionsIngested.WithLabelValues("new").Add(float64(newTransactions))
	m.transactionsIngested.WithLabelValues("duplicate").Add(float64(duplicates))
}

func (m *SyncPrometheusMetrics) RecordCabinetSync(duration time.Duration, err error) {
	if m == nil {
		return
	}

	success := "true"
	if err != nil {
		success = "false"
	}
	m.cabinetSyncDuration.WithLabelValues(success).Observe(duration.Seconds())
}
