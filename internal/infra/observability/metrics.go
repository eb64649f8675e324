package observability

import (
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the journal service.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	entriesTotal    *prometheus.CounterVec
	entriesDeleted  prometheus.Counter
	reportsBuilt    *prometheus.CounterVec
	exportsWritten  *prometheus.CounterVec
	sessionsCreated prometheus.Counter
	sessionsActive  prometheus.GaugeFunc
}

// Entry outcome labels for the entries counter.
const (
	EntryAccepted = "accepted"
	EntryRejected = "rejected"
	EntryForced   = "forced" // accepted with allow_unbalanced
)

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. A private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (tests).
// activeSessions may be nil when no session registry is wired.
func NewMetrics(activeSessions func() float64) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "acctflow_request_duration_seconds",
				Help:    "Duration of journal operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		entriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctflow_entries_total",
				Help: "Journal entries submitted, by outcome.",
			},
			[]string{"outcome"},
		),
		entriesDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "acctflow_entries_deleted_total",
				Help: "Journal entries deleted.",
			},
		),
		reportsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctflow_reports_built_total",
				Help: "Reports generated, by report type.",
			},
			[]string{"report"},
		),
		exportsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctflow_exports_total",
				Help: "CSV exports written, by report type.",
			},
			[]string{"report"},
		),
		sessionsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "acctflow_sessions_created_total",
				Help: "Sessions created.",
			},
		),
	}

	if activeSessions != nil {
		m.sessionsActive = factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "acctflow_sessions_active",
				Help: "Live (unexpired) sessions.",
			},
			activeSessions,
		)
	}

	return m
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrEntry counts a submitted entry by outcome (accepted / rejected /
// forced).
func (m *Metrics) IncrEntry(outcome string) {
	m.entriesTotal.WithLabelValues(outcome).Inc()
}

// IncrEntryDeleted counts a deleted entry.
func (m *Metrics) IncrEntryDeleted() {
	m.entriesDeleted.Inc()
}

// IncrReport counts a generated report.
func (m *Metrics) IncrReport(report string) {
	m.reportsBuilt.WithLabelValues(report).Inc()
}

// IncrExport counts a written CSV export.
func (m *Metrics) IncrExport(report string) {
	m.exportsWritten.WithLabelValues(report).Inc()
}

// IncrSessionCreated counts a created session.
func (m *Metrics) IncrSessionCreated() {
	m.sessionsCreated.Inc()
}

// Snapshot returns the counters as a plain value, for the
// GET /v1/metrics/journal endpoint.
func (m *Metrics) Snapshot() *domain.JournalMetrics {
	accepted := getCounterValue(m.entriesTotal, EntryAccepted)
	rejected := getCounterValue(m.entriesTotal, EntryRejected)
	forced := getCounterValue(m.entriesTotal, EntryForced)

	reports := float64(0)
	for _, r := range []string{"trial_balance", "profit_loss", "balance_sheet", "summary", "ledgers"} {
		reports += getCounterValue(m.reportsBuilt, r)
	}
	exports := getCounterValue(m.exportsWritten, "journal") +
		getCounterValue(m.exportsWritten, "trial_balance")

	submitted := accepted + rejected + forced
	rejectionRate := float64(0)
	if submitted > 0 {
		rejectionRate = rejected / submitted
	}

	return &domain.JournalMetrics{
		EntriesAccepted: int64(accepted),
		EntriesRejected: int64(rejected),
		EntriesForced:   int64(forced),
		EntriesDeleted:  int64(counterValue(m.entriesDeleted)),
		ReportsBuilt:    int64(reports),
		ExportsWritten:  int64(exports),
		SessionsCreated: int64(counterValue(m.sessionsCreated)),
		RejectionRate:   rejectionRate,
		Period:          "all_time",
	}
}

// getCounterValue extracts the current value from a CounterVec for a
// given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	metric := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(metric); err != nil {
		return 0
	}
	if metric.Counter != nil && metric.Counter.Value != nil {
		return *metric.Counter.Value
	}
	return 0
}

func counterValue(c prometheus.Counter) float64 {
	metric := &dto.Metric{}
	if err := c.Write(metric); err != nil {
		return 0
	}
	if metric.Counter != nil && metric.Counter.Value != nil {
		return *metric.Counter.Value
	}
	return 0
}
