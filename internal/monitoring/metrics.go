package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the assessment
// pipeline. A nil *Metrics is valid and records nothing, so library code can
// take one without caring whether metrics are wired up.
type Metrics struct {
	Assessments        *prometheus.CounterVec   // labels: provenance={assessor,fallback}, provider
	AssessmentDuration *prometheus.HistogramVec // labels: provenance
	AssessorFailures   *prometheus.CounterVec   // labels: provider, reason
	MemoLookups        *prometheus.CounterVec   // labels: result={hit,miss,expired}
	NewsEvents         prometheus.Histogram
	LookupFailures     prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry. Call it once per process.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Assessments,
		m.AssessmentDuration,
		m.AssessorFailures,
		m.MemoLookups,
		m.NewsEvents,
		m.LookupFailures,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "route_risk",
			Name:      "assessments_total",
			Help:      "Completed route assessments by provenance and provider.",
		}, []string{"provenance", "provider"}),
		AssessmentDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "route_risk",
			Name:      "assessment_duration_seconds",
			Help:      "End-to-end assessment duration.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"provenance"}),
		AssessorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "route_risk",
			Name:      "assessor_failures_total",
			Help:      "External assessor failures by provider and reason.",
		}, []string{"provider", "reason"}),
		MemoLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "route_risk",
			Name:      "memo_lookups_total",
			Help:      "Assessment memo lookups by result.",
		}, []string{"result"}),
		NewsEvents: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "route_risk",
			Name:      "news_events_per_assessment",
			Help:      "Number of news events gathered per assessment.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		}),
		LookupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "route_risk",
			Name:      "location_lookup_failures_total",
			Help:      "Route queries rejected because a port could not be resolved.",
		}),
	}
}

// ObserveAssessment records one completed assessment.
func (m *Metrics) ObserveAssessment(provenance, provider string, elapsed time.Duration, events int) {
	if m == nil {
		return
	}
	m.Assessments.WithLabelValues(provenance, provider).Inc()
	m.AssessmentDuration.WithLabelValues(provenance).Observe(elapsed.Seconds())
	m.NewsEvents.Observe(float64(events))
}

// ObserveAssessorFailure records an external assessor call that did not
// produce a usable result.
func (m *Metrics) ObserveAssessorFailure(provider, reason string) {
	if m == nil {
		return
	}
	m.AssessorFailures.WithLabelValues(provider, reason).Inc()
}

// ObserveMemo records a memo lookup outcome: "hit", "miss" or "expired".
func (m *Metrics) ObserveMemo(result string) {
	if m == nil {
		return
	}
	m.MemoLookups.WithLabelValues(result).Inc()
}

// ObserveLookupFailure records a rejected route query.
func (m *Metrics) ObserveLookupFailure() {
	if m == nil {
		return
	}
	m.LookupFailures.Inc()
}
