package monitoring

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/harborwatch/route-risk/internal/resilience"
	"github.com/harborwatch/route-risk/internal/store"
)

// Snapshot holds a point-in-time view of assessment health.
type Snapshot struct {
	// Audit log metrics (within lookback window).
	AssessmentTotal int     `json:"assessment_total"`
	FallbackCount   int     `json:"fallback_count"`
	FallbackRate    float64 `json:"fallback_rate"`
	AvgRiskScore    float64 `json:"avg_risk_score"`
	MaxRiskScore    int     `json:"max_risk_score"`

	// Assessor circuit state at collection time.
	CircuitState string `json:"circuit_state"`

	// Metadata.
	LookbackHours int       `json:"lookback_hours"`
	CollectedAt   time.Time `json:"collected_at"`
}

// Collector gathers snapshots from the audit store and the assessor circuit
// breaker.
type Collector struct {
	store   store.Store
	breaker *resilience.CircuitBreaker
}

// NewCollector creates a new snapshot collector. breaker may be nil.
func NewCollector(st store.Store, breaker *resilience.CircuitBreaker) *Collector {
	return &Collector{store: st, breaker: breaker}
}

// Collect gathers a snapshot over the given lookback window.
func (c *Collector) Collect(ctx context.Context, lookbackHours int) (*Snapshot, error) {
	snap := &Snapshot{
		CircuitState:  "unknown",
		LookbackHours: lookbackHours,
		CollectedAt:   time.Now().UTC(),
	}

	stats, err := c.store.CollectStats(ctx, time.Duration(lookbackHours)*time.Hour)
	if err != nil {
		return nil, eris.Wrap(err, "monitoring: collect stats")
	}

	snap.AssessmentTotal = stats.Total
	snap.FallbackCount = stats.FallbackCount
	snap.AvgRiskScore = stats.AvgRiskScore
	snap.MaxRiskScore = stats.MaxRiskScore
	if stats.Total > 0 {
		snap.FallbackRate = float64(stats.FallbackCount) / float64(stats.Total)
	}

	if c.breaker != nil {
		snap.CircuitState = c.breaker.State().String()
	}
	return snap, nil
}
