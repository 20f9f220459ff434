// Package store persists completed assessments as an audit log.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/harborwatch/route-risk/internal/model"
)

// ErrNotFound is returned when an assessment ID does not exist.
var ErrNotFound = eris.New("assessment not found")

// Filter specifies criteria for listing audit entries.
type Filter struct {
	Provenance model.Provenance `json:"provenance,omitempty"`
	Port       string           `json:"port,omitempty"` // matches departure or destination key
	Since      time.Time        `json:"since,omitempty"`
	Limit      int              `json:"limit,omitempty"`
	Offset     int              `json:"offset,omitempty"`
}

// Stats is an aggregate snapshot of the audit log over a lookback window.
type Stats struct {
	Total         int     `json:"total"`
	FallbackCount int     `json:"fallback_count"`
	AvgRiskScore  float64 `json:"avg_risk_score"`
	MaxRiskScore  int     `json:"max_risk_score"`
}

// Store is the audit persistence interface.
type Store interface {
	Record(ctx context.Context, a *model.RouteAssessment) error
	Get(ctx context.Context, id string) (*model.RouteAssessment, error)
	List(ctx context.Context, filter Filter) ([]model.RouteAssessment, error)
	CollectStats(ctx context.Context, lookback time.Duration) (*Stats, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}
