// Package assessor defines the external risk assessor contract and its
// provider implementations. Every failure mode a provider can produce is
// collapsed into model.ErrAssessorUnavailable so the pipeline can branch to
// the rule-based fallback on a single check.
package assessor

import (
	"context"

	"github.com/harborwatch/route-risk/internal/model"
)

// Bundle is the structured context handed to a provider for one route.
type Bundle struct {
	DeparturePort   string
	DestinationPort string
	DepartureDate   string // ISO 8601 date
	CarrierName     string
	GoodsType       string

	Departure   model.CountryProfile
	Destination model.CountryProfile
	Hazards     model.RouteHazards
	Intel       model.Intelligence
	DistanceKm  float64
	TransitDays int
}

// Result is a validated structured assessment.
type Result struct {
	Score       int    `json:"risk_score"`
	Description string `json:"risk_description"`
	Summary     string `json:"geopolitical_summary"`
}

// Assessor produces a structured risk assessment for one route bundle.
// Implementations return an error wrapping model.ErrAssessorUnavailable for
// anything that should trigger the fallback scorer.
type Assessor interface {
	Assess(ctx context.Context, b Bundle) (*Result, error)
	Name() string
}
