package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// MaxDepartureWindowDays bounds how far in the future a departure may be.
const MaxDepartureWindowDays = 365

// namePattern is the conservative allowlist for free-text name fields.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.]+$`)

// RouteQuery is the input for one risk assessment request.
type RouteQuery struct {
	DeparturePort   string    `json:"departure_port"`
	DestinationPort string    `json:"destination_port"`
	DepartureDate   time.Time `json:"departure_date"`
	CarrierName     string    `json:"carrier_name"`
	GoodsType       string    `json:"goods_type"`
}

// Validate checks all field-level invariants against the given "today".
// The departure date must satisfy today <= date <= today+365d.
func (q *RouteQuery) Validate(today time.Time) error {
	if err := validateName("departure_port", q.DeparturePort); err != nil {
		return err
	}
	if err := validateName("destination_port", q.DestinationPort); err != nil {
		return err
	}
	if err := validateText("carrier_name", q.CarrierName); err != nil {
		return err
	}
	if err := validateText("goods_type", q.GoodsType); err != nil {
		return err
	}

	day := today.Truncate(24 * time.Hour)
	dep := q.DepartureDate.Truncate(24 * time.Hour)
	if dep.Before(day) {
		return eris.Wrap(ErrInvalidDate, "departure date is in the past")
	}
	if dep.After(day.AddDate(0, 0, MaxDepartureWindowDays)) {
		return eris.Wrap(ErrInvalidDate,
			fmt.Sprintf("departure date is more than %d days in the future", MaxDepartureWindowDays))
	}
	return nil
}

// MemoKey returns the normalized tuple used to key the response memo.
func (q *RouteQuery) MemoKey() string {
	parts := []string{
		strings.ToLower(strings.TrimSpace(q.DeparturePort)),
		strings.ToLower(strings.TrimSpace(q.DestinationPort)),
		q.DepartureDate.Format("2006-01-02"),
		strings.ToLower(strings.TrimSpace(q.CarrierName)),
		strings.ToLower(strings.TrimSpace(q.GoodsType)),
	}
	return strings.Join(parts, "|")
}

func validateName(field, v string) error {
	v = strings.TrimSpace(v)
	if len(v) < 2 || len(v) > 100 {
		return eris.New(fmt.Sprintf("%s: must be 2-100 characters", field))
	}
	if !namePattern.MatchString(v) {
		return eris.New(fmt.Sprintf("%s: contains invalid characters", field))
	}
	return nil
}

func validateText(field, v string) error {
	v = strings.TrimSpace(v)
	if len(v) < 2 || len(v) > 100 {
		return eris.New(fmt.Sprintf("%s: must be 2-100 characters", field))
	}
	return nil
}

// Provenance tags where a risk score came from.
type Provenance string

const (
	// ProvenanceAssessor means the external LLM assessor produced the score.
	ProvenanceAssessor Provenance = "assessor"
	// ProvenanceFallback means the local rule-based scorer produced it.
	ProvenanceFallback Provenance = "fallback"
)

// RouteHazards lists the named chokepoints and security zones on a route.
type RouteHazards struct {
	Chokepoints   []string `json:"chokepoints"`
	SecurityZones []string `json:"security_zones"`
}

// PortWeather is an advisory marine-conditions note for one endpoint.
type PortWeather struct {
	Port          string  `json:"port"`
	MaxWaveHeight float64 `json:"max_wave_height_m"`
	SeaState      string  `json:"sea_state"`
	Severity      string  `json:"severity"` // low, medium, high
}

// RouteAssessment is the final output for one request.
type RouteAssessment struct {
	ID                   string          `json:"id"`
	RiskScore            int             `json:"risk_score"` // always clamped to [1,10]
	RiskDescription      string          `json:"risk_description"`
	Summary              string          `json:"summary"`
	EstimatedTransitDays int             `json:"estimated_transit_days"` // always >= 1
	DistanceKm           float64         `json:"distance_km"`
	Departure            *LocationRecord `json:"departure"`
	Destination          *LocationRecord `json:"destination"`
	DepartureCountry     CountryProfile  `json:"departure_country"`
	DestinationCountry   CountryProfile  `json:"destination_country"`
	RouteHazards         RouteHazards    `json:"route_hazards"`
	RouteGeometry        json.RawMessage `json:"route_geometry,omitempty"` // GeoJSON LineString
	RecentEvents         []Event         `json:"recent_events"`
	Weather              []PortWeather   `json:"weather,omitempty"`
	Provenance           Provenance      `json:"provenance"`
	AssessedAt           time.Time       `json:"assessed_at"`
}
