// Package fallback is the deterministic rule-based scorer used whenever the
// external assessor is unavailable or returns an invalid result. It must
// never fail: missing attributes are treated as neutral.
package fallback

import (
	"fmt"
	"strings"

	"github.com/harborwatch/route-risk/internal/model"
)

// highRiskChokepoints are the chokepoints that contribute risk on their own.
var highRiskChokepoints = map[string]bool{
	"Strait of Hormuz": true,
	"Bab el-Mandeb":    true,
	"South China Sea":  true,
}

// highImpactRelevance is the event relevance threshold that counts as a
// risk factor.
const highImpactRelevance = 7

// Input carries everything the scorer looks at. Zero values are valid and
// score as neutral.
type Input struct {
	Departure   model.CountryProfile
	Destination model.CountryProfile
	Hazards     model.RouteHazards
	Events      []model.Event
}

// Result is a scored route with the triggered factors spelled out.
type Result struct {
	Score       int
	Description string
	Summary     string
	Factors     []string
}

// Score applies the additive point scale: start at 1, add per triggered
// factor, cap at 10. Pure and deterministic.
func Score(in Input) Result {
	score := 1
	var factors []string

	depStability := stabilityOrNeutral(in.Departure.PoliticalStability)
	destStability := stabilityOrNeutral(in.Destination.PoliticalStability)
	lowest := min(depStability, destStability)
	switch {
	case lowest <= 3:
		score += 3
		factors = append(factors, fmt.Sprintf("low political stability (%d/10)", lowest))
	case lowest <= 5:
		score++
		factors = append(factors, fmt.Sprintf("moderate political stability (%d/10)", lowest))
	}

	if country, ok := sanctionsHit(in.Departure, in.Destination); ok {
		score += 4
		factors = append(factors, fmt.Sprintf("active sanctions exposure (%s)", country))
	}

	for _, cp := range in.Hazards.Chokepoints {
		if highRiskChokepoints[cp] {
			score += 2
			factors = append(factors, fmt.Sprintf("high-risk chokepoint (%s)", cp))
			break // only the first match counts
		}
	}

	if len(in.Hazards.SecurityZones) > 0 {
		score++
		factors = append(factors, fmt.Sprintf("route crosses %d security zone(s)", len(in.Hazards.SecurityZones)))
	}

	for _, ev := range in.Events {
		if ev.RelevanceScore >= highImpactRelevance {
			score += 2
			factors = append(factors, "high-impact recent events")
			break
		}
	}

	if score > 10 {
		score = 10
	}

	if len(factors) == 0 {
		return Result{
			Score:       1,
			Description: "no significant risk identified",
			Summary:     summaryFor(1, in),
		}
	}
	return Result{
		Score:       score,
		Description: strings.Join(factors, ", "),
		Summary:     summaryFor(score, in),
		Factors:     factors,
	}
}

// stabilityOrNeutral maps a missing stability attribute to the neutral 5.
func stabilityOrNeutral(v int) int {
	if v < 1 || v > 10 {
		return 5
	}
	return v
}

// sanctionsHit reports whether either country's sanctions status carries a
// sanctions marker. This is a deliberate plain substring check against a
// fixed keyword set; callers depend on the exact matching contract.
func sanctionsHit(dep, dest model.CountryProfile) (string, bool) {
	for _, p := range []model.CountryProfile{dep, dest} {
		status := strings.ToLower(p.SanctionsStatus)
		if strings.Contains(status, "sanctions") || strings.Contains(status, "embargo") {
			return p.Country, true
		}
	}
	return "", false
}

func summaryFor(score int, in Input) string {
	level := "low"
	switch {
	case score >= 8:
		level = "severe"
	case score >= 6:
		level = "high"
	case score >= 4:
		level = "moderate"
	}
	dep := in.Departure.Country
	dest := in.Destination.Country
	if dep == "" {
		dep = "departure"
	}
	if dest == "" {
		dest = "destination"
	}
	return fmt.Sprintf("Rule-based assessment rates the %s to %s route as %s risk (%d/10).",
		dep, dest, level, score)
}
