// Package geo estimates great-circle distances and ocean transit durations.
package geo

import (
	"math"
	"strings"

	"github.com/harborwatch/route-risk/internal/model"
)

const (
	earthRadiusKm = 6371

	// Nominal container vessel speed.
	nominalSpeedKnots = 22
	knotsToKmh        = 1.852

	// DefaultEfficiency discounts nominal speed for weather, congestion,
	// and routing overhead.
	DefaultEfficiency = 0.65
)

// Distance returns the great-circle distance in kilometers between two
// coordinate pairs, via the haversine formula.
func Distance(a, b model.Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// RouteFactor scales great-circle distance up to a realistic sailed distance
// for the region pairing. Regions are matched by substring so "East Asia" and
// "Southeast Asia" both count as Asia.
func RouteFactor(depRegion, destRegion string) float64 {
	if depRegion == destRegion {
		return 1.1
	}
	asiaDep := strings.Contains(depRegion, "Asia")
	asiaDest := strings.Contains(destRegion, "Asia")
	europeDep := strings.Contains(depRegion, "Europe")
	europeDest := strings.Contains(destRegion, "Europe")
	americaDep := strings.Contains(depRegion, "America")
	americaDest := strings.Contains(destRegion, "America")

	switch {
	case (asiaDep && europeDest) || (europeDep && asiaDest):
		return 1.4 // via Suez or around the Cape
	case (asiaDep && americaDest) || (americaDep && asiaDest):
		return 1.3 // trans-Pacific
	case (europeDep && americaDest) || (americaDep && europeDest):
		return 1.2 // trans-Atlantic
	default:
		return 1.3
	}
}

// SpeedFactor adjusts vessel speed for the cargo category.
func SpeedFactor(goodsType string) float64 {
	switch strings.ToLower(goodsType) {
	case "perishables", "food", "pharmaceuticals":
		return 1.1
	case "hazardous", "chemicals", "oil", "gas":
		return 0.9
	case "automobiles", "machinery", "heavy":
		return 0.95
	default:
		return 1.0
	}
}

// PortHandlingDays estimates combined loading and unloading time at both
// endpoints. A 2-day base scales with the worse of the two ports'
// infrastructure and labor ratings and with cargo handling complexity; the
// result is rounded down and clamped to [1,4].
func PortHandlingDays(dep, dest model.LocationRecord, goodsType string) int {
	infra := 1.0
	switch {
	case dep.Infrastructure == model.RatingPoor || dest.Infrastructure == model.RatingPoor:
		infra = 1.5
	case dep.Infrastructure == model.RatingFair || dest.Infrastructure == model.RatingFair:
		infra = 1.2
	case dep.Infrastructure == model.RatingExcellent && dest.Infrastructure == model.RatingExcellent:
		infra = 0.8
	}

	labor := 1.0
	switch {
	case dep.LaborStability == model.RatingPoor || dest.LaborStability == model.RatingPoor:
		labor = 1.3
	case dep.LaborStability == model.RatingFair || dest.LaborStability == model.RatingFair:
		labor = 1.1
	}

	cargo := 1.0
	switch strings.ToLower(goodsType) {
	case "hazardous", "chemicals":
		cargo = 1.4
	case "automobiles", "machinery":
		cargo = 1.2
	case "bulk", "containers":
		cargo = 0.9
	}

	days := int(2 * infra * labor * cargo)
	if days < 1 {
		days = 1
	}
	if days > 4 {
		days = 4
	}
	return days
}

// EstimateDays converts an adjusted distance into a transit estimate:
// sailing time at nominal speed discounted by the speed and efficiency
// factors, rounded up to whole days, plus port handling. Always >= 1.
func EstimateDays(distanceKm, routeFactor, speedFactor, efficiency float64, portDays int) int {
	if efficiency <= 0 {
		efficiency = DefaultEfficiency
	}
	effectiveKmh := nominalSpeedKnots * knotsToKmh * speedFactor * efficiency
	if effectiveKmh <= 0 || distanceKm <= 0 {
		return max(1, portDays)
	}
	hours := distanceKm * routeFactor / effectiveKmh
	days := int(math.Ceil(hours/24)) + portDays
	if days < 1 {
		days = 1
	}
	return days
}

// TransitEstimate bundles the estimator outputs for one route.
type TransitEstimate struct {
	DistanceKm   float64 `json:"distance_km"`
	RouteFactor  float64 `json:"route_factor"`
	SpeedFactor  float64 `json:"speed_factor"`
	SailingDays  int     `json:"sailing_days"`
	PortDays     int     `json:"port_days"`
	TotalDays    int     `json:"total_days"`
}

// Estimate runs the full pipeline for a resolved route.
func Estimate(dep, dest model.LocationRecord, goodsType string) TransitEstimate {
	dist := Distance(dep.Coordinates, dest.Coordinates)
	rf := RouteFactor(dep.Region, dest.Region)
	sf := SpeedFactor(goodsType)
	port := PortHandlingDays(dep, dest, goodsType)
	total := EstimateDays(dist, rf, sf, DefaultEfficiency, port)
	return TransitEstimate{
		DistanceKm:  dist,
		RouteFactor: rf,
		SpeedFactor: sf,
		SailingDays: total - port,
		PortDays:    port,
		TotalDays:   total,
	}
}
