package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborwatch/route-risk/internal/model"
)

var (
	losAngeles = model.Coordinates{Lat: 33.7361, Lon: -118.2922}
	shanghai   = model.Coordinates{Lat: 31.2304, Lon: 121.4737}
)

func TestDistance(t *testing.T) {
	assert.Zero(t, Distance(losAngeles, losAngeles))

	d := Distance(losAngeles, shanghai)
	assert.InDelta(t, 10500, d, 100)

	// Symmetric.
	assert.InDelta(t, d, Distance(shanghai, losAngeles), 1e-9)

	// Quarter circumference pole to equator.
	pole := model.Coordinates{Lat: 90, Lon: 0}
	equator := model.Coordinates{Lat: 0, Lon: 0}
	assert.InDelta(t, 10007, Distance(pole, equator), 5)
}

func TestRouteFactor(t *testing.T) {
	tests := []struct {
		name       string
		dep, dest  string
		want       float64
	}{
		{"same region", "Europe", "Europe", 1.1},
		{"asia europe", "East Asia", "Europe", 1.4},
		{"europe asia", "Europe", "Southeast Asia", 1.4},
		{"asia america", "East Asia", "North America", 1.3},
		{"europe america", "Europe", "South America", 1.2},
		{"other international", "Africa", "Oceania", 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteFactor(tt.dep, tt.dest))
		})
	}
}

func TestSpeedFactor(t *testing.T) {
	assert.Equal(t, 1.1, SpeedFactor("Perishables"))
	assert.Equal(t, 0.9, SpeedFactor("hazardous"))
	assert.Equal(t, 0.95, SpeedFactor("machinery"))
	assert.Equal(t, 1.0, SpeedFactor("electronics"))
	assert.Equal(t, 1.0, SpeedFactor(""))
}

func TestPortHandlingDays(t *testing.T) {
	excellent := model.LocationRecord{
		Infrastructure: model.RatingExcellent, LaborStability: model.RatingExcellent,
	}
	poor := model.LocationRecord{
		Infrastructure: model.RatingPoor, LaborStability: model.RatingPoor,
	}
	good := model.LocationRecord{
		Infrastructure: model.RatingGood, LaborStability: model.RatingGood,
	}

	// 2 * 0.8 = 1.6 -> 1 day.
	assert.Equal(t, 1, PortHandlingDays(excellent, excellent, "containers"))
	// 2 * 1.5 * 1.3 * 1.4 = 5.46 -> clamped to 4.
	assert.Equal(t, 4, PortHandlingDays(poor, poor, "hazardous"))
	// Plain 2-day base.
	assert.Equal(t, 2, PortHandlingDays(good, good, "electronics"))
}

func TestEstimateDaysAlwaysPositive(t *testing.T) {
	assert.GreaterOrEqual(t, EstimateDays(0, 1.1, 1.0, DefaultEfficiency, 0), 1)
	assert.GreaterOrEqual(t, EstimateDays(-5, 1.1, 1.0, DefaultEfficiency, 0), 1)
	assert.GreaterOrEqual(t, EstimateDays(1, 1.1, 1.0, DefaultEfficiency, 1), 1)
}

func TestEstimateTransPacific(t *testing.T) {
	dep := model.LocationRecord{
		Key: "Los Angeles", Coordinates: losAngeles, Region: "North America",
		Infrastructure: model.RatingExcellent, LaborStability: model.RatingGood,
	}
	dest := model.LocationRecord{
		Key: "Shanghai", Coordinates: shanghai, Region: "East Asia",
		Infrastructure: model.RatingExcellent, LaborStability: model.RatingControlled,
	}

	est := Estimate(dep, dest, "electronics")
	assert.InDelta(t, 10500, est.DistanceKm, 100)
	assert.Equal(t, 1.3, est.RouteFactor)
	assert.Equal(t, 1.0, est.SpeedFactor)
	// ~13,600 adjusted km at ~26.5 km/h effective is roughly three weeks of
	// sailing plus port handling.
	assert.GreaterOrEqual(t, est.TotalDays, 14)
	assert.LessOrEqual(t, est.TotalDays, 28)
	assert.Equal(t, est.SailingDays+est.PortDays, est.TotalDays)
}

func TestRouteGeometry(t *testing.T) {
	raw, err := RouteGeometry(losAngeles, shanghai)
	require.NoError(t, err)

	var feature struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	}
	require.NoError(t, json.Unmarshal(raw, &feature))
	assert.Equal(t, "LineString", feature.Type)
	require.Len(t, feature.Coordinates, routeGeometrySegments+1)

	// Endpoints are exact, in lon/lat order.
	assert.InDelta(t, losAngeles.Lon, feature.Coordinates[0][0], 1e-6)
	assert.InDelta(t, losAngeles.Lat, feature.Coordinates[0][1], 1e-6)
	last := feature.Coordinates[len(feature.Coordinates)-1]
	assert.InDelta(t, shanghai.Lon, last[0], 1e-6)
	assert.InDelta(t, shanghai.Lat, last[1], 1e-6)
}

func TestRouteGeometrySamePoint(t *testing.T) {
	raw, err := RouteGeometry(losAngeles, losAngeles)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
