package model

import (
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func validQuery() RouteQuery {
	return RouteQuery{
		DeparturePort:   "Los Angeles",
		DestinationPort: "Shanghai",
		DepartureDate:   testToday.AddDate(0, 0, 14),
		CarrierName:     "COSCO Shipping",
		GoodsType:       "electronics",
	}
}

func TestRouteQuery_Validate(t *testing.T) {
	q := validQuery()
	require.NoError(t, q.Validate(testToday))
}

func TestRouteQuery_Validate_PastDate(t *testing.T) {
	q := validQuery()
	q.DepartureDate = testToday.AddDate(0, 0, -1)
	err := q.Validate(testToday)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidDate))
}

func TestRouteQuery_Validate_TooFarFuture(t *testing.T) {
	q := validQuery()
	q.DepartureDate = testToday.AddDate(0, 0, 366)
	err := q.Validate(testToday)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidDate))
}

func TestRouteQuery_Validate_WindowBoundaries(t *testing.T) {
	q := validQuery()

	q.DepartureDate = testToday
	assert.NoError(t, q.Validate(testToday), "today itself is valid")

	q.DepartureDate = testToday.AddDate(0, 0, MaxDepartureWindowDays)
	assert.NoError(t, q.Validate(testToday), "exactly 365 days out is valid")
}

func TestRouteQuery_Validate_BadNames(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RouteQuery)
	}{
		{"empty departure", func(q *RouteQuery) { q.DeparturePort = "" }},
		{"one char destination", func(q *RouteQuery) { q.DestinationPort = "X" }},
		{"injection characters", func(q *RouteQuery) { q.DeparturePort = "Los Angeles; DROP" }},
		{"empty carrier", func(q *RouteQuery) { q.CarrierName = " " }},
		{"empty goods", func(q *RouteQuery) { q.GoodsType = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(&q)
			assert.Error(t, q.Validate(testToday))
		})
	}
}

func TestRouteQuery_MemoKey_Normalized(t *testing.T) {
	a := validQuery()
	b := validQuery()
	b.DeparturePort = "  los angeles "
	b.CarrierName = "cosco shipping"
	assert.Equal(t, a.MemoKey(), b.MemoKey())

	b.GoodsType = "machinery"
	assert.NotEqual(t, a.MemoKey(), b.MemoKey())
}

func TestLocationRecord_Validate(t *testing.T) {
	rec := LocationRecord{
		Key: "Test", Name: "Port of Test", Country: "Testland",
		Coordinates: Coordinates{Lat: 10, Lon: 20},
	}
	assert.NoError(t, rec.Validate())

	bad := rec
	bad.Coordinates.Lat = 91
	assert.Error(t, bad.Validate())

	bad = rec
	bad.Name = ""
	assert.Error(t, bad.Validate())

	bad = rec
	bad.Country = ""
	assert.Error(t, bad.Validate())
}

func TestNeutralCountryProfile(t *testing.T) {
	p := NeutralCountryProfile("Atlantis")
	assert.Equal(t, "Atlantis", p.Country)
	assert.Equal(t, 5, p.PoliticalStability)
	assert.Equal(t, "Unknown", p.SanctionsStatus)
}
