package model

import "fmt"

// Rating is a closed qualitative grade used for port and country attributes.
type Rating string

const (
	RatingVeryLow    Rating = "Very Low"
	RatingLow        Rating = "Low"
	RatingMedium     Rating = "Medium"
	RatingHigh       Rating = "High"
	RatingVeryHigh   Rating = "Very High"
	RatingPoor       Rating = "Poor"
	RatingFair       Rating = "Fair"
	RatingGood       Rating = "Good"
	RatingVeryGood   Rating = "Very Good"
	RatingExcellent  Rating = "Excellent"
	RatingLowMedium  Rating = "Low-Medium"
	RatingMediumHigh Rating = "Medium-High"
	RatingControlled Rating = "Controlled"
	RatingStable     Rating = "Stable"
	RatingUnknown    Rating = "Unknown"
)

// Coordinates is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the pair lies inside the valid degree ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// LocationRecord is a named port with its geopolitical context. Records are
// loaded once at startup from the static reference table and never mutated.
type LocationRecord struct {
	Key            string      `json:"key"`  // short lookup key, e.g. "Los Angeles"
	Name           string      `json:"name"` // official name, e.g. "Port of Los Angeles"
	Country        string      `json:"country"`
	Code           string      `json:"code"` // UN/LOCODE-style port code
	Coordinates    Coordinates `json:"coordinates"`
	Region         string      `json:"region"`
	SecurityLevel  Rating      `json:"security_level"`
	LaborStability Rating      `json:"labor_stability"`
	Infrastructure Rating      `json:"infrastructure"`
}

// Validate checks the construction-time invariants of a record.
func (r *LocationRecord) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("location %q: empty name", r.Key)
	}
	if r.Country == "" {
		return fmt.Errorf("location %q: empty country", r.Key)
	}
	if !r.Coordinates.Valid() {
		return fmt.Errorf("location %q: coordinates out of range (%.4f, %.4f)",
			r.Key, r.Coordinates.Lat, r.Coordinates.Lon)
	}
	return nil
}

// CountryProfile holds the per-country risk attributes consumed by the
// fallback scorer and the assessor prompt.
type CountryProfile struct {
	Country             string `json:"country"`
	PoliticalStability  int    `json:"political_stability"` // 1-10, higher is more stable
	TradeFreedom        int    `json:"trade_freedom"`       // 0-100
	CorruptionLevel     Rating `json:"corruption_level"`
	SecurityThreat      string `json:"security_threat"`
	SanctionsStatus     string `json:"sanctions_status"`
	PortSecurity        Rating `json:"port_security"`
	LaborConditions     Rating `json:"labor_conditions"`
	RegulatoryStability Rating `json:"regulatory_stability"`
	Region              string `json:"region"`
}

// NeutralCountryProfile returns the defaults used for countries missing from
// the reference table. The fallback scorer treats these as no-signal values.
func NeutralCountryProfile(country string) CountryProfile {
	return CountryProfile{
		Country:             country,
		PoliticalStability:  5,
		TradeFreedom:        60,
		CorruptionLevel:     RatingUnknown,
		SecurityThreat:      "Unknown",
		SanctionsStatus:     "Unknown",
		PortSecurity:        RatingUnknown,
		LaborConditions:     RatingUnknown,
		RegulatoryStability: RatingUnknown,
		Region:              "Unknown",
	}
}
