// Package refdata holds the static reference data for ports, countries, and
// route hazard rules, plus the lookup and search operations built on it.
package refdata

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/harborwatch/route-risk/internal/model"
)

// fuzzyThreshold is the minimum match score for a non-exact Lookup hit.
const fuzzyThreshold = 0.3

// Store serves read-only port and country reference data. All methods are safe
// for concurrent use; the underlying tables are never mutated after New.
type Store struct {
	ports   []model.LocationRecord
	byKey   map[string]int // normalized key/name/code -> index into ports
	rules   HazardRules
	logger  *zap.Logger
	country map[string]model.CountryProfile
}

// SearchResult pairs a record with its match score in [0,1].
type SearchResult struct {
	Record model.LocationRecord `json:"record"`
	Score  float64              `json:"score"`
}

// PortSecurityProfile summarizes a single port's security posture on a 1-10
// risk scale (higher is riskier).
type PortSecurityProfile struct {
	Port           string       `json:"port"`
	Country        string       `json:"country"`
	Region         string       `json:"region"`
	SecurityLevel  model.Rating `json:"security_level"`
	LaborStability model.Rating `json:"labor_stability"`
	Infrastructure model.Rating `json:"infrastructure"`
	RiskScore      int          `json:"risk_score"`
}

// New builds a Store over the embedded reference tables and the given hazard
// rules. It fails if any record violates its construction invariants.
func New(rules HazardRules) (*Store, error) {
	return newStore(portTable, countryTable, rules)
}

func newStore(ports []model.LocationRecord, countries map[string]model.CountryProfile, rules HazardRules) (*Store, error) {
	s := &Store{
		ports:   ports,
		byKey:   make(map[string]int, len(ports)*3),
		rules:   rules,
		logger:  zap.L().With(zap.String("component", "refdata")),
		country: countries,
	}
	for i := range ports {
		rec := &ports[i]
		if err := rec.Validate(); err != nil {
			return nil, eris.Wrap(err, "refdata: invalid port record")
		}
		for _, alias := range []string{rec.Key, rec.Name, rec.Code} {
			norm := normalizeName(alias)
			if norm == "" {
				continue
			}
			if _, dup := s.byKey[norm]; dup {
				return nil, eris.Errorf("refdata: duplicate port alias %q", alias)
			}
			s.byKey[norm] = i
		}
	}
	s.logger.Debug("reference data loaded",
		zap.Int("ports", len(ports)),
		zap.Int("countries", len(countries)),
		zap.Int("chokepoint_rules", len(rules.Chokepoints)),
		zap.Int("security_zone_rules", len(rules.SecurityZones)))
	return s, nil
}

// Lookup resolves a port by key, official name, or code, falling back to a
// fuzzy match when no alias matches exactly. Returns
// model.ErrLocationNotFound when nothing scores above the threshold.
func (s *Store) Lookup(name string) (model.LocationRecord, error) {
	norm := normalizeName(name)
	if norm == "" {
		return model.LocationRecord{}, eris.Wrap(model.ErrLocationNotFound, "empty name")
	}
	if i, ok := s.byKey[norm]; ok {
		return s.ports[i], nil
	}

	// Fuzzy matching is word-set overlap only. The prefix bonuses in
	// searchScore are for ranking Search results and would let generic
	// words like "port" or "of" clear the threshold here.
	best, bestScore := -1, 0.0
	for i := range s.ports {
		if sim := nameSimilarity(name, s.ports[i].Name); sim > bestScore {
			best, bestScore = i, sim
		}
	}
	if best < 0 || bestScore < fuzzyThreshold {
		return model.LocationRecord{}, eris.Wrapf(model.ErrLocationNotFound, "port %q", name)
	}
	s.logger.Debug("fuzzy port match",
		zap.String("query", name),
		zap.String("matched", s.ports[best].Key),
		zap.Float64("score", bestScore))
	return s.ports[best], nil
}

// Search ranks ports against a free-text query. Results are ordered by score
// descending; ties keep table order. limit <= 0 means no limit.
func (s *Store) Search(query string, limit int) []SearchResult {
	norm := normalizeName(query)
	if norm == "" {
		return nil
	}
	var out []SearchResult
	for i := range s.ports {
		if score := searchScore(norm, &s.ports[i]); score > 0 {
			out = append(out, SearchResult{Record: s.ports[i], Score: score})
		}
	}
	// Stable sort preserves insertion order between equal scores.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Score > out[j-1].Score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// searchScore computes the match score of a normalized query against one
// record: exact name 1.0, exact code 0.9, name substring 0.8, country
// substring 0.3, plus 0.4 per word-prefix and 0.2 per word-containment hit,
// capped at 1.0.
func searchScore(query string, rec *model.LocationRecord) float64 {
	name := normalizeName(rec.Name)
	code := normalizeName(rec.Code)
	country := normalizeName(rec.Country)

	score := 0.0
	switch {
	case query == name:
		score += 1.0
	case query == code:
		score += 0.9
	case strings.Contains(name, query):
		score += 0.8
	case strings.Contains(country, query):
		score += 0.3
	}

	for _, qw := range strings.Fields(query) {
		for _, nw := range strings.Fields(name) {
			if strings.HasPrefix(nw, qw) {
				score += 0.4
			} else if strings.Contains(nw, qw) {
				score += 0.2
			}
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// CountryProfile returns the risk profile for a country, or the neutral
// profile when the country is not in the table.
func (s *Store) CountryProfile(country string) model.CountryProfile {
	if p, ok := s.country[country]; ok {
		return p
	}
	return model.NeutralCountryProfile(country)
}

// HazardsFor evaluates the rule set against a resolved route and returns the
// chokepoints and security zones it crosses.
func (s *Store) HazardsFor(dep, dest model.LocationRecord) model.RouteHazards {
	var hz model.RouteHazards
	for _, r := range s.rules.Chokepoints {
		if r.Matches(dep.Region, dest.Region, dep.Country, dest.Country) {
			hz.Chokepoints = append(hz.Chokepoints, r.Name)
		}
	}
	for _, r := range s.rules.SecurityZones {
		if r.Matches(dep.Region, dest.Region, dep.Country, dest.Country) {
			hz.SecurityZones = append(hz.SecurityZones, r.Name)
		}
	}
	return hz
}

// SecurityProfile scores a single port's security posture. The score starts
// at a medium 5 and moves with the port's attributes, clamped to [1,10].
func (s *Store) SecurityProfile(rec model.LocationRecord) PortSecurityProfile {
	score := 5
	switch rec.SecurityLevel {
	case model.RatingVeryHigh:
		score -= 2
	case model.RatingHigh:
		score--
	case model.RatingLow:
		score += 2
	case model.RatingVeryLow:
		score += 3
	}
	switch rec.LaborStability {
	case model.RatingExcellent:
		score--
	case model.RatingPoor:
		score += 2
	}
	switch rec.Infrastructure {
	case model.RatingExcellent:
		score--
	case model.RatingPoor:
		score++
	}
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return PortSecurityProfile{
		Port:           rec.Name,
		Country:        rec.Country,
		Region:         rec.Region,
		SecurityLevel:  rec.SecurityLevel,
		LaborStability: rec.LaborStability,
		Infrastructure: rec.Infrastructure,
		RiskScore:      score,
	}
}

// Ports returns all records in table order.
func (s *Store) Ports() []model.LocationRecord {
	out := make([]model.LocationRecord, len(s.ports))
	copy(out, s.ports)
	return out
}

// PortsByRegion returns the records whose region matches exactly.
func (s *Store) PortsByRegion(region string) []model.LocationRecord {
	var out []model.LocationRecord
	for _, p := range s.ports {
		if p.Region == region {
			out = append(out, p)
		}
	}
	return out
}

// PortsByCountry returns the records whose country matches exactly.
func (s *Store) PortsByCountry(country string) []model.LocationRecord {
	var out []model.LocationRecord
	for _, p := range s.ports {
		if p.Country == country {
			out = append(out, p)
		}
	}
	return out
}
