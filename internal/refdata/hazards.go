package refdata

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// HazardRule maps a route shape onto a named chokepoint or security zone.
// Exactly one of the match fields should be set:
//
//   - RegionPair fires when one endpoint's region contains the first element
//     and the other endpoint's region contains the second, in either order.
//   - RegionEither fires when either endpoint's region contains the value.
//   - CountryEither fires when either endpoint's country equals a listed value.
//
// Region matching is a plain case-sensitive substring test, so a pair element
// of "Asia" matches "East Asia" and "Southeast Asia", while "East Asia" does
// not match "Southeast Asia".
type HazardRule struct {
	Name          string   `yaml:"name"`
	RegionPair    []string `yaml:"region_pair,omitempty"`
	RegionEither  string   `yaml:"region_either,omitempty"`
	CountryEither []string `yaml:"country_either,omitempty"`
}

// Matches reports whether the rule fires for a route between the two ports.
func (h HazardRule) Matches(depRegion, destRegion, depCountry, destCountry string) bool {
	switch {
	case len(h.RegionPair) == 2:
		a, b := h.RegionPair[0], h.RegionPair[1]
		return (strings.Contains(depRegion, a) && strings.Contains(destRegion, b)) ||
			(strings.Contains(depRegion, b) && strings.Contains(destRegion, a))
	case h.RegionEither != "":
		return strings.Contains(depRegion, h.RegionEither) ||
			strings.Contains(destRegion, h.RegionEither)
	case len(h.CountryEither) > 0:
		for _, c := range h.CountryEither {
			if depCountry == c || destCountry == c {
				return true
			}
		}
	}
	return false
}

func (h HazardRule) validate() error {
	if h.Name == "" {
		return eris.New("refdata: hazard rule missing name")
	}
	set := 0
	if len(h.RegionPair) > 0 {
		if len(h.RegionPair) != 2 {
			return eris.Errorf("refdata: rule %q: region_pair needs exactly two regions", h.Name)
		}
		set++
	}
	if h.RegionEither != "" {
		set++
	}
	if len(h.CountryEither) > 0 {
		set++
	}
	if set != 1 {
		return eris.Errorf("refdata: rule %q: exactly one match condition required", h.Name)
	}
	return nil
}

// HazardRules groups the chokepoint and security-zone rule sets.
type HazardRules struct {
	Chokepoints   []HazardRule `yaml:"chokepoints"`
	SecurityZones []HazardRule `yaml:"security_zones"`
}

// DefaultHazardRules returns the built-in rule set, used when no override
// file is configured.
func DefaultHazardRules() HazardRules {
	return HazardRules{
		Chokepoints: []HazardRule{
			{Name: "Suez Canal", RegionPair: []string{"Europe", "Asia"}},
			{Name: "Strait of Malacca", RegionPair: []string{"Europe", "Asia"}},
			{Name: "Strait of Hormuz", RegionEither: "Middle East"},
			{Name: "Bab el-Mandeb", RegionEither: "Middle East"},
			{Name: "Panama Canal", RegionPair: []string{"America", "Asia"}},
			{Name: "South China Sea", RegionEither: "East Asia"},
		},
		SecurityZones: []HazardRule{
			{Name: "Gulf of Guinea", RegionEither: "Africa"},
			{Name: "Persian Gulf", RegionEither: "Middle East"},
			{Name: "Somalia Coast", RegionEither: "Middle East"},
			{Name: "Black Sea", CountryEither: []string{"Ukraine", "Russia"}},
			{Name: "Taiwan Strait", CountryEither: []string{"Taiwan", "China"}},
		},
	}
}

// LoadHazardRules reads a rule set from a YAML file. An empty path returns
// the defaults.
func LoadHazardRules(path string) (HazardRules, error) {
	if path == "" {
		return DefaultHazardRules(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return HazardRules{}, eris.Wrap(err, "refdata: read hazard rules")
	}
	var rules HazardRules
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return HazardRules{}, eris.Wrap(err, "refdata: parse hazard rules")
	}
	for _, r := range rules.Chokepoints {
		if err := r.validate(); err != nil {
			return HazardRules{}, err
		}
	}
	for _, r := range rules.SecurityZones {
		if err := r.validate(); err != nil {
			return HazardRules{}, err
		}
	}
	return rules, nil
}
