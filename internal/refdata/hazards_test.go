package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHazardRuleMatches(t *testing.T) {
	tests := []struct {
		name string
		rule HazardRule
		dep  [2]string // region, country
		dest [2]string
		want bool
	}{
		{
			name: "region pair either order",
			rule: HazardRule{Name: "Suez Canal", RegionPair: []string{"Europe", "Asia"}},
			dep:  [2]string{"East Asia", "China"},
			dest: [2]string{"Europe", "Netherlands"},
			want: true,
		},
		{
			name: "region pair substring",
			rule: HazardRule{Name: "Panama Canal", RegionPair: []string{"America", "Asia"}},
			dep:  [2]string{"South America", "Brazil"},
			dest: [2]string{"Southeast Asia", "Singapore"},
			want: true,
		},
		{
			name: "region pair no match",
			rule: HazardRule{Name: "Suez Canal", RegionPair: []string{"Europe", "Asia"}},
			dep:  [2]string{"North America", "United States"},
			dest: [2]string{"Europe", "Germany"},
			want: false,
		},
		{
			name: "region either",
			rule: HazardRule{Name: "Strait of Hormuz", RegionEither: "Middle East"},
			dep:  [2]string{"Middle East", "United Arab Emirates"},
			dest: [2]string{"Europe", "Germany"},
			want: true,
		},
		{
			name: "region either is case sensitive substring",
			rule: HazardRule{Name: "South China Sea", RegionEither: "East Asia"},
			dep:  [2]string{"Southeast Asia", "Singapore"},
			dest: [2]string{"Oceania", "Australia"},
			want: false,
		},
		{
			name: "country either",
			rule: HazardRule{Name: "Taiwan Strait", CountryEither: []string{"Taiwan", "China"}},
			dep:  [2]string{"East Asia", "China"},
			dest: [2]string{"North America", "United States"},
			want: true,
		},
		{
			name: "country either exact only",
			rule: HazardRule{Name: "Black Sea", CountryEither: []string{"Ukraine", "Russia"}},
			dep:  [2]string{"Europe", "Germany"},
			dest: [2]string{"Europe", "Netherlands"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.Matches(tt.dep[0], tt.dest[0], tt.dep[1], tt.dest[1])
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadHazardRulesDefaults(t *testing.T) {
	rules, err := LoadHazardRules("")
	require.NoError(t, err)
	assert.Len(t, rules.Chokepoints, 6)
	assert.Len(t, rules.SecurityZones, 5)
}

func TestLoadHazardRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hazards.yaml")
	doc := `chokepoints:
  - name: Suez Canal
    region_pair: [Europe, Asia]
security_zones:
  - name: Black Sea
    country_either: [Ukraine, Russia]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	rules, err := LoadHazardRules(path)
	require.NoError(t, err)
	require.Len(t, rules.Chokepoints, 1)
	assert.Equal(t, "Suez Canal", rules.Chokepoints[0].Name)
	assert.Equal(t, []string{"Europe", "Asia"}, rules.Chokepoints[0].RegionPair)
	require.Len(t, rules.SecurityZones, 1)
	assert.Equal(t, []string{"Ukraine", "Russia"}, rules.SecurityZones[0].CountryEither)
}

func TestLoadHazardRulesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", "chokepoints:\n  - region_either: Europe\n"},
		{"no condition", "chokepoints:\n  - name: Nothing\n"},
		{"two conditions", "chokepoints:\n  - name: Both\n    region_either: Europe\n    country_either: [France]\n"},
		{"bad pair arity", "chokepoints:\n  - name: Odd\n    region_pair: [Europe]\n"},
		{"bad yaml", "chokepoints: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hazards.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))
			_, err := LoadHazardRules(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadHazardRulesMissingFile(t *testing.T) {
	_, err := LoadHazardRules(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
