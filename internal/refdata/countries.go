package refdata

import "github.com/harborwatch/route-risk/internal/model"

// countryTable holds the per-country risk profiles. Countries absent here get
// model.NeutralCountryProfile.
var countryTable = map[string]model.CountryProfile{
	"United States": {
		Country: "United States", PoliticalStability: 8, TradeFreedom: 85,
		CorruptionLevel: model.RatingLow, SecurityThreat: "Low",
		SanctionsStatus: "Sanctions issuer", PortSecurity: model.RatingHigh,
		LaborConditions: model.RatingStable, RegulatoryStability: model.RatingHigh,
		Region: "North America",
	},
	"China": {
		Country: "China", PoliticalStability: 7, TradeFreedom: 65,
		CorruptionLevel: model.RatingMedium, SecurityThreat: "Low-Medium",
		SanctionsStatus: "Subject to some US sanctions", PortSecurity: model.RatingHigh,
		LaborConditions: model.RatingControlled, RegulatoryStability: model.RatingMedium,
		Region: "East Asia",
	},
	"Singapore": {
		Country: "Singapore", PoliticalStability: 9, TradeFreedom: 95,
		CorruptionLevel: model.RatingVeryLow, SecurityThreat: "Very Low",
		SanctionsStatus: "None", PortSecurity: model.RatingVeryHigh,
		LaborConditions: model.RatingExcellent, RegulatoryStability: model.RatingVeryHigh,
		Region: "Southeast Asia",
	},
	"United Kingdom": {
		Country: "United Kingdom", PoliticalStability: 8, TradeFreedom: 82,
		CorruptionLevel: model.RatingLow, SecurityThreat: "Low",
		SanctionsStatus: "Sanctions issuer", PortSecurity: model.RatingHigh,
		LaborConditions: model.RatingStable, RegulatoryStability: model.RatingHigh,
		Region: "Europe",
	},
	"Germany": {
		Country: "Germany", PoliticalStability: 8, TradeFreedom: 78,
		CorruptionLevel: model.RatingLow, SecurityThreat: "Low",
		SanctionsStatus: "EU sanctions participant", PortSecurity: model.RatingHigh,
		LaborConditions: model.RatingGood, RegulatoryStability: model.RatingHigh,
		Region: "Europe",
	},
	"South Korea": {
		Country: "South Korea", PoliticalStability: 7, TradeFreedom: 75,
		CorruptionLevel: model.RatingMedium, SecurityThreat: "Medium (North Korea tensions)",
		SanctionsStatus: "None", PortSecurity: model.RatingHigh,
		LaborConditions: model.RatingGood, RegulatoryStability: model.RatingHigh,
		Region: "East Asia",
	},
	"Japan": {
		Country: "Japan", PoliticalStability: 8, TradeFreedom: 78,
		CorruptionLevel: model.RatingLow, SecurityThreat: "Low",
		SanctionsStatus: "G7 sanctions participant", PortSecurity: model.RatingVeryHigh,
		LaborConditions: model.RatingExcellent, RegulatoryStability: model.RatingVeryHigh,
		Region: "East Asia",
	},
	"Netherlands": {
		Country: "Netherlands", PoliticalStability: 8, TradeFreedom: 86,
		CorruptionLevel: model.RatingVeryLow, SecurityThreat: "Low",
		SanctionsStatus: "EU sanctions participant", PortSecurity: model.RatingVeryHigh,
		LaborConditions: model.RatingExcellent, RegulatoryStability: model.RatingVeryHigh,
		Region: "Europe",
	},
	"United Arab Emirates": {
		Country: "United Arab Emirates", PoliticalStability: 7, TradeFreedom: 82,
		CorruptionLevel: model.RatingLow, SecurityThreat: "Low-Medium",
		SanctionsStatus: "None", PortSecurity: model.RatingHigh,
		LaborConditions: model.RatingGood, RegulatoryStability: model.RatingHigh,
		Region: "Middle East",
	},
	"Iran": {
		Country: "Iran", PoliticalStability: 3, TradeFreedom: 45,
		CorruptionLevel: model.RatingHigh, SecurityThreat: "High",
		SanctionsStatus: "Major international sanctions", PortSecurity: model.RatingMedium,
		LaborConditions: model.RatingPoor, RegulatoryStability: model.RatingLow,
		Region: "Middle East",
	},
	"Russia": {
		Country: "Russia", PoliticalStability: 4, TradeFreedom: 50,
		CorruptionLevel: model.RatingHigh, SecurityThreat: "High",
		SanctionsStatus: "Extensive international sanctions", PortSecurity: model.RatingMedium,
		LaborConditions: model.RatingPoor, RegulatoryStability: model.RatingLow,
		Region: "Eastern Europe/Asia",
	},
	"Brazil": {
		Country: "Brazil", PoliticalStability: 6, TradeFreedom: 68,
		CorruptionLevel: model.RatingMediumHigh, SecurityThreat: "Medium",
		SanctionsStatus: "None", PortSecurity: model.RatingMedium,
		LaborConditions: model.RatingFair, RegulatoryStability: model.RatingMedium,
		Region: "South America",
	},
	"India": {
		Country: "India", PoliticalStability: 6, TradeFreedom: 55,
		CorruptionLevel: model.RatingMediumHigh, SecurityThreat: "Medium",
		SanctionsStatus: "None", PortSecurity: model.RatingMedium,
		LaborConditions: model.RatingFair, RegulatoryStability: model.RatingMedium,
		Region: "South Asia",
	},
	"Australia": {
		Country: "Australia", PoliticalStability: 9, TradeFreedom: 82,
		CorruptionLevel: model.RatingVeryLow, SecurityThreat: "Very Low",
		SanctionsStatus: "Western sanctions participant", PortSecurity: model.RatingVeryHigh,
		LaborConditions: model.RatingExcellent, RegulatoryStability: model.RatingVeryHigh,
		Region: "Oceania",
	},
}

// countryRegions maps countries to their shipping-region classification. It is
// wider than countryTable so that route hazard rules can still match ports in
// countries without a full risk profile.
var countryRegions = map[string]string{
	"United States":        "North America",
	"Canada":               "North America",
	"Mexico":               "North America",
	"China":                "East Asia",
	"Hong Kong SAR":        "East Asia",
	"Taiwan":               "East Asia",
	"Japan":                "East Asia",
	"South Korea":          "East Asia",
	"Singapore":            "Southeast Asia",
	"Malaysia":             "Southeast Asia",
	"Thailand":             "Southeast Asia",
	"India":                "South Asia",
	"United Arab Emirates": "Middle East",
	"Saudi Arabia":         "Middle East",
	"Iran":                 "Middle East",
	"United Kingdom":       "Europe",
	"Germany":              "Europe",
	"Netherlands":          "Europe",
	"Belgium":              "Europe",
	"France":               "Europe",
	"Italy":                "Europe",
	"Spain":                "Europe",
	"Russia":               "Eastern Europe/Asia",
	"Brazil":               "South America",
	"Argentina":            "South America",
	"South Africa":         "Africa",
	"Australia":            "Oceania",
}

// RegionForCountry returns the shipping-region classification for a country,
// or "Unknown" when it is not in the table.
func RegionForCountry(country string) string {
	if r, ok := countryRegions[country]; ok {
		return r
	}
	return "Unknown"
}
