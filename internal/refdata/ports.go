package refdata

import "github.com/harborwatch/route-risk/internal/model"

// portTable is the static port reference table. Order matters: Search breaks
// ties by insertion order.
var portTable = []model.LocationRecord{
	// North America
	{Key: "Los Angeles", Name: "Port of Los Angeles", Country: "United States", Code: "USLAX",
		Coordinates: model.Coordinates{Lat: 33.7361, Lon: -118.2922}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingExcellent},
	{Key: "Long Beach", Name: "Port of Long Beach", Country: "United States", Code: "USLGB",
		Coordinates: model.Coordinates{Lat: 33.7700, Lon: -118.2100}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingExcellent},
	{Key: "New York", Name: "Port of New York and New Jersey", Country: "United States", Code: "USNYC",
		Coordinates: model.Coordinates{Lat: 40.6700, Lon: -74.0400}, Region: "North America",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingExcellent},
	{Key: "Seattle", Name: "Port of Seattle", Country: "United States", Code: "USSEA",
		Coordinates: model.Coordinates{Lat: 47.6062, Lon: -122.3321}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Oakland", Name: "Port of Oakland", Country: "United States", Code: "USOAK",
		Coordinates: model.Coordinates{Lat: 37.8044, Lon: -122.2711}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingFair, Infrastructure: model.RatingGood},
	{Key: "Savannah", Name: "Port of Savannah", Country: "United States", Code: "USSAV",
		Coordinates: model.Coordinates{Lat: 32.0800, Lon: -81.0900}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Charleston", Name: "Port of Charleston", Country: "United States", Code: "USCHS",
		Coordinates: model.Coordinates{Lat: 32.7767, Lon: -79.9311}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingGood},
	{Key: "Houston", Name: "Port of Houston", Country: "United States", Code: "USHOU",
		Coordinates: model.Coordinates{Lat: 29.7633, Lon: -95.3633}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Miami", Name: "Port of Miami", Country: "United States", Code: "USMIA",
		Coordinates: model.Coordinates{Lat: 25.7742, Lon: -80.1936}, Region: "North America",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingGood},
	{Key: "Vancouver", Name: "Port of Vancouver", Country: "Canada", Code: "CAVAN",
		Coordinates: model.Coordinates{Lat: 49.2827, Lon: -123.1207}, Region: "North America",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingExcellent},

	// Asia
	{Key: "Shanghai", Name: "Port of Shanghai", Country: "China", Code: "CNSHA",
		Coordinates: model.Coordinates{Lat: 31.2304, Lon: 121.4737}, Region: "East Asia",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingControlled, Infrastructure: model.RatingExcellent},
	{Key: "Shenzhen", Name: "Port of Shenzhen", Country: "China", Code: "CNSZN",
		Coordinates: model.Coordinates{Lat: 22.5431, Lon: 114.0579}, Region: "East Asia",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingControlled, Infrastructure: model.RatingExcellent},
	{Key: "Ningbo", Name: "Port of Ningbo-Zhoushan", Country: "China", Code: "CNNGB",
		Coordinates: model.Coordinates{Lat: 29.8683, Lon: 121.5440}, Region: "East Asia",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingControlled, Infrastructure: model.RatingVeryGood},
	{Key: "Hong Kong", Name: "Port of Hong Kong", Country: "Hong Kong SAR", Code: "HKHKG",
		Coordinates: model.Coordinates{Lat: 22.3193, Lon: 114.1694}, Region: "East Asia",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingExcellent},
	{Key: "Singapore", Name: "Port of Singapore", Country: "Singapore", Code: "SGSIN",
		Coordinates: model.Coordinates{Lat: 1.2966, Lon: 103.7764}, Region: "Southeast Asia",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingExcellent, Infrastructure: model.RatingExcellent},
	{Key: "Tokyo", Name: "Port of Tokyo", Country: "Japan", Code: "JPTYO",
		Coordinates: model.Coordinates{Lat: 35.6528, Lon: 139.7594}, Region: "East Asia",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingExcellent, Infrastructure: model.RatingExcellent},
	{Key: "Yokohama", Name: "Port of Yokohama", Country: "Japan", Code: "JPYOK",
		Coordinates: model.Coordinates{Lat: 35.4647, Lon: 139.6221}, Region: "East Asia",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingExcellent, Infrastructure: model.RatingExcellent},
	{Key: "Kobe", Name: "Port of Kobe", Country: "Japan", Code: "JPUKB",
		Coordinates: model.Coordinates{Lat: 34.6901, Lon: 135.1956}, Region: "East Asia",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingExcellent, Infrastructure: model.RatingVeryGood},
	{Key: "Busan", Name: "Port of Busan", Country: "South Korea", Code: "KRPUS",
		Coordinates: model.Coordinates{Lat: 35.1796, Lon: 129.0756}, Region: "East Asia",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Kaohsiung", Name: "Port of Kaohsiung", Country: "Taiwan", Code: "TWKHH",
		Coordinates: model.Coordinates{Lat: 22.6163, Lon: 120.3133}, Region: "East Asia",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},

	// Europe
	{Key: "Rotterdam", Name: "Port of Rotterdam", Country: "Netherlands", Code: "NLRTM",
		Coordinates: model.Coordinates{Lat: 51.9225, Lon: 4.4792}, Region: "Europe",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingExcellent, Infrastructure: model.RatingExcellent},
	{Key: "Antwerp", Name: "Port of Antwerp", Country: "Belgium", Code: "BEANR",
		Coordinates: model.Coordinates{Lat: 51.2213, Lon: 4.4051}, Region: "Europe",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingVeryGood, Infrastructure: model.RatingExcellent},
	{Key: "Hamburg", Name: "Port of Hamburg", Country: "Germany", Code: "DEHAM",
		Coordinates: model.Coordinates{Lat: 53.5511, Lon: 9.9937}, Region: "Europe",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingVeryGood, Infrastructure: model.RatingExcellent},
	{Key: "Felixstowe", Name: "Port of Felixstowe", Country: "United Kingdom", Code: "GBFXT",
		Coordinates: model.Coordinates{Lat: 51.9542, Lon: 1.3511}, Region: "Europe",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Le Havre", Name: "Port of Le Havre", Country: "France", Code: "FRLEH",
		Coordinates: model.Coordinates{Lat: 49.4944, Lon: 0.1079}, Region: "Europe",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingFair, Infrastructure: model.RatingGood},
	{Key: "Genoa", Name: "Port of Genoa", Country: "Italy", Code: "ITGOA",
		Coordinates: model.Coordinates{Lat: 44.4056, Lon: 8.9463}, Region: "Europe",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingFair, Infrastructure: model.RatingGood},
	{Key: "Barcelona", Name: "Port of Barcelona", Country: "Spain", Code: "ESBCN",
		Coordinates: model.Coordinates{Lat: 41.3851, Lon: 2.1734}, Region: "Europe",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingGood},
	{Key: "Valencia", Name: "Port of Valencia", Country: "Spain", Code: "ESVLC",
		Coordinates: model.Coordinates{Lat: 39.4699, Lon: -0.3763}, Region: "Europe",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingGood},

	// Middle East
	{Key: "Dubai", Name: "Port of Dubai", Country: "United Arab Emirates", Code: "AEDXB",
		Coordinates: model.Coordinates{Lat: 25.2769, Lon: 55.2962}, Region: "Middle East",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Jebel Ali", Name: "Jebel Ali Port", Country: "United Arab Emirates", Code: "AEJEA",
		Coordinates: model.Coordinates{Lat: 25.0118, Lon: 55.1370}, Region: "Middle East",
		SecurityLevel: model.RatingHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingExcellent},

	// Other regions
	{Key: "Santos", Name: "Port of Santos", Country: "Brazil", Code: "BRSSZ",
		Coordinates: model.Coordinates{Lat: -23.9618, Lon: -46.3322}, Region: "South America",
		SecurityLevel: model.RatingMedium, LaborStability: model.RatingFair, Infrastructure: model.RatingGood},
	{Key: "Buenos Aires", Name: "Port of Buenos Aires", Country: "Argentina", Code: "ARBUE",
		Coordinates: model.Coordinates{Lat: -34.6118, Lon: -58.3960}, Region: "South America",
		SecurityLevel: model.RatingMedium, LaborStability: model.RatingPoor, Infrastructure: model.RatingFair},
	{Key: "Melbourne", Name: "Port of Melbourne", Country: "Australia", Code: "AUMEL",
		Coordinates: model.Coordinates{Lat: -37.8136, Lon: 144.9631}, Region: "Oceania",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingVeryGood},
	{Key: "Sydney", Name: "Port of Sydney", Country: "Australia", Code: "AUSYD",
		Coordinates: model.Coordinates{Lat: -33.8688, Lon: 151.2093}, Region: "Oceania",
		SecurityLevel: model.RatingVeryHigh, LaborStability: model.RatingGood, Infrastructure: model.RatingGood},
	{Key: "Durban", Name: "Port of Durban", Country: "South Africa", Code: "ZADUR",
		Coordinates: model.Coordinates{Lat: -29.8587, Lon: 31.0218}, Region: "Africa",
		SecurityLevel: model.RatingMedium, LaborStability: model.RatingPoor, Infrastructure: model.RatingFair},
	{Key: "Cape Town", Name: "Port of Cape Town", Country: "South Africa", Code: "ZACPT",
		Coordinates: model.Coordinates{Lat: -33.9249, Lon: 18.4241}, Region: "Africa",
		SecurityLevel: model.RatingMedium, LaborStability: model.RatingFair, Infrastructure: model.RatingGood},
}
