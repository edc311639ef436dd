package weather

// weatherSymbols maps SMHI Wsymb2 codes to their meanings.
var weatherSymbols = map[int]string{
	1:  "Clear sky",
	2:  "Nearly clear sky",
	3:  "Variable cloudiness",
	4:  "Halfclear sky",
	5:  "Cloudy sky",
	6:  "Overcast",
	7:  "Fog",
	8:  "Light rain showers",
	9:  "Moderate rain showers",
	10: "Heavy rain showers",
	11: "Thunderstorm",
	12: "Light sleet showers",
	13: "Moderate sleet showers",
	14: "Heavy sleet showers",
	15: "Light snow showers",
	16: "Moderate snow showers",
	17: "Heavy snow showers",
	18: "Light rain",
	19: "Moderate rain",
	20: "Heavy rain",
	21: "Thunder",
	22: "Light sleet",
	23: "Moderate sleet",
	24: "Heavy sleet",
	25: "Light snowfall",
	26: "Moderate snowfall",
	27: "Heavy snowfall",
}

// precipitationNames maps SMHI pcat codes (1-6) to readable names.
// Code 0 means no precipitation and has no name.
var precipitationNames = map[int]string{
	1: "Snow",
	2: "Snow/Rain mix",
	3: "Rain",
	4: "Drizzle",
	5: "Freezing rain",
	6: "Freezing drizzle",
}

// SymbolMeaning resolves a Wsymb2 code to its description.
func SymbolMeaning(code int) (string, bool) {
	meaning, ok := weatherSymbols[code]
	return meaning, ok
}

// PrecipitationName resolves a pcat code to its name.
func PrecipitationName(code int) (string, bool) {
	name, ok := precipitationNames[code]
	return name, ok
}
