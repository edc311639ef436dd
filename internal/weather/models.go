package weather

// DetailLevel controls how much per-hour detail appears in the text report.
type DetailLevel string

const (
	DetailSummary  DetailLevel = "summary"
	DetailDetailed DetailLevel = "detailed"
	DetailFull     DetailLevel = "full"
)

// ForecastRequest holds the validated inputs for one forecast call.
// Latitude and longitude are bounded to the SMHI model's Sweden region.
type ForecastRequest struct {
	Lat          float64     `validate:"gte=55,lte=70"`
	Lon          float64     `validate:"gte=10,lte=25"`
	Hours        int         `validate:"gte=1,lte=120"`
	DetailLevel  DetailLevel `validate:"oneof=summary detailed full"`
	IncludeNight bool
}

// HourlyForecast is one normalized hour of forecast data. Optional fields
// are nil when the API did not report them, never zero-valued sentinels.
type HourlyForecast struct {
	Time                 string   `json:"time"` // local civil time, RFC3339
	Temperature          float64  `json:"temperature"`
	WindSpeed            float64  `json:"wind_speed"`
	WindDirection        *int     `json:"wind_direction,omitempty"`
	WindGust             *float64 `json:"wind_gust,omitempty"`
	PrecipitationType    int      `json:"precipitation_type"` // 0=none, 1=snow, 2=snow/rain, 3=rain, 4=drizzle, 5=freezing rain, 6=freezing drizzle
	PrecipitationAmount  float64  `json:"precipitation_amount"`
	Humidity             *int     `json:"humidity,omitempty"`
	Visibility           *float64 `json:"visibility,omitempty"`
	Pressure             *float64 `json:"pressure,omitempty"`
	CloudCover           *int     `json:"cloud_cover,omitempty"`
	ThunderProbability   *int     `json:"thunder_probability,omitempty"`
	WeatherSymbol        *int     `json:"weather_symbol,omitempty"`
	WeatherSymbolMeaning *string  `json:"weather_symbol_meaning,omitempty"`
}

// WeatherSummary holds statistics over the forecast period.
type WeatherSummary struct {
	MinTemperature     float64  `json:"min_temperature"`
	MaxTemperature     float64  `json:"max_temperature"`
	AvgWindSpeed       float64  `json:"avg_wind_speed"`
	MaxWindSpeed       float64  `json:"max_wind_speed"`
	MaxWindGust        *float64 `json:"max_wind_gust,omitempty"`
	PrecipitationTypes []string `json:"precipitation_types"`
	HasPrecipitation   bool     `json:"has_precipitation"`
}

// WeatherForecast is the complete response: structured data plus the
// rendered report text, always returned together.
type WeatherForecast struct {
	CurrentTime     string           `json:"current_time"`
	LocationLat     float64          `json:"location_lat"`
	LocationLon     float64          `json:"location_lon"`
	ForecastUpdated string           `json:"forecast_updated"`
	ForecastHours   int              `json:"forecast_hours"`
	Hourly          []HourlyForecast `json:"hourly"`
	Summary         WeatherSummary   `json:"summary"`
	PlanningTips    []string         `json:"planning_tips"`
	FormattedText   string           `json:"formatted_text"`
}
