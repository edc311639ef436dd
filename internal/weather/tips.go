package weather

import (
	"fmt"

	"github.com/Leopaexd/smhi-mcp/internal/common"
)

// GenerateTips derives planning advice from the summary and hourly data.
// Categories are independent; within a category only the highest-priority
// rule fires. The fallback tip appears only when no category fired.
func GenerateTips(hourly []HourlyForecast, summary WeatherSummary) []string {
	var tips []string

	switch {
	case summary.MaxTemperature < 0:
		tips = append(tips, "❄️ Below freezing all day - dress warmly, icy conditions likely")
	case summary.MinTemperature < 5:
		tips = append(tips, "🧥 Cold temperatures - bring warm layers")
	case summary.MaxTemperature > 20:
		tips = append(tips, "☀️ Warm day - good for outdoor activities")
	}

	if summary.HasPrecipitation {
		if common.ContainsAny(summary.PrecipitationTypes, "Snow", "Snow/Rain mix", "Freezing rain", "Freezing drizzle") {
			tips = append(tips, "🌨️ Snow or freezing conditions expected - allow extra commute time")
		} else if common.ContainsAny(summary.PrecipitationTypes, "Rain", "Drizzle") {
			tips = append(tips, "☔ Rain expected - bring umbrella, consider indoor activities")
		}
	}

	if summary.MaxWindGust != nil && *summary.MaxWindGust > 15 {
		tips = append(tips, fmt.Sprintf("💨 Strong wind gusts up to %.1f m/s - biking may be challenging", *summary.MaxWindGust))
	} else if summary.MaxWindSpeed > 10 {
		tips = append(tips, "💨 Strong winds - biking may be challenging")
	}

	if anyHour(hourly, func(h HourlyForecast) bool {
		return h.Visibility != nil && *h.Visibility < 1.0
	}) {
		tips = append(tips, "🌫️ Poor visibility expected - drive carefully")
	}

	if anyHour(hourly, func(h HourlyForecast) bool {
		return h.ThunderProbability != nil && *h.ThunderProbability > 30
	}) {
		tips = append(tips, "⚡ Thunderstorm risk - avoid outdoor activities during peak hours")
	}

	if len(tips) == 0 {
		tips = append(tips, "✅ Good weather conditions for normal activities")
	}

	return tips
}

func anyHour(hourly []HourlyForecast, match func(HourlyForecast) bool) bool {
	for _, h := range hourly {
		if match(h) {
			return true
		}
	}
	return false
}
