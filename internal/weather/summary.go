package weather

// Summarize reduces a non-empty hourly sequence into summary statistics.
// Precipitation type names are deduplicated in first-seen order; the
// "none" category (0) is excluded.
func Summarize(hourly []HourlyForecast) WeatherSummary {
	summary := WeatherSummary{
		MinTemperature:     hourly[0].Temperature,
		MaxTemperature:     hourly[0].Temperature,
		MaxWindSpeed:       hourly[0].WindSpeed,
		PrecipitationTypes: []string{},
	}

	var windSum float64
	seen := make(map[int]bool)

	for _, h := range hourly {
		if h.Temperature < summary.MinTemperature {
			summary.MinTemperature = h.Temperature
		}
		if h.Temperature > summary.MaxTemperature {
			summary.MaxTemperature = h.Temperature
		}

		windSum += h.WindSpeed
		if h.WindSpeed > summary.MaxWindSpeed {
			summary.MaxWindSpeed = h.WindSpeed
		}

		if h.WindGust != nil && (summary.MaxWindGust == nil || *h.WindGust > *summary.MaxWindGust) {
			gust := *h.WindGust
			summary.MaxWindGust = &gust
		}

		if h.PrecipitationType > 0 {
			summary.HasPrecipitation = true
			if !seen[h.PrecipitationType] {
				seen[h.PrecipitationType] = true
				if name, ok := PrecipitationName(h.PrecipitationType); ok {
					summary.PrecipitationTypes = append(summary.PrecipitationTypes, name)
				}
			}
		}
	}

	summary.AvgWindSpeed = windSum / float64(len(hourly))

	return summary
}
