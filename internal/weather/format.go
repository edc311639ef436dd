package weather

import (
	"fmt"
	"strings"
	"time"
)

const nightEndsHour = 8 // hours before 08:00 local count as nighttime

// FormatReport renders the forecast as human-readable text. The hourly
// slice is the full horizon-filtered series; the night filter and the
// detail-level sampling apply only to this rendering pass.
func FormatReport(now time.Time, lat, lon float64, updated time.Time, hours int, hourly []HourlyForecast, summary WeatherSummary, tips []string, detail DetailLevel, includeNight bool) string {
	lines := []string{"# 🌤️ Weather Forecast for Planning\n"}

	lines = append(lines, fmt.Sprintf("**Current time:** %s", now.Format("2006-01-02 15:04")))
	lines = append(lines, fmt.Sprintf("**Location:** Lat %.2f, Lon %.2f", lat, lon))
	lines = append(lines, fmt.Sprintf("**Forecast updated:** %s", updated.Format("2006-01-02 15:04")))
	lines = append(lines, fmt.Sprintf("**Showing:** Next %d hours\n", hours))

	lines = append(lines, "## Today's Summary")
	lines = append(lines, fmt.Sprintf("- **Temperature range:** %.1f°C to %.1f°C", summary.MinTemperature, summary.MaxTemperature))

	if len(summary.PrecipitationTypes) > 0 {
		lines = append(lines, fmt.Sprintf("- **Precipitation:** %s", strings.Join(summary.PrecipitationTypes, ", ")))
	} else {
		lines = append(lines, "- **Precipitation:** None expected")
	}

	wind := fmt.Sprintf("- **Wind:** %.1f m/s average, up to %.1f m/s", summary.AvgWindSpeed, summary.MaxWindSpeed)
	if summary.MaxWindGust != nil {
		wind += fmt.Sprintf(" (gusts: %.1f m/s)", *summary.MaxWindGust)
	}
	lines = append(lines, wind, "")

	if detail != DetailSummary {
		lines = append(lines, "## Detailed Forecast")

		step := 3
		if detail == DetailFull {
			step = 1
		}

		// Sampling indexes into the displayed sequence, so a window that
		// starts at night still renders evenly spaced daytime lines.
		shown := 0
		for _, h := range hourly {
			validTime, err := time.Parse(time.RFC3339, h.Time)
			if err != nil {
				continue
			}
			if validTime.Hour() < nightEndsHour && !includeNight {
				continue
			}
			if shown%step == 0 {
				lines = append(lines, formatHourLine(h, validTime, detail))
			}
			shown++
		}
	}

	lines = append(lines, "\n## Planning Tips")
	for _, tip := range tips {
		lines = append(lines, "- "+tip)
	}

	return strings.Join(lines, "\n")
}

func formatHourLine(h HourlyForecast, validTime time.Time, detail DetailLevel) string {
	parts := []string{fmt.Sprintf("**%s** - %.1f°C", validTime.Format("15:04"), h.Temperature)}

	if precip := formatPrecipitation(h.PrecipitationType, h.PrecipitationAmount); precip != "" {
		parts = append(parts, precip)
	}

	wind := fmt.Sprintf("Wind %.1f m/s", h.WindSpeed)
	if h.WindGust != nil && *h.WindGust > h.WindSpeed+2 {
		wind += fmt.Sprintf(" (gusts %.1f)", *h.WindGust)
	}
	parts = append(parts, wind)

	if detail == DetailFull {
		if h.Humidity != nil {
			parts = append(parts, fmt.Sprintf("Humidity %d%%", *h.Humidity))
		}
		if h.Visibility != nil {
			parts = append(parts, fmt.Sprintf("Vis %.1fkm", *h.Visibility))
		}
		if h.WeatherSymbolMeaning != nil {
			parts = append(parts, fmt.Sprintf("(%s)", *h.WeatherSymbolMeaning))
		}
	}

	return strings.Join(parts, ", ")
}

func formatPrecipitation(pcat int, amount float64) string {
	if pcat == 0 {
		return ""
	}

	name, ok := PrecipitationName(pcat)
	if !ok {
		name = "Precipitation"
	}

	if amount > 0 {
		return fmt.Sprintf("%s (%.1f mm/h)", name, amount)
	}
	return name
}
