package weather

import (
	"fmt"
	"time"

	"github.com/Leopaexd/smhi-mcp/internal/smhi"
	"github.com/Leopaexd/smhi-mcp/internal/timeutil"
)

// Extract filters the raw time series to entries within [now, now+hours]
// (inclusive at both ends) and maps their parameters onto hourly records.
// The caller captures now once so the whole pass uses one consistent
// window. Returns ErrEmptyResult when no entries survive the filter.
func Extract(series []smhi.TimeSeriesEntry, now time.Time, hours int, loc *time.Location) ([]HourlyForecast, error) {
	var hourly []HourlyForecast

	for _, entry := range series {
		validTime, err := timeutil.Localize(entry.ValidTime, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		fromNow := timeutil.HoursBetween(now, validTime)
		if fromNow < 0 || fromNow > float64(hours) {
			continue
		}

		hourly = append(hourly, extractHour(validTime, entry.Parameters))
	}

	if len(hourly) == 0 {
		return nil, fmt.Errorf("%w: nothing within the next %d hours", ErrEmptyResult, hours)
	}

	return hourly, nil
}

func extractHour(validTime time.Time, params []smhi.Parameter) HourlyForecast {
	values := make(map[string][]float64, len(params))
	for _, p := range params {
		values[p.Name] = p.Values
	}

	h := HourlyForecast{
		Time:                validTime.Format(time.RFC3339),
		Temperature:         firstOrZero(values["t"]),
		WindSpeed:           firstOrZero(values["ws"]),
		PrecipitationType:   int(firstOrZero(values["pcat"])),
		PrecipitationAmount: firstOrZero(values["pmean"]),
		WindDirection:       optionalInt(values["wd"]),
		WindGust:            optionalFloat(values["gust"]),
		Humidity:            optionalInt(values["r"]),
		Visibility:          optionalFloat(values["vis"]),
		Pressure:            optionalFloat(values["msl"]),
		CloudCover:          optionalInt(values["tcc_mean"]),
		ThunderProbability:  optionalInt(values["tstm"]),
	}

	if symbol := optionalInt(values["Wsymb2"]); symbol != nil {
		h.WeatherSymbol = symbol
		if meaning, ok := SymbolMeaning(*symbol); ok {
			h.WeatherSymbolMeaning = &meaning
		}
	}

	return h
}

func firstOrZero(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[0]
}

func optionalFloat(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func optionalInt(values []float64) *int {
	if len(values) == 0 {
		return nil
	}
	v := int(values[0])
	return &v
}
