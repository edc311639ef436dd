package smhi

// PointForecast is the raw SMHI pmp3g point forecast payload.
type PointForecast struct {
	ApprovedTime  string            `json:"approvedTime"`
	ReferenceTime string            `json:"referenceTime"`
	Geometry      Geometry          `json:"geometry"`
	TimeSeries    []TimeSeriesEntry `json:"timeSeries"`
}

// Geometry is a GeoJSON multi-point; coordinates are [lon, lat] pairs.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// TimeSeriesEntry holds all forecast parameters valid at one timestamp.
type TimeSeriesEntry struct {
	ValidTime  string      `json:"validTime"`
	Parameters []Parameter `json:"parameters"`
}

// Parameter is one named value series; the first value is the used one.
type Parameter struct {
	Name      string    `json:"name"`
	LevelType string    `json:"levelType"`
	Level     int       `json:"level"`
	Unit      string    `json:"unit"`
	Values    []float64 `json:"values"`
}
