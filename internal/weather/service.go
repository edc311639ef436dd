package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Leopaexd/smhi-mcp/internal/metrics"
	"github.com/Leopaexd/smhi-mcp/internal/smhi"
	"github.com/Leopaexd/smhi-mcp/internal/timeutil"
)

// Fetcher retrieves the raw SMHI point forecast for a coordinate.
type Fetcher interface {
	PointForecast(ctx context.Context, lat, lon float64) (*smhi.PointForecast, error)
}

// Service orchestrates one forecast call: validate, fetch, extract,
// summarize, advise, render. It holds no per-call state; every call is an
// independent computation.
type Service struct {
	fetcher  Fetcher
	location *time.Location
	now      func() time.Time
	validate *validator.Validate
}

// NewService creates a Service. now may be nil, in which case wall-clock
// time is used; tests pass a fixed clock to keep filtering deterministic.
func NewService(fetcher Fetcher, location *time.Location, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		fetcher:  fetcher,
		location: location,
		now:      now,
		validate: validator.New(),
	}
}

// GetForecast runs the full pipeline and returns the structured forecast
// together with its rendered report text.
func (s *Service) GetForecast(ctx context.Context, req ForecastRequest) (*WeatherForecast, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	// Full detail always renders nighttime hours. Applied once, before
	// fetch and extraction; it only affects the rendering pass.
	if req.DetailLevel == DetailFull {
		req.IncludeNight = true
	}

	log.Printf("DEBUG: fetching forecast lat=%.2f lon=%.2f hours=%d detail=%s include_night=%t",
		req.Lat, req.Lon, req.Hours, req.DetailLevel, req.IncludeNight)

	raw, err := s.fetcher.PointForecast(ctx, req.Lat, req.Lon)
	if err != nil {
		if errors.Is(err, smhi.ErrPayload) {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	forecast, err := s.buildForecast(raw, req)
	if err != nil {
		return nil, err
	}

	metrics.ForecastsServed.WithLabelValues(string(req.DetailLevel)).Inc()
	log.Printf("DEBUG: built forecast with %d hourly entries and %d tips", len(forecast.Hourly), len(forecast.PlanningTips))

	return forecast, nil
}

func (s *Service) buildForecast(raw *smhi.PointForecast, req ForecastRequest) (*WeatherForecast, error) {
	if _, err := timeutil.Localize(raw.ReferenceTime, s.location); err != nil {
		return nil, fmt.Errorf("%w: reference time: %v", ErrParse, err)
	}
	approved, err := timeutil.Localize(raw.ApprovedTime, s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: approved time: %v", ErrParse, err)
	}

	if len(raw.Geometry.Coordinates) == 0 || len(raw.Geometry.Coordinates[0]) < 2 {
		return nil, fmt.Errorf("%w: geometry has no coordinates", ErrParse)
	}
	// GeoJSON order: [lon, lat].
	lon, lat := raw.Geometry.Coordinates[0][0], raw.Geometry.Coordinates[0][1]

	now := s.now().In(s.location)

	hourly, err := Extract(raw.TimeSeries, now, req.Hours, s.location)
	if err != nil {
		return nil, err
	}

	summary := Summarize(hourly)
	tips := GenerateTips(hourly, summary)
	text := FormatReport(now, lat, lon, approved, req.Hours, hourly, summary, tips, req.DetailLevel, req.IncludeNight)

	return &WeatherForecast{
		CurrentTime:     now.Format(time.RFC3339),
		LocationLat:     lat,
		LocationLon:     lon,
		ForecastUpdated: approved.Format(time.RFC3339),
		ForecastHours:   req.Hours,
		Hourly:          hourly,
		Summary:         summary,
		PlanningTips:    tips,
		FormattedText:   text,
	}, nil
}

func (s *Service) validateRequest(req ForecastRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Lat":
			return fmt.Errorf("%w: latitude %v must be between 55.0 and 70.0 (Sweden region)", ErrValidation, req.Lat)
		case "Lon":
			return fmt.Errorf("%w: longitude %v must be between 10.0 and 25.0 (Sweden region)", ErrValidation, req.Lon)
		case "Hours":
			return fmt.Errorf("%w: forecast hours %d must be between 1 and 120", ErrValidation, req.Hours)
		case "DetailLevel":
			return fmt.Errorf("%w: detail level %q must be one of summary, detailed, full", ErrValidation, req.DetailLevel)
		}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
