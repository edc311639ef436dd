package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Leopaexd/smhi-mcp/internal/smhi"
)

type stubFetcher struct {
	payload *smhi.PointForecast
	err     error
	calls   int
}

func (f *stubFetcher) PointForecast(ctx context.Context, lat, lon float64) (*smhi.PointForecast, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

// payloadFixture produces a payload with hourly entries from nowUTC for
// the given number of hours.
func payloadFixture(nowUTC time.Time, hours int) *smhi.PointForecast {
	p := &smhi.PointForecast{
		ApprovedTime:  nowUTC.Add(-time.Hour).Format(time.RFC3339),
		ReferenceTime: nowUTC.Add(-2 * time.Hour).Format(time.RFC3339),
		Geometry: smhi.Geometry{
			Type:        "Point",
			Coordinates: [][]float64{{18.04, 59.32}},
		},
	}
	for i := 0; i < hours; i++ {
		p.TimeSeries = append(p.TimeSeries, entry(
			nowUTC.Add(time.Duration(i)*time.Hour).Format(time.RFC3339),
			map[string][]float64{"t": {5 + float64(i)}, "ws": {3}},
		))
	}
	return p
}

func newTestService(t *testing.T, fetcher Fetcher) *Service {
	t.Helper()
	nowUTC := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return NewService(fetcher, stockholm(t), func() time.Time { return nowUTC })
}

func validRequest() ForecastRequest {
	return ForecastRequest{Lat: 59.32, Lon: 18.04, Hours: 24, DetailLevel: DetailDetailed}
}

func TestGetForecastValidationRejectsBeforeFetch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ForecastRequest)
	}{
		{"latitude below range", func(r *ForecastRequest) { r.Lat = 54.9 }},
		{"latitude above range", func(r *ForecastRequest) { r.Lat = 70.1 }},
		{"longitude below range", func(r *ForecastRequest) { r.Lon = 9.9 }},
		{"longitude above range", func(r *ForecastRequest) { r.Lon = 25.1 }},
		{"hours below range", func(r *ForecastRequest) { r.Hours = 0 }},
		{"hours above range", func(r *ForecastRequest) { r.Hours = 121 }},
		{"unknown detail level", func(r *ForecastRequest) { r.DetailLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &stubFetcher{}
			svc := newTestService(t, fetcher)

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.GetForecast(context.Background(), req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if fetcher.calls != 0 {
				t.Fatalf("fetcher called %d times before validation passed", fetcher.calls)
			}
		})
	}
}

func TestGetForecastBoundaryValuesPassValidation(t *testing.T) {
	nowUTC := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []ForecastRequest{
		{Lat: 55.0, Lon: 10.0, Hours: 1, DetailLevel: DetailSummary},
		{Lat: 70.0, Lon: 25.0, Hours: 120, DetailLevel: DetailFull},
	}

	for _, req := range tests {
		fetcher := &stubFetcher{payload: payloadFixture(nowUTC, 4)}
		svc := newTestService(t, fetcher)

		if _, err := svc.GetForecast(context.Background(), req); err != nil {
			t.Errorf("boundary request %+v failed: %v", req, err)
		}
	}
}

func TestGetForecastTransportErrorPropagates(t *testing.T) {
	fetcher := &stubFetcher{err: fmt.Errorf("smhi request failed: connection refused")}
	svc := newTestService(t, fetcher)

	_, err := svc.GetForecast(context.Background(), validRequest())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGetForecastPayloadErrorIsParseError(t *testing.T) {
	fetcher := &stubFetcher{err: fmt.Errorf("%w: missing timeSeries", smhi.ErrPayload)}
	svc := newTestService(t, fetcher)

	_, err := svc.GetForecast(context.Background(), validRequest())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestGetForecastMalformedApprovedTimeIsParseError(t *testing.T) {
	nowUTC := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	payload := payloadFixture(nowUTC, 4)
	payload.ApprovedTime = "yesterday"

	svc := newTestService(t, &stubFetcher{payload: payload})

	_, err := svc.GetForecast(context.Background(), validRequest())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestGetForecastEmptyWindowIsEmptyResultError(t *testing.T) {
	nowUTC := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	payload := payloadFixture(nowUTC.Add(-48*time.Hour), 4) // all in the past

	svc := newTestService(t, &stubFetcher{payload: payload})

	_, err := svc.GetForecast(context.Background(), validRequest())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestGetForecastAssemblesResponse(t *testing.T) {
	nowUTC := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestService(t, &stubFetcher{payload: payloadFixture(nowUTC, 6)})

	fc, err := svc.GetForecast(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Location echoes the payload geometry, [lon, lat] order.
	if fc.LocationLat != 59.32 || fc.LocationLon != 18.04 {
		t.Errorf("location %.2f/%.2f, want 59.32/18.04", fc.LocationLat, fc.LocationLon)
	}
	if fc.ForecastHours != 24 {
		t.Errorf("forecast hours %d, want 24", fc.ForecastHours)
	}
	if len(fc.Hourly) != 6 {
		t.Errorf("hourly entries %d, want 6", len(fc.Hourly))
	}
	if fc.CurrentTime != "2026-03-01T09:00:00+01:00" {
		t.Errorf("current time %s", fc.CurrentTime)
	}
	if fc.ForecastUpdated != "2026-03-01T08:00:00+01:00" {
		t.Errorf("forecast updated %s", fc.ForecastUpdated)
	}
	if len(fc.PlanningTips) == 0 {
		t.Error("planning tips missing")
	}
	if fc.FormattedText == "" {
		t.Error("formatted text missing")
	}

	// Hourly sequence stays chronological.
	for i := 1; i < len(fc.Hourly); i++ {
		if fc.Hourly[i-1].Time >= fc.Hourly[i].Time {
			t.Errorf("hourly out of order at %d: %s >= %s", i, fc.Hourly[i-1].Time, fc.Hourly[i].Time)
		}
	}
}

func TestGetForecastFullForcesNightHours(t *testing.T) {
	// All entries are nighttime: 02:00-05:00 local.
	nowUTC := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	payload := payloadFixture(nowUTC, 4)

	svc := NewService(&stubFetcher{payload: payload}, stockholm(t), func() time.Time { return nowUTC })

	req := validRequest()
	req.DetailLevel = DetailFull
	req.IncludeNight = false // overridden by full

	fc, err := svc.GetForecast(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(fc.FormattedText, "**02:00**") {
		t.Fatalf("full detail should render night hours:\n%s", fc.FormattedText)
	}

	// The same window in detailed mode hides them.
	req.DetailLevel = DetailDetailed
	fc, err = svc.GetForecast(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(fc.FormattedText, "**02:00**") {
		t.Fatalf("detailed mode should hide night hours:\n%s", fc.FormattedText)
	}

	// Structured hourly data keeps the night entries either way.
	if len(fc.Hourly) != 4 {
		t.Fatalf("structured hourly should keep all %d entries, got %d", 4, len(fc.Hourly))
	}
}
