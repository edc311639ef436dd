// Package mcp exposes the forecast pipeline as tools for an MCP client
// speaking JSON-RPC over stdio.
package mcp

import (
	"context"
	"fmt"

	"github.com/Leopaexd/smhi-mcp/internal/weather"
)

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Defaults supply values for arguments the client omits.
type Defaults struct {
	Lat   float64
	Lon   float64
	Hours int
}

// Provider dispatches tool calls onto the weather service.
type Provider struct {
	service  *weather.Service
	defaults Defaults
}

// NewProvider creates a Provider with the given fallback coordinates.
func NewProvider(service *weather.Service, defaults Defaults) *Provider {
	return &Provider{service: service, defaults: defaults}
}

// Tools returns the list of weather tools.
func (p *Provider) Tools() []Tool {
	return []Tool{
		{
			Name: "get_weather_forecast",
			Description: "Get weather forecast for a location in Sweden from SMHI " +
				"(Swedish Meteorological and Hydrological Institute). Returns both " +
				"structured hourly data and a human-readable report with summary " +
				"statistics and planning tips. By default shows only daytime hours " +
				"(08:00-23:59) for practical planning.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lat": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Latitude (default: %.2f, range: 55.0-70.0)", p.defaults.Lat),
					},
					"lon": map[string]interface{}{
						"type":        "number",
						"description": fmt.Sprintf("Longitude (default: %.2f, range: 10.0-25.0)", p.defaults.Lon),
					},
					"forecast_hours": map[string]interface{}{
						"type":        "integer",
						"description": fmt.Sprintf("Number of hours to forecast (default: %d, range: 1-120)", p.defaults.Hours),
					},
					"detail_level": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"summary", "detailed", "full"},
						"description": "Level of detail in the formatted text (default: detailed)",
					},
					"include_night": map[string]interface{}{
						"type":        "boolean",
						"description": "Include nighttime hours (00:00-07:59) in the report; automatically enabled for detail_level full",
					},
				},
			},
		},
	}
}

// HasTool checks if a tool name belongs to this provider.
func (p *Provider) HasTool(name string) bool {
	return name == "get_weather_forecast"
}

// Call executes a tool by name.
func (p *Provider) Call(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case "get_weather_forecast":
		return p.getWeatherForecast(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func (p *Provider) getWeatherForecast(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	req := weather.ForecastRequest{
		Lat:         p.defaults.Lat,
		Lon:         p.defaults.Lon,
		Hours:       p.defaults.Hours,
		DetailLevel: weather.DetailDetailed,
	}

	if v, ok := args["lat"].(float64); ok {
		req.Lat = v
	}
	if v, ok := args["lon"].(float64); ok {
		req.Lon = v
	}
	if v, ok := args["forecast_hours"].(float64); ok {
		req.Hours = int(v)
	}
	if v, ok := args["detail_level"].(string); ok {
		req.DetailLevel = weather.DetailLevel(v)
	}
	if v, ok := args["include_night"].(bool); ok {
		req.IncludeNight = v
	}

	return p.service.GetForecast(ctx, req)
}
