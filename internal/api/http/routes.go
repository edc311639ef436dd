package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Leopaexd/smhi-mcp/internal/config"
	"github.com/Leopaexd/smhi-mcp/internal/weather"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, cfg *config.AppConfig) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		req := parseForecastQuery(c, cfg)

		forecast, err := service.GetForecast(c.UserContext(), req)
		if err != nil {
			return mapError(err)
		}

		return c.JSON(forecast)
	})
}

// parseForecastQuery reads request parameters, falling back to configured
// defaults. Range validation happens in the service, before any fetch.
func parseForecastQuery(c *fiber.Ctx, cfg *config.AppConfig) weather.ForecastRequest {
	return weather.ForecastRequest{
		Lat:          c.QueryFloat("lat", cfg.DefaultLat),
		Lon:          c.QueryFloat("lon", cfg.DefaultLon),
		Hours:        c.QueryInt("hours", cfg.DefaultHours),
		DetailLevel:  weather.DetailLevel(c.Query("detail", string(weather.DetailDetailed))),
		IncludeNight: c.QueryBool("include_night", false),
	}
}

func mapError(err error) error {
	switch {
	case errors.Is(err, weather.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrEmptyResult):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrTransport), errors.Is(err, weather.ErrParse):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build weather forecast")
	}
}
