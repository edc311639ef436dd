package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// SMHIBaseURL is the point forecast endpoint prefix.
	SMHIBaseURL string

	// Default forecast location (Stockholm, Södermalm).
	DefaultLat float64
	DefaultLon float64

	// DefaultHours is the horizon used when the caller omits one.
	DefaultHours int

	// Timezone is the civil timezone all timestamps are rendered in.
	Timezone string

	// HTTPTimeout bounds the outbound SMHI fetch.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.SMHIBaseURL = getenvDefault("SMHI_API_BASE",
		"https://opendata-download-metfcst.smhi.se/api/category/pmp3g/version/2/geotype/point")

	cfg.DefaultLat = getenvFloat("DEFAULT_LAT", 59.32)
	cfg.DefaultLon = getenvFloat("DEFAULT_LON", 18.04)
	cfg.DefaultHours = getenvInt("DEFAULT_FORECAST_HOURS", 24)

	cfg.Timezone = getenvDefault("DISPLAY_TIMEZONE", "Europe/Stockholm")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
