package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/Leopaexd/smhi-mcp/internal/api/http"
	"github.com/Leopaexd/smhi-mcp/internal/config"
	"github.com/Leopaexd/smhi-mcp/internal/mcp"
	"github.com/Leopaexd/smhi-mcp/internal/smhi"
	"github.com/Leopaexd/smhi-mcp/internal/weather"
)

func main() {
	stdio := flag.Bool("stdio", false, "serve MCP tools over stdin/stdout instead of HTTP")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Load the display timezone once at startup.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("failed to load timezone %s: %v", cfg.Timezone, err)
	}

	// Shared HTTP client for outbound SMHI calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	client := smhi.NewClient(httpClient, cfg.SMHIBaseURL)
	service := weather.NewService(client, loc, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *stdio {
		runStdio(ctx, service, cfg)
		return
	}

	runHTTP(ctx, service, cfg)
}

// runStdio serves the MCP tool loop for assistant integrations.
func runStdio(ctx context.Context, service *weather.Service, cfg *config.AppConfig) {
	log.Printf("starting MCP server on stdio (default location lat=%.2f lon=%.2f)", cfg.DefaultLat, cfg.DefaultLon)

	provider := mcp.NewProvider(service, mcp.Defaults{
		Lat:   cfg.DefaultLat,
		Lon:   cfg.DefaultLon,
		Hours: cfg.DefaultHours,
	})

	srv := mcp.NewServer(provider, os.Stdin, os.Stdout)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("mcp server: %v", err)
	}
	log.Println("mcp server stopped")
}

func runHTTP(ctx context.Context, service *weather.Service, cfg *config.AppConfig) {
	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "smhi-mcp",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "smhi-mcp",
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// API routes.
	httpapi.RegisterRoutes(app, service, cfg)

	go func() {
		log.Printf("starting server on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
