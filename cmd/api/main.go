package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moving-offer-service/config"
	_ "moving-offer-service/docs" // Swagger docs
	"moving-offer-service/internal/httpserver"
	"moving-offer-service/internal/middleware"
	offerHTTP "moving-offer-service/internal/offer/delivery/http"
	"moving-offer-service/internal/offer/usecase"
	"moving-offer-service/pkg/gemini"
	"moving-offer-service/pkg/log"
)

// @title       Moving Offer Service API
// @description Price quoting for residential moving jobs with optional AI-assisted distance estimation and offer enrichment.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Moving Offer Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client (optional)
	var llm gemini.IGemini
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			client.SetModel(cfg.Gemini.Model)
		}
		llm = client
		logger.Infof(ctx, "Gemini client initialized (model: %s)", client.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing: AI assistance disabled, offers use local estimates")
	}

	// 4. Offer domain
	offerUC := usecase.New(logger, llm)
	offerHandler := offerHTTP.New(logger, offerUC)
	mw := middleware.New(logger, cfg.RateLimit)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		OfferHandler: offerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
