package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/truthlens/truthlens/internal/analyzer"
	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/classify"
	"github.com/truthlens/truthlens/internal/config"
	"github.com/truthlens/truthlens/internal/logger"
	"github.com/truthlens/truthlens/internal/narrative"
	"github.com/truthlens/truthlens/internal/pricing"
)

func main() {
	// A local .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("truthlens starting...")

	ctx := context.Background()

	opts := analyzer.Options{OutboundTimeout: cfg.OutboundTimeout}

	if cfg.HFAPIKey != "" {
		opts.Classifier = classify.NewHuggingFace(cfg.HFAPIKey, cfg.HFModel, cfg.OutboundTimeout, newLimiter(cfg.OutboundRPM))
		log.Infof("sentiment model enabled: %s", cfg.HFModel)
	} else {
		log.Info("no HF API key; sentiment uses lexicon fallback")
	}

	if cfg.GeminiAPIKey != "" {
		gemini, err := narrative.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.OutboundTimeout, newLimiter(cfg.OutboundRPM))
		if err != nil {
			log.WithError(err).Warn("narrative generator unavailable, static fallback only")
		} else {
			defer gemini.Close()
			opts.Narrative = gemini
			log.Infof("narrative generator enabled: %s", cfg.GeminiModel)
		}
	} else {
		log.Info("no Gemini API key; narrative uses static fallback")
	}

	opts.Prices = pricing.NewMarketplace(cfg.MarketplaceSearchURL, cfg.OutboundTimeout, newLimiter(cfg.OutboundRPM))

	eng := analyzer.New(log, opts)
	handler := api.New(log, eng)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info("shutdown signal received, stopping...")
		server.Shutdown(context.Background())
	}()

	log.Infof("truthlens listening on %s", cfg.HTTPAddr)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	log.Info("truthlens stopped")
}

// newLimiter builds a per-client limiter from a requests-per-minute budget
func newLimiter(rpm int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5)
}
