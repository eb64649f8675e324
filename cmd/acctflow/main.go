package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sharmaisbatman/AcctFlow/internal/config"
	"github.com/Sharmaisbatman/AcctFlow/internal/handler"
	"github.com/Sharmaisbatman/AcctFlow/internal/infra/observability"
	"github.com/Sharmaisbatman/AcctFlow/internal/report"
	"github.com/Sharmaisbatman/AcctFlow/internal/service"
	"github.com/Sharmaisbatman/AcctFlow/internal/session"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.Duration("session_ttl", cfg.SessionTTL),
		zap.Duration("session_token_ttl", cfg.SessionTokenTTL),
		zap.Strings("cors_origins", cfg.CORSOrigins),
		zap.Bool("dev_tools", cfg.DevTools),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "acctflow")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Sessions (one journal store per session) ---
	sessions := session.NewRegistry(cfg.SessionTTL, cfg.SessionSecret, cfg.SessionTokenTTL)

	// --- Metrics ---
	metrics := observability.NewMetrics(func() float64 {
		return float64(sessions.Len())
	})

	// --- Services ---
	ruleset := report.DefaultRuleset()
	journalSvc := service.NewJournalService(ruleset, metrics, logger)
	logger.Info("journal service ready", zap.String("ruleset", ruleset.Version))

	// --- Router ---
	router := handler.NewRouter(handler.RouterOptions{
		Service:     journalSvc,
		Sessions:    sessions,
		Metrics:     metrics,
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		DevTools:    cfg.DevTools,
	})

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
