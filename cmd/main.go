package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/courtcast/internal/adapters/http/api"
	"github.com/okian/courtcast/internal/adapters/video"
	"github.com/okian/courtcast/internal/adapters/view/terminal"
	"github.com/okian/courtcast/internal/adapters/weather"
	"github.com/okian/courtcast/internal/app"
	"github.com/okian/courtcast/internal/config"
	"github.com/okian/courtcast/internal/domain/roster"
	"github.com/okian/courtcast/pkg/logger"
	"github.com/okian/courtcast/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	// We collect our own custom system metrics instead
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Local development keys live in .env; absence is fine.
	_ = godotenv.Load()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Load the player dataset produced by fetch-players.
	pool, err := roster.LoadFile(cfg.RosterPath)
	if err != nil {
		loggerInstance.Error(ctx, "failed to load roster", logger.String("path", cfg.RosterPath), logger.Error(err))
		return
	}

	requestTimeout := time.Duration(cfg.RequestTimeoutMS) * time.Millisecond
	weatherClient := weather.NewClient(cfg.WeatherAPIKey,
		weather.WithBaseURL(cfg.WeatherBaseURL),
		weather.WithTimeout(requestTimeout),
	)
	videoClient := video.NewClient(cfg.VideoAPIKey,
		video.WithBaseURL(cfg.VideoBaseURL),
		video.WithMaxResults(cfg.VideoMaxResults),
		video.WithTimeout(requestTimeout),
	)

	view := terminal.New()

	// Create and start the presenter with configuration options.
	presenter := app.New(view, weatherClient, videoClient, pool,
		app.WithLogger(loggerInstance),
		app.WithLocation(cfg.Location),
		app.WithTickPeriod(time.Duration(cfg.ClockTickMS)*time.Millisecond),
		app.WithClockStart(cfg.ClockStart),
	)
	if err := presenter.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start presenter", logger.Error(err))
		return
	}

	// Location input from stdin re-runs the fetch sequence.
	go view.Listen(ctx, os.Stdin)

	// Start system metrics updater
	go startSystemMetricsUpdater(ctx)

	// HTTP mux and ops routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(presenter, presenter)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting ops HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "stopped")
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
}
