package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/okian/courtcast/internal/rostersync"
	"github.com/okian/courtcast/pkg/logger"
)

// Default configuration constants.
const (
	defaultOutput  = "assets/players.json"
	defaultPerPage = 100
	defaultGap     = 12 * time.Second
	defaultRetries = 5
)

func main() {
	var (
		apiKey  = flag.String("api-key", "", "Player-profile provider API key (falls back to COURTCAST_ROSTER_API_KEY)")
		baseURL = flag.String("url", "", "Override the provider base URL")
		output  = flag.String("output", defaultOutput, "Output file for the player dataset")
		perPage = flag.Int("per-page", defaultPerPage, "Page size requested from the provider")
		gap     = flag.Duration("gap", defaultGap, "Minimum gap between provider requests")
		retries = flag.Int("retries", defaultRetries, "Retries per page on transient failures")
		fresh   = flag.Bool("fresh", false, "Discard any checkpoint and start over")
	)
	flag.Parse()

	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	key := *apiKey
	if key == "" {
		key = os.Getenv("COURTCAST_ROSTER_API_KEY")
	}
	if key == "" {
		os.Stderr.WriteString("missing API key: pass -api-key or set COURTCAST_ROSTER_API_KEY\n")
		os.Exit(1)
	}

	// A full sync walks hundreds of pages at a forced crawl, so the only
	// deadline is the user's patience; Ctrl-C checkpoints and exits.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &rostersync.Config{
		APIKey:        key,
		BaseURL:       *baseURL,
		OutputPath:    *output,
		PerPage:       *perPage,
		MinRequestGap: *gap,
		MaxRetries:    *retries,
		Fresh:         *fresh,
	}

	if err := rostersync.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("sync failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	os.Stdout.WriteString("dataset written to " + *output + " (" + strconv.Itoa(rostersync.Loaded(*output)) + " players)\n")
}
