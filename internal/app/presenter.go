// Package app provides the presenter that sequences the widget's
// dependent fetches and pushes results to the rendering surface.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/courtcast/internal/adapters/weather"
	"github.com/okian/courtcast/internal/domain/clock"
	"github.com/okian/courtcast/internal/domain/model"
	"github.com/okian/courtcast/internal/domain/roster"
	"github.com/okian/courtcast/pkg/logger"
	"github.com/okian/courtcast/pkg/metrics"
)

// Default presenter configuration constants.
const (
	defaultTickPeriod = time.Second
)

// User-visible failure notices.
const (
	noticeWeatherFailed = "could not find that place"
	noticePlayerFailed  = "no player matches today's number"
)

// WeatherSource fetches current conditions for a location.
// *weather.Client satisfies it.
type WeatherSource interface {
	Current(ctx context.Context, location string) (weather.Report, error)
}

// VideoSource searches for highlight clips.
type VideoSource interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Presenter owns the widget's models and drives the startup sequence:
// weather, then player selection keyed on the rounded temperature, then
// a highlight video. It is the sole writer of every model.
type Presenter struct {
	mu sync.Mutex

	// Collaborators
	view    ViewPort
	weather WeatherSource
	videos  VideoSource
	pool    *roster.Pool

	// Models
	clock    *clock.State
	snapshot model.WeatherSnapshot
	profile  model.PlayerProfile
	videoID  string

	// Configuration
	location   string
	tickPeriod time.Duration
	clockStart string
	rng        *rand.Rand

	// Logging
	logger logger.Logger
}

// New constructs a Presenter with default configuration.
func New(view ViewPort, weather WeatherSource, videos VideoSource, pool *roster.Pool, opts ...Option) *Presenter {
	p := &Presenter{
		view:       view,
		weather:    weather,
		videos:     videos,
		pool:       pool,
		clock:      clock.New(),
		tickPeriod: defaultTickPeriod,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // selection is cosmetic, not cryptographic
		logger:     nil,                                             // resolved in Start
	}

	// Apply all options
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start initializes the clock, binds the location input, launches the
// tick loop, and runs the startup sequence once. Fetch failures inside
// the sequence surface as viewport notices, not as a Start error.
func (p *Presenter) Start(ctx context.Context) error {
	if p.logger == nil {
		p.logger = logger.Get().Named("presenter")
	}

	if p.clockStart != "" {
		if err := p.clock.Start(p.clockStart); err != nil {
			return fmt.Errorf("start clock: %w", err)
		}
	} else {
		p.clock.StartAt(time.Now())
	}

	p.view.BindLocationInput(func(location string) {
		p.Run(ctx, location)
	})

	go p.tickLoop(ctx)

	p.Run(ctx, p.location)
	return nil
}

// Run executes the fetch sequence for a location. Runs are serialized;
// the clock loop is independent and keeps ticking throughout.
func (p *Presenter) Run(ctx context.Context, location string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.logger == nil {
		p.logger = logger.Get().Named("presenter")
	}
	if location == "" {
		location = p.location
	}

	runID := uuid.NewString()
	log := p.logger
	log.Info(ctx, "starting fetch sequence",
		logger.String("run_id", runID),
		logger.String("location", location),
	)

	// Step 1: weather. A failure aborts everything downstream since
	// the selection key derives from the temperature.
	report, err := p.weather.Current(ctx, location)
	if err != nil {
		log.Error(ctx, "weather fetch failed",
			logger.String("run_id", runID),
			logger.String("location", location),
			logger.Error(err),
		)
		p.notice(noticeWeatherFailed)
		metrics.RecordPresenterRun("weather_failed")
		return
	}

	// Step 2: replace the snapshot, then push every weather field.
	p.snapshot.Replace(report.TemperatureC, report.City, report.Country, report.Condition, report.IconURL, report.WindKPH)
	p.pushWeather()

	// Steps 3-4: derive the jersey key and select a player.
	key := p.snapshot.JerseyKey()
	player, err := p.pool.PickByJersey(key, p.rng)
	if err != nil {
		log.Error(ctx, "player selection failed",
			logger.String("run_id", runID),
			logger.Int("jersey", key),
			logger.Error(err),
		)
		p.notice(noticePlayerFailed)
		metrics.RecordPresenterRun("no_matching_player")
		return
	}
	p.profile.Replace(player.FirstName, player.LastName, player.Country, player.Height, player.Position, player.Team.FullName)
	p.pushPlayer()

	// Steps 5-6: search a highlight clip. Failure here degrades
	// gracefully: everything already rendered stands.
	query := roster.HighlightQuery(player)
	ids, err := p.videos.Search(ctx, query)
	if err != nil {
		log.Warn(ctx, "video search failed; rendering without a clip",
			logger.String("run_id", runID),
			logger.String("query", query),
			logger.Error(err),
		)
		metrics.RecordPresenterRun("video_failed")
		return
	}
	if len(ids) == 0 {
		log.Info(ctx, "no video candidates; leaving video slot unset",
			logger.String("run_id", runID),
			logger.String("query", query),
		)
		metrics.RecordPresenterRun("no_video")
		return
	}
	p.videoID = ids[p.rng.Intn(len(ids))]
	p.push("video", func() { p.view.SetVideoID(p.videoID) })

	log.Info(ctx, "fetch sequence complete",
		logger.String("run_id", runID),
		logger.Int("jersey", key),
		logger.String("player", player.FirstName+" "+player.LastName),
		logger.String("video_id", p.videoID),
	)
	metrics.RecordPresenterRun("success")
}

// tickLoop advances the clock once per period and pushes the display
// string. The first firing is immediate; the loop ends with ctx.
func (p *Presenter) tickLoop(ctx context.Context) {
	p.tickOnce()

	ticker := time.NewTicker(p.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tickOnce()
		}
	}
}

func (p *Presenter) tickOnce() {
	p.clock.Tick()
	p.view.SetTime(p.clock.Format())
	metrics.RecordClockTick()
}

func (p *Presenter) pushWeather() {
	p.push("temperature", func() { p.view.SetTemperature(model.FormatTemperature(p.snapshot.TemperatureC)) })
	p.push("city", func() { p.view.SetCity(p.snapshot.City) })
	p.push("country", func() { p.view.SetCountry(p.snapshot.Country) })
	p.push("condition", func() { p.view.SetCondition(p.snapshot.Condition) })
	p.push("wind", func() { p.view.SetWind(model.FormatWind(p.snapshot.WindKPH)) })
	p.push("icon", func() { p.view.SetIcon(p.snapshot.IconURL) })
}

func (p *Presenter) pushPlayer() {
	p.push("player_first_name", func() { p.view.SetPlayerFirstName(p.profile.FirstName) })
	p.push("player_last_name", func() { p.view.SetPlayerLastName(p.profile.LastName) })
	p.push("player_country", func() { p.view.SetPlayerCountry(p.profile.Country) })
	p.push("player_height", func() { p.view.SetPlayerHeight(p.profile.Height) })
	p.push("player_position", func() { p.view.SetPlayerPosition(p.profile.Position) })
	p.push("player_team", func() { p.view.SetPlayerTeam(p.profile.Team) })
}

func (p *Presenter) push(field string, set func()) {
	set()
	metrics.RecordViewportUpdate(field)
}

func (p *Presenter) notice(msg string) {
	p.view.ShowNotice(msg)
	metrics.RecordViewportNotice()
}

// GetStats returns the current model state for the ops surface.
func (p *Presenter) GetStats() map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := map[string]interface{}{
		"time":           p.clock.Format(),
		"weather_loaded": p.snapshot.Loaded,
		"player_loaded":  p.profile.Loaded,
	}
	if p.snapshot.Loaded {
		stats["temperature"] = model.FormatTemperature(p.snapshot.TemperatureC)
		stats["city"] = p.snapshot.City
		stats["country"] = p.snapshot.Country
		stats["condition"] = p.snapshot.Condition
		stats["wind"] = model.FormatWind(p.snapshot.WindKPH)
		stats["jersey"] = p.snapshot.JerseyKey()
	}
	if p.profile.Loaded {
		stats["player"] = p.profile.FirstName + " " + p.profile.LastName
		stats["team"] = p.profile.Team
		stats["position"] = p.profile.Position
	}
	if p.videoID != "" {
		stats["video_id"] = p.videoID
	}
	return stats
}

