package app_test

import (
	"context"
	"math/rand"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/okian/courtcast/internal/adapters/weather"
	"github.com/okian/courtcast/internal/app"
	"github.com/okian/courtcast/internal/domain/roster"
	"github.com/okian/courtcast/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeViewPort records every setter call for assertions.
type fakeViewPort struct {
	mu sync.Mutex

	temperature, city, country, condition, wind, icon string
	timeValue                                         string
	firstName, lastName, playerCountry                string
	height, position, team                            string
	videoID                                           string
	notices                                           []string
	timeUpdates                                       int
	playerSets                                        int
	videoSets                                         int
	locationFn                                        func(string)
}

func (f *fakeViewPort) SetTemperature(v string) { f.mu.Lock(); defer f.mu.Unlock(); f.temperature = v }
func (f *fakeViewPort) SetCity(v string)        { f.mu.Lock(); defer f.mu.Unlock(); f.city = v }
func (f *fakeViewPort) SetCountry(v string)     { f.mu.Lock(); defer f.mu.Unlock(); f.country = v }
func (f *fakeViewPort) SetCondition(v string)   { f.mu.Lock(); defer f.mu.Unlock(); f.condition = v }
func (f *fakeViewPort) SetWind(v string)        { f.mu.Lock(); defer f.mu.Unlock(); f.wind = v }
func (f *fakeViewPort) SetIcon(v string)        { f.mu.Lock(); defer f.mu.Unlock(); f.icon = v }
func (f *fakeViewPort) SetTime(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeValue = v
	f.timeUpdates++
}
func (f *fakeViewPort) SetPlayerFirstName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.firstName = v
	f.playerSets++
}
func (f *fakeViewPort) SetPlayerLastName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastName = v
	f.playerSets++
}
func (f *fakeViewPort) SetPlayerCountry(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playerCountry = v
	f.playerSets++
}
func (f *fakeViewPort) SetPlayerHeight(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.height = v
	f.playerSets++
}
func (f *fakeViewPort) SetPlayerPosition(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.position = v
	f.playerSets++
}
func (f *fakeViewPort) SetPlayerTeam(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.team = v
	f.playerSets++
}
func (f *fakeViewPort) SetVideoID(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.videoID = v
	f.videoSets++
}
func (f *fakeViewPort) ShowNotice(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, msg)
}
func (f *fakeViewPort) BindLocationInput(fn func(string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locationFn = fn
}

// fakeWeather returns a fixed report or error.
type fakeWeather struct {
	report weather.Report
	err    error
	calls  int
}

func (f *fakeWeather) Current(_ context.Context, _ string) (weather.Report, error) {
	f.calls++
	if f.err != nil {
		return weather.Report{}, f.err
	}
	return f.report, nil
}

// fakeVideos returns fixed ids or an error.
type fakeVideos struct {
	ids   []string
	err   error
	calls int
}

func (f *fakeVideos) Search(_ context.Context, _ string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ids, nil
}

func curryPool() *roster.Pool {
	return roster.NewPool([]roster.Player{
		{ID: 1, FirstName: "Stephen", LastName: "Curry", JerseyNumber: "25", Position: "G", Height: "6-2", Country: "USA", Team: roster.Team{FullName: "Golden State Warriors"}},
		{ID: 2, FirstName: "Nikola", LastName: "Jokic", JerseyNumber: "15", Position: "C", Height: "6-11", Country: "Serbia", Team: roster.Team{FullName: "Denver Nuggets"}},
	})
}

func sunnyReport(tempC float64) weather.Report {
	return weather.Report{
		TemperatureC: tempC,
		City:         "Sacramento",
		Country:      "United States of America",
		Condition:    "Sunny",
		IconURL:      "//cdn.example/sun.png",
		WindKPH:      9.4,
	}
}

func TestPresenterRunSuccess(t *testing.T) {
	Convey("Given working providers and a matching player", t, func() {
		view := &fakeViewPort{}
		weatherSrc := &fakeWeather{report: sunnyReport(24.7)}
		videoSrc := &fakeVideos{ids: []string{"vid-1"}}

		p := app.New(view, weatherSrc, videoSrc, curryPool(),
			app.WithLocation("Sacramento"),
			app.WithRand(rand.New(rand.NewSource(1))),
		)

		Convey("When the sequence runs", func() {
			p.Run(context.Background(), "Sacramento")

			Convey("Then every weather field is pushed", func() {
				So(view.temperature, ShouldEqual, "25") // 24.7 rounded
				So(view.city, ShouldEqual, "Sacramento")
				So(view.country, ShouldEqual, "United States of America")
				So(view.condition, ShouldEqual, "Sunny")
				So(view.wind, ShouldEqual, "9.4 km/h")
				So(view.icon, ShouldEqual, "//cdn.example/sun.png")
			})

			Convey("And the jersey-25 player is selected deterministically", func() {
				So(view.lastName, ShouldEqual, "Curry")
				So(view.firstName, ShouldEqual, "Stephen")
				So(view.team, ShouldEqual, "Golden State Warriors")
				So(view.position, ShouldEqual, "G")
				So(view.height, ShouldEqual, "6-2")
				So(view.playerCountry, ShouldEqual, "USA")
			})

			Convey("And the video id is pushed", func() {
				So(view.videoID, ShouldEqual, "vid-1")
			})

			Convey("And no notice is shown", func() {
				So(view.notices, ShouldBeEmpty)
			})

			Convey("And the stats snapshot reflects the run", func() {
				stats := p.GetStats()
				So(stats["weather_loaded"], ShouldBeTrue)
				So(stats["player_loaded"], ShouldBeTrue)
				So(stats["temperature"], ShouldEqual, "25")
				So(stats["jersey"], ShouldEqual, 25)
				So(stats["player"], ShouldEqual, "Stephen Curry")
				So(stats["video_id"], ShouldEqual, "vid-1")
			})
		})
	})
}

func TestPresenterWeatherFailure(t *testing.T) {
	Convey("Given a failing weather provider", t, func() {
		view := &fakeViewPort{}
		weatherSrc := &fakeWeather{err: weather.ErrFetch}
		videoSrc := &fakeVideos{ids: []string{"vid-1"}}

		p := app.New(view, weatherSrc, videoSrc, curryPool(),
			app.WithRand(rand.New(rand.NewSource(1))),
		)

		Convey("When the sequence runs", func() {
			p.Run(context.Background(), "Nowhereville")

			Convey("Then exactly one user-visible notice is shown", func() {
				So(view.notices, ShouldHaveLength, 1)
				So(view.notices[0], ShouldEqual, "could not find that place")
			})

			Convey("And no weather, player, or video setter was called", func() {
				So(view.temperature, ShouldBeBlank)
				So(view.city, ShouldBeBlank)
				So(view.playerSets, ShouldEqual, 0)
				So(view.videoSets, ShouldEqual, 0)
			})

			Convey("And the downstream providers were never consulted", func() {
				So(videoSrc.calls, ShouldEqual, 0)
			})

			Convey("And the models remain unloaded", func() {
				stats := p.GetStats()
				So(stats["weather_loaded"], ShouldBeFalse)
				So(stats["player_loaded"], ShouldBeFalse)
			})
		})
	})
}

func TestPresenterNoMatchingPlayer(t *testing.T) {
	Convey("Given weather whose rounded temperature matches no jersey", t, func() {
		view := &fakeViewPort{}
		weatherSrc := &fakeWeather{report: sunnyReport(99.0)}
		videoSrc := &fakeVideos{ids: []string{"vid-1"}}

		p := app.New(view, weatherSrc, videoSrc, curryPool(),
			app.WithRand(rand.New(rand.NewSource(1))),
		)

		Convey("When the sequence runs", func() {
			p.Run(context.Background(), "Sacramento")

			Convey("Then weather fields are rendered", func() {
				So(view.temperature, ShouldEqual, "99")
				So(view.city, ShouldEqual, "Sacramento")
			})

			Convey("And exactly one notice is shown with no player or video output", func() {
				So(view.notices, ShouldHaveLength, 1)
				So(view.playerSets, ShouldEqual, 0)
				So(view.videoSets, ShouldEqual, 0)
				So(videoSrc.calls, ShouldEqual, 0)
			})
		})
	})
}

func TestPresenterVideoFailure(t *testing.T) {
	Convey("Given a failing video provider after good weather and player steps", t, func() {
		view := &fakeViewPort{}
		weatherSrc := &fakeWeather{report: sunnyReport(25.0)}
		videoSrc := &fakeVideos{err: context.DeadlineExceeded}

		p := app.New(view, weatherSrc, videoSrc, curryPool(),
			app.WithRand(rand.New(rand.NewSource(1))),
		)

		Convey("When the sequence runs", func() {
			p.Run(context.Background(), "Sacramento")

			Convey("Then weather and player setters were all called", func() {
				So(view.temperature, ShouldEqual, "25")
				So(view.lastName, ShouldEqual, "Curry")
				So(view.playerSets, ShouldEqual, 6)
			})

			Convey("And the video setter was never called, with no notice", func() {
				So(view.videoSets, ShouldEqual, 0)
				So(view.videoID, ShouldBeBlank)
				So(view.notices, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a video provider with zero candidates", t, func() {
		view := &fakeViewPort{}
		weatherSrc := &fakeWeather{report: sunnyReport(25.0)}
		videoSrc := &fakeVideos{ids: nil}

		p := app.New(view, weatherSrc, videoSrc, curryPool(),
			app.WithRand(rand.New(rand.NewSource(1))),
		)

		Convey("When the sequence runs", func() {
			p.Run(context.Background(), "Sacramento")

			Convey("Then the video slot stays unset without any error notice", func() {
				So(view.videoSets, ShouldEqual, 0)
				So(view.notices, ShouldBeEmpty)
				So(view.lastName, ShouldEqual, "Curry")
			})
		})
	})
}

func TestPresenterStart(t *testing.T) {
	Convey("Given a presenter with a short tick period", t, func() {
		view := &fakeViewPort{}
		weatherSrc := &fakeWeather{report: sunnyReport(25.0)}
		videoSrc := &fakeVideos{ids: []string{"vid-1"}}

		p := app.New(view, weatherSrc, videoSrc, curryPool(),
			app.WithLocation("Sacramento"),
			app.WithTickPeriod(10*time.Millisecond),
			app.WithClockStart("10:00:00"),
			app.WithRand(rand.New(rand.NewSource(1))),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		Convey("When started", func() {
			So(p.Start(ctx), ShouldBeNil)
			time.Sleep(60 * time.Millisecond)

			Convey("Then the clock ticks independently of the fetch sequence", func() {
				view.mu.Lock()
				updates := view.timeUpdates
				tv := view.timeValue
				view.mu.Unlock()
				So(updates, ShouldBeGreaterThanOrEqualTo, 2)
				So(tv, ShouldStartWith, "10:00:")
			})

			Convey("And the startup sequence already rendered", func() {
				view.mu.Lock()
				defer view.mu.Unlock()
				So(view.lastName, ShouldEqual, "Curry")
			})

			Convey("And the location input is bound to a re-run", func() {
				view.mu.Lock()
				fn := view.locationFn
				view.mu.Unlock()
				So(fn, ShouldNotBeNil)

				fn("Boston")
				So(weatherSrc.calls, ShouldBeGreaterThanOrEqualTo, 2)
			})
		})

		Convey("When started with an unparseable clock value", func() {
			bad := app.New(view, weatherSrc, videoSrc, curryPool(),
				app.WithClockStart("noon-ish"),
			)

			Convey("Then Start fails", func() {
				So(bad.Start(ctx), ShouldNotBeNil)
			})
		})
	})
}

func TestPresenterRandomSelectionAmongCandidates(t *testing.T) {
	Convey("Given several players sharing the derived jersey number", t, func() {
		pool := roster.NewPool([]roster.Player{
			{ID: 1, FirstName: "A", LastName: "One", JerseyNumber: "7", Team: roster.Team{FullName: "T1"}},
			{ID: 2, FirstName: "B", LastName: "Two", JerseyNumber: "7", Team: roster.Team{FullName: "T2"}},
			{ID: 3, FirstName: "C", LastName: "Three", JerseyNumber: "7", Team: roster.Team{FullName: "T3"}},
		})

		Convey("When the sequence runs many times", func() {
			seen := map[string]bool{}
			for seed := int64(0); seed < 20; seed++ {
				view := &fakeViewPort{}
				p := app.New(view,
					&fakeWeather{report: sunnyReport(7.2)},
					&fakeVideos{ids: []string{"v"}},
					pool,
					app.WithRand(rand.New(rand.NewSource(seed))),
				)
				p.Run(context.Background(), "x")
				seen[view.lastName] = true
			}

			Convey("Then more than one candidate gets picked across seeds", func() {
				So(len(seen), ShouldBeGreaterThan, 1)
			})
		})
	})
}
