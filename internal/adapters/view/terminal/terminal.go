// Package terminal renders the widget to a text terminal.
//
// Every field update redraws the whole frame, so the terminal always
// shows a consistent snapshot of the current state.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const clearScreen = "\033[2J\033[H"

// View is a ViewPort implementation that draws to an io.Writer.
type View struct {
	mu   sync.Mutex
	out  io.Writer
	ansi bool

	timeValue   string
	temperature string
	city        string
	country     string
	condition   string
	wind        string
	icon        string

	playerFirstName string
	playerLastName  string
	playerCountry   string
	playerHeight    string
	playerPosition  string
	playerTeam      string

	videoID string
	notice  string

	onLocation func(string)
}

// New constructs a terminal view writing to stdout.
func New(opts ...Option) *View {
	v := &View{
		out:  os.Stdout,
		ansi: true,
	}

	// Apply all options
	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *View) SetTemperature(value string) { v.set(&v.temperature, value) }
func (v *View) SetCity(value string)        { v.set(&v.city, value) }
func (v *View) SetCountry(value string)     { v.set(&v.country, value) }
func (v *View) SetCondition(value string)   { v.set(&v.condition, value) }
func (v *View) SetWind(value string)        { v.set(&v.wind, value) }
func (v *View) SetIcon(value string)        { v.set(&v.icon, value) }

func (v *View) SetTime(value string) { v.set(&v.timeValue, value) }

func (v *View) SetPlayerFirstName(value string) { v.set(&v.playerFirstName, value) }
func (v *View) SetPlayerLastName(value string)  { v.set(&v.playerLastName, value) }
func (v *View) SetPlayerCountry(value string)   { v.set(&v.playerCountry, value) }
func (v *View) SetPlayerHeight(value string)    { v.set(&v.playerHeight, value) }
func (v *View) SetPlayerPosition(value string)  { v.set(&v.playerPosition, value) }
func (v *View) SetPlayerTeam(value string)      { v.set(&v.playerTeam, value) }

func (v *View) SetVideoID(value string) { v.set(&v.videoID, value) }

// ShowNotice replaces the notice line until the next successful update.
func (v *View) ShowNotice(msg string) { v.set(&v.notice, msg) }

// BindLocationInput registers the callback invoked for each line read
// by Listen.
func (v *View) BindLocationInput(fn func(string)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onLocation = fn
}

// Listen reads location lines from r until EOF or ctx is done. Blank
// lines are ignored. Intended to run in its own goroutine over stdin.
func (v *View) Listen(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v.mu.Lock()
		fn := v.onLocation
		v.notice = ""
		v.mu.Unlock()

		if fn != nil {
			fn(line)
		}
	}
}

func (v *View) set(field *string, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	*field = value
	v.render()
}

// render redraws the frame. Caller holds the lock.
func (v *View) render() {
	var b strings.Builder
	if v.ansi {
		b.WriteString(clearScreen)
	}

	fmt.Fprintf(&b, "  %s\n", v.timeValue)
	if v.city != "" {
		fmt.Fprintf(&b, "  %s, %s\n", v.city, v.country)
		fmt.Fprintf(&b, "  %s°C  %s  wind %s\n", v.temperature, v.condition, v.wind)
	}
	if v.playerLastName != "" {
		fmt.Fprintf(&b, "  #%s %s %s (%s)\n", v.temperature, v.playerFirstName, v.playerLastName, v.playerTeam)
		fmt.Fprintf(&b, "  %s  %s  %s\n", v.playerPosition, v.playerHeight, v.playerCountry)
	}
	if v.videoID != "" {
		fmt.Fprintf(&b, "  https://www.youtube.com/watch?v=%s\n", v.videoID)
	}
	if v.notice != "" {
		fmt.Fprintf(&b, "  ! %s\n", v.notice)
	}
	fmt.Fprint(&b, "  location> ")

	_, _ = io.WriteString(v.out, b.String())
}
