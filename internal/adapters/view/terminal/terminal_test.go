package terminal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/courtcast/internal/adapters/view/terminal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRendering(t *testing.T) {
	Convey("Given a terminal view without ANSI escapes", t, func() {
		var buf strings.Builder
		v := terminal.New(terminal.WithWriter(&buf), terminal.WithANSI(false))

		Convey("When weather fields are set", func() {
			v.SetTemperature("25")
			v.SetCity("Sacramento")
			v.SetCountry("United States of America")
			v.SetCondition("Sunny")
			v.SetWind("9.4 km/h")

			Convey("Then the frame shows the weather block", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "Sacramento, United States of America")
				So(out, ShouldContainSubstring, "25°C")
				So(out, ShouldContainSubstring, "wind 9.4 km/h")
			})
		})

		Convey("When player and video fields are set", func() {
			v.SetTemperature("25")
			v.SetPlayerFirstName("Stephen")
			v.SetPlayerLastName("Curry")
			v.SetPlayerTeam("Golden State Warriors")
			v.SetVideoID("vid-1")

			Convey("Then the frame shows the player line and the video link", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "#25 Stephen Curry (Golden State Warriors)")
				So(out, ShouldContainSubstring, "youtube.com/watch?v=vid-1")
			})
		})

		Convey("When a notice is shown", func() {
			v.ShowNotice("could not find that place")

			Convey("Then the frame carries the notice line", func() {
				So(buf.String(), ShouldContainSubstring, "! could not find that place")
			})
		})
	})
}

func TestListen(t *testing.T) {
	Convey("Given a view with a bound location callback", t, func() {
		var buf strings.Builder
		v := terminal.New(terminal.WithWriter(&buf), terminal.WithANSI(false))

		var got []string
		v.BindLocationInput(func(location string) {
			got = append(got, location)
		})

		Convey("When lines are read from input", func() {
			v.Listen(context.Background(), strings.NewReader("Boston\n\n  Denver  \n"))

			Convey("Then each non-blank trimmed line triggers the callback", func() {
				So(got, ShouldResemble, []string{"Boston", "Denver"})
			})
		})

		Convey("When no callback is bound", func() {
			unbound := terminal.New(terminal.WithWriter(&buf), terminal.WithANSI(false))

			Convey("Then input is drained without panicking", func() {
				So(func() {
					unbound.Listen(context.Background(), strings.NewReader("Boston\n"))
				}, ShouldNotPanic)
			})
		})
	})
}
