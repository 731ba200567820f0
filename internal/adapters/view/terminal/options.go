package terminal

import "io"

// Option configures a View.
type Option func(*View)

// WithWriter redirects frame output, mainly for tests.
func WithWriter(w io.Writer) Option {
	return func(v *View) {
		if w != nil {
			v.out = w
		}
	}
}

// WithANSI toggles the clear-screen escape before each frame.
func WithANSI(enabled bool) Option {
	return func(v *View) {
		v.ansi = enabled
	}
}
