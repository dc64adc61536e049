package animlist

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
)

// DefaultFrameRate is the number of frame ticks per second while animating.
const DefaultFrameRate = 60

const (
	defaultForeground = "#dadada"
	defaultBackground = "#000000"
)

// Option is a functional option for New.
type Option func(*config)

type config struct {
	debounce   time.Duration
	duration   time.Duration
	frameRate  int
	itemHeight int
	easing     Easing
	foreground string
	background string
	width      int
	height     int
	logger     *slog.Logger
	viewport   []func(*viewport.Model)
}

func defaultConfig() config {
	return config{
		debounce:   DefaultDebounce,
		duration:   DefaultDuration,
		frameRate:  DefaultFrameRate,
		easing:     EaseInOut,
		foreground: defaultForeground,
		background: defaultBackground,
	}
}

// WithDebounce sets the quiescence window for SetItems. Zero applies each
// update on the next message loop turn.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// WithDuration sets the length of the appear and disappear transitions.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithFrameRate sets how many frame ticks per second drive the timelines.
func WithFrameRate(fps int) Option {
	return func(c *config) {
		if fps > 0 {
			c.frameRate = fps
		}
	}
}

// WithItemHeight fixes rows to n lines and animates their height.
func WithItemHeight(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.itemHeight = n
		}
	}
}

// WithEasing replaces the default ease-in/ease-out curve.
func WithEasing(e Easing) Option {
	return func(c *config) {
		if e != nil {
			c.easing = e
		}
	}
}

// WithColors sets the hex colors a fading row blends between.
func WithColors(foreground, background string) Option {
	return func(c *config) {
		c.foreground = foreground
		c.background = background
	}
}

// WithSize sets the viewport size.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithLogger routes transition events to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithViewport configures the host viewport directly, e.g. its key map or
// mouse wheel settings.
func WithViewport(fn func(*viewport.Model)) Option {
	return func(c *config) {
		if fn != nil {
			c.viewport = append(c.viewport, fn)
		}
	}
}
