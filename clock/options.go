package clock

import (
	"image"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/gogpu/glyphclock"
	"github.com/gogpu/glyphclock/geom"
)

// Defaults match a 1350x300 face of six 200x200 digits.
const (
	DefaultDigitSize = 200
	DefaultMargin    = 50
	DefaultInterval  = 5 * time.Millisecond
)

// FaceOption configures a Face during creation.
//
// Example:
//
//	face, err := clock.NewFace(
//	    clock.WithDigitSize(100, 160),
//	    clock.WithTotalSteps(10),
//	    clock.WithCaption(true))
type FaceOption func(*faceOptions)

// faceOptions holds optional configuration for Face creation.
type faceOptions struct {
	clock      clockwork.Clock
	digitSize  image.Point
	margin     int
	totalSteps int
	samples    int
	interval   time.Duration
	caption    bool
}

// defaultFaceOptions returns the default face options.
func defaultFaceOptions() faceOptions {
	return faceOptions{
		clock:      clockwork.NewRealClock(),
		digitSize:  image.Pt(DefaultDigitSize, DefaultDigitSize),
		margin:     DefaultMargin,
		totalSteps: glyphclock.DefaultTotalSteps,
		samples:    geom.DefaultSamples,
		interval:   DefaultInterval,
	}
}

// WithClock sets the time source. Tests and exports pass a fake clock.
func WithClock(c clockwork.Clock) FaceOption {
	return func(o *faceOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithDigitSize sets the render size of each digit.
func WithDigitSize(width, height int) FaceOption {
	return func(o *faceOptions) {
		o.digitSize = image.Pt(width, height)
	}
}

// WithMargin sets the blank border around the digits.
func WithMargin(m int) FaceOption {
	return func(o *faceOptions) {
		o.margin = m
	}
}

// WithTotalSteps sets how many frames each digit transition takes.
func WithTotalSteps(n int) FaceOption {
	return func(o *faceOptions) {
		o.totalSteps = n
	}
}

// WithSamples sets how many points are sampled per Bezier segment.
func WithSamples(n int) FaceOption {
	return func(o *faceOptions) {
		o.samples = n
	}
}

// WithInterval sets the time between ticks in Run.
func WithInterval(d time.Duration) FaceOption {
	return func(o *faceOptions) {
		o.interval = d
	}
}

// WithCaption enables an HH:MM:SS caption in the bottom margin.
func WithCaption(on bool) FaceOption {
	return func(o *faceOptions) {
		o.caption = on
	}
}
