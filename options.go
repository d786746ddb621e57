package glyphclock

import (
	"image"

	"github.com/gogpu/glyphclock/geom"
)

// DefaultTotalSteps is the number of frames a transition takes by default.
const DefaultTotalSteps = 15

// DigitSource gives read-only access to the digit another slot is showing.
// *Slot implements it.
type DigitSource interface {
	Value() int
}

// SlotOption configures a Slot during creation.
//
// Example:
//
//	tens, _ := glyphclock.NewSlot(glyphclock.HourTens, lib, 2)
//	ones, _ := glyphclock.NewSlot(glyphclock.HourOnes, lib, 3,
//	    glyphclock.WithSibling(tens),
//	    glyphclock.WithShift(image.Pt(250, 50)))
type SlotOption func(*slotOptions)

// slotOptions holds optional configuration for Slot creation.
type slotOptions struct {
	totalSteps int
	samples    int
	sibling    DigitSource
	shift      image.Point
}

// defaultSlotOptions returns the default slot options.
func defaultSlotOptions() slotOptions {
	return slotOptions{
		totalSteps: DefaultTotalSteps,
		samples:    geom.DefaultSamples,
	}
}

// WithTotalSteps sets how many frames a transition takes. Must be at least 1.
func WithTotalSteps(n int) SlotOption {
	return func(o *slotOptions) {
		o.totalSteps = n
	}
}

// WithSamples sets how many points are sampled per Bezier segment.
// Must be at least 2.
func WithSamples(n int) SlotOption {
	return func(o *slotOptions) {
		o.samples = n
	}
}

// WithSibling sets the slot whose live value bounds this slot's range.
// Required for HourOnes, where it must be the hour tens slot.
func WithSibling(src DigitSource) SlotOption {
	return func(o *slotOptions) {
		o.sibling = src
	}
}

// WithShift sets the slot's offset within the driver's frame.
// The slot only stores it; compositing is up to the caller.
func WithShift(p image.Point) SlotOption {
	return func(o *slotOptions) {
		o.shift = p
	}
}
