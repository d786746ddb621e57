// Package clock drives six glyphclock slots from a wall clock and composites
// their pixmaps into a single frame.
//
// A Face alternates between two modes. While idle, each Tick samples the
// clock and starts a transition on every digit that changed. While changing,
// each Tick advances the morphing digits by one frame until all of them have
// reached their targets.
package clock

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/jonboulle/clockwork"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glyphclock"
	"github.com/gogpu/glyphclock/glyph"
	"github.com/gogpu/glyphclock/raster"
)

// Face is a six digit HH:MM:SS clock face.
// A Face is not safe for concurrent use.
type Face struct {
	clock     clockwork.Clock
	interval  time.Duration
	digitSize image.Point
	margin    int
	caption   bool

	slots    [6]*glyphclock.Slot
	changing [6]bool
	sample   Sample
	frame    *image.RGBA
}

// NewFace creates a face showing the clock's current time.
func NewFace(opts ...FaceOption) (*Face, error) {
	o := defaultFaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.margin < 0 {
		return nil, fmt.Errorf("%w: negative margin %d", glyphclock.ErrInvalidConfig, o.margin)
	}
	if o.digitSize.X <= 0 || o.digitSize.Y <= 0 {
		return nil, fmt.Errorf("%w: digit size %v", glyphclock.ErrInvalidSize, o.digitSize)
	}
	if o.interval <= 0 {
		return nil, fmt.Errorf("%w: tick interval %v", glyphclock.ErrInvalidConfig, o.interval)
	}

	f := &Face{
		clock:     o.clock,
		interval:  o.interval,
		digitSize: o.digitSize,
		margin:    o.margin,
		caption:   o.caption,
		sample:    SampleOf(o.clock.Now()),
	}

	size := f.Size()
	f.frame = image.NewRGBA(image.Rectangle{Max: size})
	xdraw.Draw(f.frame, f.frame.Bounds(), image.NewUniform(raster.Background), image.Point{}, xdraw.Src)

	digits := f.sample.Digits()
	for i, kind := range glyphclock.SlotKinds {
		// Each slot scales its own library so no outline storage is shared.
		lib, err := glyph.NewLibrary(o.digitSize.X, o.digitSize.Y)
		if err != nil {
			return nil, err
		}
		slotOpts := []glyphclock.SlotOption{
			glyphclock.WithTotalSteps(o.totalSteps),
			glyphclock.WithSamples(o.samples),
			glyphclock.WithShift(f.shift(i)),
		}
		if kind.NeedsSibling() {
			slotOpts = append(slotOpts, glyphclock.WithSibling(f.slots[0]))
		}
		s, err := glyphclock.NewSlot(kind, lib, digits[i], slotOpts...)
		if err != nil {
			return nil, fmt.Errorf("clock: %s slot: %w", kind, err)
		}
		f.slots[i] = s
		f.compose(i)
	}
	f.drawCaption()

	glyphclock.Logger().Info("clock: face created",
		"size", size.String(), "digit", o.digitSize.String(), "steps", o.totalSteps, "time", f.sample.String())
	return f, nil
}

// Size returns the frame dimensions: the six digits side by side with the
// margin on the left, top and bottom and twice the margin on the right.
func (f *Face) Size() image.Point {
	return image.Pt(
		3*f.margin+len(f.slots)*f.digitSize.X,
		2*f.margin+f.digitSize.Y,
	)
}

func (f *Face) shift(i int) image.Point {
	return image.Pt(f.margin+i*f.digitSize.X, f.margin)
}

// Frame returns the composited frame. It is updated in place by Tick.
func (f *Face) Frame() *image.RGBA {
	return f.frame
}

// Slots returns the six slots in clock order.
func (f *Face) Slots() [6]*glyphclock.Slot {
	return f.slots
}

// Sample returns the time the face is showing or morphing toward.
func (f *Face) Sample() Sample {
	return f.sample
}

// Changing reports whether any digit is still morphing.
func (f *Face) Changing() bool {
	for _, c := range f.changing {
		if c {
			return true
		}
	}
	return false
}

// Tick produces the next frame. While idle it samples the clock and begins
// transitions for the digits that changed; otherwise it advances every
// morphing digit by one frame.
func (f *Face) Tick() (*image.RGBA, error) {
	var err error
	if f.Changing() {
		err = f.advance()
	} else {
		err = f.poll()
	}
	return f.frame, err
}

func (f *Face) poll() error {
	now := SampleOf(f.clock.Now())
	if now == f.sample {
		return nil
	}
	glyphclock.Logger().Debug("clock: time changed", "from", f.sample.String(), "to", now.String())

	digits := now.Digits()
	for i, s := range f.slots {
		target := digits[i]
		if target == s.Value() {
			continue
		}
		if next := s.NextTarget(); next != target {
			glyphclock.Logger().Warn("clock: digit skipped its successor",
				"slot", s.Kind().String(), "from", s.Value(), "successor", next, "to", target)
		}
		if _, err := s.BeginTransition(target); err != nil {
			return fmt.Errorf("clock: %s slot: %w", s.Kind(), err)
		}
		f.changing[i] = true
		f.compose(i)
	}
	f.sample = now
	f.drawCaption()
	return nil
}

func (f *Face) advance() error {
	for i, s := range f.slots {
		if !f.changing[i] {
			continue
		}
		if _, err := s.AdvanceFrame(); err != nil {
			return fmt.Errorf("clock: %s slot: %w", s.Kind(), err)
		}
		if s.Done() {
			f.changing[i] = false
		}
		f.compose(i)
	}
	return nil
}

// compose copies slot i into the frame. The pixmap's extra last row and
// column are left out.
func (f *Face) compose(i int) {
	s := f.slots[i]
	r := image.Rectangle{Min: s.Shift(), Max: s.Shift().Add(f.digitSize)}
	xdraw.Draw(f.frame, r, s.Pixmap(), image.Point{}, xdraw.Src)
}

// Run presents the current frame, then ticks every interval and presents
// each new frame until ctx is done or present fails. Cancelling ctx is the
// normal way to stop and makes Run return nil.
func (f *Face) Run(ctx context.Context, present func(*image.RGBA) error) error {
	if err := present(f.frame); err != nil {
		return err
	}

	ticker := f.clock.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			glyphclock.Logger().Info("clock: stopped", "time", f.sample.String())
			return nil
		case <-ticker.Chan():
			frame, err := f.Tick()
			if err != nil {
				return err
			}
			if err := present(frame); err != nil {
				return err
			}
		}
	}
}
