package glyphclock

import (
	"fmt"
	"image"

	"github.com/gogpu/glyphclock/glyph"
	"github.com/gogpu/glyphclock/raster"
)

// State is the animation state of a Slot.
type State int

const (
	// StateIdle means the slot shows its value statically.
	StateIdle State = iota

	// StateTransitioning means the slot is morphing toward a target digit
	// and has frames left to produce.
	StateTransitioning
)

// String returns "idle" or "transitioning".
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTransitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Slot is one digit position of a clock face. It owns a working copy of the
// outline being displayed, the per-frame delta of an in-flight transition and
// the pixmap every frame is rendered into.
//
// A transition begins with BeginTransition and produces TotalSteps further
// frames through AdvanceFrame. The frame that brings StepCount to TotalSteps
// is the last morph frame and makes the target the slot's value; the next
// AdvanceFrame settles the slot back to idle on the exact target outline.
//
// A Slot is not safe for concurrent use. Reading a sibling's value is the
// only cross-slot access and it never writes.
type Slot struct {
	kind     SlotKind
	lib      *glyph.Library
	sibling  DigitSource
	shift    image.Point
	renderer *Renderer
	pixmap   *raster.Pixmap

	value int
	shape glyph.Shape // working copy, mutated in place while morphing

	// transition state
	active bool
	target int
	delta  glyph.Shape
	step   int
	steps  int
}

// NewSlot creates a slot of the given kind showing digit initial, with
// outlines taken from lib. The initial glyph is rendered before NewSlot
// returns.
func NewSlot(kind SlotKind, lib *glyph.Library, initial int, opts ...SlotOption) (*Slot, error) {
	o := defaultSlotOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case !kind.Valid():
		return nil, fmt.Errorf("%w: unknown slot kind %d", ErrInvalidConfig, int(kind))
	case lib == nil:
		return nil, fmt.Errorf("%w: nil glyph library", ErrInvalidConfig)
	case o.totalSteps < 1:
		return nil, fmt.Errorf("%w: total steps %d, need at least 1", ErrInvalidConfig, o.totalSteps)
	case o.samples < 2:
		return nil, fmt.Errorf("%w: %d samples per segment, need at least 2", ErrInvalidConfig, o.samples)
	case kind.NeedsSibling() && o.sibling == nil:
		return nil, fmt.Errorf("%w: %s slot needs a sibling", ErrInvalidConfig, kind)
	}

	s := &Slot{
		kind:     kind,
		lib:      lib,
		sibling:  o.sibling,
		shift:    o.shift,
		renderer: NewRenderer(o.samples),
		pixmap:   raster.NewPixmap(lib.Width()+1, lib.Height()+1),
		steps:    o.totalSteps,
	}
	if _, err := s.InitDigit(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// Kind returns the slot's position on the clock face.
func (s *Slot) Kind() SlotKind { return s.kind }

// Value returns the digit the slot shows. During a transition it is the
// digit being morphed from until the last morph frame is produced.
func (s *Slot) Value() int { return s.value }

// Target returns the digit of the current or most recent transition, or the
// value when no transition has run.
func (s *Slot) Target() int {
	if !s.active {
		return s.value
	}
	return s.target
}

// Shift returns the offset configured with WithShift.
func (s *Slot) Shift() image.Point { return s.shift }

// StepCount returns the number of frames advanced in the current transition.
func (s *Slot) StepCount() int { return s.step }

// TotalSteps returns the number of frames a transition takes.
func (s *Slot) TotalSteps() int { return s.steps }

// Shape returns a copy of the outline currently displayed.
func (s *Slot) Shape() glyph.Shape { return s.shape }

// Pixmap returns the slot's pixmap. Its size is (width+1) x (height+1) of
// the library and it is redrawn in place on every frame.
func (s *Slot) Pixmap() *raster.Pixmap { return s.pixmap }

// State reports whether the slot has morph frames left to produce.
func (s *Slot) State() State {
	if s.active && s.step < s.steps {
		return StateTransitioning
	}
	return StateIdle
}

// Done reports whether the current transition has produced its last frame.
// It is false while idle with no transition pending.
func (s *Slot) Done() bool {
	return s.active && s.step == s.steps
}

// InitDigit shows digit v statically, replacing the working outline with v's
// scaled outline. It fails with ErrTransitionInProgress while morph frames
// remain.
func (s *Slot) InitDigit(v int) (*raster.Pixmap, error) {
	if s.State() == StateTransitioning {
		return nil, fmt.Errorf("%w: %s slot at step %d/%d", ErrTransitionInProgress, s.kind, s.step, s.steps)
	}
	shape, err := s.lib.Shape(v)
	if err != nil {
		return nil, err
	}

	s.value = v
	s.shape = shape
	s.active = false
	s.step = 0
	s.render()
	return s.pixmap, nil
}

// NextTarget returns the digit that follows the slot's value.
func (s *Slot) NextTarget() int {
	next, _ := s.NextTargetFor(s.value)
	return next
}

// NextTargetFor returns the digit that follows v for this slot's kind. The
// hour ones slot reads its sibling's value at the time of the call.
func (s *Slot) NextTargetFor(v int) (int, error) {
	sibling := 0
	if s.sibling != nil {
		sibling = s.sibling.Value()
	}
	return NextDigit(s.kind, v, sibling)
}

// BeginTransition starts morphing from the displayed outline to target's
// outline and renders frame 0, which still shows the starting outline.
func (s *Slot) BeginTransition(target int) (*raster.Pixmap, error) {
	if s.State() == StateTransitioning {
		return nil, fmt.Errorf("%w: %s slot at step %d/%d", ErrTransitionInProgress, s.kind, s.step, s.steps)
	}
	end, err := s.lib.Shape(target)
	if err != nil {
		return nil, err
	}
	s.settle()

	s.active = true
	s.target = target
	s.delta = end.Sub(s.shape).Div(float64(s.steps))
	s.step = 0

	Logger().Debug("glyphclock: transition started",
		"slot", s.kind.String(), "from", s.value, "to", target, "steps", s.steps)

	s.render()
	return s.pixmap, nil
}

// Advance begins a transition to NextTarget.
func (s *Slot) Advance() (*raster.Pixmap, error) {
	return s.BeginTransition(s.NextTarget())
}

// AdvanceFrame adds one step of the transition delta to the working outline
// and renders it. Once the last morph frame has been produced, the following
// call settles the slot on the exact target outline and returns it idle.
func (s *Slot) AdvanceFrame() (*raster.Pixmap, error) {
	if !s.active {
		return nil, fmt.Errorf("%w: %s slot", ErrNotTransitioning, s.kind)
	}
	if s.step == s.steps {
		s.settle()
		s.render()
		return s.pixmap, nil
	}

	s.shape = s.shape.Add(s.delta)
	s.step++
	if s.step == s.steps {
		s.value = s.target
		Logger().Debug("glyphclock: transition complete",
			"slot", s.kind.String(), "value", s.value)
	}

	s.render()
	return s.pixmap, nil
}

// settle ends a finished transition, replacing the accumulated outline with
// the target's exact outline.
func (s *Slot) settle() {
	if !s.Done() {
		return
	}
	// The target was validated when the transition began.
	s.shape, _ = s.lib.Shape(s.target)
	s.active = false
}

func (s *Slot) render() {
	s.renderer.Render(s.shape, s.pixmap)
}
