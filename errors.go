package glyphclock

import (
	"errors"

	"github.com/gogpu/glyphclock/glyph"
)

var (
	// ErrInvalidDigit is returned when a digit or transition target falls
	// outside 0-9.
	ErrInvalidDigit = glyph.ErrInvalidDigit

	// ErrInvalidSize is returned when glyphs are scaled to a zero or
	// negative render size.
	ErrInvalidSize = glyph.ErrInvalidSize

	// ErrInvalidConfig is returned by NewSlot for unusable options.
	ErrInvalidConfig = errors.New("glyphclock: invalid configuration")

	// ErrNotTransitioning is returned by AdvanceFrame when the slot has no
	// transition to advance.
	ErrNotTransitioning = errors.New("glyphclock: slot is not transitioning")

	// ErrTransitionInProgress is returned when a slot is asked to show or
	// morph to a new digit before its current transition has finished.
	ErrTransitionInProgress = errors.New("glyphclock: transition in progress")
)
