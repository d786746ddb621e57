package glyphclock

import (
	"fmt"

	"github.com/gogpu/glyphclock/glyph"
)

// SlotKind identifies one of the six digit positions of a clock face.
// The kind decides the largest digit the position can show.
type SlotKind int

const (
	HourTens SlotKind = iota
	HourOnes
	MinuteTens
	MinuteOnes
	SecondTens
	SecondOnes
)

// SlotKinds lists every kind in left-to-right clock order.
var SlotKinds = [...]SlotKind{HourTens, HourOnes, MinuteTens, MinuteOnes, SecondTens, SecondOnes}

var kindNames = [...]string{
	HourTens:   "hour-tens",
	HourOnes:   "hour-ones",
	MinuteTens: "minute-tens",
	MinuteOnes: "minute-ones",
	SecondTens: "second-tens",
	SecondOnes: "second-ones",
}

// String returns the kind's name, e.g. "minute-ones".
func (k SlotKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("SlotKind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the six defined kinds.
func (k SlotKind) Valid() bool {
	return k >= HourTens && k <= SecondOnes
}

// NeedsSibling reports whether the kind's range depends on another slot.
// Only the hour ones digit does: it stops at 3 when the hour tens digit is 2.
func (k SlotKind) NeedsSibling() bool {
	return k == HourOnes
}

// MaxDigit returns the largest digit the kind can show. sibling is the
// current value of the hour tens digit and is ignored by other kinds.
func (k SlotKind) MaxDigit(sibling int) int {
	switch k {
	case HourTens:
		return 2
	case HourOnes:
		if sibling == 2 {
			return 3
		}
		return 9
	case MinuteTens, SecondTens:
		return 5
	default:
		return 9
	}
}

// NextDigit returns the digit that follows v in the kind's cyclic order:
// (v + 1) mod (MaxDigit + 1).
func NextDigit(kind SlotKind, v, sibling int) (int, error) {
	if err := glyph.CheckDigit(v); err != nil {
		return 0, err
	}
	return (v + 1) % (kind.MaxDigit(sibling) + 1), nil
}
