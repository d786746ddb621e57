package glyphclock

import (
	"errors"
	"testing"
)

func TestSlotKind_String(t *testing.T) {
	if got := MinuteOnes.String(); got != "minute-ones" {
		t.Errorf("MinuteOnes.String() = %q, want minute-ones", got)
	}
	if got := SlotKind(42).String(); got != "SlotKind(42)" {
		t.Errorf("SlotKind(42).String() = %q", got)
	}
	if SlotKind(-1).Valid() || SlotKind(6).Valid() {
		t.Error("out-of-range kinds reported valid")
	}
}

func TestNextDigit(t *testing.T) {
	tests := []struct {
		name    string
		kind    SlotKind
		v       int
		sibling int
		want    int
	}{
		{"hour tens 1", HourTens, 1, 0, 2},
		{"hour tens wraps after 2", HourTens, 2, 0, 0},
		{"hour ones at 23 wraps", HourOnes, 3, 2, 0},
		{"hour ones at 13 continues", HourOnes, 3, 1, 4},
		{"hour ones at 19 wraps", HourOnes, 9, 1, 0},
		{"hour ones at 09 wraps", HourOnes, 9, 0, 0},
		{"minute tens wraps after 5", MinuteTens, 5, 0, 0},
		{"minute tens 4", MinuteTens, 4, 0, 5},
		{"minute ones wraps after 9", MinuteOnes, 9, 0, 0},
		{"second tens wraps after 5", SecondTens, 5, 0, 0},
		{"second ones 0", SecondOnes, 0, 0, 1},
		{"sibling ignored outside hour ones", SecondOnes, 3, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDigit(tt.kind, tt.v, tt.sibling)
			if err != nil {
				t.Fatalf("NextDigit() = %v", err)
			}
			if got != tt.want {
				t.Errorf("NextDigit(%v, %d, %d) = %d, want %d", tt.kind, tt.v, tt.sibling, got, tt.want)
			}
		})
	}
}

func TestNextDigit_InvalidDigit(t *testing.T) {
	for _, v := range []int{-1, 10} {
		if _, err := NextDigit(MinuteOnes, v, 0); !errors.Is(err, ErrInvalidDigit) {
			t.Errorf("NextDigit(%d) error = %v, want ErrInvalidDigit", v, err)
		}
	}
}
