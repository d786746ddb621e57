// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyph holds the vector outlines of the digits 0-9 and scales them
// to a render size.
//
// Each digit is an anchor point followed by four C0-continuous cubic Bezier
// segments, authored in a ReferenceSize x ReferenceSize space. A Library owns
// its own scaled copy of every outline; nothing is shared between libraries.
package glyph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit is returned when a digit outside 0-9 is requested.
	ErrInvalidDigit = errors.New("glyph: invalid digit")

	// ErrInvalidSize is returned when a library is created for a zero or
	// negative render size.
	ErrInvalidSize = errors.New("glyph: invalid render size")
)

// Library is a set of digit outlines scaled to one render size.
// It is immutable after construction.
type Library struct {
	width  int
	height int
	shapes [DigitCount]Shape
}

// NewLibrary scales the reference outlines to width x height. The x axis is
// scaled by width and the y axis by height.
func NewLibrary(width, height int) (*Library, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	sx := float64(width) / ReferenceSize
	sy := float64(height) / ReferenceSize

	l := &Library{width: width, height: height}
	for d, s := range reference {
		l.shapes[d] = s.Scale(sx, sy)
	}
	return l, nil
}

// Width returns the render width the library was scaled to.
func (l *Library) Width() int {
	return l.width
}

// Height returns the render height the library was scaled to.
func (l *Library) Height() int {
	return l.height
}

// Shape returns a copy of the scaled outline of digit d.
func (l *Library) Shape(d int) (Shape, error) {
	if err := CheckDigit(d); err != nil {
		return Shape{}, err
	}
	return l.shapes[d], nil
}

// Reference returns a copy of the unscaled outline of digit d.
func Reference(d int) (Shape, error) {
	if err := CheckDigit(d); err != nil {
		return Shape{}, err
	}
	return reference[d], nil
}

// CheckDigit returns ErrInvalidDigit unless 0 <= d <= 9.
func CheckDigit(d int) error {
	if d < 0 || d >= DigitCount {
		return fmt.Errorf("%w: %d", ErrInvalidDigit, d)
	}
	return nil
}
