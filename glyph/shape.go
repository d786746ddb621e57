// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import (
	"math"

	"github.com/gogpu/glyphclock/geom"
)

const (
	// DigitCount is the number of glyphs in a library.
	DigitCount = 10

	// SegmentCount is the number of chained cubic segments in a glyph.
	SegmentCount = 4
)

// Shape is the outline of one digit: an anchor point followed by four cubic
// segments. Each segment lists only its last three control points; its first
// control point is the anchor (segment 0) or the previous segment's end.
//
// Shape is made of arrays, so assigning or passing a Shape copies it.
type Shape struct {
	Anchor   geom.Point
	Segments [SegmentCount][3]geom.Point
}

// Start returns the first control point of segment i.
func (s Shape) Start(i int) geom.Point {
	if i == 0 {
		return s.Anchor
	}
	return s.Segments[i-1][2]
}

// Segment returns segment i as a full cubic curve.
func (s Shape) Segment(i int) geom.CubicBez {
	p := s.Segments[i]
	return geom.NewCubicBez(s.Start(i), p[0], p[1], p[2])
}

// Add returns the point-wise sum of two shapes.
func (s Shape) Add(o Shape) Shape {
	return s.zip(o, geom.Point.Add)
}

// Sub returns the point-wise difference of two shapes.
func (s Shape) Sub(o Shape) Shape {
	return s.zip(o, geom.Point.Sub)
}

// Div divides every point by n.
func (s Shape) Div(n float64) Shape {
	return s.each(func(p geom.Point) geom.Point { return p.Div(n) })
}

// Scale scales every point independently on each axis.
func (s Shape) Scale(sx, sy float64) Shape {
	return s.each(func(p geom.Point) geom.Point { return p.Scale(sx, sy) })
}

// ApproxEqual reports whether every point of s is within eps of the
// matching point of o.
func (s Shape) ApproxEqual(o Shape, eps float64) bool {
	if !s.Anchor.ApproxEqual(o.Anchor, eps) {
		return false
	}
	for i := range s.Segments {
		for j := range s.Segments[i] {
			if !s.Segments[i][j].ApproxEqual(o.Segments[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// Bounds returns the bounding box of the control polygon. The curve itself
// lies inside it.
func (s Shape) Bounds() (lo, hi geom.Point) {
	lo, hi = s.Anchor, s.Anchor
	for _, pts := range s.Segments {
		for _, p := range pts {
			lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
			hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}

func (s Shape) each(f func(geom.Point) geom.Point) Shape {
	s.Anchor = f(s.Anchor)
	for i := range s.Segments {
		for j := range s.Segments[i] {
			s.Segments[i][j] = f(s.Segments[i][j])
		}
	}
	return s
}

func (s Shape) zip(o Shape, f func(geom.Point, geom.Point) geom.Point) Shape {
	s.Anchor = f(s.Anchor, o.Anchor)
	for i := range s.Segments {
		for j := range s.Segments[i] {
			s.Segments[i][j] = f(s.Segments[i][j], o.Segments[i][j])
		}
	}
	return s
}
