package geom

import "image"

// DefaultSamples is the number of points sampled per cubic segment when
// a glyph is rasterized.
const DefaultSamples = 20

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1) using de Casteljau's algorithm.
//
// Level j point i is (1-t)*P(i, j-1) + t*P(i+1, j-1), with level 0 being the
// control points. The blend is done in place over three levels.
func (c CubicBez) Eval(t float64) Point {
	p := [4]Point{c.P0, c.P1, c.P2, c.P3}
	for j := 1; j < len(p); j++ {
		for i := 0; i < len(p)-j; i++ {
			p[i] = p[i].Lerp(p[i+1], t)
		}
	}
	return p[0]
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Sample evaluates the curve at n parameters uniformly spaced over [0, 1]
// and returns the results truncated to pixel coordinates.
//
// Both endpoints are included when n >= 2. A single sample is taken at t=0.
// Sample returns nil for n <= 0.
func (c CubicBez) Sample(n int) []image.Point {
	return c.AppendSamples(nil, n)
}

// AppendSamples is like Sample but appends to dst, so a renderer can reuse
// one scratch slice across segments and frames.
func (c CubicBez) AppendSamples(dst []image.Point, n int) []image.Point {
	if n <= 0 {
		return dst
	}
	if n == 1 {
		return append(dst, c.P0.Trunc())
	}
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		dst = append(dst, c.Eval(float64(i)/last).Trunc())
	}
	return dst
}
