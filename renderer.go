package glyphclock

import (
	"image"

	"github.com/gogpu/glyphclock/geom"
	"github.com/gogpu/glyphclock/glyph"
	"github.com/gogpu/glyphclock/raster"
)

// Renderer draws glyph outlines into pixmaps. Each segment is sampled at a
// fixed number of points and consecutive samples are joined with Bresenham
// lines.
//
// A Renderer reuses a scratch buffer and is not safe for concurrent use.
type Renderer struct {
	samples int
	scratch []image.Point
}

// NewRenderer creates a renderer sampling each segment at samples points.
// Values below 2 fall back to geom.DefaultSamples.
func NewRenderer(samples int) *Renderer {
	if samples < 2 {
		samples = geom.DefaultSamples
	}
	return &Renderer{
		samples: samples,
		scratch: make([]image.Point, 0, samples),
	}
}

// Samples returns the number of points sampled per segment.
func (r *Renderer) Samples() int {
	return r.samples
}

// Render clears dst to the background and draws the four segments of s.
// The whole pixmap is overwritten.
func (r *Renderer) Render(s glyph.Shape, dst *raster.Pixmap) {
	dst.Clear(raster.Background)
	for i := 0; i < glyph.SegmentCount; i++ {
		r.scratch = s.Segment(i).AppendSamples(r.scratch[:0], r.samples)
		raster.DrawPolyline(dst, r.scratch, raster.Foreground)
	}
}
