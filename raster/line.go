// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
)

// DrawLine draws a one pixel wide line from (x0, y0) to (x1, y1) inclusive
// using Bresenham's integer algorithm.
//
// The longer axis is iterated in increasing order. The error term grows by
// the short-axis delta each step, and the short coordinate moves one pixel
// toward the end point whenever 2*err >= dx. A zero-length line plots a
// single pixel.
func DrawLine(dst *Pixmap, x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)

	steep := dy > dx
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		dx, dy = dy, dx
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	sy := -1
	if y1 > y0 {
		sy = 1
	}

	err := 0
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			dst.SetPixel(y, x, c)
		} else {
			dst.SetPixel(x, y, c)
		}
		err += dy
		if 2*err >= dx {
			y += sy
			err -= dx
		}
	}
}

// DrawPolyline joins consecutive points with DrawLine.
func DrawPolyline(dst *Pixmap, pts []image.Point, c color.RGBA) {
	for i := 1; i < len(pts); i++ {
		DrawLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
