// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"sort"
	"testing"
)

// lit returns the foreground pixels of pm in row-major order.
func lit(pm *Pixmap) []image.Point {
	var pts []image.Point
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y) == Foreground {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

func sortPoints(pts []image.Point) []image.Point {
	out := append([]image.Point(nil), pts...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func samePoints(t *testing.T, got, want []image.Point) {
	t.Helper()
	got, want = sortPoints(got), sortPoints(want)
	if len(got) != len(want) {
		t.Fatalf("lit %d pixels %v, want %d pixels %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("lit pixels %v, want %v", got, want)
		}
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{
			name: "horizontal",
			x0:   0, y0: 0, x1: 5, y1: 0,
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name: "horizontal reversed",
			x0:   5, y0: 0, x1: 0, y1: 0,
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name: "diagonal",
			x0:   0, y0: 0, x1: 5, y1: 5,
			want: []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}},
		},
		{
			name: "anti-diagonal",
			x0:   0, y0: 5, x1: 5, y1: 0,
			want: []image.Point{{0, 5}, {1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}},
		},
		{
			name: "vertical",
			x0:   2, y0: 6, x1: 2, y1: 1,
			want: []image.Point{{2, 1}, {2, 2}, {2, 3}, {2, 4}, {2, 5}, {2, 6}},
		},
		{
			name: "steep",
			x0:   0, y0: 0, x1: 1, y1: 5,
			want: []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}, {1, 5}},
		},
		{
			name: "shallow",
			x0:   0, y0: 0, x1: 5, y1: 1,
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 1}},
		},
		{
			name: "single point",
			x0:   3, y0: 4, x1: 3, y1: 4,
			want: []image.Point{{3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(10, 10)
			DrawLine(pm, tt.x0, tt.y0, tt.x1, tt.y1, Foreground)
			samePoints(t, lit(pm), tt.want)
		})
	}
}

func TestDrawLine_ClipsOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)

	// Must not panic; only the in-bounds part of the diagonal is drawn.
	DrawLine(pm, -10, -10, 20, 20, Foreground)

	want := make([]image.Point, 0, 10)
	for i := 0; i < 10; i++ {
		want = append(want, image.Pt(i, i))
	}
	samePoints(t, lit(pm), want)
}

func TestDrawLine_FullyOutside(t *testing.T) {
	pm := NewPixmap(10, 10)
	original := pm.Clone()

	DrawLine(pm, -5, -1, -1, -20, Foreground)
	DrawLine(pm, 10, 0, 30, 9, Foreground)
	DrawLine(pm, 0, 10, 9, 40, Foreground)

	for i, v := range pm.Data() {
		if v != original.Data()[i] {
			t.Fatalf("out-of-bounds line modified data at index %d", i)
		}
	}
}

func TestDrawPolyline(t *testing.T) {
	pm := NewPixmap(10, 10)
	DrawPolyline(pm, []image.Point{{0, 0}, {3, 0}, {3, 2}}, Foreground)

	samePoints(t, lit(pm), []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}})
}

func TestDrawPolyline_Degenerate(t *testing.T) {
	pm := NewPixmap(4, 4)
	DrawPolyline(pm, nil, Foreground)
	DrawPolyline(pm, []image.Point{{1, 1}}, Foreground)

	if got := lit(pm); len(got) != 0 {
		t.Errorf("polyline with fewer than two points lit %v", got)
	}
}

func BenchmarkDrawLine(b *testing.B) {
	pm := NewPixmap(201, 201)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DrawLine(pm, 3, 190, 180, 12, Foreground)
	}
}
