// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"
)

func TestNewPixmap_Background(t *testing.T) {
	pm := NewPixmap(3, 2)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 3*2*4 {
		t.Fatalf("len(Data) = %d, want %d", len(pm.Data()), 3*2*4)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); got != Background {
				t.Errorf("pixel (%d, %d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestNewPixmap_NegativeSize(t *testing.T) {
	pm := NewPixmap(-1, 5)
	if pm.Width() != 0 || len(pm.Data()) != 0 {
		t.Errorf("negative width produced %dx%d with %d bytes", pm.Width(), pm.Height(), len(pm.Data()))
	}
}

func TestPixmap_SetPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	original := pm.Clone()

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Foreground)
		if got := pm.GetPixel(c.x, c.y); got != (color.RGBA{}) {
			t.Errorf("GetPixel(%d, %d) = %v, want zero color", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original.Data()[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original.Data()[i])
		}
	}
}

func TestPixmap_ClearAndCopy(t *testing.T) {
	a := NewPixmap(4, 4)
	a.SetPixel(1, 2, Foreground)

	b := NewPixmap(4, 4)
	if !b.CopyFrom(a) {
		t.Fatal("CopyFrom returned false for equal sizes")
	}
	if got := b.GetPixel(1, 2); got != Foreground {
		t.Errorf("copied pixel = %v, want foreground", got)
	}

	b.Clear(Background)
	if got := b.GetPixel(1, 2); got != Background {
		t.Errorf("cleared pixel = %v, want background", got)
	}
	if got := a.GetPixel(1, 2); got != Foreground {
		t.Error("clearing the copy changed the source")
	}

	if NewPixmap(3, 4).CopyFrom(a) {
		t.Error("CopyFrom accepted a pixmap of a different size")
	}
}

func TestPixmap_DrawImage(t *testing.T) {
	pm := NewPixmap(4, 4)
	var _ draw.Image = pm

	draw.Draw(pm, image.Rect(1, 1, 3, 3), image.NewUniform(Foreground), image.Point{}, draw.Src)

	if got := len(lit(pm)); got != 4 {
		t.Errorf("draw.Draw lit %d pixels, want 4", got)
	}
	if got := pm.At(2, 2); got != Foreground {
		t.Errorf("At(2, 2) = %v, want foreground", got)
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(5, 3)
	pm.SetPixel(4, 2, Foreground)

	img := pm.ToImage()
	if img.Bounds() != pm.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), pm.Bounds())
	}
	if got := img.RGBAAt(4, 2); got != Foreground {
		t.Errorf("RGBAAt(4, 2) = %v, want foreground", got)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	DrawLine(pm, 0, 0, 7, 7, Foreground)

	path := filepath.Join(t.TempDir(), "line.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
}
