package clock

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphclock/raster"
)

var captionFace = basicfont.Face7x13

// captionRect returns the band below the digits that holds the caption.
func (f *Face) captionRect() image.Rectangle {
	top := f.margin + f.digitSize.Y
	return image.Rect(0, top, f.frame.Bounds().Dx(), f.frame.Bounds().Dy())
}

// drawCaption writes the sampled time centered in the bottom margin.
func (f *Face) drawCaption() {
	if !f.caption {
		return
	}
	band := f.captionRect()
	xdraw.Draw(f.frame, band, image.NewUniform(raster.Background), image.Point{}, xdraw.Src)

	text := f.sample.String()
	width := font.MeasureString(captionFace, text).Ceil()
	metrics := captionFace.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	x := band.Min.X + (band.Dx()-width)/2
	y := band.Min.Y + (band.Dy()-height)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  f.frame,
		Src:  image.NewUniform(raster.Foreground),
		Face: captionFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
