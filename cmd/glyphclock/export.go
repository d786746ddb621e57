package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/glyphclock/clock"
	"github.com/gogpu/glyphclock/raster"
)

var errBadExport = errors.New("invalid export settings")

// exportConfig holds the export mode flags.
type exportConfig struct {
	path    string
	start   string
	seconds int
	fps     int
	scale   float64
	size    int
	margin  int
}

// gifPalette holds the only two colors a face ever draws.
var gifPalette = color.Palette{raster.Background, raster.Foreground}

// runExport drives a face on a fake clock and writes the result.
func runExport(opts []clock.FaceOption, cfg exportConfig) error {
	if cfg.seconds < 1 || cfg.fps < 1 || cfg.fps > 100 || cfg.scale <= 0 {
		return fmt.Errorf("%w: seconds=%d fps=%d scale=%v", errBadExport, cfg.seconds, cfg.fps, cfg.scale)
	}
	encode, err := encoderFor(cfg.path)
	if err != nil {
		return err
	}

	now := time.Now()
	if cfg.start != "" {
		s, err := clock.ParseSample(cfg.start)
		if err != nil {
			return err
		}
		now = time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, s.Second, 0, time.Local)
	}
	fc := clockwork.NewFakeClockAt(now)

	size := cfg.size
	if size <= 0 {
		size = clock.DefaultDigitSize
	}
	interval := time.Second / time.Duration(cfg.fps)
	opts = append(opts,
		clock.WithClock(fc),
		clock.WithInterval(interval),
		clock.WithDigitSize(size, size),
		clock.WithMargin(faceMargin(cfg.margin, size)))

	face, err := clock.NewFace(opts...)
	if err != nil {
		return err
	}

	anim := &gif.GIF{}
	delay := 100 / cfg.fps
	add := func(frame *image.RGBA) {
		img := scaled(frame, cfg.scale)
		if n := len(anim.Image); n > 0 && samePixels(anim.Image[n-1], img) {
			anim.Delay[n-1] += delay
			return
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}

	add(face.Frame())
	for i := 0; i < cfg.seconds*cfg.fps; i++ {
		fc.Advance(interval)
		frame, err := face.Tick()
		if err != nil {
			return err
		}
		add(frame)
	}

	f, err := os.Create(cfg.path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := encode(f, anim); err != nil {
		return fmt.Errorf("encode %s: %w", cfg.path, err)
	}

	b := anim.Image[0].Bounds()
	log.Printf("Clock saved to %s (%d frames, %dx%d, ends %s)\n", cfg.path, len(anim.Image), b.Dx(), b.Dy(), face.Sample())
	return nil
}

// encoderFor picks the encoder from the file extension. Still formats get
// the last frame.
func encoderFor(path string) (func(io.Writer, *gif.GIF) error, error) {
	last := func(g *gif.GIF) image.Image { return g.Image[len(g.Image)-1] }

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gif":
		return gif.EncodeAll, nil
	case ".png":
		return func(w io.Writer, g *gif.GIF) error { return png.Encode(w, last(g)) }, nil
	case ".bmp":
		return func(w io.Writer, g *gif.GIF) error { return bmp.Encode(w, last(g)) }, nil
	case ".tif", ".tiff":
		return func(w io.Writer, g *gif.GIF) error { return tiff.Encode(w, last(g), nil) }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported output format %q", errBadExport, ext)
	}
}

// scaled converts a frame to the two color palette, resizing it when
// factor is not 1.
func scaled(frame *image.RGBA, factor float64) *image.Paletted {
	src := frame.Bounds()
	w := max(int(float64(src.Dx())*factor), 1)
	h := max(int(float64(src.Dy())*factor), 1)

	img := image.NewPaletted(image.Rect(0, 0, w, h), gifPalette)
	if w == src.Dx() && h == src.Dy() {
		xdraw.Draw(img, img.Bounds(), frame, src.Min, xdraw.Src)
		return img
	}
	xdraw.NearestNeighbor.Scale(img, img.Bounds(), frame, src, xdraw.Src, nil)
	return img
}

func samePixels(a, b *image.Paletted) bool {
	return a.Bounds() == b.Bounds() && bytes.Equal(a.Pix, b.Pix)
}
