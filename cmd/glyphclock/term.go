package main

import (
	"context"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glyphclock"
	"github.com/gogpu/glyphclock/clock"
	"github.com/gogpu/glyphclock/raster"
)

// terminal presents frames with half-block cells: each cell shows two
// vertically stacked pixels, the upper one as foreground.
type terminal struct {
	screen tcell.Screen
	cells  *image.RGBA
}

func newTerminal() (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return &terminal{screen: screen}, nil
}

func (t *terminal) close() {
	t.screen.Fini()
}

// pixelSize returns the terminal size in half-block pixels.
func (t *terminal) pixelSize() image.Point {
	w, h := t.screen.Size()
	return image.Pt(w, 2*h)
}

// fitDigit returns the largest digit size whose face fits px with a margin
// of a quarter digit.
func fitDigit(px image.Point) int {
	// width = 6d + 3d/4, height = d + d/2
	d := min(px.X*4/27, px.Y*2/3)
	return max(d, 4)
}

func (t *terminal) present(frame *image.RGBA) error {
	px := t.pixelSize()
	if px.X == 0 || px.Y == 0 {
		return nil
	}
	if t.cells == nil || t.cells.Bounds().Size() != px {
		t.cells = image.NewRGBA(image.Rectangle{Max: px})
	}
	xdraw.Draw(t.cells, t.cells.Bounds(), image.NewUniform(raster.Background), image.Point{}, xdraw.Src)

	// Fit the frame keeping its aspect ratio, centered.
	fs := frame.Bounds().Size()
	w, h := px.X, fs.Y*px.X/fs.X
	if h > px.Y {
		w, h = fs.X*px.Y/fs.Y, px.Y
	}
	off := image.Pt((px.X-w)/2, (px.Y-h)/2)
	dst := image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))}
	if dst.Size() == fs {
		xdraw.Draw(t.cells, dst, frame, frame.Bounds().Min, xdraw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(t.cells, dst, frame, frame.Bounds(), xdraw.Src, nil)
	}

	for cy := 0; cy < px.Y/2; cy++ {
		for x := 0; x < px.X; x++ {
			top := t.cells.RGBAAt(x, 2*cy)
			bottom := t.cells.RGBAAt(x, 2*cy+1)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			t.screen.SetContent(x, cy, '▀', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// watch cancels ctx on a mouse click, Esc, Ctrl-C or q.
func (t *terminal) watch(cancel context.CancelFunc) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				cancel()
				return
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				cancel()
				return
			}
		}
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func runTerminal(opts []clock.FaceOption, size, margin int, withChime bool) error {
	term, err := newTerminal()
	if err != nil {
		return err
	}
	defer term.close()

	if size <= 0 {
		size = fitDigit(term.pixelSize())
	}
	opts = append(opts,
		clock.WithDigitSize(size, size),
		clock.WithMargin(faceMargin(margin, size)))

	face, err := clock.NewFace(opts...)
	if err != nil {
		return err
	}

	var ch *chime
	if withChime {
		// Non-fatal, the clock runs without sound.
		if ch, err = newChime(); err != nil {
			glyphclock.Logger().Warn("audio unavailable, running without chime", "err", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go term.watch(cancel)

	wasChanging := false
	return face.Run(ctx, func(frame *image.RGBA) error {
		if changing := face.Changing(); changing != wasChanging {
			if changing {
				ch.play()
			}
			wasChanging = changing
		}
		return term.present(frame)
	})
}
