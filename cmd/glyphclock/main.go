// Command glyphclock shows a clock whose digits morph into one another.
//
// In the default terminal mode the clock follows the wall clock until a
// mouse click, Esc, Ctrl-C or q. Export mode renders a stretch of time on a
// simulated clock to an animated GIF or a still image:
//
//	glyphclock -mode export -start 23:59:57 -seconds 5 -o midnight.gif
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glyphclock"
	"github.com/gogpu/glyphclock/clock"
	"github.com/gogpu/glyphclock/geom"
)

func main() {
	var (
		mode    = flag.String("mode", "term", "term or export")
		size    = flag.Int("size", 0, "digit size in pixels (0 fits the terminal, or 200 for export)")
		margin  = flag.Int("margin", -1, "blank border in pixels (-1 for a quarter of the digit size)")
		steps   = flag.Int("steps", glyphclock.DefaultTotalSteps, "frames per digit transition")
		samples = flag.Int("samples", geom.DefaultSamples, "points sampled per Bezier segment")
		caption = flag.Bool("caption", false, "draw an HH:MM:SS caption under the digits")
		chime   = flag.Bool("chime", false, "tick when digits start morphing (term mode)")
		verbose = flag.Bool("v", false, "enable debug logging")
		logPath = flag.String("log", "", "log file (term mode is silent without one)")
		output  = flag.String("o", "glyphclock.gif", "export file: .gif, .png, .bmp or .tiff")
		start   = flag.String("start", "", "export start time HH:MM:SS (default now)")
		seconds = flag.Int("seconds", 5, "export length in simulated seconds")
		fps     = flag.Int("fps", 25, "export frames per second")
		scale   = flag.Float64("scale", 1, "export scale factor")
	)
	flag.Parse()

	closeLog := setupLogging(*mode, *logPath, *verbose)
	defer closeLog()

	opts := []clock.FaceOption{
		clock.WithTotalSteps(*steps),
		clock.WithSamples(*samples),
		clock.WithCaption(*caption),
	}

	switch *mode {
	case "term":
		if err := runTerminal(opts, *size, *margin, *chime); err != nil {
			log.Fatalf("Terminal clock failed: %v", err)
		}
	case "export":
		cfg := exportConfig{
			path:    *output,
			start:   *start,
			seconds: *seconds,
			fps:     *fps,
			scale:   *scale,
			size:    *size,
			margin:  *margin,
		}
		if err := runExport(opts, cfg); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
	default:
		log.Fatalf("Unknown mode %q (want term or export)", *mode)
	}
}

// setupLogging routes library logs. The terminal UI owns stdout and stderr,
// so term mode only logs to a file.
func setupLogging(mode, path string, verbose bool) func() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		w = f
		log.SetOutput(f)
		closer = func() { _ = f.Close() }
	case mode == "term":
		return closer
	}

	glyphclock.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer
}

// faceMargin returns the margin for a digit size when the flag asks for
// the default.
func faceMargin(flagValue, digit int) int {
	if flagValue >= 0 {
		return flagValue
	}
	return digit / 4
}
