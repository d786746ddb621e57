// Package glyphclock renders clock digits by morphing vector glyphs.
//
// # Overview
//
// Every digit 0-9 is an outline of four chained cubic Bezier segments (see
// package glyph). A Slot shows one digit in its own pixmap and, when told to
// change, interpolates the control points from the current outline to the
// next one over a fixed number of frames. Each frame the outline is sampled
// with de Casteljau's algorithm (package geom) and the samples are joined
// with Bresenham lines (package raster).
//
// # Quick Start
//
//	lib, err := glyph.NewLibrary(200, 200)
//	if err != nil {
//	    return err
//	}
//	slot, err := glyphclock.NewSlot(glyphclock.SecondOnes, lib, 7)
//	if err != nil {
//	    return err
//	}
//	pm, _ := slot.Advance() // frame 0 of 7 -> 8
//	for slot.State() == glyphclock.StateTransitioning {
//	    pm, _ = slot.AdvanceFrame()
//	}
//	_ = pm.SavePNG("eight.png")
//
// # Clock Faces
//
// Package clock drives six slots from the wall clock and composites their
// pixmaps into one frame. The core in this package never reads the time,
// blocks, or starts goroutines: callers tick it.
//
// # Coordinate System
//
// Origin (0,0) at the top-left of a slot's pixmap, X increases right, Y
// increases down. Curves that overshoot the pixmap are clipped.
package glyphclock
