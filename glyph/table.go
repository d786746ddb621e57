// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyph

import "github.com/gogpu/glyphclock/geom"

// ReferenceSize is the side of the square coordinate space the reference
// outlines are authored in.
const ReferenceSize = 509

// seg builds the three points a segment adds after its start point.
func seg(x1, y1, x2, y2, x3, y3 float64) [3]geom.Point {
	return [3]geom.Point{geom.Pt(x1, y1), geom.Pt(x2, y2), geom.Pt(x3, y3)}
}

// reference holds the hand-authored outlines. It is never modified: every
// Library scales its own copy.
var reference = [DigitCount]Shape{
	0: {
		Anchor: geom.Pt(254, 47),
		Segments: [SegmentCount][3]geom.Point{
			seg(159, 84, 123, 158, 131, 258),
			seg(139, 358, 167, 445, 256, 446),
			seg(345, 447, 369, 349, 369, 275),
			seg(369, 201, 365, 81, 231, 75),
		},
	},
	1: {
		Anchor: geom.Pt(138, 180),
		Segments: [SegmentCount][3]geom.Point{
			seg(226, 99, 230, 58, 243, 43),
			seg(256, 28, 252, 100, 253, 167),
			seg(254, 234, 254, 194, 255, 303),
			seg(256, 412, 254, 361, 255, 424),
		},
	},
	2: {
		Anchor: geom.Pt(104, 111),
		Segments: [SegmentCount][3]geom.Point{
			seg(152, 55, 208, 26, 271, 50),
			seg(334, 74, 360, 159, 336, 241),
			seg(312, 323, 136, 454, 120, 405),
			seg(104, 356, 327, 393, 373, 414),
		},
	},
	3: {
		Anchor: geom.Pt(96, 132),
		Segments: [SegmentCount][3]geom.Point{
			seg(113, 14, 267, 17, 311, 107),
			seg(355, 197, 190, 285, 182, 250),
			seg(174, 215, 396, 273, 338, 388),
			seg(280, 503, 110, 445, 93, 391),
		},
	},
	4: {
		Anchor: geom.Pt(374, 244),
		Segments: [SegmentCount][3]geom.Point{
			seg(249, 230, 192, 234, 131, 239),
			seg(70, 244, 142, 138, 192, 84),
			seg(242, 30, 283, -30, 260, 108),
			seg(237, 246, 246, 435, 247, 438),
		},
	},
	5: {
		Anchor: geom.Pt(340, 52),
		Segments: [SegmentCount][3]geom.Point{
			seg(226, 42, 153, 44, 144, 61),
			seg(135, 78, 145, 203, 152, 223),
			seg(159, 243, 351, 165, 361, 302),
			seg(371, 439, 262, 452, 147, 409),
		},
	},
	6: {
		Anchor: geom.Pt(301, 26),
		Segments: [SegmentCount][3]geom.Point{
			seg(191, 104, 160, 224, 149, 296),
			seg(138, 368, 163, 451, 242, 458),
			seg(321, 465, 367, 402, 348, 321),
			seg(329, 240, 220, 243, 168, 285),
		},
	},
	7: {
		Anchor: geom.Pt(108, 52),
		Segments: [SegmentCount][3]geom.Point{
			seg(168, 34, 245, 42, 312, 38),
			seg(379, 34, 305, 145, 294, 166),
			seg(283, 187, 243, 267, 231, 295),
			seg(219, 323, 200, 388, 198, 452),
		},
	},
	8: {
		Anchor: geom.Pt(243, 242),
		Segments: [SegmentCount][3]geom.Point{
			seg(336, 184, 353, 52, 240, 43),
			seg(127, 34, 143, 215, 225, 247),
			seg(307, 279, 403, 427, 248, 432),
			seg(93, 437, 124, 304, 217, 255),
		},
	},
	9: {
		Anchor: geom.Pt(322, 105),
		Segments: [SegmentCount][3]geom.Point{
			seg(323, 6, 171, 33, 151, 85),
			seg(131, 137, 161, 184, 219, 190),
			seg(277, 196, 346, 149, 322, 122),
			seg(298, 95, 297, 365, 297, 448),
		},
	},
}
