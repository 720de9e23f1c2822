package msdf

import (
	"math"

	"github.com/aurelien-rainone/assertgo"
)

// ColorEdgesSimple assigns each edge of every contour in shape a
// Red/Green/Blue label (via the Cyan/Magenta/Yellow two-channel
// combinations) such that every detected corner is a color change and
// every pair of non-corner neighbouring edges still shares at least two
// channels, letting the per-channel median reconstruct sharp corners.
// angleThreshold is in radians; seed perturbs which of the three starting
// colors a contour (or a sequence of corners) begins with, so that
// adjacent contours of a multi-contour shape don't all pick up the same
// rotation.
func ColorEdgesSimple(shape *Shape, angleThreshold float64, seed uint64) {
	crossThreshold := math.Sin(angleThreshold)
	for _, contour := range shape.Contours {
		colorContour(contour, crossThreshold, &seed)
	}
}

func colorContour(contour *Contour, crossThreshold float64, seed *uint64) {
	n := len(contour.Edges)
	if n == 0 {
		return
	}

	var corners []int
	prevDir := contour.Edges[n-1].Direction(1).Normalize()
	for i := range contour.Edges {
		dir := contour.Edges[i].Direction(0).Normalize()
		if isCorner(prevDir, dir, crossThreshold) {
			corners = append(corners, i)
		}
		prevDir = contour.Edges[i].Direction(1).Normalize()
	}

	switch len(corners) {
	case 0:
		for i := range contour.Edges {
			contour.Edges[i].Color = ColorWhite
		}
	case 1:
		colorTeardrop(contour, corners[0], seed)
	default:
		colorMultiCorner(contour, corners, seed)
	}
}

func isCorner(prevDir, dir Vector2, crossThreshold float64) bool {
	return prevDir.Dot(dir) <= 0 || math.Abs(prevDir.Cross(dir)) > crossThreshold
}

// colorTeardrop handles a contour with exactly one detected corner: the
// edges form a single smooth arc save for one sharp point, so the arc is
// split into three spans colored start/white/end. A contour with fewer
// than three edges is first split into thirds so there is enough
// material for the three spans; the split pieces are placed so the
// corner lands between the first and last span.
func colorTeardrop(contour *Contour, corner int, seed *uint64) {
	colorA := switchColor(ColorWhite, seed, ColorBlack)
	colorB := switchColor(colorA, seed, ColorBlack)
	colors := [3]EdgeColor{colorA, ColorWhite, colorB}

	if len(contour.Edges) >= 3 {
		colorByMagic(contour, corner, colors)
		return
	}

	assert.True(corner == 0 || corner == 1, "teardrop corner index must be 0 or 1 for a short contour, got %d", corner)
	var parts [6]EdgeSegment
	parts[0+3*corner], parts[1+3*corner], parts[2+3*corner] = contour.Edges[0].SplitInThirds()
	if len(contour.Edges) >= 2 {
		parts[3-3*corner], parts[4-3*corner], parts[5-3*corner] = contour.Edges[1].SplitInThirds()
		parts[0].Color, parts[1].Color = colors[0], colors[0]
		parts[2].Color, parts[3].Color = colors[1], colors[1]
		parts[4].Color, parts[5].Color = colors[2], colors[2]
		contour.Edges = append(contour.Edges[:0], parts[:]...)
	} else {
		parts[0].Color, parts[1].Color, parts[2].Color = colors[0], colors[1], colors[2]
		contour.Edges = append(contour.Edges[:0], parts[:3]...)
	}
}

func colorByMagic(contour *Contour, corner int, colors [3]EdgeColor) {
	m := len(contour.Edges)
	for i := 0; i < m; i++ {
		contour.Edges[(corner+i)%m].Color = colors[magic(i, m)+1]
	}
}

// magic maps edge index j of m edges, walking forward from a teardrop's
// corner, onto one of three offsets {-1, 0, +1} selecting the start
// color, white, or the end color, with the white span centered in the
// middle of the walk.
func magic(j, m int) int {
	return int(3+2.875*float64(j)/float64(m-1)-1.4375+0.5) - 3
}

func colorMultiCorner(contour *Contour, corners []int, seed *uint64) {
	n := len(contour.Edges)
	start := corners[0]
	color := switchColor(ColorWhite, seed, ColorBlack)
	initialColor := color
	spline := 0
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if spline+1 < len(corners) && corners[spline+1] == idx {
			spline++
			banned := ColorBlack
			if spline == len(corners)-1 {
				banned = initialColor
			}
			color = switchColor(color, seed, banned)
		}
		contour.Edges[idx].Color = color
	}
}

// switchColor advances to the next of the three available two-channel
// colors (cyan, magenta, yellow), cycling through seed-derived starting
// points and rotating channels on repeat calls. If color and banned share
// exactly one channel, that shared channel is excluded outright rather
// than merely avoided by a fallback pick.
func switchColor(color EdgeColor, seed *uint64, banned EdgeColor) EdgeColor {
	combined := color & banned
	if combined == ColorRed || combined == ColorGreen || combined == ColorBlue {
		return combined ^ ColorWhite
	}
	if color == ColorBlack || color == ColorWhite {
		start := [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}
		c := start[*seed%3]
		*seed /= 3
		return c
	}
	shifted := EdgeColor(uint8(color) << (1 + *seed&1))
	next := EdgeColor((uint8(shifted) | uint8(shifted)>>3) & uint8(ColorWhite))
	*seed >>= 1
	return next
}
