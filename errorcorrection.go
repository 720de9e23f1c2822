package msdf

import "math"

// clash reports whether two neighbouring MSDF samples a and b would decode
// to conflicting interior/exterior classifications once bilinearly
// interpolated. threshold is the minimum magnitude
// difference required on the two "majority" channels that cross 0.5
// between the pair before the pair is considered a real edge crossing
// rather than a channel-selection artefact.
func clash(a, b [3]float64, threshold float64) bool {
	insideA := count(a) >= 2
	insideB := count(b) >= 2
	if insideA != insideB {
		return false
	}
	if uniform(a) || uniform(b) {
		return false
	}

	// (R,G) majority, B minority.
	if (a[0] > 0.5) != (b[0] > 0.5) && (a[1] > 0.5) != (b[1] > 0.5) {
		if math.Abs(a[0]-b[0]) >= threshold && math.Abs(a[1]-b[1]) >= threshold &&
			math.Abs(a[2]-0.5) >= math.Abs(b[2]-0.5) {
			return true
		}
	}
	// (R,B) majority, G minority.
	if (a[0] > 0.5) != (b[0] > 0.5) && (a[2] > 0.5) != (b[2] > 0.5) {
		if math.Abs(a[0]-b[0]) >= threshold && math.Abs(a[2]-b[2]) >= threshold &&
			math.Abs(a[1]-0.5) >= math.Abs(b[1]-0.5) {
			return true
		}
	}
	// (G,B) majority, R minority.
	if (a[1] > 0.5) != (b[1] > 0.5) && (a[2] > 0.5) != (b[2] > 0.5) {
		if math.Abs(a[1]-b[1]) >= threshold && math.Abs(a[2]-b[2]) >= threshold &&
			math.Abs(a[0]-0.5) >= math.Abs(b[0]-0.5) {
			return true
		}
	}
	return false
}

func count(c [3]float64) int {
	n := 0
	if c[0] > 0.5 {
		n++
	}
	if c[1] > 0.5 {
		n++
	}
	if c[2] > 0.5 {
		n++
	}
	return n
}

func uniform(c [3]float64) bool {
	allAbove := c[0] > 0.5 && c[1] > 0.5 && c[2] > 0.5
	allBelow := c[0] < 0.5 && c[1] < 0.5 && c[2] < 0.5
	return allAbove || allBelow
}

// CorrectErrors scans the clipped region of pm for four-neighbour clashes
// and collapses every flagged pixel's (R, G, B) to (m, m, m) where m is
// their median, leaving any other channel (e.g. alpha) untouched. channels
// extracts the three MSDF channels of a pixel element as values already
// normalized to [0, 1]; collapse returns a copy of a pixel element with
// its R/G/B replaced by m.
//
// Detection runs over the whole region before any collapsing happens, so
// a correction never influences whether a neighbouring pair also clashes
// (detection and collapse are separate passes); CorrectErrors is consequently
// idempotent on an already-corrected pixmap. It returns the number of
// pixels corrected.
func CorrectErrors[T any](pm *Pixmap[T], region Region, threshold Vector2, channels func(T) (r, g, b float64), collapse func(p T, m float64) T) int {
	clipped := region.clip(pm.Width, pm.Height)
	if clipped.Width == 0 || clipped.Height == 0 {
		return 0
	}

	sample := func(x, y int) [3]float64 {
		r, g, b := channels(pm.At(x, y))
		return [3]float64{r, g, b}
	}

	flagged := make(map[int]bool)
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			here := sample(x, y)
			if x+1 < clipped.X+clipped.Width {
				right := sample(x+1, y)
				if clash(here, right, threshold.X) {
					flagged[pm.Index(x, y)] = true
					flagged[pm.Index(x+1, y)] = true
				}
			}
			if y+1 < clipped.Y+clipped.Height {
				below := sample(x, y+1)
				if clash(here, below, threshold.Y) {
					flagged[pm.Index(x, y)] = true
					flagged[pm.Index(x, y+1)] = true
				}
			}
		}
	}

	for idx := range flagged {
		x, y := idx%pm.Width, idx/pm.Width
		r, g, b := channels(pm.At(x, y))
		m := median3(r, g, b)
		pm.Pix[idx] = collapse(pm.At(x, y), m)
	}
	return len(flagged)
}

// RGBChannels and RGBCollapse adapt CorrectErrors to RGBF32.
func RGBChannels(p RGBF32) (r, g, b float64) { return float64(p.R), float64(p.G), float64(p.B) }
func RGBCollapse(p RGBF32, m float64) RGBF32 {
	p.R, p.G, p.B = float32(m), float32(m), float32(m)
	return p
}

// RGBAChannels and RGBACollapse adapt CorrectErrors to RGBAF32, preserving
// alpha.
func RGBAChannels(p RGBAF32) (r, g, b float64) { return float64(p.R), float64(p.G), float64(p.B) }
func RGBACollapse(p RGBAF32, m float64) RGBAF32 {
	p.R, p.G, p.B = float32(m), float32(m), float32(m)
	return p
}

// RGBU8Channels and RGBU8Collapse adapt CorrectErrors to the byte-packed
// three-channel element.
func RGBU8Channels(p RGBU8) (r, g, b float64) {
	return float64(p.R) / 255, float64(p.G) / 255, float64(p.B) / 255
}
func RGBU8Collapse(p RGBU8, m float64) RGBU8 {
	v := saturateByte(m)
	p.R, p.G, p.B = v, v, v
	return p
}

// RGBAU8Channels and RGBAU8Collapse adapt CorrectErrors to the byte-packed
// four-channel element, preserving alpha.
func RGBAU8Channels(p RGBAU8) (r, g, b float64) {
	return float64(p.R) / 255, float64(p.G) / 255, float64(p.B) / 255
}
func RGBAU8Collapse(p RGBAU8, m float64) RGBAU8 {
	v := saturateByte(m)
	p.R, p.G, p.B = v, v, v
	return p
}
