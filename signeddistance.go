package msdf

import "math"

// SignedDistance pairs a signed distance with a secondary ordering key
// (the cosine of the angle between the nearest edge's tangent and the ray
// to the query point) used to break ties between candidates of equal
// magnitude, e.g. two edges meeting exactly at a shared corner.
type SignedDistance struct {
	Distance float64
	Dot      float64
}

// Infinite is the sentinel SignedDistance no real edge distance can
// exceed in magnitude, used to seed a "best candidate so far" search.
var Infinite = SignedDistance{Distance: -1e240, Dot: 1}

// Less reports whether a is a better (closer, or equally close but
// better-oriented) candidate than b.
func (a SignedDistance) Less(b SignedDistance) bool {
	ad, bd := math.Abs(a.Distance), math.Abs(b.Distance)
	if ad != bd {
		return ad < bd
	}
	return a.Dot < b.Dot
}

// MultiDistance is the three-channel distance recorded for a pixel before
// it is reduced to a single value via its median.
type MultiDistance struct {
	R, G, B float64
}

// Median returns the median of the three channel distances, i.e. the
// value that reconstructs the true distance away from corners.
func (m MultiDistance) Median() float64 {
	return median3(m.R, m.G, m.B)
}
