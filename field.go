package msdf

import "math"

// edgePoint tracks the best (closest, then best-oriented) candidate edge
// found so far while scanning a single color channel, either within one
// contour or across the whole shape.
type edgePoint struct {
	minDistance SignedDistance
	nearEdge    *EdgeSegment
	nearParam   float64
}

func newEdgePoint() edgePoint {
	return edgePoint{minDistance: Infinite}
}

// consider replaces the tracked candidate with (d, edge, t) if it is closer
// than the current best.
func (ep *edgePoint) consider(d SignedDistance, edge *EdgeSegment, t float64) {
	if d.Less(ep.minDistance) {
		ep.minDistance = d
		ep.nearEdge = edge
		ep.nearParam = t
	}
}

// pseudoDistance returns the channel's distance at query point p, promoted
// past its owning edge's endpoints via DistanceToPseudoDistance. It does
// not mutate ep; the promotion is recomputed fresh so repeated calls from
// different query points on a cached edgePoint are never an issue.
func (ep edgePoint) pseudoDistance(p Vector2) float64 {
	d := ep.minDistance
	if ep.nearEdge != nil {
		ep.nearEdge.DistanceToPseudoDistance(&d, p, ep.nearParam)
	}
	return d.Distance
}

// evaluateField computes the per-pixel MultiDistance for query point p
// against shape. windings must hold one entry per contour
// (Contour.Winding(), precomputed once per rasterization) and contourSD is
// per-rasterization scratch sized len(shape.Contours); both are reused
// across pixels but must not be shared between concurrently evaluated
// pixels (see the concurrency note on GenerateMSDF in generate.go).
func evaluateField(shape *Shape, windings []int, contourSD []MultiDistance, p Vector2) MultiDistance {
	sr, sg, sb := newEdgePoint(), newEdgePoint(), newEdgePoint()

	posDist := math.Inf(1)
	negDist := math.Inf(-1)
	winding := 0
	dBest := math.Inf(1)

	for i := range shape.Contours {
		contour := shape.Contours[i]
		r, g, b := newEdgePoint(), newEdgePoint(), newEdgePoint()

		for ei := range contour.Edges {
			edge := &contour.Edges[ei]
			d, t := edge.SignedDistance(p)
			if edge.Color.HasRed() {
				r.consider(d, edge, t)
			}
			if edge.Color.HasGreen() {
				g.consider(d, edge, t)
			}
			if edge.Color.HasBlue() {
				b.consider(d, edge, t)
			}
		}

		sr.consider(r.minDistance, r.nearEdge, r.nearParam)
		sg.consider(g.minDistance, g.nearEdge, g.nearParam)
		sb.consider(b.minDistance, b.nearEdge, b.nearParam)

		medMin := math.Abs(median3(r.minDistance.Distance, g.minDistance.Distance, b.minDistance.Distance))
		if medMin < dBest {
			dBest = medMin
			winding = -windings[i]
		}

		rd := r.pseudoDistance(p)
		gd := g.pseudoDistance(p)
		bd := b.pseudoDistance(p)
		contourMedian := median3(rd, gd, bd)
		contourSD[i] = MultiDistance{R: rd, G: gd, B: bd}

		if windings[i] > 0 && contourMedian >= 0 && math.Abs(contourMedian) < math.Abs(posDist) {
			posDist = contourMedian
		}
		if windings[i] < 0 && contourMedian <= 0 && math.Abs(contourMedian) < math.Abs(negDist) {
			negDist = contourMedian
		}
	}

	srd, sgd, sbd := sr.pseudoDistance(p), sg.pseudoDistance(p), sb.pseudoDistance(p)

	// msdMedian is the running "best so far" value msd was picked for; it
	// starts at a sentinel infinity (sign per branch below, so the final
	// pass's "closer than what we have" comparison is well defined even
	// when neither branch finds a qualifying contour).
	var msd MultiDistance
	msdMedian := Infinite.Distance

	switch {
	case posDist >= 0 && math.Abs(posDist) <= math.Abs(negDist):
		winding = 1
		msdMedian = math.Inf(1)
		best := math.Inf(-1)
		for i := range shape.Contours {
			m := contourSD[i].Median()
			if windings[i] > 0 && math.Abs(m) < math.Abs(negDist) && m > best {
				best = m
				msd = contourSD[i]
				msdMedian = best
			}
		}
	case negDist <= 0 && math.Abs(negDist) <= math.Abs(posDist):
		winding = -1
		msdMedian = math.Inf(-1)
		best := math.Inf(1)
		for i := range shape.Contours {
			m := contourSD[i].Median()
			if windings[i] < 0 && math.Abs(m) < math.Abs(posDist) && m < best {
				best = m
				msd = contourSD[i]
				msdMedian = best
			}
		}
	}

	for i := range shape.Contours {
		m := contourSD[i].Median()
		if windings[i] != winding && math.Abs(m) < math.Abs(msdMedian) {
			msdMedian = m
			msd = contourSD[i]
		}
	}

	if median3(srd, sgd, sbd) == msdMedian {
		msd = MultiDistance{R: srd, G: sgd, B: sbd}
	}

	return msd
}

// evaluateSDF computes the single-channel (plain, non-MSDF) signed distance
// for query point p: the closest signed distance over every edge of every
// contour, carrying the sign of that nearest edge's distance, without the
// coloring machinery. Contour windings are not consulted. It shares the
// evaluator's edge math but not its channel reconciliation.
func evaluateSDF(shape *Shape, p Vector2) float64 {
	best := Infinite
	for i := range shape.Contours {
		contour := shape.Contours[i]
		for ei := range contour.Edges {
			edge := &contour.Edges[ei]
			d, _ := edge.SignedDistance(p)
			if d.Less(best) {
				best = d
			}
		}
	}
	return best.Distance
}
