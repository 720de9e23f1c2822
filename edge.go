package msdf

import "math"

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor labels which RGB channels an edge contributes to. Adjacent
// edges at a corner must differ; non-corner neighbours must still share
// at least two channels.
type EdgeColor uint8

const (
	ColorBlack EdgeColor = 0
	ColorRed   EdgeColor = 1
	ColorGreen EdgeColor = 2
	ColorBlue  EdgeColor = 4

	ColorYellow  = ColorRed | ColorGreen
	ColorCyan    = ColorGreen | ColorBlue
	ColorMagenta = ColorRed | ColorBlue
	ColorWhite   = ColorRed | ColorGreen | ColorBlue
)

// String returns a string representation of the edge color.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

func (c EdgeColor) HasRed() bool   { return c&ColorRed != 0 }
func (c EdgeColor) HasGreen() bool { return c&ColorGreen != 0 }
func (c EdgeColor) HasBlue() bool  { return c&ColorBlue != 0 }

// EdgeSegment is a single edge of a contour: a line, a quadratic Bezier
// curve, or a cubic Bezier curve, tagged by Kind. Points holds up to four
// control points depending on Kind:
//
//	Linear:    Points[0] start, Points[1] end
//	Quadratic: Points[0] start, Points[1] control, Points[2] end
//	Cubic:     Points[0] start, Points[1] control1, Points[2] control2, Points[3] end
type EdgeSegment struct {
	Kind   EdgeType
	Points [4]Vector2
	Color  EdgeColor
}

// NewLinearEdge creates a line segment from start to end.
func NewLinearEdge(start, end Vector2) EdgeSegment {
	return EdgeSegment{Kind: EdgeLinear, Points: [4]Vector2{start, end}, Color: ColorWhite}
}

// NewQuadraticEdge creates a quadratic Bezier edge.
func NewQuadraticEdge(start, control, end Vector2) EdgeSegment {
	return EdgeSegment{Kind: EdgeQuadratic, Points: [4]Vector2{start, control, end}, Color: ColorWhite}
}

// NewCubicEdge creates a cubic Bezier edge.
func NewCubicEdge(start, control1, control2, end Vector2) EdgeSegment {
	return EdgeSegment{Kind: EdgeCubic, Points: [4]Vector2{start, control1, control2, end}, Color: ColorWhite}
}

// Start returns the edge's starting point.
func (e *EdgeSegment) Start() Vector2 { return e.Points[0] }

// End returns the edge's ending point, which point it is stored in
// depending on Kind.
func (e *EdgeSegment) End() Vector2 {
	switch e.Kind {
	case EdgeLinear:
		return e.Points[1]
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[0]
	}
}

// Point evaluates the edge at parameter t, which need not lie in [0, 1].
func (e *EdgeSegment) Point(t float64) Vector2 {
	switch e.Kind {
	case EdgeLinear:
		return e.Points[0].Lerp(e.Points[1], t)
	case EdgeQuadratic:
		return evaluateQuadratic(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return evaluateCubic(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return e.Points[0]
	}
}

// Direction returns the (non-normalized) tangent at parameter t. For a
// cubic edge whose tangent degenerates to zero at an endpoint, it falls
// back to the chord from the adjacent control point to the farther one:
// Points[2]-Points[0] at t=0, Points[3]-Points[1] at t=1.
func (e *EdgeSegment) Direction(t float64) Vector2 {
	switch e.Kind {
	case EdgeLinear:
		return e.Points[1].Sub(e.Points[0])
	case EdgeQuadratic:
		return quadraticDerivative(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		d := cubicDerivative(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
		if d.X == 0 && d.Y == 0 {
			if t == 0 {
				return e.Points[2].Sub(e.Points[0])
			}
			if t == 1 {
				return e.Points[3].Sub(e.Points[1])
			}
		}
		return d
	default:
		return Vector2{X: 1}
	}
}

// SignedDistance returns the signed distance from origin to the edge and
// the parameter t at which it occurs.
func (e *EdgeSegment) SignedDistance(origin Vector2) (SignedDistance, float64) {
	switch e.Kind {
	case EdgeLinear:
		return linearSignedDistance(e.Points[0], e.Points[1], origin)
	case EdgeQuadratic:
		return quadraticSignedDistance(e.Points[0], e.Points[1], e.Points[2], origin)
	case EdgeCubic:
		return cubicSignedDistance(e.Points[0], e.Points[1], e.Points[2], e.Points[3], origin)
	default:
		return Infinite, 0
	}
}

// DistanceToPseudoDistance extends a segment's finite distance estimate
// past its endpoints: if the query point projects outside [0, 1] along
// the edge, d is replaced by the orthogonal (pseudo-)distance to the
// endpoint's tangent line when that improves on the current estimate.
func (e *EdgeSegment) DistanceToPseudoDistance(d *SignedDistance, origin Vector2, t float64) {
	if t < 0 {
		dir := e.Direction(0).Normalize()
		aq := origin.Sub(e.Start())
		ts := aq.Dot(dir)
		if ts < 0 {
			pseudoDistance := aq.Cross(dir)
			if math.Abs(pseudoDistance) <= math.Abs(d.Distance) {
				d.Distance = pseudoDistance
				d.Dot = 0
			}
		}
	} else if t > 1 {
		dir := e.Direction(1).Normalize()
		bq := origin.Sub(e.End())
		ts := bq.Dot(dir)
		if ts > 0 {
			pseudoDistance := bq.Cross(dir)
			if math.Abs(pseudoDistance) <= math.Abs(d.Distance) {
				d.Distance = pseudoDistance
				d.Dot = 0
			}
		}
	}
}

// Bounds expands the (left, bottom, right, top) accumulator to include
// this edge, including its Bezier extrema, not just its endpoints.
func (e *EdgeSegment) Bounds(left, bottom, right, top *float64) {
	expand := func(p Vector2) {
		*left = min(*left, p.X)
		*right = max(*right, p.X)
		*bottom = min(*bottom, p.Y)
		*top = max(*top, p.Y)
	}
	switch e.Kind {
	case EdgeLinear:
		expand(e.Points[0])
		expand(e.Points[1])
	case EdgeQuadratic:
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		expand(p0)
		expand(p2)
		dx := p0.X - 2*p1.X + p2.X
		if dx != 0 {
			if t := (p0.X - p1.X) / dx; t > 0 && t < 1 {
				expand(evaluateQuadratic(p0, p1, p2, t))
			}
		}
		dy := p0.Y - 2*p1.Y + p2.Y
		if dy != 0 {
			if t := (p0.Y - p1.Y) / dy; t > 0 && t < 1 {
				expand(evaluateQuadratic(p0, p1, p2, t))
			}
		}
	case EdgeCubic:
		p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
		expand(p0)
		expand(p3)
		ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
		bx := 2 * (p0.X - 2*p1.X + p2.X)
		cx := p1.X - p0.X
		if n, roots := solveQuadratic(ax, bx, cx); n != 0 {
			for i := 0; i < n; i++ {
				if t := roots[i]; t > 0 && t < 1 {
					expand(evaluateCubic(p0, p1, p2, p3, t))
				}
			}
		}
		ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
		by := 2 * (p0.Y - 2*p1.Y + p2.Y)
		cy := p1.Y - p0.Y
		if n, roots := solveQuadratic(ay, by, cy); n != 0 {
			for i := 0; i < n; i++ {
				if t := roots[i]; t > 0 && t < 1 {
					expand(evaluateCubic(p0, p1, p2, p3, t))
				}
			}
		}
	}
}

// MoveStart relocates the edge's start point, dragging a cubic's nearby
// control point along with it and repositioning a quadratic's control
// point so the curve still passes through the same interior shape,
// reverting to the unmoved control point if that would reverse the
// curve's original tangent direction at the start.
func (e *EdgeSegment) MoveStart(newStart Vector2) {
	switch e.Kind {
	case EdgeLinear:
		e.Points[0] = newStart
	case EdgeQuadratic:
		origDir := e.Direction(0)
		oldStart, control, far := e.Points[0], e.Points[1], e.Points[2]
		denom := origDir.Cross(far.Sub(control))
		if denom != 0 {
			delta := origDir.Cross(newStart.Sub(oldStart)) / denom
			newControl := control.Add(far.Sub(control).Mul(delta))
			if newControl.Sub(newStart).Dot(origDir) >= 0 {
				e.Points[1] = newControl
			}
		}
		e.Points[0] = newStart
	case EdgeCubic:
		delta := newStart.Sub(e.Points[0])
		e.Points[1] = e.Points[1].Add(delta)
		e.Points[0] = newStart
	}
}

// MoveEnd relocates the edge's end point; see MoveStart.
func (e *EdgeSegment) MoveEnd(newEnd Vector2) {
	switch e.Kind {
	case EdgeLinear:
		e.Points[1] = newEnd
	case EdgeQuadratic:
		origDir := e.Direction(1)
		oldEnd, control, far := e.Points[2], e.Points[1], e.Points[0]
		denom := origDir.Cross(far.Sub(control))
		if denom != 0 {
			delta := origDir.Cross(newEnd.Sub(oldEnd)) / denom
			newControl := control.Add(far.Sub(control).Mul(delta))
			if newEnd.Sub(newControl).Dot(origDir) >= 0 {
				e.Points[1] = newControl
			}
		}
		e.Points[2] = newEnd
	case EdgeCubic:
		delta := newEnd.Sub(e.Points[3])
		e.Points[2] = e.Points[2].Add(delta)
		e.Points[3] = newEnd
	}
}

// SplitInThirds divides the edge into three edges of the same Kind
// covering [0, 1/3], [1/3, 2/3] and [2/3, 1] of the original parameter
// range, used to give single- and two-edge contours enough edges to
// color.
func (e *EdgeSegment) SplitInThirds() (a, b, c EdgeSegment) {
	switch e.Kind {
	case EdgeLinear:
		p0, p1 := e.Points[0], e.Points[1]
		a = NewLinearEdge(p0, e.Point(1.0/3))
		b = NewLinearEdge(e.Point(1.0/3), e.Point(2.0/3))
		c = NewLinearEdge(e.Point(2.0/3), p1)
	case EdgeQuadratic:
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		a = NewQuadraticEdge(p0, p0.Lerp(p1, 1.0/3), e.Point(1.0/3))
		b = NewQuadraticEdge(
			e.Point(1.0/3),
			p0.Lerp(p1, 5.0/9).Lerp(p1.Lerp(p2, 4.0/9), 0.5),
			e.Point(2.0/3),
		)
		c = NewQuadraticEdge(e.Point(2.0/3), p1.Lerp(p2, 2.0/3), p2)
	case EdgeCubic:
		p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
		firstCtrl := p0
		if p0 != p1 {
			firstCtrl = p0.Lerp(p1, 1.0/3)
		}
		lastCtrl := p3
		if p2 != p3 {
			lastCtrl = p2.Lerp(p3, 2.0/3)
		}
		a = NewCubicEdge(
			p0,
			firstCtrl,
			p0.Lerp(p1, 1.0/3).Lerp(p1.Lerp(p2, 1.0/3), 1.0/3),
			e.Point(1.0/3),
		)
		b = NewCubicEdge(
			e.Point(1.0/3),
			p0.Lerp(p1, 1.0/3).Lerp(p1.Lerp(p2, 1.0/3), 1.0/3).Lerp(p1.Lerp(p2, 1.0/3).Lerp(p2.Lerp(p3, 1.0/3), 1.0/3), 2.0/3),
			p0.Lerp(p1, 2.0/3).Lerp(p1.Lerp(p2, 2.0/3), 2.0/3).Lerp(p1.Lerp(p2, 2.0/3).Lerp(p2.Lerp(p3, 2.0/3), 2.0/3), 1.0/3),
			e.Point(2.0/3),
		)
		c = NewCubicEdge(
			e.Point(2.0/3),
			p1.Lerp(p2, 2.0/3).Lerp(p2.Lerp(p3, 2.0/3), 2.0/3),
			lastCtrl,
			p3,
		)
	}
	a.Color, b.Color, c.Color = e.Color, e.Color, e.Color
	return a, b, c
}

func evaluateQuadratic(p0, p1, p2 Vector2, t float64) Vector2 {
	u := 1 - t
	return Vector2{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func evaluateCubic(p0, p1, p2, p3 Vector2, t float64) Vector2 {
	u := 1 - t
	u2, t2 := u*u, t*t
	return Vector2{
		X: u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		Y: u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

func quadraticDerivative(p0, p1, p2 Vector2, t float64) Vector2 {
	u := 1 - t
	return Vector2{
		X: 2*u*(p1.X-p0.X) + 2*t*(p2.X-p1.X),
		Y: 2*u*(p1.Y-p0.Y) + 2*t*(p2.Y-p1.Y),
	}
}

func cubicDerivative(p0, p1, p2, p3 Vector2, t float64) Vector2 {
	u := 1 - t
	return Vector2{
		X: 3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		Y: 3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// linearSignedDistance returns the orthogonal component of the offset
// from the line when the projection falls inside the segment and beats
// the endpoint distance, otherwise the distance to the nearer endpoint
// signed by which side of the line it falls on. The returned parameter is the unclamped projection, so
// callers can detect query points beyond the segment's extent.
func linearSignedDistance(s, end, origin Vector2) (SignedDistance, float64) {
	aq := origin.Sub(s)
	ab := end.Sub(s)

	var t float64
	if denom := ab.Dot(ab); denom != 0 {
		t = aq.Dot(ab) / denom
	}

	q := s
	if t > 0.5 {
		q = end
	}
	eq := q.Sub(origin)
	endpointDistance := eq.Length()

	if t > 0 && t < 1 {
		orthoDistance := orthonormal(ab, false, false).Dot(aq)
		if math.Abs(orthoDistance) < endpointDistance {
			return SignedDistance{Distance: orthoDistance}, t
		}
	}

	dist := nonZeroSign(aq.Cross(ab)) * endpointDistance
	dot := math.Abs(ab.Normalize().Dot(eq.Normalize()))
	return SignedDistance{Distance: dist, Dot: dot}, t
}

// quadraticSignedDistance minimizes distance over the endpoints and the
// real roots of the squared-distance derivative cubic. Endpoint
// candidates record the projection onto the endpoint tangent rather than
// a clamped 0 or 1, so a winning parameter outside [0, 1] flows through
// to the pseudo-distance extension; the Dot tiebreaker is only set in
// that case.
func quadraticSignedDistance(s, p1, e, origin Vector2) (SignedDistance, float64) {
	qa := s.Sub(origin)
	ab := p1.Sub(s)
	br := e.Sub(p1).Sub(ab)

	a := br.Dot(br)
	b := 3 * ab.Dot(br)
	c := 2*ab.Dot(ab) + qa.Dot(br)
	d := qa.Dot(ab)
	n, roots := solveCubic(a, b, c, d)

	// Distance from the start point.
	minDistance := nonZeroSign(ab.Cross(qa)) * qa.Length()
	var t float64
	if denom := ab.Dot(ab); denom != 0 {
		t = -qa.Dot(ab) / denom
	}

	// Distance from the end point.
	bq := e.Sub(origin)
	endDir := e.Sub(p1)
	if dist := nonZeroSign(endDir.Cross(bq)) * bq.Length(); math.Abs(dist) < math.Abs(minDistance) {
		minDistance = dist
		if denom := endDir.Dot(endDir); denom != 0 {
			t = origin.Sub(p1).Dot(endDir) / denom
		}
	}

	for i := 0; i < n; i++ {
		if ti := roots[i]; ti > 0 && ti < 1 {
			qe := qa.Add(ab.Mul(2 * ti)).Add(br.Mul(ti * ti))
			if dist := nonZeroSign(e.Sub(s).Cross(qe)) * qe.Length(); math.Abs(dist) <= math.Abs(minDistance) {
				minDistance = dist
				t = ti
			}
		}
	}

	if t >= 0 && t <= 1 {
		return SignedDistance{Distance: minDistance}, t
	}
	if t < 0.5 {
		return SignedDistance{Distance: minDistance, Dot: math.Abs(ab.Normalize().Dot(qa.Normalize()))}, t
	}
	return SignedDistance{Distance: minDistance, Dot: math.Abs(endDir.Normalize().Dot(bq.Normalize()))}, t
}

// cubicSignedDistance has no closed-form minimizer: it combines endpoint
// candidates plus Newton-refined interior candidates from five equally
// spaced starting points (t = 0, 1/4, 1/2, 3/4, 1), each iterated against the current parameter t
// (not the best distance found so far). Endpoint candidates record the
// tangent-line projection, which may fall outside [0, 1].
func cubicSignedDistance(s, p1, p2, e, origin Vector2) (SignedDistance, float64) {
	qa := s.Sub(origin)
	ab := p1.Sub(s)
	br := p2.Sub(p1).Sub(ab)
	as := e.Sub(p2).Sub(p2.Sub(p1)).Sub(br)

	dir0 := ab.Mul(3)
	if dir0 == (Vector2{}) {
		dir0 = p2.Sub(s)
	}
	dir1 := e.Sub(p2).Mul(3)
	if dir1 == (Vector2{}) {
		dir1 = e.Sub(p1)
	}

	// Distance from the start point.
	minDistance := nonZeroSign(dir0.Cross(qa)) * qa.Length()
	var t float64
	if denom := dir0.Dot(dir0); denom != 0 {
		t = -qa.Dot(dir0) / denom
	}

	// Distance from the end point.
	bq := e.Sub(origin)
	if dist := bq.Length(); dist < math.Abs(minDistance) {
		minDistance = nonZeroSign(dir1.Cross(bq)) * dist
		if denom := dir1.Dot(dir1); denom != 0 {
			t = dir1.Sub(bq).Dot(dir1) / denom
		}
	}

	const starts = 4
	for i := 0; i <= starts; i++ {
		ti := float64(i) / starts
		qe := qa.Add(ab.Mul(3 * ti)).Add(br.Mul(3 * ti * ti)).Add(as.Mul(ti * ti * ti))
		for step := 0; step < 4; step++ {
			d1 := ab.Mul(3).Add(br.Mul(6 * ti)).Add(as.Mul(3 * ti * ti))
			d2 := br.Mul(6).Add(as.Mul(6 * ti))
			denom := d1.Dot(d1) + qe.Dot(d2)
			if denom == 0 {
				break
			}
			ti -= qe.Dot(d1) / denom
			if ti <= 0 || ti >= 1 {
				break
			}
			qe = qa.Add(ab.Mul(3 * ti)).Add(br.Mul(3 * ti * ti)).Add(as.Mul(ti * ti * ti))
			if dist := nonZeroSign(d1.Cross(qe)) * qe.Length(); math.Abs(dist) < math.Abs(minDistance) {
				minDistance = dist
				t = ti
			}
		}
	}

	if t >= 0 && t <= 1 {
		return SignedDistance{Distance: minDistance}, t
	}
	if t < 0.5 {
		return SignedDistance{Distance: minDistance, Dot: math.Abs(dir0.Normalize().Dot(qa.Normalize()))}, t
	}
	return SignedDistance{Distance: minDistance, Dot: math.Abs(dir1.Normalize().Dot(bq.Normalize()))}, t
}
