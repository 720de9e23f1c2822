package msdf

import (
	"math"

	"github.com/aurelien-rainone/assertgo"
)

// Shape is a full set of contours defining a fillable region, e.g. a
// glyph outline or an arbitrary planar vector shape. InverseYAxis flips
// the row order MSDF generation walks the output pixmap in, matching
// coordinate systems (like most font formats) where Y increases upward.
type Shape struct {
	Contours     []*Contour
	InverseYAxis bool
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// LinearSegment builds a linear edge and appends it to the given contour.
func LinearSegment(c *Contour, start, end Vector2) {
	c.AddEdge(NewLinearEdge(start, end))
}

// QuadraticSegment builds a quadratic edge and appends it to the given
// contour.
func QuadraticSegment(c *Contour, start, control, end Vector2) {
	c.AddEdge(NewQuadraticEdge(start, control, end))
}

// CubicSegment builds a cubic edge and appends it to the given contour.
func CubicSegment(c *Contour, start, control1, control2, end Vector2) {
	c.AddEdge(NewCubicEdge(start, control1, control2, end))
}

// Validate reports whether every non-empty contour chains: each edge's end
// point coincides with the next edge's start point, and the last edge's
// end point coincides with the first edge's start point, closing the loop.
func (s *Shape) Validate() bool {
	const epsilon = 1e-6
	chains := func(a, b Vector2) bool {
		return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
	}
	for _, contour := range s.Contours {
		n := len(contour.Edges)
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			end := contour.Edges[i].End()
			next := contour.Edges[(i+1)%n].Start()
			if !chains(end, next) {
				return false
			}
		}
	}
	return true
}

// ValidateErr is Validate with detail: it returns a *ValidationError naming
// the first offending contour and reason, or nil if the shape chains
// cleanly. Callers that want to decide between normalizing and refusing
// malformed input use this instead of the bare bool.
func (s *Shape) ValidateErr() error {
	const epsilon = 1e-6
	chains := func(a, b Vector2) bool {
		return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
	}
	for ci, contour := range s.Contours {
		n := len(contour.Edges)
		if n == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			end := contour.Edges[i].End()
			next := contour.Edges[(i+1)%n].Start()
			if !chains(end, next) {
				return &ValidationError{Contour: ci, Reason: "edges do not chain end-to-start"}
			}
		}
	}
	return nil
}

// Normalize splits every single-edge contour into thirds, so that every
// contour has enough edges to carry at least one corner. Calling it more
// than once is a no-op for contours it already normalized.
func (s *Shape) Normalize() {
	for i, c := range s.Contours {
		c.Normalize()
		assert.True(len(c.Edges) != 1, "contour %d still has a single edge after normalization", i)
	}
}

// Bounds returns the bounding box over every contour of the shape.
func (s *Shape) Bounds() (left, bottom, right, top float64) {
	left, bottom = math.Inf(1), math.Inf(1)
	right, top = math.Inf(-1), math.Inf(-1)
	for _, c := range s.Contours {
		l, b, r, t := c.Bounds()
		left = min(left, l)
		bottom = min(bottom, b)
		right = max(right, r)
		top = max(top, t)
	}
	return
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}
