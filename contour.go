package msdf

import "math"

// Contour is a closed chain of edges. A Shape's fill rule comes from the
// relative winding of its contours, not from any explicit outer/inner
// flag.
type Contour struct {
	// Edges is the ordered list of edges that form this contour, each
	// edge's end meeting the next edge's start.
	Edges []EdgeSegment
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e EdgeSegment) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() (left, bottom, right, top float64) {
	left, bottom = math.Inf(1), math.Inf(1)
	right, top = math.Inf(-1), math.Inf(-1)
	for i := range c.Edges {
		c.Edges[i].Bounds(&left, &bottom, &right, &top)
	}
	return
}

// Winding computes the contour's winding sign via the shoelace formula
// over its edge start points (a one-edge contour is sampled at t = 0, 1/3
// and 2/3, a two-edge contour at t = 0 and 1/2 of each edge): +1 for
// counter-clockwise, -1 for clockwise, 0 for a degenerate (zero-area or
// empty) contour.
func (c *Contour) Winding() int {
	if len(c.Edges) == 0 {
		return 0
	}
	var total float64
	if len(c.Edges) == 1 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(1.0 / 3)
		cc := c.Edges[0].Point(2.0 / 3)
		total = a.Cross(b) + b.Cross(cc) + cc.Cross(a)
	} else if len(c.Edges) == 2 {
		a := c.Edges[0].Point(0)
		b := c.Edges[0].Point(0.5)
		cc := c.Edges[1].Point(0)
		d := c.Edges[1].Point(0.5)
		total = a.Cross(b) + b.Cross(cc) + cc.Cross(d) + d.Cross(a)
	} else {
		prev := c.Edges[len(c.Edges)-1].Point(0)
		for i := range c.Edges {
			cur := c.Edges[i].Point(0)
			total += prev.Cross(cur)
			prev = cur
		}
	}
	switch {
	case total > 0:
		return 1
	case total < 0:
		return -1
	default:
		return 0
	}
}

// Normalize splits a single-edge contour into thirds so it has enough
// edges for corner-based coloring, per Shape.Normalize. A contour with
// two or more edges is left as-is.
func (c *Contour) Normalize() {
	if len(c.Edges) == 1 {
		a, b, cc := c.Edges[0].SplitInThirds()
		c.Edges = []EdgeSegment{a, b, cc}
	}
}
