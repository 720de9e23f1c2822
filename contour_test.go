package msdf

import "testing"

func squareContour(ccw bool) *Contour {
	c := NewContour()
	pts := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !ccw {
		pts = [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	}
	for i := 0; i < 4; i++ {
		s := Vector2{X: pts[i][0], Y: pts[i][1]}
		e := Vector2{X: pts[(i+1)%4][0], Y: pts[(i+1)%4][1]}
		c.AddEdge(NewLinearEdge(s, e))
	}
	return c
}

// S2: a closed square contour has winding +1 traversed counter-clockwise
// and -1 traversed clockwise.
func TestContourWindingScenarioS2(t *testing.T) {
	ccw := squareContour(true)
	if got := ccw.Winding(); got != 1 {
		t.Errorf("CCW square winding = %d, want 1", got)
	}
	cw := squareContour(false)
	if got := cw.Winding(); got != -1 {
		t.Errorf("CW square winding = %d, want -1", got)
	}
}

func TestContourWindingEmpty(t *testing.T) {
	c := NewContour()
	if got := c.Winding(); got != 0 {
		t.Errorf("empty contour winding = %d, want 0", got)
	}
}

func TestContourWindingSingleEdge(t *testing.T) {
	c := NewContour()
	c.AddEdge(NewQuadraticEdge(Vector2{X: 0, Y: 0}, Vector2{X: 5, Y: 10}, Vector2{X: 10, Y: 0}))
	// A single bulging edge still has a well-defined sign; it must not
	// panic and must return one of {-1, 0, 1}.
	w := c.Winding()
	if w != -1 && w != 0 && w != 1 {
		t.Errorf("single-edge winding = %d, want one of -1,0,1", w)
	}
}

func TestContourBounds(t *testing.T) {
	c := squareContour(true)
	left, bottom, right, top := c.Bounds()
	if left != 0 || bottom != 0 || right != 10 || top != 10 {
		t.Errorf("Bounds = (%v,%v,%v,%v), want (0,0,10,10)", left, bottom, right, top)
	}
}

func TestContourNormalizeSplitsSingleEdge(t *testing.T) {
	c := NewContour()
	c.AddEdge(NewLinearEdge(Vector2{X: 0, Y: 0}, Vector2{X: 9, Y: 0}))
	c.Normalize()
	if len(c.Edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3 after Normalize", len(c.Edges))
	}
}

func TestContourNormalizeLeavesMultiEdge(t *testing.T) {
	c := squareContour(true)
	before := len(c.Edges)
	c.Normalize()
	if len(c.Edges) != before {
		t.Errorf("Normalize changed edge count of a multi-edge contour: %d -> %d", before, len(c.Edges))
	}
}
