package msdf

import (
	"math"
	"testing"
)

func coloredSquare(seed uint64) *Shape {
	shape := NewShape()
	c := NewContour()
	LinearSegment(c, Vector2{X: 0, Y: 0}, Vector2{X: 10, Y: 0})
	LinearSegment(c, Vector2{X: 10, Y: 0}, Vector2{X: 10, Y: 10})
	LinearSegment(c, Vector2{X: 10, Y: 10}, Vector2{X: 0, Y: 10})
	LinearSegment(c, Vector2{X: 0, Y: 10}, Vector2{X: 0, Y: 0})
	shape.AddContour(c)
	ColorEdgesSimple(shape, math.Pi/3, seed)
	return shape
}

// S3: coloring of a 4-corner square with angleThreshold = pi/3.
func TestColorEdgesSimpleScenarioS3(t *testing.T) {
	shape := coloredSquare(0)
	edges := shape.Contours[0].Edges
	for i, e := range edges {
		if e.Color == ColorBlack {
			t.Errorf("edge %d has Black color", i)
		}
	}
	for i := range edges {
		next := (i + 1) % len(edges)
		if edges[i].Color == edges[next].Color {
			t.Errorf("edge %d and %d share a corner but have the same color %v", i, next, edges[i].Color)
		}
	}
}

func TestColorEdgesSimpleZeroCornersAllWhite(t *testing.T) {
	shape := NewShape()
	c := NewContour()
	QuadraticSegment(c, Vector2{X: 0, Y: 0}, Vector2{X: 5, Y: 10}, Vector2{X: 10, Y: 0})
	QuadraticSegment(c, Vector2{X: 10, Y: 0}, Vector2{X: 5, Y: -10}, Vector2{X: 0, Y: 0})
	shape.AddContour(c)
	ColorEdgesSimple(shape, math.Pi/3, 0)

	for i, e := range shape.Contours[0].Edges {
		if e.Color != ColorWhite {
			t.Errorf("smooth loop edge %d colored %v, want White", i, e.Color)
		}
	}
}

func TestColorEdgesSimpleNormalizedSingleEdgeSplitsIntoThree(t *testing.T) {
	shape := NewShape()
	c := NewContour()
	// Normalize splits the single linear edge into three collinear pieces.
	// They meet without a direction change, so coloring finds no corner
	// and takes the zero-corner path; no piece may end up Black.
	c.AddEdge(NewLinearEdge(Vector2{X: 0, Y: 0}, Vector2{X: 10, Y: 0}))
	shape.AddContour(c)
	shape.Normalize()
	ColorEdgesSimple(shape, math.Pi/3, 0)

	if len(shape.Contours[0].Edges) != 3 {
		t.Fatalf("expected 3 edges after Normalize, got %d", len(shape.Contours[0].Edges))
	}
	for i, e := range shape.Contours[0].Edges {
		if e.Color == ColorBlack {
			t.Errorf("edge %d has Black color", i)
		}
	}
}

// A 2-edge contour with exactly one corner is split into six thirds, the
// corner falling between the first and last color span.
func TestColorEdgesSimpleTeardropTwoEdges(t *testing.T) {
	cases := []struct {
		name   string
		edges  []EdgeSegment
		corner int
	}{
		{
			// Smooth join at (10,0), sharp join at (0,0) = edge 0's start.
			name: "corner at 0",
			edges: []EdgeSegment{
				NewQuadraticEdge(Vector2{X: 0, Y: 0}, Vector2{X: 10, Y: 10}, Vector2{X: 10, Y: 0}),
				NewQuadraticEdge(Vector2{X: 10, Y: 0}, Vector2{X: 10, Y: -10}, Vector2{X: 0, Y: 0}),
			},
			corner: 0,
		},
		{
			// Same contour rotated so the sharp join is edge 1's start.
			name: "corner at 1",
			edges: []EdgeSegment{
				NewQuadraticEdge(Vector2{X: 10, Y: 0}, Vector2{X: 10, Y: -10}, Vector2{X: 0, Y: 0}),
				NewQuadraticEdge(Vector2{X: 0, Y: 0}, Vector2{X: 10, Y: 10}, Vector2{X: 10, Y: 0}),
			},
			corner: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shape := NewShape()
			c := NewContour()
			for _, e := range tc.edges {
				c.AddEdge(e)
			}
			shape.AddContour(c)
			ColorEdgesSimple(shape, math.Pi/3, 0)

			edges := shape.Contours[0].Edges
			if len(edges) != 6 {
				t.Fatalf("len(Edges) = %d, want 6 after teardrop split", len(edges))
			}
			if !shape.Validate() {
				t.Error("split contour no longer chains")
			}
			for i, e := range edges {
				if e.Color == ColorBlack {
					t.Errorf("edge %d has Black color", i)
				}
			}
			// Three spans of two pieces each, the middle one White.
			if edges[0].Color != edges[1].Color || edges[4].Color != edges[5].Color {
				t.Error("outer spans are not two pieces each")
			}
			if edges[2].Color != ColorWhite || edges[3].Color != ColorWhite {
				t.Errorf("middle span = %v/%v, want White/White", edges[2].Color, edges[3].Color)
			}
			if edges[0].Color == ColorWhite || edges[4].Color == ColorWhite || edges[0].Color == edges[5].Color {
				t.Errorf("corner spans %v and %v must differ from White and each other", edges[0].Color, edges[5].Color)
			}
		})
	}
}

func TestSwitchColorAvoidsSharedSingleChannelWithBanned(t *testing.T) {
	seed := uint64(5)
	// Cyan & Magenta share Blue; switchColor must exclude that shared
	// channel rather than merely differ from the banned color outright.
	got := switchColor(ColorCyan, &seed, ColorMagenta)
	if got != (ColorCyan&ColorMagenta)^ColorWhite {
		t.Errorf("switchColor(Cyan, _, Magenta) = %v, want %v", got, (ColorCyan&ColorMagenta)^ColorWhite)
	}
}

func TestSwitchColorFromWhitePicksTwoChannelColor(t *testing.T) {
	for seed := uint64(0); seed < 6; seed++ {
		s := seed
		c := switchColor(ColorWhite, &s, ColorBlack)
		if c != ColorCyan && c != ColorMagenta && c != ColorYellow {
			t.Errorf("switchColor(White, %d, Black) = %v, want one of Cyan/Magenta/Yellow", seed, c)
		}
	}
}

// switchColor's rotate branch treats EdgeColor as a 3-bit field over
// {Red, Green, Blue}; it must cycle Cyan/Magenta/Yellow among themselves
// and never produce Black or a single-channel color.
func TestSwitchColorRotateBranchStaysWithinTwoChannelColors(t *testing.T) {
	twoChannel := map[EdgeColor]bool{ColorCyan: true, ColorMagenta: true, ColorYellow: true}
	for _, start := range []EdgeColor{ColorCyan, ColorMagenta, ColorYellow} {
		for seed := uint64(0); seed < 8; seed++ {
			s := seed
			got := switchColor(start, &s, ColorBlack)
			if !twoChannel[got] {
				t.Errorf("switchColor(%v, %d, Black) = %v, want one of Cyan/Magenta/Yellow", start, seed, got)
			}
		}
	}
}

func TestEdgeColorBitValues(t *testing.T) {
	if ColorRed != 1 || ColorGreen != 2 || ColorBlue != 4 {
		t.Fatalf("ColorRed/Green/Blue = %d/%d/%d, want 1/2/4", ColorRed, ColorGreen, ColorBlue)
	}
	if ColorWhite != 7 {
		t.Errorf("ColorWhite = %d, want 7", ColorWhite)
	}
}

func TestMagicRangeIsWithinOffsets(t *testing.T) {
	for m := 3; m < 10; m++ {
		for j := 0; j < m; j++ {
			v := magic(j, m)
			if v < -1 || v > 1 {
				t.Errorf("magic(%d, %d) = %d, want in [-1, 1]", j, m, v)
			}
		}
	}
}
