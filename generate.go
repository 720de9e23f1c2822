package msdf

import "sync"

// Projection maps shape-space coordinates to pixel-space coordinates by
// pixel = Scale*(shape + Translate), and back by shape = pixel/Scale -
// Translate. Range is the signed-distance window, in shape units, that
// gets linearly mapped to [0, 1] in each output channel.
type Projection struct {
	Scale     Vector2
	Translate Vector2
	Range     float64
}

// DefaultProjection returns a Projection with unit scale, no translation,
// and a range of 4 shape units, a reasonable starting point for a shape
// already expressed in pixel-ish units.
func DefaultProjection() Projection {
	return Projection{Scale: Vector2{X: 1, Y: 1}, Range: 4}
}

// Validate reports a *ConfigError for a non-invertible scale or a
// non-positive range.
func (p *Projection) Validate() error {
	if p.Scale.X == 0 {
		return &ConfigError{Field: "Scale.X", Reason: "must be non-zero"}
	}
	if p.Scale.Y == 0 {
		return &ConfigError{Field: "Scale.Y", Reason: "must be non-zero"}
	}
	if p.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	return nil
}

// unproject maps a pixel-space point to shape space.
func (p Projection) unproject(px Vector2) Vector2 {
	return Vector2{X: px.X/p.Scale.X - p.Translate.X, Y: px.Y/p.Scale.Y - p.Translate.Y}
}

// encodeChannel maps a shape-space signed distance to the [0, 1] range
// used by every pixel element's encoder: distance/range + 0.5.
func encodeChannel(distance, rng float64) float64 {
	return distance/rng + 0.5
}

const generateWorkers = 4

// rowRange splits [0, rows) into generateWorkers contiguous spans.
func rowRange(rows, worker int) (start, end int) {
	perWorker := (rows + generateWorkers - 1) / generateWorkers
	start = worker * perWorker
	end = start + perWorker
	if end > rows {
		end = rows
	}
	return
}

// outputRow returns the row of the pixmap region that the pixel row y
// is written to, mirrored within the region when shape has an
// inverted Y axis (as most font outline formats do).
func outputRow(region Region, inverseYAxis bool, y int) int {
	if inverseYAxis {
		return region.Y + region.Height - 1 - (y - region.Y)
	}
	return y
}

// GenerateSDF writes a single-channel signed distance field for shape into
// pm over the clipped region, using scale/translate/rng as described by
// Projection, and encode to convert the normalized distance for a pixel
// into the pixmap's element type.
//
// Rows are split across a fixed worker pool; each worker owns a disjoint
// row range so no synchronization is needed beyond the final WaitGroup
// join.
func GenerateSDF[T any](pm *Pixmap[T], shape *Shape, region Region, rng float64, scale, translate Vector2, encode func(d float64) T) error {
	proj := Projection{Scale: scale, Translate: translate, Range: rng}
	if err := proj.Validate(); err != nil {
		return err
	}
	clipped := region.clip(pm.Width, pm.Height)
	if clipped.Width == 0 || clipped.Height == 0 {
		return nil
	}

	var wg sync.WaitGroup
	for w := 0; w < generateWorkers; w++ {
		start, end := rowRange(clipped.Height, w)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			for dy := rowStart; dy < rowEnd; dy++ {
				y := clipped.Y + dy
				outY := outputRow(clipped, shape.InverseYAxis, y)
				for x := clipped.X; x < clipped.X+clipped.Width; x++ {
					px := Vector2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
					sp := proj.unproject(px)
					d := evaluateSDF(shape, sp)
					pm.Set(x, outY, encode(encodeChannel(d, rng)))
				}
			}
		}(start, end)
	}
	wg.Wait()
	return nil
}

// GenerateMSDF writes a multi-channel signed distance field for shape into
// pm over the clipped region. The caller must have already colored shape
// with ColorEdgesSimple; GenerateMSDF treats the shape as read-only and
// never mutates edge colors.
//
// Each worker gets its own contourSD scratch slice (the
// per-contour scratch buffer is overwritten every pixel and must not be
// shared across concurrently evaluated pixels); windings is computed once
// up front and shared read-only.
func GenerateMSDF[T any](pm *Pixmap[T], shape *Shape, region Region, rng float64, scale, translate Vector2, encode func(r, g, b float64) T) error {
	proj := Projection{Scale: scale, Translate: translate, Range: rng}
	if err := proj.Validate(); err != nil {
		return err
	}
	clipped := region.clip(pm.Width, pm.Height)
	if clipped.Width == 0 || clipped.Height == 0 {
		return nil
	}

	windings := make([]int, len(shape.Contours))
	for i, c := range shape.Contours {
		windings[i] = c.Winding()
	}

	var wg sync.WaitGroup
	for w := 0; w < generateWorkers; w++ {
		start, end := rowRange(clipped.Height, w)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(rowStart, rowEnd int) {
			defer wg.Done()
			contourSD := make([]MultiDistance, len(shape.Contours))
			for dy := rowStart; dy < rowEnd; dy++ {
				y := clipped.Y + dy
				outY := outputRow(clipped, shape.InverseYAxis, y)
				for x := clipped.X; x < clipped.X+clipped.Width; x++ {
					px := Vector2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
					sp := proj.unproject(px)
					msd := evaluateField(shape, windings, contourSD, sp)
					pm.Set(x, outY, encode(
						encodeChannel(msd.R, rng),
						encodeChannel(msd.G, rng),
						encodeChannel(msd.B, rng),
					))
				}
			}
		}(start, end)
	}
	wg.Wait()
	return nil
}
