// Package msdf generates multi-channel signed distance fields (MSDF) for
// planar vector shapes — glyph outlines and similar closed contour sets.
//
// A shape is a set of contours, each a chain of linear, quadratic-Bezier
// and cubic-Bezier edges. Rasterizing it to a plain signed distance field
// rounds off corners once the field is sampled at a large enough
// magnification; MSDF avoids this by storing three independent signed
// distances per pixel, one per color channel, chosen so that the median of
// the three channels reconstructs the true distance everywhere except in a
// thin band around corners, which error correction then cleans up.
//
// # Pipeline
//
//  1. Build a Shape from contours of EdgeSegment values.
//  2. ColorEdgesSimple assigns each edge a Red/Green/Blue label so that
//     every corner is a color change and every non-corner pair of
//     neighbouring edges still shares two channels.
//  3. GenerateMSDF (or GenerateSDF for the single-channel variant) walks a
//     pixel region, evaluates the per-pixel field, and writes it into a
//     caller-supplied Pixmap.
//  4. CorrectErrors scans the written field for pixel pairs whose bilinear
//     interpolation would decode to the wrong side of the shape boundary
//     and collapses them to their median.
//
// Font parsing, the rendering of the resulting field, and anti-aliased
// scanline rasterization are not this package's job — a Shape is built from
// whatever source the caller has (glyph outline, SVG path, ...) and the
// Pixmap is whatever pixel container the caller already owns.
//
// # Usage
//
//	shape := msdf.NewShape()
//	c := msdf.NewContour()
//	c.AddEdge(msdf.NewLinearEdge(msdf.Vector2{}, msdf.Vector2{X: 10}))
//	// ... close the contour ...
//	shape.AddContour(c)
//
//	msdf.ColorEdgesSimple(shape, math.Pi/3, 0)
//
//	pm, _ := msdf.NewPixmap[msdf.RGBF32](32, 32)
//	msdf.GenerateMSDF(pm, shape, msdf.Region{Width: 32, Height: 32},
//		4.0, msdf.Vector2{X: 1, Y: 1}, msdf.Vector2{}, msdf.EncodeRGBF32)
//	msdf.CorrectErrors(pm, msdf.Region{Width: 32, Height: 32},
//		msdf.Vector2{X: 0.001, Y: 0.001}, msdf.RGBChannels, msdf.RGBCollapse)
//
// # Shader-side reconstruction
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
// # References
//
//   - msdfgen: https://github.com/Chlumsky/msdfgen
//   - "Shape Decomposition for Multi-channel Distance Fields"
package msdf
