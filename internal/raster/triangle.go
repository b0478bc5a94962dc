package raster

import "math"

// Vertex is a vertex after the perspective divide and viewport mapping.
type Vertex struct {
	X, Y  float64 // screen pixels, y down
	Z     float64 // NDC depth in [-1, 1]
	InvW  float64 // 1/w_clip, for perspective-correct interpolation
	Color [3]uint8
}

// RasterizeTriangle fills a screen-space triangle with z-buffering and
// perspective-correct color interpolation. Pixels are sampled at their
// centers. lc may be nil for unlit output, in which case shade is ignored.
//
// HOT PATH: no allocation in the pixel loop.
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, lc *LightConfig, shade float64) int {
	x0, y0 := v[0].X, v[0].Y
	x1, y1 := v[1].X, v[1].Y
	x2, y2 := v[2].X, v[2].Y

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return 0
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return 0
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	z0, z1, z2 := v[0].Z, v[1].Z, v[2].Z
	q0, q1, q2 := v[0].InvW, v[1].InvW, v[2].InvW

	written := 0
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			// NDC depth is affine in screen space
			z := w0*z0 + w1*z1 + w2*z2
			if z < -1 || z > 1 {
				continue
			}
			zIdx := rowOff + sx
			if z >= fb.Depth[zIdx] {
				continue
			}
			fb.Depth[zIdx] = z

			// Perspective-correct weights
			p0, p1, p2 := w0*q0, w1*q1, w2*q2
			norm := 1.0 / (p0 + p1 + p2)
			p0 *= norm
			p1 *= norm
			p2 *= norm

			pxIdx := zIdx * 4
			for ch := 0; ch < 3; ch++ {
				c := clamp255(p0*float64(v[0].Color[ch]) + p1*float64(v[1].Color[ch]) + p2*float64(v[2].Color[ch]))
				if lc != nil {
					c = lc.Apply(c, shade)
				}
				fb.Color[pxIdx+ch] = c
			}
			fb.Color[pxIdx+3] = 255
			written++
		}
	}
	return written
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
