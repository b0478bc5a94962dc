package raster

import (
	"f-mesh-renderer/internal/mesh"
	"f-mesh-renderer/internal/transform"
)

// minW is the smallest clip-space w a vertex may have. Triangles that cross
// the camera plane are dropped rather than clipped.
const minW = 1e-9

// Options controls fixed-function state for a draw call.
type Options struct {
	CullBackFaces bool         // drop triangles wound clockwise in NDC
	Light         *LightConfig // nil draws vertex colors unlit
}

// Stats counts what happened to each triangle of a draw call.
type Stats struct {
	Triangles int
	Clipped   int // behind the camera or entirely outside the clip volume
	Culled    int
	Drawn     int
	Fragments int
}

func (s *Stats) Add(o Stats) {
	s.Triangles += o.Triangles
	s.Clipped += o.Clipped
	s.Culled += o.Culled
	s.Drawn += o.Drawn
	s.Fragments += o.Fragments
}

// Draw renders m with the matrix viewProj·model, the way a vertex shader
// computing gl_Position = u_matrix * a_position would. model is kept
// separate so lighting can use world-space normals.
func Draw(fb *FrameBuffer, m mesh.Mesh, model, viewProj transform.Mat4, opts Options) Stats {
	mvp := transform.Multiply(viewProj, model)
	stats := Stats{Triangles: m.Triangles()}

	halfW := float64(fb.Width) / 2
	halfH := float64(fb.Height) / 2

	for t := 0; t < stats.Triangles; t++ {
		base := t * 3

		var clip [3]transform.Vec4
		behind := false
		for k := 0; k < 3; k++ {
			clip[k] = transform.TransformVector(mvp, m.Positions[base+k].Vec4(1))
			if clip[k][3] < minW {
				behind = true
			}
		}
		if behind || outsideClipVolume(clip) {
			stats.Clipped++
			continue
		}

		var sv [3]Vertex
		for k := 0; k < 3; k++ {
			ndc, _ := clip[k].PerspectiveDivide()
			sv[k] = Vertex{
				X:     (ndc[0] + 1) * halfW,
				Y:     (1 - ndc[1]) * halfH,
				Z:     ndc[2],
				InvW:  1 / clip[k][3],
				Color: m.Colors[base+k],
			}
		}

		// Counter-clockwise in NDC is clockwise on screen because y flips.
		area := (sv[1].X-sv[0].X)*(sv[2].Y-sv[0].Y) - (sv[2].X-sv[0].X)*(sv[1].Y-sv[0].Y)
		if opts.CullBackFaces && area >= 0 {
			stats.Culled++
			continue
		}

		shade := 1.0
		if opts.Light != nil {
			a := model.MulPoint(m.Positions[base])
			b := model.MulPoint(m.Positions[base+1])
			c := model.MulPoint(m.Positions[base+2])
			shade = opts.Light.Shade(b.Sub(a).Cross(c.Sub(a)).Normalize())
		}

		stats.Fragments += RasterizeTriangle(fb, sv, opts.Light, shade)
		stats.Drawn++
	}
	return stats
}

// outsideClipVolume reports whether all three vertices lie beyond the same
// clip plane, -w <= x,y,z <= w.
func outsideClipVolume(c [3]transform.Vec4) bool {
	for axis := 0; axis < 3; axis++ {
		below, above := 0, 0
		for k := 0; k < 3; k++ {
			if c[k][axis] < -c[k][3] {
				below++
			}
			if c[k][axis] > c[k][3] {
				above++
			}
		}
		if below == 3 || above == 3 {
			return true
		}
	}
	return false
}
