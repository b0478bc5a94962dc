package mesh

import (
	"fmt"
	"math"

	"f-mesh-renderer/internal/transform"
)

// Bake applies t once to every vertex and returns a new mesh; m is not
// modified. Projective transforms are divided through by w.
func Bake(m Mesh, t transform.Mat4) (Mesh, error) {
	out := Mesh{
		Name:      m.Name,
		Positions: make([]transform.Vec3, len(m.Positions)),
		Colors:    append([][3]uint8(nil), m.Colors...),
	}
	for i, p := range m.Positions {
		v := transform.TransformVector(t, p.Vec4(1))
		if v[3] == 1 {
			out.Positions[i] = v.XYZ()
			continue
		}
		q, ok := v.PerspectiveDivide()
		if !ok {
			return Mesh{}, fmt.Errorf("bake %s vertex %d: %w", m.Name, i, ErrPointAtInfinity)
		}
		out.Positions[i] = q
	}

	// An affine reflection flips every triangle inside out; swap two corners to keep
	// the outward winding.
	if t.IsAffine() && t.Determinant() < 0 {
		for i := 0; i+2 < len(out.Positions); i += 3 {
			out.Positions[i+1], out.Positions[i+2] = out.Positions[i+2], out.Positions[i+1]
			if len(out.Colors) == len(out.Positions) {
				out.Colors[i+1], out.Colors[i+2] = out.Colors[i+2], out.Colors[i+1]
			}
		}
	}
	return out, nil
}

// Centering returns the transform that turns a pixel-space mesh (y down)
// into a y-up mesh centered on the origin: translate the bounding-box center
// to the origin, then rotate π around X.
func Centering(m Mesh) transform.Mat4 {
	c := m.Center()
	return transform.Compose(
		transform.RotationX(math.Pi),
		transform.Translation(-c[0], -c[1], -c[2]),
	)
}
