package mesh

import (
	"errors"
	"fmt"

	"f-mesh-renderer/internal/transform"
)

// ErrPointAtInfinity is returned by Bake when a transform sends a vertex to w=0.
var ErrPointAtInfinity = errors.New("mesh: vertex transformed to infinity")

// Mesh is a non-indexed triangle list: every 3 consecutive positions form a
// triangle, and Colors holds one RGB color per position.
type Mesh struct {
	Name      string
	Positions []transform.Vec3
	Colors    [][3]uint8
}

// Triangles returns the number of triangles.
func (m Mesh) Triangles() int {
	return len(m.Positions) / 3
}

// Validate checks the triangle-list invariants.
func (m Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("mesh %s: %d positions is not a multiple of 3", m.Name, len(m.Positions))
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("mesh %s: %d colors for %d positions", m.Name, len(m.Colors), len(m.Positions))
	}
	return nil
}

// Bounds returns the axis-aligned bounding box. Both are zero for an empty mesh.
func (m Mesh) Bounds() (min, max transform.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return min, max
}

// Center returns the middle of the bounding box.
func (m Mesh) Center() transform.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Scale(0.5)
}

// SignedVolume sums the signed tetrahedra spanned by the origin and each
// triangle. For a closed mesh wound outward it is the enclosed volume;
// inverted winding makes it negative.
func (m Mesh) SignedVolume() float64 {
	var vol float64
	for i := 0; i+2 < len(m.Positions); i += 3 {
		a, b, c := m.Positions[i], m.Positions[i+1], m.Positions[i+2]
		vol += a.Dot(b.Cross(c))
	}
	return vol / 6
}
