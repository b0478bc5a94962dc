package mesh

import "f-mesh-renderer/internal/transform"

type quad struct {
	name  string
	color [3]uint8
	verts [6]transform.Vec3 // two triangles wound with the outward normal (b-a)×(c-a)
}

// fQuads describes the letter F in pixel space: x right, y down, 100×150×30,
// with the front face on the z=0 plane.
var fQuads = []quad{
	{"left column front", [3]uint8{200, 70, 120}, [6]transform.Vec3{
		{0, 0, 0}, {0, 150, 0}, {30, 0, 0},
		{0, 150, 0}, {30, 150, 0}, {30, 0, 0},
	}},
	{"top rung front", [3]uint8{200, 70, 120}, [6]transform.Vec3{
		{30, 0, 0}, {30, 30, 0}, {100, 0, 0},
		{30, 30, 0}, {100, 30, 0}, {100, 0, 0},
	}},
	{"middle rung front", [3]uint8{200, 70, 120}, [6]transform.Vec3{
		{30, 60, 0}, {30, 90, 0}, {67, 60, 0},
		{30, 90, 0}, {67, 90, 0}, {67, 60, 0},
	}},
	{"left column back", [3]uint8{80, 70, 200}, [6]transform.Vec3{
		{0, 0, 30}, {30, 0, 30}, {0, 150, 30},
		{0, 150, 30}, {30, 0, 30}, {30, 150, 30},
	}},
	{"top rung back", [3]uint8{80, 70, 200}, [6]transform.Vec3{
		{30, 0, 30}, {100, 0, 30}, {30, 30, 30},
		{30, 30, 30}, {100, 0, 30}, {100, 30, 30},
	}},
	{"middle rung back", [3]uint8{80, 70, 200}, [6]transform.Vec3{
		{30, 60, 30}, {67, 60, 30}, {30, 90, 30},
		{30, 90, 30}, {67, 60, 30}, {67, 90, 30},
	}},
	{"top", [3]uint8{70, 200, 210}, [6]transform.Vec3{
		{0, 0, 0}, {100, 0, 0}, {100, 0, 30},
		{0, 0, 0}, {100, 0, 30}, {0, 0, 30},
	}},
	{"top rung right", [3]uint8{200, 200, 70}, [6]transform.Vec3{
		{100, 0, 0}, {100, 30, 0}, {100, 30, 30},
		{100, 0, 0}, {100, 30, 30}, {100, 0, 30},
	}},
	{"under top rung", [3]uint8{210, 100, 70}, [6]transform.Vec3{
		{30, 30, 0}, {30, 30, 30}, {100, 30, 30},
		{30, 30, 0}, {100, 30, 30}, {100, 30, 0},
	}},
	{"between top rung and middle", [3]uint8{210, 160, 70}, [6]transform.Vec3{
		{30, 30, 0}, {30, 60, 30}, {30, 30, 30},
		{30, 30, 0}, {30, 60, 0}, {30, 60, 30},
	}},
	{"top of middle rung", [3]uint8{70, 180, 210}, [6]transform.Vec3{
		{30, 60, 0}, {67, 60, 30}, {30, 60, 30},
		{30, 60, 0}, {67, 60, 0}, {67, 60, 30},
	}},
	{"front of middle rung", [3]uint8{100, 70, 210}, [6]transform.Vec3{
		{67, 60, 0}, {67, 90, 30}, {67, 60, 30},
		{67, 60, 0}, {67, 90, 0}, {67, 90, 30},
	}},
	{"bottom of middle rung", [3]uint8{76, 210, 100}, [6]transform.Vec3{
		{30, 90, 0}, {30, 90, 30}, {67, 90, 30},
		{30, 90, 0}, {67, 90, 30}, {67, 90, 0},
	}},
	{"front of bottom", [3]uint8{140, 210, 80}, [6]transform.Vec3{
		{30, 90, 0}, {30, 150, 30}, {30, 90, 30},
		{30, 90, 0}, {30, 150, 0}, {30, 150, 30},
	}},
	{"bottom", [3]uint8{90, 130, 110}, [6]transform.Vec3{
		{0, 150, 0}, {0, 150, 30}, {30, 150, 30},
		{0, 150, 0}, {30, 150, 30}, {30, 150, 0},
	}},
	{"left side", [3]uint8{160, 160, 220}, [6]transform.Vec3{
		{0, 0, 0}, {0, 0, 30}, {0, 150, 30},
		{0, 0, 0}, {0, 150, 30}, {0, 150, 0},
	}},
}

// FLetter returns the 96-vertex letter F with one color per face.
func FLetter() Mesh {
	m := Mesh{
		Name:      "F",
		Positions: make([]transform.Vec3, 0, len(fQuads)*6),
		Colors:    make([][3]uint8, 0, len(fQuads)*6),
	}
	for _, q := range fQuads {
		for _, v := range q.verts {
			m.Positions = append(m.Positions, v)
			m.Colors = append(m.Colors, q.color)
		}
	}
	return m
}

// FaceNames lists the F's faces in vertex order, two triangles each.
func FaceNames() []string {
	names := make([]string, len(fQuads))
	for i, q := range fQuads {
		names[i] = q.name
	}
	return names
}
