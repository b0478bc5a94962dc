package transform

import (
	"fmt"
	"math"
)

// Orthographic maps a pixel-space box into clip space:
// x in [0, width] to [-1, 1], y in [0, height] to [1, -1] (y grows downward),
// z in [-depth/2, depth/2] to [-1, 1].
func Orthographic(width, height, depth float64) (Mat4, error) {
	if !finite(width, height, depth) || width <= 0 || height <= 0 || depth <= 0 {
		return Mat4{}, fmt.Errorf("orthographic %gx%gx%g: %w", width, height, depth, ErrInvalidProjection)
	}
	return Mat4{
		2 / width, 0, 0, -1,
		0, -2 / height, 0, 1,
		0, 0, 2 / depth, 0,
		0, 0, 0, 1,
	}, nil
}

// OrthographicBox maps the eye-space box [left,right]×[bottom,top]×[-near,-far]
// into clip space, with z=-near going to -1 and z=-far to +1.
func OrthographicBox(left, right, bottom, top, near, far float64) (Mat4, error) {
	if !finite(left, right, bottom, top, near, far) || right <= left || top <= bottom || far <= near {
		return Mat4{}, fmt.Errorf("orthographic box [%g,%g]x[%g,%g]x[%g,%g]: %w",
			left, right, bottom, top, near, far, ErrInvalidProjection)
	}
	rl := right - left
	tb := top - bottom
	fn := far - near
	return Mat4{
		2 / rl, 0, 0, -(right + left) / rl,
		0, 2 / tb, 0, -(top + bottom) / tb,
		0, 0, -2 / fn, -(far + near) / fn,
		0, 0, 0, 1,
	}, nil
}

// Perspective returns a frustum projection for a camera looking down -Z.
// fovY is the vertical field of view in radians and must lie in (0, π);
// aspect is viewport width / height. After the divide by w, z=-near maps
// to -1 and z=-far maps to +1.
func Perspective(fovY, aspect, near, far float64) (Mat4, error) {
	switch {
	case !finite(fovY, aspect, near, far):
		return Mat4{}, fmt.Errorf("perspective: non-finite input: %w", ErrInvalidProjection)
	case fovY <= 0 || fovY >= math.Pi:
		return Mat4{}, fmt.Errorf("perspective: fov %g outside (0, π): %w", fovY, ErrInvalidProjection)
	case aspect <= 0:
		return Mat4{}, fmt.Errorf("perspective: aspect %g <= 0: %w", aspect, ErrInvalidProjection)
	case near <= 0:
		return Mat4{}, fmt.Errorf("perspective: near %g <= 0: %w", near, ErrInvalidProjection)
	case far <= near:
		return Mat4{}, fmt.Errorf("perspective: far %g <= near %g: %w", far, near, ErrInvalidProjection)
	}

	f := 1 / math.Tan(fovY/2)
	rangeInv := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) * rangeInv, 2 * near * far * rangeInv,
		0, 0, -1, 0,
	}, nil
}

// LookAt returns the world placement of a camera at eye looking at target.
// It is a camera matrix, not a view matrix: invert it to get the view.
func LookAt(eye, target, up Vec3) (Mat4, error) {
	zAxis := eye.Sub(target)
	if zAxis.Len() < 1e-12 {
		return Mat4{}, fmt.Errorf("look at: eye equals target: %w", ErrDegenerateCamera)
	}
	zAxis = zAxis.Normalize()
	xAxis := up.Cross(zAxis)
	if xAxis.Len() < 1e-12 {
		return Mat4{}, fmt.Errorf("look at: up parallel to view direction: %w", ErrDegenerateCamera)
	}
	xAxis = xAxis.Normalize()
	yAxis := zAxis.Cross(xAxis)

	return Mat4{
		xAxis[0], yAxis[0], zAxis[0], eye[0],
		xAxis[1], yAxis[1], zAxis[1], eye[1],
		xAxis[2], yAxis[2], zAxis[2], eye[2],
		0, 0, 0, 1,
	}, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
