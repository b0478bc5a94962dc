// Package scene turns render parameters into the matrices a draw call needs.
package scene

import (
	"errors"
	"fmt"

	"f-mesh-renderer/internal/mesh"
	"f-mesh-renderer/internal/transform"
)

// Mode selects the projection.
type Mode string

const (
	// ModePixel projects a pixel-space box with Orthographic(width, height, width),
	// with y growing downward. The mesh is drawn as authored.
	ModePixel Mode = "pixel"
	// ModePerspective centers the mesh on the origin and looks at it through
	// a perspective frustum from a camera orbiting the Y axis.
	ModePerspective Mode = "perspective"
)

// Params describes a scene. Angles are in degrees.
type Params struct {
	Mode   Mode
	Width  int
	Height int

	Translation [3]float64
	RotationDeg [3]float64
	Scale       [3]float64

	FOVDeg float64
	Near   float64
	Far    float64

	CameraRadius   float64
	CameraHeight   float64
	CameraAngleDeg float64
	CameraZoom     float64 // scales the camera placement; 0 means 1
	LookAt         bool    // aim at the origin instead of looking down -Z

	// FallbackIdentity substitutes an identity view when the camera cannot
	// be inverted, instead of failing the frame.
	FallbackIdentity bool
}

// Scene holds the mesh prepared for its mode and a validated projection.
type Scene struct {
	Params     Params
	Mesh       mesh.Mesh
	projection transform.Mat4
}

// Frame is the full set of matrices for one rendered frame.
type Frame struct {
	AngleDeg       float64
	Model          transform.Mat4
	Camera         transform.Mat4
	View           transform.Mat4
	Projection     transform.Mat4
	ViewProjection transform.Mat4
	MVP            transform.Mat4
	Fallback       bool // View is identity because Camera was not invertible
}

// New validates p, builds the projection and prepares the letter F.
func New(p Params) (*Scene, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", p.Width, p.Height)
	}
	if p.Scale == [3]float64{} {
		p.Scale = [3]float64{1, 1, 1}
	}
	if p.CameraZoom == 0 {
		p.CameraZoom = 1
	}

	s := &Scene{Params: p, Mesh: mesh.FLetter()}

	var err error
	switch p.Mode {
	case ModePixel:
		w := float64(p.Width)
		s.projection, err = transform.Orthographic(w, float64(p.Height), w)
	case ModePerspective:
		aspect := float64(p.Width) / float64(p.Height)
		s.projection, err = transform.Perspective(transform.Deg2Rad(p.FOVDeg), aspect, p.Near, p.Far)
		if err == nil {
			s.Mesh, err = mesh.Bake(s.Mesh, mesh.Centering(s.Mesh))
		}
	default:
		return nil, fmt.Errorf("scene: unknown mode %q", p.Mode)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

// Projection returns the validated projection matrix.
func (s *Scene) Projection() transform.Mat4 {
	return s.projection
}

// Model applies scale, then rotation about Z, Y and X, then translation.
func (s *Scene) Model() transform.Mat4 {
	return s.model(0)
}

func (s *Scene) model(yawDeg float64) transform.Mat4 {
	p := s.Params
	return transform.Compose(
		transform.Translation(p.Translation[0], p.Translation[1], p.Translation[2]),
		transform.RotationX(transform.Deg2Rad(p.RotationDeg[0])),
		transform.RotationY(transform.Deg2Rad(p.RotationDeg[1]+yawDeg)),
		transform.RotationZ(transform.Deg2Rad(p.RotationDeg[2])),
		transform.Scale(p.Scale[0], p.Scale[1], p.Scale[2]),
	)
}

// Camera returns the camera's world placement for an orbit angle.
// Pixel mode has no camera and returns the identity.
func (s *Scene) Camera(angleDeg float64) (transform.Mat4, error) {
	p := s.Params
	if p.Mode == ModePixel {
		return transform.Identity(), nil
	}

	zoom := transform.Scale(p.CameraZoom, p.CameraZoom, p.CameraZoom)
	orbit := transform.RotationY(transform.Deg2Rad(angleDeg))
	if !p.LookAt {
		return transform.Compose(orbit, transform.Translation(0, p.CameraHeight, p.CameraRadius), zoom), nil
	}

	eye := orbit.MulPoint(transform.Vec3{0, p.CameraHeight, p.CameraRadius})
	cam, err := transform.LookAt(eye, transform.Vec3{}, transform.Vec3{0, 1, 0})
	if err != nil {
		return transform.Mat4{}, err
	}
	return transform.Multiply(cam, zoom), nil
}

// Frame composes every matrix for the given animation angle: the camera
// orbits by angleDeg in perspective mode, and the model turns by angleDeg
// around its Y axis in pixel mode, which has no camera. Projection errors
// were reported by New; a camera that cannot be inverted is reported here
// unless FallbackIdentity is set.
func (s *Scene) Frame(angleDeg float64) (Frame, error) {
	f := Frame{
		AngleDeg:   angleDeg,
		Model:      s.Model(),
		Projection: s.projection,
	}
	if s.Params.Mode == ModePixel {
		f.Model = s.model(angleDeg)
	}

	cam, err := s.Camera(angleDeg)
	if err == nil {
		f.Camera = cam
		f.View, err = transform.Invert(cam)
	}
	if err != nil {
		fallible := errors.Is(err, transform.ErrNonInvertible) || errors.Is(err, transform.ErrDegenerateCamera)
		if !s.Params.FallbackIdentity || !fallible {
			return Frame{}, fmt.Errorf("scene: camera at %g°: %w", angleDeg, err)
		}
		f.View = transform.Identity()
		f.Fallback = true
	}

	f.ViewProjection = transform.Multiply(f.Projection, f.View)
	f.MVP = transform.Multiply(f.ViewProjection, f.Model)
	return f, nil
}

// DefaultParams returns the demo scene for a mode: in pixel mode the F sits
// at (45, 150) turned by (40°, 25°, 325°); in perspective mode a 60° camera
// 360 units out looks at the centered F.
func DefaultParams(mode Mode, width, height int) Params {
	p := Params{
		Mode:   mode,
		Width:  width,
		Height: height,
		Scale:  [3]float64{1, 1, 1},
	}
	switch mode {
	case ModePixel:
		p.Translation = [3]float64{45, 150, 0}
		p.RotationDeg = [3]float64{40, 25, 325}
	case ModePerspective:
		p.FOVDeg = 60
		p.Near = 1
		p.Far = 2000
		p.CameraRadius = 360
		p.CameraZoom = 1
	}
	return p
}
