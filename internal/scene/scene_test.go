package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f-mesh-renderer/internal/transform"
)

func TestPixelSceneMatchesRowVectorChain(t *testing.T) {
	p := DefaultParams(ModePixel, 800, 600)
	s, err := New(p)
	require.NoError(t, err)

	f, err := s.Frame(0)
	require.NoError(t, err)
	assert.True(t, f.View.IsIdentity())
	assert.False(t, f.Fallback)

	// In the row-vector convention each matrix is the transpose of ours and
	// the chain reads in application order: scale · rotZ · rotY · rotX ·
	// translation · projection.
	proj, err := transform.Orthographic(800, 600, 800)
	require.NoError(t, err)
	chain := []transform.Mat4{
		transform.Scale(1, 1, 1),
		transform.RotationZ(transform.Deg2Rad(325)),
		transform.RotationY(transform.Deg2Rad(25)),
		transform.RotationX(transform.Deg2Rad(40)),
		transform.Translation(45, 150, 0),
		proj,
	}
	row := chain[0].Transpose()
	for _, m := range chain[1:] {
		row = transform.Multiply(row, m.Transpose())
	}
	assert.True(t, f.MVP.ApproxEqual(row.Transpose(), 1e-12))

	// the F's top-left front corner lands on the translation
	clip := f.MVP.MulVec4(transform.Point(0, 0, 0))
	assert.InDelta(t, 45.0/400-1, clip[0], 1e-12)
	assert.InDelta(t, 1-150.0/300, clip[1], 1e-12)
}

func TestPerspectiveOrbit(t *testing.T) {
	p := DefaultParams(ModePerspective, 640, 480)
	s, err := New(p)
	require.NoError(t, err)

	// centered mesh
	c := s.Mesh.Center()
	assert.InDeltaSlice(t, []float64{0, 0, 0}, c[:], 1e-9)

	f, err := s.Frame(0)
	require.NoError(t, err)
	assert.True(t, f.View.ApproxEqual(transform.Translation(0, 0, -360), 1e-12))
	assert.InDelta(t, 360, f.MVP.MulVec4(transform.Point(0, 0, 0))[3], 1e-9)

	f, err = s.Frame(90)
	require.NoError(t, err)
	cam := f.Camera.MulPoint(transform.Vec3{})
	assert.InDeltaSlice(t, []float64{360, 0, 0}, cam[:], 1e-9)
	origin := f.View.MulPoint(transform.Vec3{})
	assert.InDeltaSlice(t, []float64{0, 0, -360}, origin[:], 1e-9)
	assert.True(t, transform.Multiply(f.Camera, f.View).ApproxEqual(transform.Identity(), 1e-9))
}

func TestLookAtCamera(t *testing.T) {
	p := DefaultParams(ModePerspective, 100, 100)
	p.LookAt = true
	p.CameraHeight = 200
	p.CameraRadius = 150
	s, err := New(p)
	require.NoError(t, err)

	f, err := s.Frame(30)
	require.NoError(t, err)
	origin := f.View.MulPoint(transform.Vec3{})
	assert.InDeltaSlice(t, []float64{0, 0, -250}, origin[:], 1e-9)

	ndc, ok := f.MVP.MulVec4(transform.Point(0, 0, 0)).PerspectiveDivide()
	require.True(t, ok)
	assert.InDelta(t, 0, ndc[0], 1e-9)
	assert.InDelta(t, 0, ndc[1], 1e-9)
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := DefaultParams(ModePerspective, 100, 100)
	p.Near, p.Far = 10, 5
	_, err := New(p)
	assert.ErrorIs(t, err, transform.ErrInvalidProjection)

	p = DefaultParams(ModePerspective, 100, 100)
	p.FOVDeg = 180
	_, err = New(p)
	assert.ErrorIs(t, err, transform.ErrInvalidProjection)

	_, err = New(DefaultParams(ModePixel, 0, 100))
	assert.Error(t, err)

	_, err = New(DefaultParams("isometric", 100, 100))
	assert.Error(t, err)
}

func TestNonInvertibleCamera(t *testing.T) {
	s, err := New(DefaultParams(ModePerspective, 100, 100))
	require.NoError(t, err)

	// flatten the camera after construction
	s.Params.CameraZoom = 0
	_, err = s.Frame(0)
	assert.ErrorIs(t, err, transform.ErrNonInvertible)

	s.Params.FallbackIdentity = true
	f, err := s.Frame(0)
	require.NoError(t, err)
	assert.True(t, f.Fallback)
	assert.True(t, f.View.IsIdentity())
	assert.Equal(t, f.Projection, f.ViewProjection)
}

func TestDegenerateLookAt(t *testing.T) {
	p := DefaultParams(ModePerspective, 100, 100)
	p.LookAt = true
	p.CameraRadius = 0
	s, err := New(p)
	require.NoError(t, err)

	_, err = s.Frame(0)
	assert.ErrorIs(t, err, transform.ErrDegenerateCamera)

	s.Params.FallbackIdentity = true
	f, err := s.Frame(0)
	require.NoError(t, err)
	assert.True(t, f.Fallback)
}

func TestPixelFrameSpinsModel(t *testing.T) {
	s, err := New(DefaultParams(ModePixel, 400, 400))
	require.NoError(t, err)

	f0, err := s.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, s.Model(), f0.Model)

	f, err := s.Frame(90)
	require.NoError(t, err)
	assert.False(t, f.Model.ApproxEqual(f0.Model, 1e-6))
	assert.True(t, f.Camera.IsIdentity())
}

func TestNewDefaultsZeroValues(t *testing.T) {
	s, err := New(Params{
		Mode:         ModePerspective,
		Width:        200,
		Height:       100,
		FOVDeg:       60,
		Near:         1,
		Far:          1000,
		CameraRadius: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Params.CameraZoom)
	assert.Equal(t, [3]float64{1, 1, 1}, s.Params.Scale)

	f, err := s.Frame(45)
	require.NoError(t, err)
	assert.False(t, f.Fallback)
	assert.True(t, f.View.Mul(f.Camera).ApproxEqual(transform.Identity(), 1e-9))
}
