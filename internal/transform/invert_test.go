package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseLaw(t *testing.T) {
	persp, err := Perspective(Deg2Rad(60), 1.5, 1, 2000)
	require.NoError(t, err)

	ms := map[string]Mat4{
		"identity":    Identity(),
		"translation": Translation(45, 150, -3),
		"rotation":    Compose(RotationX(0.7), RotationY(0.436), RotationZ(5.67)),
		"reflection":  Scale(-1, 2, 0.25),
		"camera":      Compose(RotationY(Deg2Rad(30)), Translation(0, 0, 300)),
		"trs":         Compose(Translation(-150, 0, -360), RotationX(math.Pi), Scale(3, 3, 3)),
		"perspective": persp,
		"dense": {
			2, -1, 0, 3,
			1, 4, -2, 0,
			0, 3, 5, -1,
			1, 0, 2, 6,
		},
	}
	for name, m := range ms {
		t.Run(name, func(t *testing.T) {
			inv, err := Invert(m)
			require.NoError(t, err)
			assert.True(t, Multiply(m, inv).ApproxEqual(Identity(), 1e-5), "M·M⁻¹")
			assert.True(t, Multiply(inv, m).ApproxEqual(Identity(), 1e-5), "M⁻¹·M")
		})
	}
}

func TestInvertMatchesMathGL(t *testing.T) {
	g := mgl64.Translate3D(3, -4, 2).
		Mul4(mgl64.HomogRotate3DY(1.1)).
		Mul4(mgl64.Scale3D(2, 0.5, -3))
	inv, err := Invert(fromMGL(g))
	require.NoError(t, err)
	assertMat(t, fromMGL(g.Inv()), inv, 1e-9)
	assert.InDelta(t, g.Det(), fromMGL(g).Determinant(), 1e-9)
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, 1.0, Identity().Determinant())
	assert.InDelta(t, 24.0, Scale(2, 3, 4).Determinant(), 1e-12)
	assert.InDelta(t, -1.0, Scale(-1, 1, 1).Determinant(), 1e-12)
	assert.InDelta(t, 1.0, RotationZ(1.3).Determinant(), 1e-12)
}

func TestInvertRejectsSingular(t *testing.T) {
	_, err := Invert(Mat4{})
	assert.ErrorIs(t, err, ErrNonInvertible)

	// flattening scale
	_, err = Invert(Scale(1, 0, 1))
	assert.ErrorIs(t, err, ErrNonInvertible)

	// two equal rows
	_, err = Invert(Mat4{
		1, 2, 3, 4,
		1, 2, 3, 4,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	assert.ErrorIs(t, err, ErrNonInvertible)

	// rows dependent up to rounding
	_, err = Invert(Mat4{
		1, 2, 3, 0,
		2, 4 + 1e-14, 6, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	assert.ErrorIs(t, err, ErrNonInvertible)

	nan := Identity()
	nan[0] = math.NaN()
	_, err = Invert(nan)
	assert.ErrorIs(t, err, ErrNonInvertible)
}

func TestInvertAcceptsSmallButRegular(t *testing.T) {
	// determinant 1e-9 is small in absolute terms but well conditioned
	m := Scale(1e-3, 1e-3, 1e-3)
	inv, err := Invert(m)
	require.NoError(t, err)
	assertMat(t, Scale(1e3, 1e3, 1e3), inv, 1e-6)

	inv, err = Invert(Translation(1e6, 0, 0))
	require.NoError(t, err)
	assertMat(t, Translation(-1e6, 0, 0), inv, 1e-6)
}

func TestInvertIgnoresMagnitude(t *testing.T) {
	inv, err := Invert(Translation(1e200, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, -1e200, inv[3])
	assert.True(t, inv.ApproxEqual(Translation(-1e200, 0, 0), 0))

	for _, s := range []float64{1e-150, 1e-110, 1e120, 1e150} {
		inv, err := Invert(Scale(s, s, s))
		require.NoError(t, err, "scale %g", s)
		assert.InEpsilon(t, 1/s, inv[0], 1e-12)
		assert.InEpsilon(t, 1/s, inv[10], 1e-12)
		assert.Equal(t, 1.0, inv[15])
	}

	// projective input with extreme row magnitudes
	p, err := Perspective(Deg2Rad(60), 1, 1, 1000)
	require.NoError(t, err)
	p[0] *= 1e200
	p[5] *= 1e200
	inv, err = Invert(p)
	require.NoError(t, err)
	assert.True(t, inv.IsFinite())
	q := inv.MulVec4(p.MulVec4(Point(1, 2, -3)))
	assert.InEpsilon(t, 1.0, q[0]/q[3], 1e-9)
	assert.InEpsilon(t, 2.0, q[1]/q[3], 1e-9)
	assert.InEpsilon(t, -3.0, q[2]/q[3], 1e-9)
}
