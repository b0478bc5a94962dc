package transform

import (
	"fmt"
	"math"
)

// InvertEpsilon is the smallest |det| / Π‖row‖ that Invert accepts, measured
// after each row has been divided by its largest absolute element. The ratio
// is 1 for orthogonal rows and 0 for singular ones, so the threshold does not
// depend on the magnitude of the matrix. Affine matrices are judged on their
// 3×3 linear block alone, so translation never affects the outcome.
const InvertEpsilon = 1e-12

// minor3 returns the determinant of the 3×3 submatrix left after removing
// row r and column c.
func minor3(m Mat4, r, c int) float64 {
	var s [9]float64
	k := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			s[k] = m[i*4+j]
			k++
		}
	}
	return s[0]*(s[4]*s[8]-s[5]*s[7]) -
		s[1]*(s[3]*s[8]-s[5]*s[6]) +
		s[2]*(s[3]*s[7]-s[4]*s[6])
}

func cofactor(m Mat4, r, c int) float64 {
	if (r+c)%2 == 1 {
		return -minor3(m, r, c)
	}
	return minor3(m, r, c)
}

// Determinant expands along the first row.
func (m Mat4) Determinant() float64 {
	return m[0]*cofactor(m, 0, 0) + m[1]*cofactor(m, 0, 1) +
		m[2]*cofactor(m, 0, 2) + m[3]*cofactor(m, 0, 3)
}

// Invert returns the inverse of m. It returns ErrNonInvertible when m is
// singular within InvertEpsilon or not finite.
func Invert(m Mat4) (Mat4, error) {
	if !m.IsFinite() {
		return Mat4{}, fmt.Errorf("invert: non-finite element: %w", ErrNonInvertible)
	}
	if m.IsAffine() {
		return invertAffine(m)
	}
	return invertProjective(m)
}

// invertAffine inverts [L t; 0 1] as [L⁻¹ -L⁻¹t; 0 1].
func invertAffine(m Mat4) (Mat4, error) {
	// L = D·n with D the diagonal of row scales
	var n [9]float64
	var scale [3]float64
	for r := 0; r < 3; r++ {
		s := math.Max(math.Abs(m[r*4]), math.Max(math.Abs(m[r*4+1]), math.Abs(m[r*4+2])))
		if s == 0 {
			return Mat4{}, fmt.Errorf("invert: zero row %d: %w", r, ErrNonInvertible)
		}
		scale[r] = s
		for c := 0; c < 3; c++ {
			n[r*3+c] = m[r*4+c] / s
		}
	}

	adj := [9]float64{
		n[4]*n[8] - n[5]*n[7], n[2]*n[7] - n[1]*n[8], n[1]*n[5] - n[2]*n[4],
		n[5]*n[6] - n[3]*n[8], n[0]*n[8] - n[2]*n[6], n[2]*n[3] - n[0]*n[5],
		n[3]*n[7] - n[4]*n[6], n[1]*n[6] - n[0]*n[7], n[0]*n[4] - n[1]*n[3],
	}
	det := n[0]*adj[0] + n[1]*adj[3] + n[2]*adj[6]

	bound := 1.0
	for r := 0; r < 3; r++ {
		bound *= math.Sqrt(n[r*3]*n[r*3] + n[r*3+1]*n[r*3+1] + n[r*3+2]*n[r*3+2])
	}
	if math.Abs(det) <= InvertEpsilon*bound {
		return Mat4{}, fmt.Errorf("invert: normalized determinant %g: %w", det, ErrNonInvertible)
	}

	// L⁻¹ = n⁻¹·D⁻¹
	var inv Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[r*4+c] = adj[r*3+c] / det / scale[c]
		}
	}
	for r := 0; r < 3; r++ {
		inv[r*4+3] = -(inv[r*4]*m[3] + inv[r*4+1]*m[7] + inv[r*4+2]*m[11])
	}
	inv[15] = 1
	return inv, nil
}

// invertProjective inverts a general matrix as adjugate / determinant of its
// row-normalized copy.
func invertProjective(m Mat4) (Mat4, error) {
	var n Mat4
	var scale [4]float64
	for r := 0; r < 4; r++ {
		s := 0.0
		for c := 0; c < 4; c++ {
			s = math.Max(s, math.Abs(m[r*4+c]))
		}
		if s == 0 {
			return Mat4{}, fmt.Errorf("invert: zero row %d: %w", r, ErrNonInvertible)
		}
		scale[r] = s
		for c := 0; c < 4; c++ {
			n[r*4+c] = m[r*4+c] / s
		}
	}

	var cof Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cof[r*4+c] = cofactor(n, r, c)
		}
	}
	det := n[0]*cof[0] + n[1]*cof[1] + n[2]*cof[2] + n[3]*cof[3]

	bound := 1.0
	for r := 0; r < 4; r++ {
		bound *= math.Sqrt(n[r*4]*n[r*4] + n[r*4+1]*n[r*4+1] + n[r*4+2]*n[r*4+2] + n[r*4+3]*n[r*4+3])
	}
	if math.Abs(det) <= InvertEpsilon*bound {
		return Mat4{}, fmt.Errorf("invert: normalized determinant %g: %w", det, ErrNonInvertible)
	}

	// m⁻¹ = n⁻¹·D⁻¹, n⁻¹ = transpose(cofactors) / det
	var inv Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			inv[r*4+c] = cof[c*4+r] / det / scale[c]
		}
	}
	return inv, nil
}
