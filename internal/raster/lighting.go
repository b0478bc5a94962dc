package raster

import (
	"math"

	"f-mesh-renderer/internal/transform"
)

// LightConfig holds a single directional light for flat shading.
type LightConfig struct {
	Dir      transform.Vec3 // unit vector pointing towards the light, world space
	Ambient  float64
	Direct   float64
	InvGamma float64
}

// DefaultLightConfig returns a key light above and to the right of the viewer.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Dir:      transform.Vec3{0.5, 0.7, 1}.Normalize(),
		Ambient:  0.35,
		Direct:   0.75,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the lighting scalar for a unit face normal.
// Lambertian (abs for double-sided)
func (lc *LightConfig) Shade(normal transform.Vec3) float64 {
	return lc.Ambient + math.Abs(normal.Dot(lc.Dir))*lc.Direct
}

// Apply scales an sRGB channel by shade in linear space.
func (lc *LightConfig) Apply(c uint8, shade float64) uint8 {
	return clamp255(math.Pow(srgbToLinear[c]*shade, lc.InvGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}
