package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsampleSize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	out := Downsample(img, 32, 16)
	assert.Equal(t, image.Rect(0, 0, 32, 16), out.Bounds())

	// already small enough
	assert.Same(t, img, Downsample(img, 64, 32))
}

func TestDownsampleKeepsOpaqueColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	c := color.NRGBA{R: 200, G: 70, B: 120, A: 255}
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	out := Downsample(img, 20, 20)
	assert.Equal(t, c, out.NRGBAAt(10, 10))
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	// left half opaque white, right half fully transparent black
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 20; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	out := Downsample(img, 20, 20)
	edge := out.NRGBAAt(9, 10)
	assert.Greater(t, edge.A, uint8(1))
	assert.GreaterOrEqual(t, edge.R, uint8(250), "color must not be darkened by transparent neighbors")
}
