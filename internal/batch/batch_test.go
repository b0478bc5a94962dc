package batch

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"

	"f-mesh-renderer/internal/raster"
	"f-mesh-renderer/internal/scene"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	img.SetNRGBA(2, 3, color.NRGBA{R: 200, G: 70, B: 120, A: 255})
	return img
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{".webp": FormatWebP, "PNG": FormatPNG, "tga": FormatTGA} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	img := testImage()
	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		FormatWebP: func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatTGA:  func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
	}
	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, format))
			out, err := decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), out.Bounds())
			r, g, b, a := out.At(2, 3).RGBA()
			assert.Equal(t, []uint32{200, 70, 120, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
		})
	}
	assert.Error(t, Encode(&bytes.Buffer{}, img, "gif"))
}

func perspectiveConfig(t *testing.T, dir string) Config {
	t.Helper()
	s, err := scene.New(scene.DefaultParams(scene.ModePerspective, 64, 48))
	require.NoError(t, err)
	return Config{
		Scene:       s,
		OutputDir:   dir,
		Format:      FormatPNG,
		Frames:      4,
		OrbitDeg:    360,
		Supersample: 2,
		Workers:     3,
		Raster:      raster.Options{CullBackFaces: true},
	}
}

func TestRunRendersEveryFrame(t *testing.T) {
	dir := t.TempDir()
	cfg := perspectiveConfig(t, dir)

	results := Run(cfg)
	require.Len(t, results, 4)
	for i, r := range results {
		require.True(t, r.Success, r.Error)
		assert.Equal(t, i, r.Frame)
		assert.InDelta(t, float64(i)*90, r.AngleDeg, 1e-12)
		assert.Greater(t, r.Stats.Drawn, 0)
		assert.Equal(t, 32, r.Stats.Triangles)

		f, err := os.Open(r.Path)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())

		// the F sits in the middle of every frame
		_, _, _, a := img.At(32, 24).RGBA()
		assert.NotZero(t, a)
	}

	// frame 0 and frame 2 look at opposite sides of the F
	assert.NotEqual(t, results[0].MVP, results[2].MVP)
}

func TestRunReportsCameraFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := perspectiveConfig(t, dir)
	cfg.Scene.Params.CameraZoom = 0
	cfg.Frames = 2

	results := Run(cfg)
	for _, r := range results {
		assert.False(t, r.Success)
		assert.Contains(t, r.Error, "non-invertible")
	}

	cfg.Scene.Params.FallbackIdentity = true
	results = Run(cfg)
	for _, r := range results {
		assert.True(t, r.Success, r.Error)
		assert.True(t, r.Fallback)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := perspectiveConfig(t, dir)
	cfg.Frames = 2
	cfg.Format = FormatTGA
	results := Run(cfg)

	path := filepath.Join(dir, "manifest.json")
	require.NoError(t, WriteManifest(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "frame_0001.tga", entries[1].Image)
	assert.Equal(t, results[1].MVP, entries[1].MVP)
	assert.Equal(t, 180.0, entries[1].AngleDeg)
}
