package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"f-mesh-renderer/internal/batch"
	"f-mesh-renderer/internal/scene"
)

// Config holds all configurable scene, output and render settings.
type Config struct {
	// Scene
	Mode        string      `json:"mode"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Translation *[3]float64 `json:"translation"`
	RotationDeg *[3]float64 `json:"rotation_deg"`
	Scale       *[3]float64 `json:"scale"`

	// Perspective camera
	FOVDeg           float64  `json:"fov_deg"`
	Near             float64  `json:"near"`
	Far              float64  `json:"far"`
	CameraRadius     float64  `json:"camera_radius"`
	CameraHeight     float64  `json:"camera_height"`
	CameraAngleDeg   float64  `json:"camera_angle_deg"`
	CameraZoom       *float64 `json:"camera_zoom"`
	LookAt           bool     `json:"look_at"`
	FallbackIdentity bool     `json:"fallback_identity"`

	// Animation
	Frames   int      `json:"frames"`
	OrbitDeg *float64 `json:"orbit_deg"` // default: a full turn when Frames > 1

	// Output
	OutputDir  string   `json:"output_dir"`
	Format     string   `json:"format"`
	Background [4]uint8 `json:"background"`

	// Render settings
	Supersample int   `json:"supersample"`
	Workers     int   `json:"workers"`
	Cull        *bool `json:"cull"`
	Lighting    bool  `json:"lighting"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Mode      string
	Width     int
	Height    int
	Frames    int
	OrbitDeg  float64
	OutputDir string
	Format    string
	Workers   int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OrbitDeg != 0 {
		orbit := flags.OrbitDeg
		c.OrbitDeg = &orbit
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Mode == "" {
		c.Mode = string(scene.ModePixel)
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}

	// Scene defaults depend on the mode
	def := scene.DefaultParams(scene.Mode(c.Mode), c.Width, c.Height)
	if c.Translation == nil {
		c.Translation = &def.Translation
	}
	if c.RotationDeg == nil {
		c.RotationDeg = &def.RotationDeg
	}
	if c.Scale == nil {
		c.Scale = &def.Scale
	}
	if c.FOVDeg == 0 {
		c.FOVDeg = def.FOVDeg
	}
	if c.Near == 0 {
		c.Near = def.Near
	}
	if c.Far == 0 {
		c.Far = def.Far
	}
	if c.CameraRadius == 0 {
		c.CameraRadius = def.CameraRadius
	}
	if c.CameraZoom == nil {
		one := 1.0
		c.CameraZoom = &one
	}

	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.OrbitDeg == nil {
		orbit := 0.0
		if c.Frames > 1 {
			orbit = 360
		}
		c.OrbitDeg = &orbit
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = batch.FormatWebP
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Cull == nil {
		on := true
		c.Cull = &on
	}
}

// Validate checks settings that Resolve cannot default. Projection
// parameters are checked when the scene is built.
func (c *Config) Validate() error {
	switch scene.Mode(c.Mode) {
	case scene.ModePixel, scene.ModePerspective:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	f, err := batch.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Format = f
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d > 8", c.Supersample)
	}
	return nil
}

// SceneParams converts the resolved config into scene parameters.
func (c *Config) SceneParams() scene.Params {
	p := scene.Params{
		Mode:             scene.Mode(c.Mode),
		Width:            c.Width,
		Height:           c.Height,
		FOVDeg:           c.FOVDeg,
		Near:             c.Near,
		Far:              c.Far,
		CameraRadius:     c.CameraRadius,
		CameraHeight:     c.CameraHeight,
		CameraAngleDeg:   c.CameraAngleDeg,
		LookAt:           c.LookAt,
		FallbackIdentity: c.FallbackIdentity,
	}
	if c.Translation != nil {
		p.Translation = *c.Translation
	}
	if c.RotationDeg != nil {
		p.RotationDeg = *c.RotationDeg
	}
	if c.Scale != nil {
		p.Scale = *c.Scale
	}
	if c.CameraZoom != nil {
		p.CameraZoom = *c.CameraZoom
	}
	return p
}

// BackgroundColor returns the clear color.
func (c *Config) BackgroundColor() color.NRGBA {
	return color.NRGBA{R: c.Background[0], G: c.Background[1], B: c.Background[2], A: c.Background[3]}
}
