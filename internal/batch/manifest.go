package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame     int         `json:"frame"`
	AngleDeg  float64     `json:"angle_deg"`
	Image     string      `json:"image"`
	MVP       [16]float32 `json:"mvp"`
	Fallback  bool        `json:"fallback,omitempty"`
	Triangles int         `json:"triangles_drawn"`
	Error     string      `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every rendered frame.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame:     r.Frame,
			AngleDeg:  r.AngleDeg,
			MVP:       r.MVP,
			Fallback:  r.Fallback,
			Triangles: r.Stats.Drawn,
			Error:     r.Error,
		}
		if r.Success {
			entries[i].Image = filepath.Base(r.Path)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
