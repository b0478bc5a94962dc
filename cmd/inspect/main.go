package main

import (
	"flag"
	"fmt"
	"os"

	"f-mesh-renderer/internal/config"
	"f-mesh-renderer/internal/scene"
	"f-mesh-renderer/internal/transform"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	mode := flag.String("mode", "", "Projection: pixel or perspective")
	angle := flag.Float64("angle", 0, "Animation angle in degrees")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Mode: *mode})

	sc, err := scene.New(cfg.SceneParams())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fr, err := sc.Frame(*angle)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printMat("Model", fr.Model)
	printMat("Camera", fr.Camera)
	printMat("View", fr.View)
	printMat("Projection", fr.Projection)
	printMat("MVP", fr.MVP)
	fmt.Printf("Uniform (column-major): %v\n", fr.MVP.Uniform())

	min, max := sc.Mesh.Bounds()
	fmt.Printf("\nMesh %q: %d triangles, BBox %v – %v\n", sc.Mesh.Name, sc.Mesh.Triangles(), min, max)
	corners := []transform.Vec3{min, {max[0], min[1], min[2]}, {min[0], max[1], min[2]}, max}
	for _, c := range corners {
		clip := fr.MVP.MulVec4(c.Vec4(1))
		ndc, ok := clip.PerspectiveDivide()
		if !ok {
			fmt.Printf("  %8.2f → clip %8.3f (w≈0)\n", c, clip)
			continue
		}
		fmt.Printf("  %8.2f → clip %8.3f ndc %6.3f\n", c, clip, ndc)
	}
}

func printMat(name string, m transform.Mat4) {
	fmt.Printf("%s:\n", name)
	for r := 0; r < 4; r++ {
		fmt.Printf("  [%10.4f %10.4f %10.4f %10.4f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
}
