// Command blobtrace renders an implicit blob tree built from a
// particle file using sphere tracing, enhanced sphere tracing and
// segment tracing, writing one color and one cost PPM per marcher.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blobtrace/blobtrace/internal/blobtrace"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional JSON or TOML run config")
		particles  = flag.String("particles", "", "particle file path (required unless set in -config)")
		width      = flag.Int("width", 0, "image width (default 500)")
		height     = flag.Int("height", 0, "image height (default 500)")
		cameraFlag = flag.String("camera", "", "camera origin as x,y,z (default 0,-80,0)")
		sunFlag    = flag.String("sun", "", "sun direction as x,y,z (default 0,-1,0)")
		radius     = flag.Float64("radius", 0, "uniform primitive radius (default 2.25)")
		energy     = flag.Float64("energy", 0, "uniform primitive energy (default 1.0)")
		marcher    = flag.String("marcher", "", "sphere|enhanced|segment|all (default all)")
		outPrefix  = flag.String("out-prefix", "", "output file prefix (default \"render\")")
		exportMesh = flag.String("export-mesh", "", "optional path to export the iso-surface as an OBJ mesh")
		debug      = flag.Bool("debug", false, "verbose development logging")
	)
	flag.Parse()

	logger, err := blobtrace.NewLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := resolveConfig(*configPath, *particles, *width, *height, *cameraFlag, *sunFlag, *radius, *energy, *marcher, *outPrefix, *exportMesh)
	if err != nil {
		logger.Error("failed to resolve run configuration", zap.Error(err))
		os.Exit(1)
	}

	if err := run(logger, cfg); err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}
}

func resolveConfig(configPath, particles string, width, height int, cameraFlag, sunFlag string, radius, energy float64, marcher, outPrefix, exportMesh string) (blobtrace.RunConfig, error) {
	var cfg blobtrace.RunConfig
	if configPath != "" {
		loaded, err := blobtrace.LoadRunConfig(configPath)
		if err != nil {
			return blobtrace.RunConfig{}, err
		}
		cfg = loaded
	} else {
		cfg = blobtrace.DefaultRunConfig()
	}

	if particles != "" {
		cfg.ParticlesPath = particles
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if cameraFlag != "" {
		v, err := parseV3(cameraFlag)
		if err != nil {
			return blobtrace.RunConfig{}, fmt.Errorf("parsing -camera: %w", err)
		}
		cfg.CameraOrigin = v
	}
	if sunFlag != "" {
		v, err := parseV3(sunFlag)
		if err != nil {
			return blobtrace.RunConfig{}, fmt.Errorf("parsing -sun: %w", err)
		}
		cfg.SunDir = v
	}
	if radius > 0 {
		cfg.Radius = radius
	}
	if energy != 0 {
		cfg.Energy = energy
	}
	if marcher != "" {
		cfg.Marcher = marcher
	}
	if outPrefix != "" {
		cfg.OutPrefix = outPrefix
	}
	if exportMesh != "" {
		cfg.ExportMesh = exportMesh
	}

	if cfg.ParticlesPath == "" {
		return blobtrace.RunConfig{}, fmt.Errorf("blobtrace: -particles (or config particles_path) is required")
	}
	return cfg, nil
}

func parseV3(s string) (blobtrace.V3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return blobtrace.V3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%g", &v[i]); err != nil {
			return blobtrace.V3{}, fmt.Errorf("invalid component %q: %w", p, err)
		}
	}
	return blobtrace.V3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func run(logger *zap.Logger, cfg blobtrace.RunConfig) error {
	centers, err := blobtrace.ReadParticles(cfg.ParticlesPath)
	if err != nil {
		return fmt.Errorf("reading particles: %w", err)
	}

	tree, err := blobtrace.NewTreeFromPoints(centers, cfg.Radius, cfg.Energy)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}
	logger.Info("built blob tree",
		zap.Int("primitives", len(centers)),
		zap.Float64("global_k", tree.K()),
	)

	camera := blobtrace.NewPinholeCamera(cfg.CameraOrigin, cfg.Width, cfg.Height)
	scene := blobtrace.NewScene(tree, camera, cfg.SunDir)

	for _, method := range blobtrace.MethodsFor(cfg) {
		start := time.Now()
		color, cost, stats := blobtrace.Render(scene, method)
		elapsed := time.Since(start)

		logger.Info("marcher pass complete",
			zap.String("method", method.String()),
			zap.Duration("elapsed", elapsed),
			zap.Int("hits", stats.Hits),
			zap.Int("pixels", stats.Pixels),
			zap.Float64("mean_steps", stats.MeanSteps()),
		)

		idx := int(method)
		colorPath := fmt.Sprintf("%s%d.ppm", cfg.OutPrefix, idx)
		costPath := fmt.Sprintf("%s%d_cost.ppm", cfg.OutPrefix, idx)

		if err := blobtrace.WritePPM(colorPath, cfg.Width, cfg.Height, color); err != nil {
			logger.Error("failed to write color PPM", zap.String("path", colorPath), zap.Error(err))
		}
		if err := blobtrace.WritePPM(costPath, cfg.Width, cfg.Height, cost); err != nil {
			logger.Error("failed to write cost PPM", zap.String("path", costPath), zap.Error(err))
		}
	}

	if cfg.ExportMesh != "" {
		if err := blobtrace.ExportMeshOBJ(tree, cfg.ExportMesh); err != nil {
			logger.Error("failed to export mesh", zap.String("path", cfg.ExportMesh), zap.Error(err))
		} else {
			logger.Info("exported iso-surface mesh", zap.String("path", cfg.ExportMesh))
		}
	}

	return nil
}
