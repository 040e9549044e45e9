package blobtrace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default runtime knobs.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
	DefaultRadius = 2.25
	DefaultEnergy = 1.0
)

// DefaultCameraOrigin and DefaultSunDir are the built-in camera and
// light placement defaults.
var (
	DefaultCameraOrigin = V3{0, -80, 0}
	DefaultSunDir       = V3{0, -1, 0}
)

// RunConfig is the decoded run description: image dimensions, camera
// and light placement, the particle input, and marcher selection.
type RunConfig struct {
	Width, Height int    `json:"width" toml:"width"`
	CameraOrigin  V3     `json:"camera_origin" toml:"camera_origin"`
	SunDir        V3     `json:"sun_dir" toml:"sun_dir"`
	ParticlesPath string `json:"particles_path" toml:"particles_path"`
	Radius        Real   `json:"radius" toml:"radius"`
	Energy        Real   `json:"energy" toml:"energy"`
	Marcher       string `json:"marcher" toml:"marcher"` // "sphere" | "enhanced" | "segment" | "all"
	OutPrefix     string `json:"out_prefix" toml:"out_prefix"`
	ExportMesh    string `json:"export_mesh,omitempty" toml:"export_mesh,omitempty"`
}

// DefaultRunConfig returns the built-in defaults, with an empty
// ParticlesPath (the one field every caller must still supply).
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CameraOrigin: DefaultCameraOrigin,
		SunDir:       DefaultSunDir,
		Radius:       DefaultRadius,
		Energy:       DefaultEnergy,
		Marcher:      "all",
		OutPrefix:    "render",
	}
}

// LoadRunConfig reads a JSON or TOML run description, sniffed by file
// extension (".json" vs anything else treated as TOML, following
// FlowyCore's use of BurntSushi/toml for a human-editable config
// alongside photons4d's JSON-with-defaults pattern for the render
// side), and fills in any absent field from DefaultRunConfig.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("reading config %q: %w", path, err)
	}

	loaded := cfg
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &loaded); err != nil {
			return RunConfig{}, fmt.Errorf("parsing JSON config %q: %w", path, err)
		}
	} else {
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return RunConfig{}, fmt.Errorf("parsing TOML config %q: %w", path, err)
		}
	}

	applyDefaults(&loaded)
	if err := validateRunConfig(loaded); err != nil {
		return RunConfig{}, err
	}
	DebugLog("loaded config from %s: %dx%d, marcher=%s", path, loaded.Width, loaded.Height, loaded.Marcher)
	return loaded, nil
}

func applyDefaults(cfg *RunConfig) {
	def := DefaultRunConfig()
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if cfg.CameraOrigin == (V3{}) {
		cfg.CameraOrigin = def.CameraOrigin
	}
	if cfg.SunDir == (V3{}) {
		cfg.SunDir = def.SunDir
	}
	if cfg.Radius == 0 {
		cfg.Radius = def.Radius
	}
	if cfg.Energy == 0 {
		cfg.Energy = def.Energy
	}
	if cfg.Marcher == "" {
		cfg.Marcher = def.Marcher
	}
	if cfg.OutPrefix == "" {
		cfg.OutPrefix = def.OutPrefix
	}
}

// validateRunConfig rejects invalid or degenerate configuration:
// non-positive image dimensions, non-finite vectors, a missing
// particle path, a non-positive radius, or an unrecognized marcher
// name.
func validateRunConfig(cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("blobtrace: image dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.CameraOrigin.IsFinite() || !cfg.SunDir.IsFinite() {
		return fmt.Errorf("blobtrace: camera origin and sun direction must be finite")
	}
	if cfg.ParticlesPath == "" {
		return fmt.Errorf("blobtrace: particles_path is required")
	}
	if cfg.Radius <= 0 {
		return &DegenerateGeometryError{Reason: "config radius must be > 0"}
	}
	switch cfg.Marcher {
	case "sphere", "enhanced", "segment", "all":
	default:
		return fmt.Errorf("blobtrace: unknown marcher %q", cfg.Marcher)
	}
	return nil
}

// MethodsFor resolves a RunConfig's marcher selection to the concrete
// Method values to run, in canonical order.
func MethodsFor(cfg RunConfig) []Method {
	switch cfg.Marcher {
	case "sphere":
		return []Method{MethodSphereTrace}
	case "enhanced":
		return []Method{MethodEnhancedSphereTrace}
	case "segment":
		return []Method{MethodSegmentTrace}
	default:
		return Methods()
	}
}
