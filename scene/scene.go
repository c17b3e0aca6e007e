// Package scene describes which boxes exist and how the world runs, and
// builds a kinebox.World from that description.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/kinebox"
	"github.com/akmonengine/kinebox/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("invalid scene")

// Config is the YAML description of a scene
type Config struct {
	World WorldConfig `yaml:"world"`
	Boxes []BoxConfig `yaml:"boxes"`
}

type WorldConfig struct {
	// Policy is "legacy" or "pure"
	Policy  string `yaml:"policy"`
	Workers int    `yaml:"workers"`
	// GridCellSize enables the spatial grid of the pure policy when > 0
	GridCellSize float64 `yaml:"grid_cell_size"`
	GridCells    int     `yaml:"grid_cells"`
	Frames       int     `yaml:"frames"`
}

type BoxConfig struct {
	Name     string     `yaml:"name"`
	Position [3]float64 `yaml:"position"`
	// Mode is the animation kind, 0 to 5. Anything else is static.
	Mode     int        `yaml:"mode"`
	Scale    float64    `yaml:"scale"`
	Rotation [3]float64 `yaml:"rotation"`
	Velocity [3]float64 `yaml:"velocity"`
}

// Default returns the demo scene: two boxes moving towards two spinning ones,
// a growing box and a growing spinning box
func Default() Config {
	return Config{
		World: WorldConfig{
			Policy:  kinebox.BoundPolicyLegacy.String(),
			Workers: kinebox.DEFAULT_WORKERS,
			Frames:  600,
		},
		Boxes: []BoxConfig{
			{Name: "mover-down", Position: [3]float64{-3, -3, 0}, Mode: 4, Scale: 1, Velocity: [3]float64{0, -0.04, 0}},
			{Name: "spinner-low", Position: [3]float64{-3, -6, 0}, Mode: 2, Scale: 1},
			{Name: "mover-left", Position: [3]float64{-6, 0, 0}, Mode: 4, Scale: 1, Velocity: [3]float64{-0.04, 0, 0}},
			{Name: "spinner-left", Position: [3]float64{-9, 0, 0}, Mode: 2, Scale: 1},
			{Name: "grower", Position: [3]float64{6, 10, 3}, Mode: 3, Scale: 5},
			{Name: "grower-spinner", Position: [3]float64{10, 7, 0}, Mode: 5, Scale: 3},
		},
	}
}

// Load decodes a YAML scene. Missing world settings keep their default values,
// an empty document is a scene without boxes.
func Load(r io.Reader) (Config, error) {
	c := Config{World: Default().World}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode scene: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// LoadFile reads a YAML scene from disk
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks the world settings. Box values are not checked: the core
// accepts any number, and unknown modes degrade to static.
func (c Config) Validate() error {
	if _, err := ParsePolicy(c.World.Policy); err != nil {
		return err
	}
	if c.World.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidScene, c.World.Workers)
	}
	if c.World.GridCellSize < 0 {
		return fmt.Errorf("%w: grid_cell_size must not be negative, got %v", ErrInvalidScene, c.World.GridCellSize)
	}
	if c.World.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidScene, c.World.Frames)
	}

	return nil
}

// ParsePolicy maps a policy name to its value, the empty name is legacy
func ParsePolicy(name string) (kinebox.BoundPolicy, error) {
	switch name {
	case "", "legacy":
		return kinebox.BoundPolicyLegacy, nil
	case "pure":
		return kinebox.BoundPolicyPure, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidScene, name)
	}
}

// Build creates the world and its boxes, in the order of the description
func (c Config) Build(logger *zap.Logger) (*kinebox.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	policy, _ := ParsePolicy(c.World.Policy)

	world := kinebox.NewWorld(logger)
	world.Policy = policy
	world.Workers = max(kinebox.DEFAULT_WORKERS, c.World.Workers)
	if c.World.GridCellSize > 0 {
		world.SpatialGrid = kinebox.NewSpatialGrid(c.World.GridCellSize, max(c.World.GridCells, len(c.Boxes)*8))
	}

	for _, bc := range c.Boxes {
		box := actor.NewBox(
			mgl64.Vec3(bc.Position),
			actor.AnimationKind(bc.Mode),
			bc.Scale,
			mgl64.Vec3(bc.Rotation),
			mgl64.Vec3(bc.Velocity),
			actor.WithLogger(logger.With(zap.String("name", bc.Name))),
		)
		world.AddBody(box)
	}

	return world, nil
}
