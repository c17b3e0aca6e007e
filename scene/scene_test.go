package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akmonengine/kinebox"
	"github.com/akmonengine/kinebox/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sceneYAML = `
world:
  policy: pure
  workers: 2
  grid_cell_size: 4
  frames: 10
boxes:
  - name: mover
    position: [-3, -3, 0]
    mode: 4
    scale: 1
    velocity: [0, -0.04, 0]
  - name: spinner
    position: [-3, -6, 0]
    mode: 2
    scale: 1
    rotation: [0.1, 0, 0]
  - name: unknown-mode
    position: [20, 0, 0]
    mode: 9
    scale: 2
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, "pure", c.World.Policy)
	assert.Equal(t, 2, c.World.Workers)
	assert.Equal(t, 10, c.World.Frames)
	require.Len(t, c.Boxes, 3)
	assert.Equal(t, BoxConfig{
		Name:     "mover",
		Position: [3]float64{-3, -3, 0},
		Mode:     4,
		Scale:    1,
		Velocity: [3]float64{0, -0.04, 0},
	}, c.Boxes[0])
	assert.Equal(t, [3]float64{0.1, 0, 0}, c.Boxes[1].Rotation)
}

func TestLoad_KeepsDefaultWorldSettings(t *testing.T) {
	c, err := Load(strings.NewReader("boxes:\n  - position: [1, 2, 3]\n    scale: 1\n"))
	require.NoError(t, err)

	assert.Equal(t, Default().World, c.World)
	assert.Len(t, c.Boxes, 1)
}

func TestLoad_EmptyDocument(t *testing.T) {
	for _, input := range []string{"", "\n"} {
		c, err := Load(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, Default().World, c.World)
		assert.Empty(t, c.Boxes)
	}
}

func TestValidate_ZeroIsAllowed(t *testing.T) {
	c := Config{World: WorldConfig{Policy: "pure"}}
	assert.NoError(t, c.Validate())

	c.World.Workers = -1
	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidScene)
	assert.Contains(t, err.Error(), "workers must not be negative")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"unknown field", "world:\n  speed: 3\n", false},
		{"malformed", "boxes: [", false},
		{"unknown policy", "world:\n  policy: fast\n", true},
		{"negative workers", "world:\n  workers: -1\n", true},
		{"negative cell size", "world:\n  grid_cell_size: -2\n", true},
		{"negative frames", "world:\n  frames: -5\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidScene), err.Error())
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Boxes, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, kinebox.BoundPolicyLegacy, p)

	p, err = ParsePolicy("pure")
	require.NoError(t, err)
	assert.Equal(t, kinebox.BoundPolicyPure, p)

	_, err = ParsePolicy("quantum")
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestBuild(t *testing.T) {
	c, err := Load(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	w, err := c.Build(zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, kinebox.BoundPolicyPure, w.Policy)
	assert.Equal(t, 2, w.Workers)
	assert.NotNil(t, w.SpatialGrid)
	require.Len(t, w.Boxes, 3)

	assert.Equal(t, mgl64.Vec3{-3.5, -3.5, -0.5}, w.Boxes[0].Center())
	assert.Equal(t, actor.TranslateByVelocity, w.Boxes[0].Animation().Kind)
	assert.Equal(t, actor.Rotate, w.Boxes[1].Animation().Kind)
	assert.Equal(t, actor.Static, w.Boxes[2].Animation().Kind, "unknown modes are static")

	entries := logs.FilterMessage("box initialised").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "mover", entries[0].ContextMap()["name"])
}

func TestBuild_InvalidConfig(t *testing.T) {
	c := Default()
	c.World.Policy = "nope"

	_, err := c.Build(nil)
	assert.ErrorIs(t, err, ErrInvalidScene)
}

func TestDefault_Runs(t *testing.T) {
	w, err := Default().Build(nil)
	require.NoError(t, err)
	require.Len(t, w.Boxes, 6)
	assert.Nil(t, w.SpatialGrid)

	for i, n := 0, Default().World.Frames; i < n; i++ {
		w.Step()
	}

	// the scale cycler never grows past one step over its limit
	assert.Less(t, w.Boxes[4].Pose.Scale, 5.02)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, w.Boxes[1].Velocity)
}
