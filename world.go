package kinebox

import (
	"github.com/akmonengine/kinebox/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

const DEFAULT_WORKERS = 1

// BoundPolicy selects how the sweep obtains the bounds of each box
type BoundPolicy uint8

const (
	// BoundPolicyLegacy queries bounds through Box.AdvanceAndComputeBound, so
	// every query moves the stored center, and runs each box's sweep and
	// transform before moving to the next box
	BoundPolicyLegacy BoundPolicy = iota
	// BoundPolicyPure computes every bound once per frame without side effect,
	// sweeps all boxes, then advances all boxes
	BoundPolicyPure
)

func (p BoundPolicy) String() string {
	if p == BoundPolicyPure {
		return "pure"
	}
	return "legacy"
}

// Frame is what the renderer needs to draw one box
type Frame struct {
	Box    *actor.Box
	Model  mgl64.Mat4
	Bounds actor.AABB
}

type World struct {
	// Boxes in insertion order, which is also the sweep order
	Boxes  []*actor.Box
	Policy BoundPolicy
	// SpatialGrid narrows the candidates of the pure sweep, nil means all pairs
	SpatialGrid *SpatialGrid
	Workers     int

	Events Events
	Logger *zap.Logger
}

// NewWorld creates an empty world with the legacy bound policy
func NewWorld(logger *zap.Logger) *World {
	return &World{
		Policy:  BoundPolicyLegacy,
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
		Logger:  logger,
	}
}

// AddBody appends a box to the world
func (w *World) AddBody(box *actor.Box) {
	w.Boxes = append(w.Boxes, box)
}

// RemoveBody removes a box from the world
func (w *World) RemoveBody(box *actor.Box) {
	k := -1
	for i, b := range w.Boxes {
		if b == box {
			k = i
			break
		}
	}

	if k != -1 {
		w.Boxes = append(w.Boxes[:k], w.Boxes[k+1:]...)
	}

	w.Events.forget(box)
}

// Step runs one frame: collision sweep, then animation, and returns the
// transform and bounds of every box in list order
func (w *World) Step() []Frame {
	frames := make([]Frame, len(w.Boxes))

	switch w.Policy {
	case BoundPolicyPure:
		w.sweepPure()
		for i, box := range w.Boxes {
			frames[i] = w.frame(box)
		}
	default:
		for i, box := range w.Boxes {
			w.sweepLegacy(box)
			frames[i] = w.frame(box)
		}
	}

	w.Events.flush()

	return frames
}

// Sweep runs the collision sweep of one frame without advancing any animation
func (w *World) Sweep() {
	switch w.Policy {
	case BoundPolicyPure:
		w.sweepPure()
	default:
		for _, box := range w.Boxes {
			w.sweepLegacy(box)
		}
	}

	w.Events.flush()
}

func (w *World) frame(box *actor.Box) Frame {
	model := box.Transform()

	return Frame{
		Box:    box,
		Model:  model,
		Bounds: box.ComputeAABB(),
	}
}

func (w *World) logger() *zap.Logger {
	if w.Logger == nil {
		w.Logger = zap.NewNop()
	}

	return w.Logger
}
