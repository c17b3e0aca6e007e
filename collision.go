package kinebox

import (
	"github.com/akmonengine/kinebox/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// centerThreshold is the distance under which two centers are the same.
// The Max/Min query pair of the legacy policy adds then subtracts the extent,
// which can leave a box a few ulps away from where it was before.
const centerThreshold = 1e-9

// sameCenter reports whether two boxes stand at the same place, in which case
// they are never tested against each other
func sameCenter(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() <= centerThreshold
}

// Respond applies the collision response to the first box of an ordered pair:
// its velocity is negated, the other box is untouched
func Respond(box *actor.Box) {
	box.Reverse()
}

// sweepLegacy tests a against every box of the list, a included.
// Each bound query moves the queried box, as the renderer this mirrors did.
func (w *World) sweepLegacy(a *actor.Box) {
	aMax := a.AdvanceAndComputeBound(actor.Max)
	aMin := a.AdvanceAndComputeBound(actor.Min)
	aCenter := a.Center()

	for _, b := range w.Boxes {
		bMax := b.AdvanceAndComputeBound(actor.Max)
		bMin := b.AdvanceAndComputeBound(actor.Min)

		if sameCenter(aCenter, b.Center()) {
			continue
		}

		w.collide(a, b, actor.Overlap(aMax, aMin, bMax, bMin))
	}
}

// sweepPure computes the bounds of every box once, then tests every ordered
// pair in list order. With a spatial grid, pairs that share no cell are skipped.
func (w *World) sweepPure() {
	bounds := make([]actor.AABB, len(w.Boxes))
	task(w.Workers, w.Boxes, func(i int, box *actor.Box) {
		bounds[i] = box.ComputeAABB()
	})

	if w.SpatialGrid != nil {
		w.SpatialGrid.Clear()
		for i := range bounds {
			w.SpatialGrid.Insert(i, bounds[i])
		}
		w.SpatialGrid.SortCells()
	}

	for i, a := range w.Boxes {
		for _, j := range w.candidates(i, bounds) {
			b := w.Boxes[j]
			if sameCenter(a.Center(), b.Center()) {
				continue
			}

			w.collide(a, b, bounds[i].Overlaps(bounds[j]))
		}
	}
}

func (w *World) candidates(i int, bounds []actor.AABB) []int {
	if w.SpatialGrid != nil {
		return w.SpatialGrid.Candidates(i, bounds[i], len(bounds))
	}

	all := make([]int, len(bounds))
	for j := range all {
		all[j] = j
	}

	return all
}

func (w *World) collide(a, b *actor.Box, overlapping bool) {
	if !overlapping {
		return
	}

	w.Events.recordCollision(a, b)

	Respond(a)
	w.Events.emitReverse(a, b)

	w.logger().Debug("collision between boxes, changing direction",
		zap.Stringer("box", a.ID),
		zap.Stringer("other", b.ID),
		zap.Float64s("velocity", a.Velocity[:]),
	)
}
