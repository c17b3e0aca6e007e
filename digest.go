package kinebox

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints the pose and velocity of every box, in list order.
// Two worlds stepped the same way yield the same digest bit for bit.
func (w *World) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte

	write := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = h.Write(buf[:])
	}

	for _, box := range w.Boxes {
		for _, f := range box.Pose.Position {
			write(f)
		}
		for _, f := range box.Pose.Rotation {
			write(f)
		}
		write(box.Pose.Scale)
		for _, f := range box.Velocity {
			write(f)
		}
	}

	return h.Sum64()
}
