package actor

import "github.com/go-gl/mathgl/mgl64"

// Pose represents where a box is, how it is turned and how big it is
type Pose struct {
	Position mgl64.Vec3
	// Rotation holds accumulated Euler angles in radians, applied X then Y then Z
	Rotation mgl64.Vec3
	Scale    float64
}

// Matrix returns T(position) * S(scale), then successive right multiplications
// by the rotations about X, Y and Z.
func (p Pose) Matrix() mgl64.Mat4 {
	m := mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Mul4(mgl64.Scale3D(p.Scale, p.Scale, p.Scale))
	m = m.Mul4(mgl64.HomogRotate3DX(p.Rotation.X()))
	m = m.Mul4(mgl64.HomogRotate3DY(p.Rotation.Y()))
	m = m.Mul4(mgl64.HomogRotate3DZ(p.Rotation.Z()))

	return m
}
