package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPoseMatrix_TranslateScale(t *testing.T) {
	p := Pose{Position: mgl64.Vec3{1, 2, 3}, Scale: 2}

	expected := mgl64.Mat4{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		1, 2, 3, 1,
	}

	if got := p.Matrix(); !got.ApproxEqual(expected) {
		t.Errorf("Matrix() = %v, want %v", got, expected)
	}
}

func TestPoseMatrix_RotationOrder(t *testing.T) {
	p := Pose{Rotation: mgl64.Vec3{0.3, 0.7, 1.1}, Scale: 1}

	xyz := mgl64.HomogRotate3DX(0.3).Mul4(mgl64.HomogRotate3DY(0.7)).Mul4(mgl64.HomogRotate3DZ(1.1))
	zyx := mgl64.HomogRotate3DZ(1.1).Mul4(mgl64.HomogRotate3DY(0.7)).Mul4(mgl64.HomogRotate3DX(0.3))

	got := p.Matrix()
	if !got.ApproxEqual(xyz) {
		t.Errorf("Matrix() = %v, want X*Y*Z rotation %v", got, xyz)
	}
	if got.ApproxEqual(zyx) {
		t.Error("rotations must be applied X then Y then Z")
	}
}

func TestPoseMatrix_RotationAfterScale(t *testing.T) {
	p := Pose{Position: mgl64.Vec3{10, 0, 0}, Rotation: mgl64.Vec3{0, 0.5, 0}, Scale: 3}

	expected := mgl64.Translate3D(10, 0, 0).Mul4(mgl64.Scale3D(3, 3, 3)).Mul4(mgl64.HomogRotate3DY(0.5))

	if got := p.Matrix(); !got.ApproxEqual(expected) {
		t.Errorf("Matrix() = %v, want %v", got, expected)
	}
}
