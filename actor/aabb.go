package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Center returns the midpoint of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// ContainsPoint checks if a point is inside the AABB, faces included
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap.
// The test is strict: boxes sharing a face, an edge or a corner do not overlap.
func (a AABB) Overlaps(other AABB) bool {
	return Overlap(a.Max, a.Min, other.Max, other.Min)
}

// Overlap is the interval test on raw corners: on every axis
// pMax > qMin and pMin < qMax.
func Overlap(pMax, pMin, qMax, qMin mgl64.Vec3) bool {
	return pMax.X() > qMin.X() && pMin.X() < qMax.X() &&
		pMax.Y() > qMin.Y() && pMin.Y() < qMax.Y() &&
		pMax.Z() > qMin.Z() && pMin.Z() < qMax.Z()
}
