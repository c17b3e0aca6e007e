package actor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Edge selects a corner of a box's bounds
type Edge int

const (
	Max Edge = iota + 1
	Min
)

// BoundPadding scales the box extent used for bounds
const BoundPadding = 1.1

// anchorOffset shifts the caller's position so the model-space cube, authored
// with a corner at the origin, is drawn around it
var anchorOffset = mgl64.Vec3{0.5, 0.5, 0.5}

// Box is one animated cuboid: it owns its pose, its velocity and its animation
type Box struct {
	ID uuid.UUID

	Pose     Pose
	Velocity mgl64.Vec3 // per-frame translation delta

	animation Animation
	logger    *zap.Logger
}

type Option func(*Box)

// WithLogger reports the construction of the box. A nil logger discards.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Box) {
		b.logger = logger
	}
}

// WithAnimation overrides the preset animation of the kind
func WithAnimation(animation Animation) Option {
	return func(b *Box) {
		b.animation = animation
	}
}

// NewBox creates a box. The position is offset by (-0.5,-0.5,-0.5) before being stored.
func NewBox(position mgl64.Vec3, kind AnimationKind, scale float64, rotation, velocity mgl64.Vec3, options ...Option) *Box {
	b := &Box{
		ID: uuid.New(),
		Pose: Pose{
			Position: position.Sub(anchorOffset),
			Rotation: rotation,
			Scale:    scale,
		},
		Velocity:  velocity,
		animation: AnimationFor(kind),
	}

	for _, option := range options {
		option(b)
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	b.logger.Debug("box initialised",
		zap.Stringer("id", b.ID),
		zap.Stringer("animation", b.animation.Kind),
		zap.Float64s("position", b.Pose.Position[:]),
	)

	return b
}

func (b *Box) Animation() Animation {
	return b.animation
}

// Advance steps the animation by one frame
func (b *Box) Advance() {
	b.animation.Apply(&b.Pose, b.Velocity)
}

// ModelMatrix returns the world transform of the current pose, without advancing
func (b *Box) ModelMatrix() mgl64.Mat4 {
	return b.Pose.Matrix()
}

// Transform advances the animation then returns the world transform.
// It must be called exactly once per frame.
func (b *Box) Transform() mgl64.Mat4 {
	b.Advance()

	return b.ModelMatrix()
}

// Center returns the stored position
func (b *Box) Center() mgl64.Vec3 {
	return b.Pose.Position
}

func (b *Box) extent() mgl64.Vec3 {
	e := BoundPadding * b.Pose.Scale
	return mgl64.Vec3{e, e, e}
}

// ComputeBound returns the requested corner around the current center
func (b *Box) ComputeBound(edge Edge) mgl64.Vec3 {
	switch edge {
	case Max:
		return b.Pose.Position.Add(b.extent())
	case Min:
		return b.Pose.Position.Sub(b.extent())
	default:
		return b.Pose.Position
	}
}

// AdvanceAndComputeBound moves the stored position by the corner offset and
// returns the new position. A Max query followed by a Min query returns
// center+extent then the previous center, leaving the position where it was.
// Any other edge leaves the position untouched and returns it, as ComputeBound does.
func (b *Box) AdvanceAndComputeBound(edge Edge) mgl64.Vec3 {
	switch edge {
	case Max:
		b.Pose.Position = b.Pose.Position.Add(b.extent())
	case Min:
		b.Pose.Position = b.Pose.Position.Sub(b.extent())
	}

	return b.Pose.Position
}

// ComputeAABB returns the bounds around the current center, without side effect
func (b *Box) ComputeAABB() AABB {
	return AABB{Min: b.ComputeBound(Min), Max: b.ComputeBound(Max)}
}

// Reverse negates the velocity in place
func (b *Box) Reverse() {
	b.Velocity = b.Velocity.Sub(b.Velocity.Mul(2))
}
