package actor

import "github.com/go-gl/mathgl/mgl64"

// AnimationKind is the animation behavior assigned to a box at construction
type AnimationKind int

const (
	// Static boxes never move
	Static AnimationKind = iota
	// TranslateFixed boxes slide along +X at a constant rate
	TranslateFixed
	// Rotate boxes spin around all three axes
	Rotate
	// ScaleCycle boxes grow until they pass the limit, then snap back
	ScaleCycle
	// TranslateByVelocity boxes move by their velocity, the only kind that
	// is affected by collision response
	TranslateByVelocity
	// ScaleAndRotate boxes cycle their scale and spin
	ScaleAndRotate
)

func (k AnimationKind) String() string {
	switch k {
	case TranslateFixed:
		return "translate-fixed"
	case Rotate:
		return "rotate"
	case ScaleCycle:
		return "scale-cycle"
	case TranslateByVelocity:
		return "translate-by-velocity"
	case ScaleAndRotate:
		return "scale-and-rotate"
	default:
		return "static"
	}
}

// Animation carries the per-frame increments of one kind
type Animation struct {
	Kind AnimationKind

	// Translate is added to the position every frame
	Translate mgl64.Vec3
	// UseVelocity adds the box velocity to the position every frame
	UseVelocity bool
	// Spin is added to the Euler rotation every frame
	Spin mgl64.Vec3

	// ScaleStep is added to the scale every frame, 0 disables the scale rule.
	// Once the scale is strictly greater than ScaleLimit it is set to ScaleReset.
	ScaleStep  float64
	ScaleLimit float64
	ScaleReset float64
}

const (
	scaleStep  = 0.01
	scaleLimit = 5.0
	scaleReset = 1.0
)

// AnimationFor returns the preset of the given kind.
// Unknown kinds behave as Static.
func AnimationFor(kind AnimationKind) Animation {
	switch kind {
	case TranslateFixed:
		return Animation{Kind: kind, Translate: mgl64.Vec3{0.01, 0, 0}}
	case Rotate:
		return Animation{Kind: kind, Spin: mgl64.Vec3{0.01, 0.01, 0.01}}
	case ScaleCycle:
		return Animation{Kind: kind, ScaleStep: scaleStep, ScaleLimit: scaleLimit, ScaleReset: scaleReset}
	case TranslateByVelocity:
		return Animation{Kind: kind, UseVelocity: true}
	case ScaleAndRotate:
		return Animation{
			Kind:       kind,
			ScaleStep:  scaleStep,
			ScaleLimit: scaleLimit,
			ScaleReset: scaleReset,
			Spin:       mgl64.Vec3{0.05, 0.01, 0.01},
		}
	default:
		return Animation{Kind: Static}
	}
}

// Apply advances the pose by one frame. The scale rule runs before the spin.
func (a Animation) Apply(pose *Pose, velocity mgl64.Vec3) {
	if a.Translate != (mgl64.Vec3{}) {
		pose.Position = pose.Position.Add(a.Translate)
	}
	if a.UseVelocity {
		pose.Position = pose.Position.Add(velocity)
	}
	if a.ScaleStep != 0 {
		if pose.Scale > a.ScaleLimit {
			pose.Scale = a.ScaleReset
		} else {
			pose.Scale += a.ScaleStep
		}
	}
	if a.Spin != (mgl64.Vec3{}) {
		pose.Rotation = pose.Rotation.Add(a.Spin)
	}
}
