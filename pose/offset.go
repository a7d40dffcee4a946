package pose

import (
	"github.com/akmonengine/headpose/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultPositionMultiplier approximates the "game" column of the vendor tracking application
	DefaultPositionMultiplier = 0.000031
	// DefaultRotationMultiplier converts raw rotation units to degrees
	DefaultRotationMultiplier = 0.011
)

// Settings drives the conversion from a raw sample to a local offset
type Settings struct {
	PositionMultiplier float64
	RotationMultiplier float64
	UseLimits          bool
	Limits             Limits
}

// DefaultSettings returns the calibrated multipliers with clamping disabled
func DefaultSettings() Settings {
	return Settings{
		PositionMultiplier: DefaultPositionMultiplier,
		RotationMultiplier: DefaultRotationMultiplier,
	}
}

// Offset is the local displacement derived from one sample.
// Euler holds X (pitch), Y (yaw) and Z (roll) angles in degrees.
type Offset struct {
	Position mgl64.Vec3
	Euler    mgl64.Vec3
}

// ComputeOffset maps a sample into local space. X, Z and yaw are negated to
// convert the client's handedness, then limits are applied when enabled.
func ComputeOffset(s Sample, settings Settings) Offset {
	pm := settings.PositionMultiplier
	rm := settings.RotationMultiplier

	o := Offset{
		Position: mgl64.Vec3{-s.X * pm, s.Y * pm, -s.Z * pm},
		Euler:    mgl64.Vec3{s.Pitch * rm, -s.Yaw * rm, s.Roll * rm},
	}

	if settings.UseLimits {
		o = settings.Limits.Clamp(o)
	}

	return o
}

// Euler builds a rotation from X, Y, Z angles in degrees, applied about the
// local axes X first, then Y, then Z (Rx*Ry*Rz). Engines using Z-X-Y order
// agree on single-axis rotations only.
func Euler(angles mgl64.Vec3) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(angles.X()), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(mgl64.DegToRad(angles.Y()), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(angles.Z()), mgl64.Vec3{0, 0, 1})

	return qx.Mul(qy).Mul(qz)
}

// Compose places the offset relative to the start pose
func (o Offset) Compose(start actor.Transform) actor.Transform {
	return actor.Transform{
		Position: start.Position.Add(o.Position),
		Rotation: start.Rotation.Mul(Euler(o.Euler)),
	}
}

// Apply converts a sample and composes it with the start pose in one step
func Apply(s Sample, start actor.Transform, settings Settings) actor.Transform {
	return ComputeOffset(s, settings).Compose(start)
}
