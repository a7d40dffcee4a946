package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a local pose in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// SceneTransform is the part of a scene graph node the tracker writes to.
// Reads and writes are expected to take effect immediately.
type SceneTransform interface {
	LocalPosition() mgl64.Vec3
	SetLocalPosition(position mgl64.Vec3)
	LocalRotation() mgl64.Quat
	SetLocalRotation(rotation mgl64.Quat)
}

// Capture reads the current local pose of a scene transform
func Capture(target SceneTransform) Transform {
	return Transform{
		Position: target.LocalPosition(),
		Rotation: target.LocalRotation(),
	}
}

// ApplyTo writes the transform onto a scene transform
func (t Transform) ApplyTo(target SceneTransform) {
	target.SetLocalPosition(t.Position)
	target.SetLocalRotation(t.Rotation)
}

// ApproxEqual reports whether position and rotation are each within an
// absolute distance epsilon of the other transform
func (t Transform) ApproxEqual(other Transform, epsilon float64) bool {
	return t.Position.Sub(other.Position).Len() <= epsilon &&
		t.Rotation.Sub(other.Rotation).Len() <= epsilon
}
