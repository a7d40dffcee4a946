package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Node is a minimal scene graph node holding a local transform.
// Parent is informational only, local values are never composed with it.
type Node struct {
	Name      string
	Parent    *Node
	Transform Transform
}

var _ SceneTransform = (*Node)(nil)

// NewNode creates a node at the identity pose
func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		Transform: NewTransform(),
	}
}

func (n *Node) LocalPosition() mgl64.Vec3 {
	return n.Transform.Position
}

func (n *Node) SetLocalPosition(position mgl64.Vec3) {
	n.Transform.Position = position
}

func (n *Node) LocalRotation() mgl64.Quat {
	return n.Transform.Rotation
}

// SetLocalRotation stores the rotation as given, so a captured rotation
// restores bit for bit. Callers are expected to pass unit quaternions.
func (n *Node) SetLocalRotation(rotation mgl64.Quat) {
	n.Transform.Rotation = rotation
}

// LocalEulerAngles returns the local rotation as X, Y, Z angles in degrees, composed X then Y then Z
func (n *Node) LocalEulerAngles() mgl64.Vec3 {
	q := n.Transform.Rotation
	if q.Len() == 0 {
		return mgl64.Vec3{}
	}
	m := q.Normalize().Mat4()
	// Rx*Ry*Rz: m[8] = sin(y), m[9] = -sin(x)cos(y), m[10] = cos(x)cos(y), m[4] = -cos(y)sin(z), m[0] = cos(y)cos(z)
	sy := mgl64.Clamp(m[8], -1, 1)
	x := mgl64.RadToDeg(math.Atan2(-m[9], m[10]))
	y := mgl64.RadToDeg(math.Asin(sy))
	z := mgl64.RadToDeg(math.Atan2(-m[4], m[0]))
	return mgl64.Vec3{x, y, z}
}
