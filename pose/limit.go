package pose

import "github.com/go-gl/mathgl/mgl64"

// Limit bounds a single axis to [Lower, Upper]
type Limit struct {
	Lower float64 `yaml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" json:"upper"`
}

// Clamp returns v bounded by the limit. The lower bound is checked first, so
// an inverted limit yields Lower for values below it and Upper otherwise.
func (l Limit) Clamp(v float64) float64 {
	return mgl64.Clamp(v, l.Lower, l.Upper)
}

// Valid reports whether Lower <= Upper
func (l Limit) Valid() bool {
	return l.Lower <= l.Upper
}

// Limits holds one bound per tracked axis
type Limits struct {
	PositionX Limit `yaml:"position_x"`
	PositionY Limit `yaml:"position_y"`
	PositionZ Limit `yaml:"position_z"`
	Yaw       Limit `yaml:"yaw"`
	Pitch     Limit `yaml:"pitch"`
	Roll      Limit `yaml:"roll"`
}

// Clamp bounds a computed offset axis by axis
func (l Limits) Clamp(o Offset) Offset {
	return Offset{
		Position: mgl64.Vec3{
			l.PositionX.Clamp(o.Position.X()),
			l.PositionY.Clamp(o.Position.Y()),
			l.PositionZ.Clamp(o.Position.Z()),
		},
		Euler: mgl64.Vec3{
			l.Pitch.Clamp(o.Euler.X()),
			l.Yaw.Clamp(o.Euler.Y()),
			l.Roll.Clamp(o.Euler.Z()),
		},
	}
}

// Named returns the limits keyed by axis name, in a stable order
func (l Limits) Named() []NamedLimit {
	return []NamedLimit{
		{"position_x", l.PositionX},
		{"position_y", l.PositionY},
		{"position_z", l.PositionZ},
		{"yaw", l.Yaw},
		{"pitch", l.Pitch},
		{"roll", l.Roll},
	}
}

type NamedLimit struct {
	Axis  string
	Limit Limit
}
