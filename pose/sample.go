package pose

import "fmt"

// Sample is one snapshot of tracked head position and orientation, in the
// tracking client's raw units.
type Sample struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	Roll  float64 `yaml:"roll"`
}

func (s Sample) String() string {
	return fmt.Sprintf("X=%.2f Y=%.2f Z=%.2f Yaw=%.2f Pitch=%.2f Roll=%.2f",
		s.X, s.Y, s.Z, s.Yaw, s.Pitch, s.Roll)
}
