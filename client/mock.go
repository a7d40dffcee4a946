package client

import (
	"fmt"
	"math"

	"github.com/akmonengine/headpose/pose"
)

// Mock generates smoothly changing samples in raw client units, advancing a
// fixed time step per sample so output is reproducible.
type Mock struct {
	// Step is the simulated time between two samples, in seconds
	Step float64
	// Amplitude of the rotation and position waves, in raw units
	RotationAmplitude float64
	PositionAmplitude float64

	running bool
	elapsed float64
	frame   uint64
	last    pose.Sample
}

var _ Client = (*Mock)(nil)

// NewMock creates a mock ticking at 60 samples per second, swinging about
// 20 degrees of yaw with the default rotation multiplier.
func NewMock() *Mock {
	return &Mock{
		Step:              1.0 / 60.0,
		RotationAmplitude: 2000,
		PositionAmplitude: 3000,
	}
}

func (m *Mock) Init() string {
	if m.running {
		return "Mock client already running"
	}
	m.running = true
	m.elapsed = 0
	m.frame = 0
	return "Mock client initialized\nSimulated device: on"
}

func (m *Mock) Shutdown() string {
	if !m.running {
		return "Mock client not running"
	}
	m.running = false
	return "Mock client shut down"
}

func (m *Mock) Sample() pose.Sample {
	if !m.running {
		return pose.Sample{}
	}

	t := m.elapsed
	m.elapsed += m.Step
	m.frame++

	m.last = pose.Sample{
		X:     m.PositionAmplitude * math.Sin(t*0.5),
		Y:     m.PositionAmplitude * 0.5 * math.Sin(t*0.9),
		Z:     m.PositionAmplitude * 0.25 * math.Cos(t*0.3),
		Yaw:   m.RotationAmplitude * math.Sin(t),
		Pitch: m.RotationAmplitude * 0.75 * math.Cos(t*0.7),
		Roll:  m.RotationAmplitude * 0.25 * math.Sin(t*1.3),
	}

	return m.last
}

func (m *Mock) Diagnostic() string {
	return fmt.Sprintf("Frame: %d\n%s", m.frame, m.last)
}
