package client

import (
	"fmt"

	"github.com/akmonengine/headpose/pose"
)

// Static always reports the same sample. A zero Static behaves like a client
// with no device attached.
type Static struct {
	Value pose.Sample

	running bool
	frame   uint64
}

var _ Client = (*Static)(nil)

func NewStatic(value pose.Sample) *Static {
	return &Static{Value: value}
}

func (s *Static) Init() string {
	s.running = true
	s.frame = 0
	return "Static client initialized"
}

func (s *Static) Shutdown() string {
	s.running = false
	return "Static client shut down"
}

func (s *Static) Sample() pose.Sample {
	if !s.running {
		return pose.Sample{}
	}
	s.frame++
	return s.Value
}

func (s *Static) Diagnostic() string {
	return fmt.Sprintf("Frame: %d\n%s", s.frame, s.Value)
}
