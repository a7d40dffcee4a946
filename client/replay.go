package client

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/headpose/pose"
	"gopkg.in/yaml.v3"
)

var ErrEmptyRecording = errors.New("recording has no samples")

// Recording is a captured sequence of samples
type Recording struct {
	Name    string        `yaml:"name"`
	Loop    bool          `yaml:"loop"`
	Samples []pose.Sample `yaml:"samples"`
}

// Replay plays back a recording one sample per query. Without Loop, the last
// sample is held once the recording is exhausted.
type Replay struct {
	recording Recording

	running bool
	index   int
	last    pose.Sample
}

var _ Client = (*Replay)(nil)

func NewReplay(recording Recording) *Replay {
	return &Replay{recording: recording}
}

// ParseRecording decodes a YAML recording
func ParseRecording(r io.Reader) (Recording, error) {
	var rec Recording
	if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
		return Recording{}, fmt.Errorf("decode recording: %w", err)
	}
	if len(rec.Samples) == 0 {
		return Recording{}, ErrEmptyRecording
	}
	return rec, nil
}

// LoadReplay reads a YAML recording from disk
func LoadReplay(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	rec, err := ParseRecording(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewReplay(rec), nil
}

func (r *Replay) Init() string {
	r.running = true
	r.index = 0
	r.last = pose.Sample{}
	return fmt.Sprintf("Replay %q initialized\nSamples: %d", r.recording.Name, len(r.recording.Samples))
}

func (r *Replay) Shutdown() string {
	r.running = false
	return fmt.Sprintf("Replay %q stopped at sample %d", r.recording.Name, r.index)
}

func (r *Replay) Sample() pose.Sample {
	n := len(r.recording.Samples)
	if !r.running || n == 0 {
		return pose.Sample{}
	}

	if r.index >= n {
		if !r.recording.Loop {
			return r.last
		}
		r.index = 0
	}

	r.last = r.recording.Samples[r.index]
	r.index++
	return r.last
}

func (r *Replay) Diagnostic() string {
	return fmt.Sprintf("Sample: %d/%d\n%s", r.index, len(r.recording.Samples), r.last)
}
