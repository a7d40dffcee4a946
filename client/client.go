// Package client defines the tracking client capability consumed by the
// adapter, plus software clients usable without tracking hardware.
package client

import "github.com/akmonengine/headpose/pose"

// Client is a head tracking source. Init and Shutdown return human readable
// status text, not a structured result; callers surface it as-is.
// Sample must degrade to a zero sample when no device is producing data.
type Client interface {
	Init() string
	Shutdown() string
	Sample() pose.Sample
	Diagnostic() string
}
