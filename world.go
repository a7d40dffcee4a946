package headpose

import "github.com/akmonengine/headpose/debug"

// World drives a set of adapters from the host frame loop. All calls are
// expected on the host's main thread.
type World struct {
	// List of all adapters, updated in insertion order
	Adapters []*Adapter
}

// AddAdapter adds an adapter to the world
func (w *World) AddAdapter(adapter *Adapter) {
	w.Adapters = append(w.Adapters, adapter)
}

// RemoveAdapter stops the adapter and removes it from the world
func (w *World) RemoveAdapter(adapter *Adapter) {
	k := -1
	for i, a := range w.Adapters {
		if a == adapter {
			k = i
			break
		}
	}

	if k != -1 {
		adapter.Disable()
		adapter.Events.Flush()
		w.Adapters = append(w.Adapters[:k], w.Adapters[k+1:]...)
	}
}

// Enable starts tracking on every adapter
func (w *World) Enable() {
	for _, a := range w.Adapters {
		a.Enable()
	}
	w.flush()
}

// Disable stops tracking on every adapter, restoring their start poses
func (w *World) Disable() {
	for _, a := range w.Adapters {
		a.Disable()
	}
	w.flush()
}

// Step runs one frame: every adapter applies its latest sample, then buffered events are delivered
func (w *World) Step() {
	for _, a := range w.Adapters {
		a.Update()
	}
	w.flush()
}

// DrawGUI draws the debug panel of every adapter
func (w *World) DrawGUI(ui debug.UI) {
	for _, a := range w.Adapters {
		a.DrawGUI(ui)
	}
	w.flush()
}

func (w *World) flush() {
	for _, a := range w.Adapters {
		a.Events.Flush()
	}
}
