// Package debug provides the on-screen controls and text read-outs for a
// tracked adapter. It only observes tracking state and forwards button presses.
package debug

// Rect is a screen region in pixels
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains reports whether the point lies inside the rect, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// UI is an immediate mode widget toolkit. Button draws a button and reports
// whether it was pressed this frame.
type UI interface {
	Button(rect Rect, label string) bool
	TextArea(rect Rect, text string)
}

// Controls are the tracking operations the panel buttons trigger
type Controls interface {
	StartTracking()
	StopTracking()
	ResetTracking()
}

var (
	StartButton    = Rect{X: 10, Y: 10, Width: 100, Height: 25}
	ShutdownButton = Rect{X: 10, Y: 35, Width: 100, Height: 25}
	ResetButton    = Rect{X: 10, Y: 60, Width: 100, Height: 25}
)

type Panel struct {
	Visible    bool
	StatusRect Rect
	DataRect   Rect
}

func NewPanel() Panel {
	return Panel{
		Visible:    true,
		StatusRect: Rect{X: 10, Y: 90, Width: 300, Height: 200},
		DataRect:   Rect{X: 10, Y: 295, Width: 300, Height: 200},
	}
}

// Draw renders the buttons and text areas when visible. Each pressed button
// calls into controls before the text areas are drawn.
func (p Panel) Draw(ui UI, controls Controls, status, data func() string) {
	if !p.Visible {
		return
	}

	if ui.Button(StartButton, "Start") {
		controls.StartTracking()
	}
	if ui.Button(ShutdownButton, "Shutdown") {
		controls.StopTracking()
	}
	if ui.Button(ResetButton, "Reset") {
		controls.ResetTracking()
	}

	ui.TextArea(p.StatusRect, status())
	ui.TextArea(p.DataRect, data())
}
