package main

import (
	"image/color"

	"github.com/akmonengine/headpose/debug"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonColor   = color.RGBA{0x40, 0x40, 0x48, 0xff}
	textAreaColor = color.RGBA{0x10, 0x10, 0x14, 0xc0}
	borderColor   = color.RGBA{0xa0, 0xa0, 0xa0, 0xff}
)

type widgetKind uint8

const (
	widgetButton widgetKind = iota
	widgetTextArea
)

type widget struct {
	kind widgetKind
	rect debug.Rect
	text string
}

// ebitenUI records widgets during Update, when input is valid, and replays
// them during Draw.
type ebitenUI struct {
	clicked bool
	cursorX float64
	cursorY float64

	widgets []widget
}

var _ debug.UI = (*ebitenUI)(nil)

// begin resets the widget list and samples the mouse for this tick
func (u *ebitenUI) begin() {
	u.widgets = u.widgets[:0]
	u.clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()
	u.cursorX, u.cursorY = float64(x), float64(y)
}

func (u *ebitenUI) Button(rect debug.Rect, label string) bool {
	u.widgets = append(u.widgets, widget{kind: widgetButton, rect: rect, text: label})
	return u.clicked && rect.Contains(u.cursorX, u.cursorY)
}

func (u *ebitenUI) TextArea(rect debug.Rect, text string) {
	u.widgets = append(u.widgets, widget{kind: widgetTextArea, rect: rect, text: text})
}

func (u *ebitenUI) draw(screen *ebiten.Image) {
	for _, w := range u.widgets {
		x, y := float32(w.rect.X), float32(w.rect.Y)
		width, height := float32(w.rect.Width), float32(w.rect.Height)

		switch w.kind {
		case widgetButton:
			vector.DrawFilledRect(screen, x, y, width, height, buttonColor, false)
			vector.StrokeRect(screen, x, y, width, height, 1, borderColor, false)
			ebitenutil.DebugPrintAt(screen, w.text, int(w.rect.X)+8, int(w.rect.Y)+5)
		case widgetTextArea:
			vector.DrawFilledRect(screen, x, y, width, height, textAreaColor, false)
			vector.StrokeRect(screen, x, y, width, height, 1, borderColor, false)
			ebitenutil.DebugPrintAt(screen, w.text, int(w.rect.X)+4, int(w.rect.Y)+4)
		}
	}
}
