package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/akmonengine/headpose"
	"github.com/akmonengine/headpose/actor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	screenWidth  = 960
	screenHeight = 540

	// pixels per degree of camera rotation in the view
	pixelsPerDegree = 8
)

var (
	skyColor     = color.RGBA{0x30, 0x50, 0x80, 0xff}
	horizonColor = color.RGBA{0xf0, 0xd0, 0x60, 0xff}
	markerColor  = color.RGBA{0xff, 0x60, 0x60, 0xff}
)

type game struct {
	world   *headpose.World
	adapter *headpose.Adapter
	camera  *actor.Node
	ui      ebitenUI
}

func newGame(world *headpose.World, adapter *headpose.Adapter, camera *actor.Node) *game {
	return &game{world: world, adapter: adapter, camera: camera}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.adapter.Panel.Visible = !g.adapter.Panel.Visible
	}

	g.world.Step()

	g.ui.begin()
	g.world.DrawGUI(&g.ui)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	euler := g.camera.LocalEulerAngles()
	cx, cy := float64(screenWidth)/2, float64(screenHeight)/2

	// The horizon moves opposite to the camera: pitching up lowers it, rolling tilts it back.
	offsetY := euler.X() * pixelsPerDegree
	offsetX := -euler.Y() * pixelsPerDegree
	roll := -euler.Z() * math.Pi / 180
	dx, dy := math.Cos(roll)*screenWidth, math.Sin(roll)*screenWidth
	vector.StrokeLine(screen,
		float32(cx+offsetX-dx), float32(cy+offsetY-dy),
		float32(cx+offsetX+dx), float32(cy+offsetY+dy),
		2, horizonColor, true)
	vector.DrawFilledCircle(screen, float32(cx+offsetX), float32(cy+offsetY), 4, markerColor, true)

	g.ui.draw(screen)

	p := g.camera.LocalPosition()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"%s  running=%t  [F1] panel\nPOS   %7.4f %7.4f %7.4f\nEULER %7.2f %7.2f %7.2f",
		g.camera.Name, g.adapter.IsRunning(), p.X(), p.Y(), p.Z(), euler.X(), euler.Y(), euler.Z(),
	), screenWidth-300, 10)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
