// Command headpose opens a window that applies head tracking to a virtual
// camera and shows the tracking debug panel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/headpose"
	"github.com/akmonengine/headpose/actor"
	"github.com/akmonengine/headpose/internal/config"
	"github.com/akmonengine/headpose/internal/logging"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	var tps int

	flag.StringVar(&configPath, "config", "", "path to a YAML config file (default: built-in defaults)")
	flag.IntVar(&tps, "tps", 60, "frames per second driving the tracker")
	flag.Parse()

	if err := run(configPath, tps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, tps int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	c, err := cfg.NewClient()
	if err != nil {
		return err
	}

	camera := actor.NewNode("camera")
	camera.SetLocalPosition(mgl64.Vec3{0, 1.7, 0})

	adapter := headpose.NewAdapter(cfg.Name, camera, c,
		headpose.WithLogger(logger),
		headpose.WithSettings(cfg.Settings()),
		headpose.WithPanel(cfg.Panel()),
	)
	adapter.Events.Subscribe(headpose.CONFIG_ERROR, func(e headpose.Event) {
		logger.Warn("tracking not started", zap.String("reason", e.(headpose.ConfigErrorEvent).Reason))
	})

	world := &headpose.World{}
	world.AddAdapter(adapter)
	world.Enable()
	defer world.Disable()

	g := newGame(world, adapter, camera)

	ebiten.SetWindowTitle("headpose (" + cfg.Name + ")")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetTPS(tps)

	logger.Info("window opened", zap.String("client", cfg.Client.Kind), zap.Int("tps", tps))
	return ebiten.RunGame(g)
}
