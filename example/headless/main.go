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
)

// Runs a camera node through a fixed number of frames without a window and
// prints the applied pose.
func main() {
	var configPath string
	var frames int

	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.IntVar(&frames, "frames", 120, "number of frames to simulate")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	c, err := cfg.NewClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	camera := actor.NewNode("camera")
	camera.SetLocalPosition(mgl64.Vec3{0, 1.7, 0})

	adapter := headpose.NewAdapter(cfg.Name, camera, c,
		headpose.WithLogger(logger),
		headpose.WithSettings(cfg.Settings()),
		headpose.WithPanel(cfg.Panel()),
	)
	adapter.Events.Subscribe(headpose.TRACKING_START, func(e headpose.Event) {
		fmt.Printf("started: %s\n", e.(headpose.StartEvent).Status)
	})
	adapter.Events.Subscribe(headpose.TRACKING_STOP, func(e headpose.Event) {
		fmt.Printf("stopped: %s\n", e.(headpose.StopEvent).Status)
	})

	world := &headpose.World{}
	world.AddAdapter(adapter)
	world.Enable()

	for frame := 0; frame < frames; frame++ {
		world.Step()

		euler := camera.LocalEulerAngles()
		fmt.Printf("%4d POS=(%7.4f %7.4f %7.4f) PITCH=%6.2f YAW=%6.2f ROLL=%6.2f\n",
			frame+1,
			camera.LocalPosition().X(), camera.LocalPosition().Y(), camera.LocalPosition().Z(),
			euler.X(), euler.Y(), euler.Z(),
		)
	}

	world.Disable()
	fmt.Printf("restored: %v\n", camera.LocalPosition())
}
