package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/kinebox"
	"github.com/akmonengine/kinebox/scene"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file, the demo scene when empty")
	frames := flag.Int("frames", 0, "number of frames to run, overrides the scene")
	policy := flag.String("policy", "", "bound policy: legacy or pure, overrides the scene")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	config := scene.Default()
	if *scenePath != "" {
		config, err = scene.LoadFile(*scenePath)
		if err != nil {
			logger.Fatal("loading scene", zap.String("path", *scenePath), zap.Error(err))
		}
	}
	if *frames > 0 {
		config.World.Frames = *frames
	}
	if *policy != "" {
		config.World.Policy = *policy
	}

	world, err := config.Build(logger)
	if err != nil {
		logger.Fatal("building world", zap.Error(err))
	}

	world.Events.Subscribe(kinebox.COLLISION_ENTER, func(event kinebox.Event) {
		e := event.(kinebox.CollisionEnterEvent)
		logger.Info("collision enter", zap.Stringer("a", e.BoxA.ID), zap.Stringer("b", e.BoxB.ID))
	})
	world.Events.Subscribe(kinebox.COLLISION_EXIT, func(event kinebox.Event) {
		e := event.(kinebox.CollisionExitEvent)
		logger.Info("collision exit", zap.Stringer("a", e.BoxA.ID), zap.Stringer("b", e.BoxB.ID))
	})

	logger.Info("running",
		zap.Int("boxes", len(world.Boxes)),
		zap.Int("frames", config.World.Frames),
		zap.Stringer("policy", world.Policy),
	)

	for i := 0; i < config.World.Frames; i++ {
		world.Step()
	}

	for i, box := range world.Boxes {
		center := box.Center()
		logger.Info("box",
			zap.String("name", config.Boxes[i].Name),
			zap.Stringer("animation", box.Animation().Kind),
			zap.Float64s("center", center[:]),
			zap.Float64s("velocity", box.Velocity[:]),
			zap.Float64("scale", box.Pose.Scale),
		)
	}
	fmt.Printf("%016x\n", world.Digest())
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableCaller = true

	return config.Build()
}
