package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gravsim/audio"
	"github.com/lixenwraith/gravsim/config"
	"github.com/lixenwraith/gravsim/core"
	"github.com/lixenwraith/gravsim/engine"
	"github.com/lixenwraith/gravsim/input"
	"github.com/lixenwraith/gravsim/parameter"
	"github.com/lixenwraith/gravsim/render"
	"github.com/lixenwraith/gravsim/status"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "gravsim [scene.toml]",
		Short: "Interactive 2D gravity sandbox in the terminal",
		Long: `Bodies attract each other and merge on contact.

Mouse: left drag to aim and launch, right click for a grid of dust,
middle click for a fixed anchor.
Keys: p/space pause, f field, t trails, c clear, m mute, up/down spawn size, q quit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(v, cfgPath)
			if err != nil {
				return err
			}
			scenePath := ""
			if len(args) == 1 {
				scenePath = args[0]
			}
			return run(cfg, scenePath)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "TOML config file")
	flags.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	flags.Bool("no-audio", false, "disable sound")
	flags.Bool("trails", false, "record body trails")
	flags.Bool("field", true, "show the gravity field")
	flags.Float64("field-spacing", parameter.FieldSpacing, "field grid spacing in world units")
	flags.Float64("gravity", parameter.G, "gravitational constant")
	flags.Float64("spawn-radius", parameter.SpawnRadius, "initial spawn radius")
	flags.Int("fps", parameter.DefaultFPS, "frame rate")

	return cmd
}

func run(cfg *config.Config, scenePath string) error {
	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// Load the scene before touching the terminal so errors print cleanly
	var scene *config.Scene
	if scenePath != "" {
		sc, err := config.LoadScene(scenePath)
		if err != nil {
			return err
		}
		scene = sc
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
	}()

	renderer := render.NewRenderer(screen, render.DefaultViewport())
	width, height := renderer.Resize(screen.Size())
	sim := engine.NewSimulation(cfg.Engine(width, height))

	if scene == nil {
		scene = config.DefaultScene(width, height)
	}
	n := scene.Apply(sim)
	log.Printf("scene: %d bodies in %.0fx%.0f world", n, width, height)

	registry := status.NewRegistry()
	sim.RegisterHandler(engine.NewStatusHandler(registry))

	handler := input.NewHandler(sim, renderer.Viewport(), cfg.Spawn.Radius, input.GridShape{
		Separation: cfg.Spawn.Separation,
		Cols:       cfg.Spawn.Cols,
		Rows:       cfg.Spawn.Rows,
	})

	audioOn := false
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the sandbox runs without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sim.RegisterHandler(audio.NewHandler(sm))
			handler.OnMute = sm.SetMuted
			audioOn = true
		}
	}

	if cfg.Field.Enabled {
		sim.SampleField()
	}
	sim.Dispatch()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frameTicker.Stop()

	merges := registry.Ints.Get(status.KeyMerges)
	mass := registry.Floats.Get(status.KeyMass)
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				log.Printf("quit: %v", registry.Lines())
				return nil
			}
			if rs, ok := ev.(*tcell.EventResize); ok {
				w, h := renderer.Resize(rs.Size())
				sim.Resize(w, h)
				if sim.Config().FieldEnabled {
					sim.SampleField()
				}
				screen.Sync()
			}

		case now := <-frameTicker.C:
			dt := min(now.Sub(last).Seconds(), parameter.MaxFrameDelta)
			last = now

			handler.Update(dt)
			sim.Step(dt, !handler.Paused())
			sim.Dispatch()

			frame := render.Frame{
				Bodies:      sim.Bodies(),
				Time:        sim.Time(),
				ShowField:   sim.Config().FieldEnabled,
				Field:       sim.FieldSamples(),
				Paused:      handler.Paused(),
				AudioOn:     audioOn && !handler.Muted(),
				SpawnRadius: handler.SpawnRadius(),
				Status: []string{
					fmt.Sprintf("merges=%d", merges.Load()),
					fmt.Sprintf("mass=%.3g", mass.Get()),
				},
			}
			if handler.Aiming() {
				frame.Preview = sim.Preview().Body()
			}
			renderer.Draw(frame)
		}
	}
}
