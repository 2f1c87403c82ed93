package main

import (
	"flag"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"marker-scene/internal/app"
	"marker-scene/internal/camera"
	"marker-scene/internal/commands"
	"marker-scene/internal/config"
	"marker-scene/internal/debug"
	"marker-scene/internal/gesture"
	"marker-scene/internal/graphics"
	"marker-scene/internal/input"
	"marker-scene/internal/logger"
	"marker-scene/internal/marker"
	"marker-scene/internal/panel"
	"marker-scene/internal/scene"
	"marker-scene/internal/terminal"
	"marker-scene/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", config.ConfigPath, "path to the YAML config file")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	log := logger.New(cfg.Log.File, cfg.Log.Level)
	defer log.Close()
	if cfgErr != nil {
		log.Error().Err(cfgErr).Str("path", *cfgPath).Msg("load config")
		return 1
	}

	markers, source, err := loadMarkers(cfg)
	if err != nil {
		log.Error().Err(err).Msg("load markers")
		return 1
	}
	log.Info().Int("markers", len(markers)).Str("source", source).Msg("scene ready")

	set, err := marker.NewSet(markers...)
	if err != nil {
		log.Error().Err(err).Msg("index markers")
		return 1
	}
	state := &app.State{
		Markers: set,
		Camera:  camera.NewController(initialPose(cfg.Camera), cameraOptions(cfg.Camera)),
	}
	details := panel.New(cfg.Panel.Width, cfg.Panel.SlideDuration)
	gestures := gesture.New(gesture.Options{Delay: cfg.Gesture.Delay, Tolerance: cfg.Gesture.Tolerance})
	ctrl := app.NewController(state, gestures, details, log)

	engine, err := ui.New()
	if err != nil {
		log.Error().Err(err).Msg("load default stylesheet")
		return 1
	}
	if cfg.Stylesheet != "" {
		if err := engine.LoadCSS(cfg.Stylesheet); err != nil {
			log.Warn().Err(err).Str("path", cfg.Stylesheet).Msg("user stylesheet ignored")
		}
	}
	detailView := ui.NewDetailPanel(ctrl.Deselect)
	moveButtons := ui.NewMoveButtons(ctrl.Move)

	scn := scene.New(cfg.GridVisible)
	dbg := debug.New()
	dbg.SetShowFPS(cfg.ShowFPS)

	reg := commands.NewRegistry()
	app.RegisterCommands(reg, ctrl, app.Toggles{Grid: scn.SetGridVisible, FPS: dbg.SetShowFPS})
	term := terminal.New(log, reg)
	in := input.New(ctrl, engine, term)

	var nodes []*ui.Node
	layout := func() {
		w, h := graphics.ScreenSize()
		ctrl.Resize(w, h)
		nodes = moveButtons.AppendNodes(nodes[:0])
		nodes = detailView.AppendNodes(nodes, details)
		engine.SetNodes(nodes)
		engine.Layout(w, h)
	}
	update := func() {
		layout()
		in.Update(time.Now())
		term.Update()
		dt := graphics.FrameTime()
		ctrl.Tick(time.Now(), dt)
		details.Update(dt)
	}
	draw := func() {
		layout()
		pose := state.Camera.Pose()
		selected := state.Selected()
		scn.Draw(pose, state.Markers.All(), selected)
		engine.Draw()

		stats := debug.Stats{Markers: state.Markers.Len(), Camera: [3]float32(pose.Position)}
		if selected != nil {
			stats.Selected = selected.Name()
		}
		dbg.Draw(stats)
		term.Draw()
	}

	graphics.Run(graphics.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
		Background: scene.Background,
		OnClose:    scn.Unload,
	}, update, draw)
	return 0
}

// loadMarkers reads the catalog when one is configured and scatters random markers otherwise.
func loadMarkers(cfg config.Config) ([]*marker.Marker, string, error) {
	if cfg.Catalog != "" {
		ms, err := marker.LoadCatalog(cfg.Catalog)
		return ms, cfg.Catalog, err
	}
	ms := marker.Scatter(marker.ScatterOptions{
		Count:   cfg.Scatter.Count,
		Radius:  cfg.Scatter.Radius,
		BoxSize: cfg.Scatter.BoxSize,
		Seed:    cfg.Scatter.Seed,
	})
	return ms, "scatter", nil
}

func initialPose(c config.CameraConfig) camera.Pose {
	return camera.Pose{
		Position: mgl32.Vec3(config.Vec3(c.Position)),
		Target:   mgl32.Vec3(config.Vec3(c.Target)),
		Up:       camera.WorldUp,
		Fovy:     c.Fovy,
		Near:     c.Near,
		Far:      c.Far,
	}
}

func cameraOptions(c config.CameraConfig) camera.Options {
	opts := camera.DefaultOptions()
	opts.MoveStep = c.MoveStep
	opts.MinDistance = c.MinDistance
	opts.MaxDistance = c.MaxDistance
	opts.DampingFactor = c.DampingFactor
	return opts
}
