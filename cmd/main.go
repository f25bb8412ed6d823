package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/gosieview"
	"github.com/smasonuk/gosieview/internal/ebitenview"
)

func main() {
	configPath := flag.String("config", "", "path to a viewer YAML config (defaults are used when empty)")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	flag.Parse()

	cfg := gosieview.DefaultConfig()
	if *configPath != "" {
		loaded, err := gosieview.LoadConfig(*configPath)
		if err != nil {
			gosieview.LogFatal("%v", err)
		}
		cfg = loaded
	}
	if err := gosieview.SetLogLevel(cfg.LogLevel); err != nil {
		gosieview.LogFatal("%v", err)
	}

	gosieview.LogInfo("Initializing scene...")
	scene, err := gosieview.NewScene()
	if err != nil {
		gosieview.LogFatal("%v", err)
	}
	controller := gosieview.NewController(scene, cfg.ControlSettings())
	if err := cfg.Apply(scene, controller); err != nil {
		gosieview.LogFatal("%v", err)
	}
	if err := scene.SetSize(float64(cfg.Window.Width), float64(cfg.Window.Height)); err != nil {
		gosieview.LogFatal("%v", err)
	}

	gosieview.LogInfo("Creating cube...")
	cube, err := cfg.NewCube()
	if err != nil {
		gosieview.LogFatal("%v", err)
	}
	scene.Add(cube)

	game := ebitenview.NewGame(scene, controller)
	if *watch {
		if *configPath == "" {
			gosieview.LogFatal("-watch needs -config")
		}
		watcher, err := gosieview.NewConfigWatcher(*configPath)
		if err != nil {
			gosieview.LogFatal("%v", err)
		}
		defer watcher.Close()
		game.WatchConfig(watcher)
	}
	gosieview.LogInfo("Initialization complete.")

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		gosieview.LogFatal("%v", err)
	}
}
