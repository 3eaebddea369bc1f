package main

import (
	"fmt"
	"log"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

// App owns the window, the audio device, the assets and the game for the
// lifetime of the process. Close releases them in reverse order.
type App struct {
	assets     *ui.Assets
	renderer   *ui.Renderer
	session    *game.Session
	router     *game.InputRouter
	dispatcher *game.Dispatcher
	queue      *game.Queue
	clock      *game.Clock
	audio      bool
}

func NewApp(cfg config.Config) (*App, error) {
	if cfg.Verbose {
		rl.SetTraceLogLevel(rl.LogInfo)
	} else {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	size := cfg.WindowSize()
	rl.InitWindow(size, size, "Snake")
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("init window %dx%d failed", size, size)
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	// Only closing the window quits.
	rl.SetExitKey(0)

	app := &App{queue: &game.Queue{}}

	if !cfg.Mute {
		rl.InitAudioDevice()
		app.audio = rl.IsAudioDeviceReady()
		if !app.audio {
			log.Printf("audio device unavailable, continuing without sound")
		}
	}

	assets, err := ui.LoadAssets(cfg.AssetsDir, app.audio)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load assets: %w", err)
	}
	app.assets = assets

	app.session = game.NewSession(cfg.Grid, rand.New(rand.NewSource(cfg.Seed)), assets)
	app.router = game.NewInputRouter(arrowKeys)
	app.dispatcher = game.NewDispatcher(app.session, app.router)
	app.renderer = ui.NewRenderer(assets, cfg.Grid, int32(cfg.CellSize))
	app.clock = game.NewClock(cfg.TickInterval, time.Now())

	log.Printf("session %s started: tick=%s fps=%d seed=%d",
		app.session.GetStateManager().SessionID(), cfg.TickInterval, cfg.FPS, cfg.Seed)
	return app, nil
}

// Run drives the loop until the window is closed: gather commands, apply
// them in order, draw the frame.
func (a *App) Run() {
	for {
		if rl.WindowShouldClose() {
			a.queue.Push(game.Quit())
		}
		pollKeys(a.router, a.queue)
		if a.clock.Due(time.Now()) {
			a.queue.Push(game.Tick())
		}

		if a.dispatcher.Dispatch(a.queue.Drain()) {
			return
		}
		a.renderer.Draw(a.session)
	}
}

func (a *App) Close() {
	if a.session != nil {
		log.Print(a.session.GetStateManager().Summary())
	}
	if a.assets != nil {
		a.assets.Unload()
	}
	if a.audio {
		rl.CloseAudioDevice()
	}
	rl.CloseWindow()
}
