package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetra/audio"
	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type app struct {
	screen    tcell.Screen
	game      *tetris.Game
	scheduler *engine.Scheduler
	queue     *engine.ActionQueue
	player    *audio.Player
}

func newApp(cfg *config.Config, screen tcell.Screen) (*app, error) {
	game, err := tetris.NewGame(cfg.Game, tetris.WithRandomizer(cfg.NewRandomizer()))
	if err != nil {
		return nil, err
	}

	a := &app{
		screen: screen,
		game:   game,
		queue:  engine.NewActionQueue(),
	}
	a.scheduler = engine.NewScheduler(game)
	a.scheduler.Register(&engine.InputSystem{Source: a.queue})
	a.scheduler.Register(&engine.GravitySystem{})

	if cfg.Sound {
		player, err := audio.NewPlayer(audio.DefaultSampleRate, 0.5)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			a.player = player
			a.scheduler.Register(&audio.System{Sink: player})
		}
	}
	return a, nil
}

// handleKey queues the action for a key and reports false when the player quits.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	if isQuit(ev) {
		return false
	}
	action, ok := keyAction(ev)
	if !ok {
		return true
	}
	a.queue.Push(action)
	return true
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	drawGame(a.screen, a.game)
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			a.scheduler.Once(now.Sub(last).Seconds())
			last = now
			drawGame(a.screen, a.game)
		}
	}
}

func (a *app) cleanup() {
	if a.player != nil {
		a.player.Close()
	}
	a.screen.Fini()
}

func main() {
	var (
		envFile = flag.String("env", ".env", "Environment file to load before reading TETRA_* variables")
		mute    = flag.Bool("mute", false, "Disable sound effects")
		logFile = flag.String("log", "", "Write logs to this file instead of discarding them")
	)
	flag.Parse()

	// the terminal belongs to the game while it runs
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *mute {
		cfg.Sound = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	a, err := newApp(cfg, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Board %dx%d, fall delay %s", cfg.Game.Width, cfg.Game.Height, cfg.Game.FallDelay)

	a.run()
	a.cleanup()
	fmt.Printf("Final score %d, %d lines\n", a.game.Score(), a.game.Stats().Lines)
}
