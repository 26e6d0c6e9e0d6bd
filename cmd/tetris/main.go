package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetra/audio"
	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/debugui"
	debugui_ebiten "github.com/plus3/tetra/debugui/ebiten"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

const tps = 60

func main() {
	var (
		envFile  = flag.String("env", ".env", "Environment file to load before reading TETRA_* variables")
		debug    = flag.Bool("debug", false, "Show the ImGui debug overlay")
		mute     = flag.Bool("mute", false, "Disable sound effects")
		cellSize = flag.Int("cell", 0, "Cell size in pixels (overrides TETRA_CELL_SIZE)")
	)
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		cfg.DebugUI = true
	}
	if *mute {
		cfg.Sound = false
	}
	if *cellSize > 0 {
		cfg.CellSize = *cellSize
	}

	game, err := tetris.NewGame(cfg.Game, tetris.WithRandomizer(cfg.NewRandomizer()))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	log.Printf("Board %dx%d, fall delay %s, randomizer %s",
		cfg.Game.Width, cfg.Game.Height, cfg.Game.FallDelay, cfg.Randomizer)

	layout := newLayout(cfg.Game.Width, cfg.Game.Height, cfg.CellSize)

	var backend *debugui_ebiten.ImguiBackend
	if cfg.DebugUI {
		backend = debugui_ebiten.NewImguiBackend("tetra", layout.screenWidth+480, max(layout.screenHeight, 720))
	} else {
		ebiten.SetWindowSize(layout.screenWidth, layout.screenHeight)
		ebiten.SetWindowTitle("tetra")
	}
	ebiten.SetTPS(tps)

	queue := engine.NewActionQueue()
	keyboard := &keyboardSystem{queue: queue, left: engine.NewKeyRepeat(), right: engine.NewKeyRepeat(), down: engine.NewKeyRepeat()}

	scheduler := engine.NewScheduler(game)
	scheduler.Register(keyboard)
	scheduler.Register(&engine.InputSystem{Source: queue})
	scheduler.Register(&engine.GravitySystem{})

	var speaker closer
	if cfg.Sound {
		player, err := audio.NewPlayer(audio.DefaultSampleRate, 0.5)
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			speaker = player
			scheduler.Register(&audio.System{Sink: player})
		}
	}

	if backend != nil {
		keyboard.overlay = debugui.Install(scheduler)
	}

	g := &Game{
		game:      game,
		scheduler: scheduler,
		layout:    layout,
		backend:   backend,
	}
	if err := shutdown(speaker, ebiten.RunGame(g)); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	log.Printf("Final score %d, %d lines", game.Score(), game.Stats().Lines)
}

type closer interface {
	Close()
}

// shutdown releases the audio device, if any, before the caller can exit and
// drops the error ebiten uses for a regular quit.
func shutdown(speaker closer, runErr error) error {
	if speaker != nil {
		speaker.Close()
	}
	if errors.Is(runErr, ebiten.Termination) {
		return nil
	}
	return runErr
}

// Game adapts the scheduler to ebiten's update and draw callbacks.
type Game struct {
	game      *tetris.Game
	scheduler *engine.Scheduler
	layout    layout
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend != nil {
		g.backend.BeginFrame()
	}
	g.scheduler.Once(1.0 / tps)
	if g.backend != nil {
		g.backend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGame(screen, g.game, g.layout)
	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.screenWidth, g.layout.screenHeight
}
