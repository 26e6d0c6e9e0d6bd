package main

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/plus3/tetra/config"
	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

// options controls a bench run. The run ends when the context expires or,
// when MaxFrames is positive, after that many frames.
type options struct {
	Step      time.Duration // simulated time per frame
	Chance    float64       // probability that the bot acts on a frame
	MaxFrames int64
	GCMetrics bool

	// Realtime paces frames on a wall-clock ticker of Step instead of running
	// them back to back.
	Realtime bool
}

func defaultOptions() options {
	return options{
		Step:   time.Second / 60,
		Chance: 0.25,
	}
}

// run plays games back to back with a random bot until ctx is done.
func run(ctx context.Context, cfg *config.Config, opts options) (*Report, error) {
	game, err := tetris.NewGame(cfg.Game, tetris.WithRandomizer(cfg.NewRandomizer()))
	if err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	if opts.Step <= 0 {
		return nil, fmt.Errorf("bench: frame step must be positive, got %s", opts.Step)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report := &Report{
		Width:      cfg.Game.Width,
		Height:     cfg.Game.Height,
		FallDelay:  cfg.Game.FallDelay,
		Randomizer: cfg.Randomizer,
		Seed:       cfg.Seed,
		Step:       opts.Step,
		Realtime:   opts.Realtime,
		GCMetrics:  opts.GCMetrics,
		FrameTime:  Stats{Samples: make([]time.Duration, 0, 1024)},
	}

	clock := &frameClock{samples: &report.FrameTime, limit: opts.MaxFrames, cancel: cancel}
	scheduler := engine.NewScheduler(game)
	player := newBot(cfg.Seed, opts.Chance)
	results := newTally()
	scheduler.Register(clock.start())
	scheduler.Register(player)
	scheduler.Register(&engine.InputSystem{Source: player})
	scheduler.Register(&engine.GravitySystem{})
	scheduler.Register(results)
	scheduler.Register(clock.stop())

	runtime.ReadMemStats(&report.MemStatsStart)

	game.Start()
	start := time.Now()
	if opts.Realtime {
		scheduler.Run(ctx, opts.Step)
	} else {
		dt := opts.Step.Seconds()
		for ctx.Err() == nil {
			scheduler.Once(dt)
		}
	}

	report.TotalTime = time.Since(start)
	report.Frames = scheduler.Stats().Frames
	report.SimulatedTime = time.Duration(report.Frames) * opts.Step
	report.Actions = player.issued
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Systems = scheduler.Stats().Systems
	report.addGames(results.games)
	report.Unfinished = results.unfinished()
	report.addSpawns(results.spawns)
	return report, nil
}

func (r *Report) addGames(games []gameResult) {
	r.Games = len(games)
	if len(games) == 0 {
		return
	}
	scores := make([]int, len(games))
	total := 0
	for i, g := range games {
		scores[i] = g.Score
		total += g.Score
		r.Pieces += g.Pieces
		r.Lines += g.Lines
	}
	r.MinScore = slices.Min(scores)
	r.MaxScore = slices.Max(scores)
	r.AvgScore = float64(total) / float64(len(games))
}

func (r *Report) addSpawns(spawns map[tetris.Kind]int) {
	total := 0
	for _, n := range spawns {
		total += n
	}
	r.Spawns = make([]SpawnCount, 0, tetris.KindCount)
	for _, kind := range tetris.Kinds() {
		sc := SpawnCount{Kind: kind, Count: spawns[kind]}
		if total > 0 {
			sc.Share = 100 * float64(sc.Count) / float64(total)
		}
		r.Spawns = append(r.Spawns, sc)
	}
}
