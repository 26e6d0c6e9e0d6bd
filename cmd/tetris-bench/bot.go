package main

import (
	"math/rand/v2"

	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
)

// weightedAction is one entry in the bot's action table.
type weightedAction struct {
	action engine.Action
	weight int
}

// Hard drops are rare so most figures get moved around before landing.
var botActions = []weightedAction{
	{engine.ActionLeft, 6},
	{engine.ActionRight, 6},
	{engine.ActionRotate, 4},
	{engine.ActionRotateLeft, 2},
	{engine.ActionSoftDrop, 3},
	{engine.ActionDownLeft, 1},
	{engine.ActionDownRight, 1},
	{engine.ActionHardDrop, 1},
}

// bot is both a system and the input source of the InputSystem that runs
// after it. Each frame it picks at most one action.
type bot struct {
	rng    *rand.Rand
	total  int
	chance float64 // probability of acting on a given frame

	pending engine.Action
	ready   bool
	issued  int64
}

func newBot(seed uint64, chance float64) *bot {
	b := &bot{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		chance: chance,
	}
	for _, wa := range botActions {
		b.total += wa.weight
	}
	return b
}

func (b *bot) Execute(frame *engine.Frame) {
	b.ready = false
	if frame.Game.State() != tetris.StateRunning {
		return
	}
	if b.rng.Float64() >= b.chance {
		return
	}
	b.pending = b.pick()
	b.ready = true
}

func (b *bot) pick() engine.Action {
	n := b.rng.IntN(b.total)
	for _, wa := range botActions {
		if n < wa.weight {
			return wa.action
		}
		n -= wa.weight
	}
	return engine.ActionHardDrop
}

func (b *bot) Poll() (engine.Action, bool) {
	if !b.ready {
		return 0, false
	}
	b.ready = false
	b.issued++
	return b.pending, true
}

// tally watches frame events, records every finished game and restarts it.
type tally struct {
	game   *tetris.Game
	games  []gameResult
	spawns map[tetris.Kind]int
}

type gameResult struct {
	Score  int
	Pieces int
	Lines  int
}

func newTally() *tally {
	return &tally{spawns: make(map[tetris.Kind]int)}
}

func (t *tally) Init(game *tetris.Game) {
	t.game = game
}

// unfinished returns the game still in progress, if any.
func (t *tally) unfinished() *gameResult {
	if t.game == nil || t.game.State() != tetris.StateRunning {
		return nil
	}
	stats := t.game.Stats()
	return &gameResult{Score: t.game.Score(), Pieces: stats.Pieces, Lines: stats.Lines}
}

func (t *tally) Execute(frame *engine.Frame) {
	for _, e := range frame.Events {
		switch e.Type {
		case tetris.EventSpawn:
			t.spawns[e.Kind]++
		case tetris.EventGameOver:
			stats := frame.Game.Stats()
			t.games = append(t.games, gameResult{Score: e.Score, Pieces: stats.Pieces, Lines: stats.Lines})
			game := frame.Game
			frame.Commands.Defer(game.Reset)
		}
	}
}
