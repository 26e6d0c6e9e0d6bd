package tetris

import (
	"fmt"
	"math"
	"time"
)

// State is the lifecycle phase of a game.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result summarises what a Tick or a drop did to the game.
type Result struct {
	Rows     int   // rows the figure moved down
	Locked   bool  // the figure was locked into the board
	Landed   Point // anchor of the figure when it locked
	Cleared  int   // rows removed by the lock
	Points   int   // score gained
	GameOver bool  // the follow-up spawn topped out
}

type Option func(*Game)

// WithRandomizer replaces the default uniform randomizer.
func WithRandomizer(r Randomizer) Option {
	return func(g *Game) {
		g.random = r
	}
}

// WithListener subscribes l before the game emits anything.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.listeners = append(g.listeners, l)
	}
}

// Game is the controller: it owns the board and the current and next figures,
// runs the fall timer and applies player commands. It is not safe for
// concurrent use; the host drives it from a single goroutine.
type Game struct {
	cfg       Config
	board     *Board
	current   *Figure
	next      *Figure
	random    Randomizer
	listeners []Listener

	state    State
	score    int
	elapsed  time.Duration
	dropping bool
	stats    Stats
}

// NewGame creates a game in StateNotStarted. Call Start to spawn the first figure.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		cfg:   cfg,
		board: NewBoard(cfg.Width, cfg.Height),
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.random == nil {
		g.random = NewUniformRandomizer(0)
	}
	return g, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Board() *Board {
	return g.board
}

// Current returns the falling figure, or nil before the game starts.
func (g *Game) Current() *Figure {
	return g.current
}

// Next returns the figure that becomes current after the next lock.
func (g *Game) Next() *Figure {
	return g.next
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}

func (g *Game) Stats() Stats {
	return g.stats
}

// Subscribe registers a listener for every following event.
func (g *Game) Subscribe(l Listener) {
	g.listeners = append(g.listeners, l)
}

// GhostY returns the row the current figure would land on if hard dropped.
func (g *Game) GhostY() int {
	if g.current == nil {
		return 0
	}
	dy := 0
	for g.board.IsValid(g.current, 0, dy+1) {
		dy++
	}
	return g.current.Y + dy
}

// Start leaves StateNotStarted and spawns the first figure. It reports
// whether the game was actually started.
func (g *Game) Start() bool {
	if g.state != StateNotStarted {
		return false
	}
	g.begin(Event{Type: EventStart})
	return true
}

// Reset discards the board and score and starts over from any state.
func (g *Game) Reset() {
	g.board = NewBoard(g.cfg.Width, g.cfg.Height)
	g.begin(Event{Type: EventReset})
}

// begin clears the round, announces it with e and only then spawns, so a
// blocked first spawn reports its game over after e.
func (g *Game) begin(e Event) {
	g.score = 0
	g.elapsed = 0
	g.stats = newStats()
	g.current = nil
	g.next = nil
	g.state = StateRunning
	g.emit(e)

	g.place()
	if g.state == StateRunning {
		g.emit(Event{Type: EventSpawn, Kind: g.current.kind})
	}
}

// Tick advances the fall timer by elapsed. Once a full FallDelay has built
// up the figure drops one row, or locks if it cannot.
func (g *Game) Tick(elapsed time.Duration) Result {
	if g.state != StateRunning {
		return Result{}
	}
	g.elapsed += elapsed
	if g.elapsed < g.cfg.FallDelay {
		return Result{}
	}
	g.elapsed = 0
	if g.board.IsValid(g.current, 0, 1) {
		g.current.Y++
		return Result{Rows: 1}
	}
	return g.lock()
}

// Move shifts the figure dx columns if the target position is free.
func (g *Game) Move(dx int) bool {
	return g.shift(dx, 0, 0)
}

// MoveDown shifts the figure dx columns and one row down in a single step,
// awarding the soft drop bonus.
func (g *Game) MoveDown(dx int) bool {
	return g.shift(dx, 1, g.cfg.SoftDropBonus)
}

// SoftDrop moves the figure one row down, awarding the soft drop bonus.
func (g *Game) SoftDrop() bool {
	return g.shift(0, 1, g.cfg.SoftDropBonus)
}

func (g *Game) shift(dx, dy, bonus int) bool {
	if g.state != StateRunning {
		return false
	}
	if !g.board.IsValid(g.current, dx, dy) {
		return false
	}
	g.current.X += dx
	g.current.Y += dy
	g.score += bonus
	return true
}

// Rotate turns the figure clockwise in place. A rotation that would leave the
// board or overlap locked cells is rejected; no kick offsets are tried.
func (g *Game) Rotate() bool {
	if g.state != StateRunning {
		return false
	}
	return g.rotate(g.current.RotateRight())
}

// RotateLeft turns the figure counter-clockwise under the same rules as Rotate.
func (g *Game) RotateLeft() bool {
	if g.state != StateRunning {
		return false
	}
	return g.rotate(g.current.RotateLeft())
}

func (g *Game) rotate(shape Shape) bool {
	if !g.board.IsValid(g.current, 0, 0, shape) {
		return false
	}
	g.current.setShape(shape)
	return true
}

// HardDrop moves the figure down until it rests on something, then locks it.
// Calls made while a drop is already in progress are ignored.
func (g *Game) HardDrop() Result {
	if g.state != StateRunning || g.dropping {
		return Result{}
	}
	g.dropping = true
	defer func() { g.dropping = false }()

	rows := 0
	for g.board.IsValid(g.current, 0, 1) {
		g.current.Y++
		rows++
	}
	bonus := rows * g.cfg.HardDropBonus
	g.score += bonus
	g.elapsed = 0

	res := g.lock()
	res.Rows = rows
	res.Points += bonus
	return res
}

func (g *Game) lock() Result {
	fig := g.current
	g.board.Lock(fig)
	cleared := g.board.ClearLines()
	points := cleared*g.cfg.LineClearBonus + g.cfg.LockBonus
	g.score += points
	g.stats.recordLock(cleared)

	g.emit(Event{Type: EventLock, Kind: fig.kind, Lines: cleared})
	if cleared > 0 {
		g.emit(Event{Type: EventLineClear, Kind: fig.kind, Lines: cleared})
	}

	g.place()
	if g.state == StateRunning {
		g.emit(Event{Type: EventSpawn, Kind: g.current.kind})
	}
	return Result{
		Locked:   true,
		Landed:   Point{X: fig.X, Y: fig.Y},
		Cleared:  cleared,
		Points:   points,
		GameOver: g.state == StateGameOver,
	}
}

// place promotes the next figure to current, draws a new next figure and
// centres the current one on the top row. A blocked spawn ends the game.
func (g *Game) place() {
	if g.next == nil {
		g.next = g.newFigure()
	}
	g.current = g.next
	g.next = g.newFigure()

	g.current.X = int(math.Floor(float64(g.board.width)/2 - float64(g.current.Width())/2))
	g.current.Y = 0
	g.stats.recordSpawn(g.current.kind)

	if !g.board.IsValid(g.current, 0, 0) {
		g.state = StateGameOver
		g.emit(Event{Type: EventGameOver, Kind: g.current.kind})
	}
}

func (g *Game) newFigure() *Figure {
	t, ok := TemplateFor(g.random.Next())
	if !ok {
		t = templates[0]
	}
	return NewFigure(t)
}

func (g *Game) emit(e Event) {
	e.Score = g.score
	for _, l := range g.listeners {
		l(e)
	}
}
