package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, cfg tetris.Config, kinds ...tetris.Kind) *tetris.Game {
	t.Helper()
	g, err := tetris.NewGame(cfg, tetris.WithRandomizer(tetris.NewSequenceRandomizer(kinds...)))
	require.NoError(t, err)
	return g
}

func startedGame(t *testing.T, kinds ...tetris.Kind) *tetris.Game {
	t.Helper()
	g := newGame(t, tetris.DefaultConfig(), kinds...)
	require.True(t, g.Start())
	return g
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tetris.Config)
	}{
		{"zero width", func(c *tetris.Config) { c.Width = 0 }},
		{"negative height", func(c *tetris.Config) { c.Height = -3 }},
		{"zero fall delay", func(c *tetris.Config) { c.FallDelay = 0 }},
		{"negative bonus", func(c *tetris.Config) { c.HardDropBonus = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.mutate(&cfg)

			g, err := tetris.NewGame(cfg)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
		})
	}
}

func TestGameNotStarted(t *testing.T) {
	g := newGame(t, tetris.DefaultConfig(), tetris.KindO)

	assert.Equal(t, tetris.StateNotStarted, g.State())
	assert.Nil(t, g.Current())
	assert.False(t, g.Move(1))
	assert.False(t, g.Rotate())
	assert.False(t, g.SoftDrop())
	assert.Equal(t, tetris.Result{}, g.HardDrop())
	assert.Equal(t, tetris.Result{}, g.Tick(time.Hour))
	assert.Equal(t, 0, g.Score())
}

func TestGameStart(t *testing.T) {
	var events []tetris.EventType
	g := newGame(t, tetris.DefaultConfig(), tetris.KindJ, tetris.KindI)
	g.Subscribe(func(e tetris.Event) { events = append(events, e.Type) })

	require.True(t, g.Start())
	assert.False(t, g.Start(), "second start is a no-op")

	assert.Equal(t, tetris.StateRunning, g.State())
	assert.Equal(t, tetris.KindJ, g.Current().Kind())
	assert.Equal(t, tetris.KindI, g.Next().Kind())
	assert.Equal(t, []tetris.EventType{tetris.EventStart, tetris.EventSpawn}, events)
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		kind tetris.Kind
		x    int
	}{
		{tetris.KindO, 4}, // floor(10/2 - 2/2)
		{tetris.KindJ, 3}, // floor(10/2 - 3/2)
		{tetris.KindI, 4}, // floor(10/2 - 1/2)
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			g := startedGame(t, tt.kind)
			assert.Equal(t, tt.x, g.Current().X)
			assert.Equal(t, 0, g.Current().Y)
		})
	}
}

func TestTick(t *testing.T) {
	t.Run("waits for the fall delay", func(t *testing.T) {
		g := startedGame(t, tetris.KindO)

		assert.Equal(t, tetris.Result{}, g.Tick(399*time.Millisecond))
		assert.Equal(t, 0, g.Current().Y)

		res := g.Tick(time.Millisecond)
		assert.Equal(t, 1, res.Rows)
		assert.Equal(t, 1, g.Current().Y)
	})

	t.Run("falls one row per step regardless of backlog", func(t *testing.T) {
		g := startedGame(t, tetris.KindO)

		g.Tick(2 * time.Second)
		assert.Equal(t, 1, g.Current().Y)

		g.Tick(200 * time.Millisecond)
		assert.Equal(t, 1, g.Current().Y)
	})

	t.Run("locks and spawns when blocked", func(t *testing.T) {
		g := startedGame(t, tetris.KindO, tetris.KindT)
		step := g.Config().FallDelay

		for range 18 {
			res := g.Tick(step)
			require.Equal(t, 1, res.Rows)
		}
		require.Equal(t, 18, g.Current().Y)

		res := g.Tick(step)
		assert.True(t, res.Locked)
		assert.Equal(t, tetris.Point{X: 4, Y: 18}, res.Landed)
		assert.Equal(t, 0, res.Cleared)
		assert.Equal(t, tetris.KindT, g.Current().Kind())
		assert.Equal(t, 0, g.Current().Y)
		assert.Equal(t, tetris.KindO, g.Board().Cell(4, 19).Kind)
		assert.Equal(t, 1, g.Stats().Pieces)
	})
}

func TestMove(t *testing.T) {
	g := startedGame(t, tetris.KindO)

	assert.True(t, g.Move(-1))
	assert.Equal(t, 3, g.Current().X)

	for g.Move(-1) {
	}
	assert.Equal(t, 0, g.Current().X)
	assert.False(t, g.Move(-1))
	assert.Equal(t, 0, g.Current().X)

	for g.Move(1) {
	}
	assert.Equal(t, 8, g.Current().X)
}

func TestMoveBlockedByLockedCells(t *testing.T) {
	g := startedGame(t, tetris.KindO)
	g.Board().SetCell(6, 1, tetris.Cell{Kind: tetris.KindZ})

	assert.False(t, g.Move(1))
	assert.Equal(t, 4, g.Current().X)
}

func TestRotate(t *testing.T) {
	t.Run("commits in open space", func(t *testing.T) {
		g := startedGame(t, tetris.KindI)
		g.SoftDrop()

		require.True(t, g.Rotate())
		assert.Equal(t, 4, g.Current().Width())
		assert.Equal(t, 1, g.Current().Height())
	})

	t.Run("rejected against the wall without kicks", func(t *testing.T) {
		g := startedGame(t, tetris.KindI)
		for g.Move(1) {
		}
		before := g.Current().Shape().Clone()
		x := g.Current().X

		assert.False(t, g.Rotate())
		assert.True(t, before.Equal(g.Current().Shape()))
		assert.Equal(t, x, g.Current().X)
	})

	t.Run("rejected when overlapping", func(t *testing.T) {
		g := startedGame(t, tetris.KindT)
		// block the first cell the rotated shape would occupy
		rotated := g.Current().RotateRight()
		for p := range rotated.Cells() {
			g.Board().SetCell(g.Current().X+p.X, g.Current().Y+p.Y, tetris.Cell{Kind: tetris.KindZ})
			break
		}

		assert.False(t, g.Rotate())
	})

	t.Run("left rotation", func(t *testing.T) {
		g := startedGame(t, tetris.KindL)
		expected := g.Current().RotateLeft()

		require.True(t, g.RotateLeft())
		assert.True(t, expected.Equal(g.Current().Shape()))
	})
}

func TestSoftDrop(t *testing.T) {
	g := startedGame(t, tetris.KindO)

	assert.True(t, g.SoftDrop())
	assert.Equal(t, 1, g.Current().Y)
	assert.Equal(t, 1, g.Score())

	for g.SoftDrop() {
	}
	assert.Equal(t, 18, g.Current().Y)
	assert.Equal(t, 18, g.Score())
	assert.Equal(t, 0, g.Board().Occupied(), "soft drop never locks")
}

func TestMoveDown(t *testing.T) {
	g := startedGame(t, tetris.KindO)

	assert.True(t, g.MoveDown(-1))
	assert.Equal(t, tetris.Point{X: 3, Y: 1}, tetris.Point{X: g.Current().X, Y: g.Current().Y})
	assert.Equal(t, 1, g.Score())

	g.Board().SetCell(5, 3, tetris.Cell{Kind: tetris.KindI})
	assert.False(t, g.MoveDown(1), "diagonal target is blocked")
	assert.Equal(t, 3, g.Current().X)
}

func TestHardDropScenario(t *testing.T) {
	g := startedGame(t, tetris.KindO)
	require.Equal(t, 4, g.Current().X)

	res := g.HardDrop()

	assert.Equal(t, 18, res.Rows)
	assert.True(t, res.Locked)
	assert.Equal(t, tetris.Point{X: 4, Y: 18}, res.Landed)
	assert.Equal(t, 0, res.Cleared)
	assert.Equal(t, 180, res.Points)
	assert.Equal(t, 180, g.Score())

	b := g.Board()
	assert.Equal(t, 4, b.Occupied())
	for _, p := range []tetris.Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, tetris.KindO, b.Cell(p.X, p.Y).Kind)
	}
	assert.Equal(t, tetris.StateRunning, g.State())
}

func TestLineClearScenario(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Width = 5
	g := newGame(t, cfg, tetris.KindJ, tetris.KindL, tetris.KindI, tetris.KindO)
	require.True(t, g.Start())

	// J fills the bottom of columns 0 and 1
	require.True(t, g.Move(-1))
	res := g.HardDrop()
	require.Equal(t, 0, res.Cleared)

	// L fills the bottom of columns 2 and 3
	res = g.HardDrop()
	require.Equal(t, 0, res.Cleared)
	require.Equal(t, 340, g.Score())

	// I completes the bottom row in column 4
	require.True(t, g.Move(1))
	require.True(t, g.Move(1))
	res = g.HardDrop()

	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 16*10+1000, res.Points)
	assert.Equal(t, 340+160+1000, g.Score())

	b := g.Board()
	for x := 0; x < b.Width(); x++ {
		assert.True(t, b.Cell(x, 0).Empty())
	}
	assert.True(t, b.Cell(0, 19).Empty())
	assert.Equal(t, tetris.KindJ, b.Cell(1, 19).Kind)
	assert.Equal(t, tetris.KindL, b.Cell(2, 19).Kind)
	assert.True(t, b.Cell(3, 19).Empty())
	assert.Equal(t, tetris.KindI, b.Cell(4, 19).Kind)
	assert.Equal(t, 7, b.Occupied())

	assert.Equal(t, 1, g.Stats().Lines)
	assert.Equal(t, 1, g.Stats().Clears(1))
	assert.Equal(t, tetris.KindO, g.Current().Kind())
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	g := startedGame(t, tetris.KindO)
	var atLock [][]tetris.Cell
	var events []tetris.EventType
	g.Subscribe(func(e tetris.Event) {
		events = append(events, e.Type)
		if e.Type == tetris.EventLock {
			atLock = g.Board().Rows()
		}
	})

	for g.Move(-1) {
	}
	g.Board().SetCell(5, 1, tetris.Cell{Kind: tetris.KindZ})

	res := g.HardDrop()

	assert.True(t, res.GameOver)
	assert.True(t, g.GameOver())
	assert.Equal(t, tetris.StateGameOver, g.State())
	assert.Equal(t, atLock, g.Board().Rows(), "a failed spawn leaves the board alone")
	assert.Equal(t, 5, g.Board().Occupied())
	assert.Equal(t, []tetris.EventType{tetris.EventLock, tetris.EventGameOver}, events)
}

func TestBlockedFirstSpawnFollowsStart(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Height = 3
	g := newGame(t, cfg, tetris.KindI)
	var events []tetris.EventType
	g.Subscribe(func(e tetris.Event) { events = append(events, e.Type) })

	require.True(t, g.Start())
	assert.True(t, g.GameOver(), "a vertical I does not fit a board three rows high")
	assert.Equal(t, []tetris.EventType{tetris.EventStart, tetris.EventGameOver}, events)
	assert.Equal(t, 0, g.Board().Occupied())

	events = nil
	g.Reset()
	assert.Equal(t, []tetris.EventType{tetris.EventReset, tetris.EventGameOver}, events)
}

func TestGameOverIsTerminal(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Height = 3
	g := newGame(t, cfg, tetris.KindO)
	require.True(t, g.Start())

	g.HardDrop()
	require.True(t, g.GameOver())
	score := g.Score()
	board := g.Board().Rows()

	assert.False(t, g.Move(1))
	assert.False(t, g.Rotate())
	assert.False(t, g.RotateLeft())
	assert.False(t, g.SoftDrop())
	assert.False(t, g.MoveDown(1))
	assert.Equal(t, tetris.Result{}, g.HardDrop())
	assert.Equal(t, tetris.Result{}, g.Tick(time.Hour))
	assert.False(t, g.Start())
	assert.Equal(t, score, g.Score())
	assert.Equal(t, board, g.Board().Rows())
}

func TestReset(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Height = 3
	g := newGame(t, cfg, tetris.KindO)
	require.True(t, g.Start())
	g.HardDrop()
	require.True(t, g.GameOver())

	var events []tetris.EventType
	g.Subscribe(func(e tetris.Event) { events = append(events, e.Type) })
	g.Reset()

	assert.Equal(t, tetris.StateRunning, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Board().Occupied())
	assert.Equal(t, 10, g.Board().Width())
	assert.Equal(t, 3, g.Board().Height())
	assert.Equal(t, 0, g.Stats().Pieces)
	assert.NotNil(t, g.Current())
	assert.NotNil(t, g.Next())
	assert.Equal(t, []tetris.EventType{tetris.EventReset, tetris.EventSpawn}, events)
}

func TestHardDropIsNotReentrant(t *testing.T) {
	g := startedGame(t, tetris.KindO)
	var nested []tetris.Result
	g.Subscribe(func(e tetris.Event) {
		if e.Type == tetris.EventLock {
			nested = append(nested, g.HardDrop())
		}
	})

	g.HardDrop()

	require.Len(t, nested, 1)
	assert.Equal(t, tetris.Result{}, nested[0])
	assert.Equal(t, 1, g.Stats().Pieces)
	assert.Equal(t, 4, g.Board().Occupied())
}

func TestGhostY(t *testing.T) {
	g := startedGame(t, tetris.KindO)
	assert.Equal(t, 18, g.GhostY())

	g.SoftDrop()
	assert.Equal(t, 18, g.GhostY())

	g.Board().SetCell(4, 10, tetris.Cell{Kind: tetris.KindZ})
	assert.Equal(t, 8, g.GhostY())
	assert.Equal(t, 1, g.Current().Y, "ghost is derived, never stored")
}

func TestLockBonus(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.LockBonus = 100
	g := newGame(t, cfg, tetris.KindO)
	require.True(t, g.Start())

	res := g.HardDrop()

	assert.Equal(t, 280, res.Points)
	assert.Equal(t, 280, g.Score())
}

func TestScoreNeverDecreases(t *testing.T) {
	g, err := tetris.NewGame(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewUniformRandomizer(7)))
	require.NoError(t, err)
	require.True(t, g.Start())

	last := 0
	for i := 0; i < 2000 && !g.GameOver(); i++ {
		switch i % 5 {
		case 0:
			g.Move(-1)
		case 1:
			g.Rotate()
		case 2:
			g.Move(1)
		case 3:
			g.SoftDrop()
		case 4:
			g.Tick(g.Config().FallDelay)
		}
		require.GreaterOrEqual(t, g.Score(), last)
		last = g.Score()
	}
}

func TestStatsCountSpawns(t *testing.T) {
	g := startedGame(t, tetris.KindO, tetris.KindI)
	g.HardDrop()
	g.HardDrop()

	stats := g.Stats()
	assert.Equal(t, 2, stats.Pieces)
	assert.Equal(t, 2, stats.Spawned(tetris.KindO))
	assert.Equal(t, 1, stats.Spawned(tetris.KindI))
	assert.Equal(t, 0, stats.Spawned(tetris.KindZ))
}

func TestWithListener(t *testing.T) {
	var got []tetris.Event
	g, err := tetris.NewGame(tetris.DefaultConfig(),
		tetris.WithRandomizer(tetris.NewSequenceRandomizer(tetris.KindO)),
		tetris.WithListener(func(e tetris.Event) { got = append(got, e) }),
	)
	require.NoError(t, err)

	g.Start()
	g.HardDrop()

	require.Len(t, got, 4)
	assert.Equal(t, tetris.EventLock, got[2].Type)
	assert.Equal(t, tetris.KindO, got[2].Kind)
	assert.Equal(t, 180, got[2].Score)
	assert.Equal(t, tetris.EventSpawn, got[3].Type)
}
