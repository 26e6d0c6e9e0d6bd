package engine_test

import (
	"testing"

	"github.com/plus3/tetra/engine"
	"github.com/plus3/tetra/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range engine.Actions() {
		got, err := engine.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := engine.ParseAction(" Hard_Drop ")
	require.NoError(t, err)
	assert.Equal(t, engine.ActionHardDrop, got)

	_, err = engine.ParseAction("teleport")
	assert.ErrorIs(t, err, engine.ErrUnknownAction)
}

func TestApply(t *testing.T) {
	t.Run("start then restart", func(t *testing.T) {
		game := newTestGame(t)
		engine.Apply(game, engine.ActionStart)
		assert.Equal(t, tetris.StateRunning, game.State())

		engine.Apply(game, engine.ActionSoftDrop)
		engine.Apply(game, engine.ActionStart)
		assert.Equal(t, 1, game.Current().Y, "start is ignored while running")
	})

	t.Run("moves", func(t *testing.T) {
		game := newTestGame(t)
		engine.Apply(game, engine.ActionStart)

		engine.Apply(game, engine.ActionLeft)
		assert.Equal(t, 3, game.Current().X)
		engine.Apply(game, engine.ActionRight)
		engine.Apply(game, engine.ActionRight)
		assert.Equal(t, 5, game.Current().X)

		res := engine.Apply(game, engine.ActionDownLeft)
		assert.Equal(t, 1, res.Rows)
		assert.Equal(t, 4, game.Current().X)
		res = engine.Apply(game, engine.ActionDownRight)
		assert.Equal(t, 1, res.Rows)
		assert.Equal(t, 5, game.Current().X)
		assert.Equal(t, 2, game.Current().Y)

		res = engine.Apply(game, engine.ActionSoftDrop)
		assert.Equal(t, tetris.Result{Rows: 1, Points: 1}, res)
		assert.Equal(t, 3, game.Score())
	})

	t.Run("rotations", func(t *testing.T) {
		game := newTestGame(t, tetris.KindI)
		engine.Apply(game, engine.ActionStart)
		engine.Apply(game, engine.ActionSoftDrop)

		engine.Apply(game, engine.ActionRotate)
		assert.Equal(t, 4, game.Current().Width())
		engine.Apply(game, engine.ActionRotateLeft)
		assert.Equal(t, 1, game.Current().Width())
	})

	t.Run("hard drop returns the lock result", func(t *testing.T) {
		game := newTestGame(t)
		engine.Apply(game, engine.ActionStart)

		res := engine.Apply(game, engine.ActionHardDrop)
		assert.True(t, res.Locked)
		assert.Equal(t, 180, res.Points)
	})

	t.Run("restart after game over", func(t *testing.T) {
		cfg := tetris.DefaultConfig()
		cfg.Height = 3
		game, err := tetris.NewGame(cfg, tetris.WithRandomizer(tetris.NewSequenceRandomizer(tetris.KindO)))
		require.NoError(t, err)

		engine.Apply(game, engine.ActionStart)
		engine.Apply(game, engine.ActionHardDrop)
		require.True(t, game.GameOver())

		engine.Apply(game, engine.ActionStart)
		assert.Equal(t, tetris.StateRunning, game.State())
		assert.Equal(t, 0, game.Board().Occupied())
	})

	t.Run("reset while running", func(t *testing.T) {
		game := newTestGame(t)
		engine.Apply(game, engine.ActionStart)
		engine.Apply(game, engine.ActionHardDrop)

		engine.Apply(game, engine.ActionReset)
		assert.Equal(t, 0, game.Score())
		assert.Equal(t, 0, game.Board().Occupied())
	})

	t.Run("rejected moves return zero results", func(t *testing.T) {
		game := newTestGame(t)
		assert.Equal(t, tetris.Result{}, engine.Apply(game, engine.ActionSoftDrop))
		assert.Equal(t, tetris.Result{}, engine.Apply(game, engine.ActionHardDrop))
	})
}

func TestPerformReportsChanges(t *testing.T) {
	game := newTestGame(t, tetris.KindI)

	_, ok := engine.Perform(game, engine.ActionRotate)
	assert.False(t, ok, "nothing rotates before the game starts")

	_, ok = engine.Perform(game, engine.ActionStart)
	assert.True(t, ok)
	_, ok = engine.Perform(game, engine.ActionStart)
	assert.False(t, ok, "start is ignored while running")

	for range 3 {
		_, ok = engine.Perform(game, engine.ActionRight)
		require.True(t, ok)
	}
	require.Equal(t, 7, game.Current().X)

	_, ok = engine.Perform(game, engine.ActionRotate)
	assert.False(t, ok, "horizontal I does not fit at x=7")
	_, ok = engine.Perform(game, engine.ActionRight)
	assert.True(t, ok)
	_, ok = engine.Perform(game, engine.ActionRight)
	assert.True(t, ok)
	_, ok = engine.Perform(game, engine.ActionRight)
	assert.False(t, ok, "I already touches the right wall")

	res, ok := engine.Perform(game, engine.ActionHardDrop)
	assert.True(t, ok)
	assert.True(t, res.Locked)

	_, ok = engine.Perform(game, engine.ActionReset)
	assert.True(t, ok)
}
