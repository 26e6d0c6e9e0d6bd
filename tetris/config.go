package tetris

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the board size, fall timing and score rules of a game.
type Config struct {
	Width  int
	Height int

	// FallDelay is the time the current figure waits before dropping one row.
	FallDelay time.Duration

	SoftDropBonus  int // per row moved by SoftDrop or MoveDown
	HardDropBonus  int // per row moved by HardDrop
	LineClearBonus int // per cleared row
	LockBonus      int // per locked figure
}

// DefaultConfig returns a 10x20 board falling one row every 400ms.
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         20,
		FallDelay:      400 * time.Millisecond,
		SoftDropBonus:  1,
		HardDropBonus:  10,
		LineClearBonus: 1000,
		LockBonus:      0,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FallDelay <= 0 {
		return fmt.Errorf("%w: fall delay must be positive, got %s", ErrInvalidConfig, c.FallDelay)
	}
	if c.SoftDropBonus < 0 || c.HardDropBonus < 0 || c.LineClearBonus < 0 || c.LockBonus < 0 {
		return fmt.Errorf("%w: score bonuses must not be negative", ErrInvalidConfig)
	}
	return nil
}
