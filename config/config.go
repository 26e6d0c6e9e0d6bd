package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/tetra/tetris"
)

var ErrInvalidValue = errors.New("invalid config value")

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Config is everything an executable needs to build and present a game.
type Config struct {
	Game       tetris.Config
	Randomizer string
	Seed       uint64
	Sound      bool
	DebugUI    bool
	CellSize   int
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Game:       tetris.DefaultConfig(),
		Randomizer: RandomizerUniform,
		Sound:      true,
		CellSize:   30,
	}
}

// Load reads the given .env files (".env" when none are given), then builds a
// Config from TETRA_* environment variables. Missing files are skipped and
// variables already set in the environment win over file values.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	}

	cfg := Default()
	var errs []error
	read := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	read(envInt("TETRA_WIDTH", &cfg.Game.Width))
	read(envInt("TETRA_HEIGHT", &cfg.Game.Height))
	read(envDuration("TETRA_FALL_DELAY", &cfg.Game.FallDelay))
	read(envInt("TETRA_SOFT_DROP_BONUS", &cfg.Game.SoftDropBonus))
	read(envInt("TETRA_HARD_DROP_BONUS", &cfg.Game.HardDropBonus))
	read(envInt("TETRA_LINE_CLEAR_BONUS", &cfg.Game.LineClearBonus))
	read(envInt("TETRA_LOCK_BONUS", &cfg.Game.LockBonus))
	read(envUint("TETRA_SEED", &cfg.Seed))
	read(envBool("TETRA_SOUND", &cfg.Sound))
	read(envBool("TETRA_DEBUG_UI", &cfg.DebugUI))
	read(envInt("TETRA_CELL_SIZE", &cfg.CellSize))
	cfg.Randomizer = strings.ToLower(GetEnv("TETRA_RANDOMIZER", cfg.Randomizer))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: TETRA_RANDOMIZER must be %q or %q, got %q",
			ErrInvalidValue, RandomizerUniform, RandomizerBag, c.Randomizer)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: TETRA_CELL_SIZE must be positive, got %d", ErrInvalidValue, c.CellSize)
	}
	return nil
}

// NewRandomizer builds the configured randomizer from Seed.
func (c *Config) NewRandomizer() tetris.Randomizer {
	if c.Randomizer == RandomizerBag {
		return tetris.NewBagRandomizer(c.Seed)
	}
	return tetris.NewUniformRandomizer(c.Seed)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func envInt(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, raw)
	}
	*dst = v
	return nil
}

func envUint(key string, dst *uint64) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrInvalidValue, key, raw)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidValue, key, raw)
	}
	*dst = v
	return nil
}

// envDuration accepts Go durations ("250ms") or a bare number of milliseconds.
func envDuration(key string, dst *time.Duration) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	if ms, err := strconv.Atoi(raw); err == nil {
		*dst = time.Duration(ms) * time.Millisecond
		return nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidValue, key, raw)
	}
	*dst = v
	return nil
}
