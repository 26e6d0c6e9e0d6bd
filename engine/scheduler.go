package engine

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/tetra/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs registered systems in order against a single game.
type Scheduler struct {
	game        *tetris.Game
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64

	frame   *Frame
	pending []tetris.Event
}

// NewScheduler creates a scheduler for game and subscribes to its events so
// each frame can see them.
func NewScheduler(game *tetris.Game) *Scheduler {
	s := &Scheduler{
		game:    game,
		systems: make([]System, 0),
	}
	game.Subscribe(s.collect)
	return s
}

func (s *Scheduler) collect(e tetris.Event) {
	if s.frame != nil {
		s.frame.Events = append(s.frame.Events, e)
		return
	}
	s.pending = append(s.pending, e)
}

// Game returns the game the scheduler drives.
func (s *Scheduler) Game() *tetris.Game {
	return s.game
}

// Register appends a system and initializes it if it implements Initializer.
func (s *Scheduler) Register(system System) {
	if init, ok := system.(Initializer); ok {
		init.Init(s.game)
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.game)
	frame.Events = append(frame.Events, s.pending...)
	s.pending = s.pending[:0]
	s.frame = frame

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	// events raised by deferred commands belong to the next frame
	s.frame = nil
	s.frames++
	frame.Commands.Flush()
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
