package main

import (
	"context"
	"time"

	"github.com/plus3/tetra/engine"
)

// frameClock times the systems registered between its start and stop halves
// and cancels the run once limit frames have passed.
type frameClock struct {
	started time.Time
	samples *Stats
	frames  int64
	limit   int64
	cancel  context.CancelFunc
}

func (c *frameClock) start() *clockStart { return &clockStart{c} }
func (c *frameClock) stop() *clockStop   { return &clockStop{c} }

type clockStart struct{ *frameClock }

func (s *clockStart) Execute(*engine.Frame) {
	s.started = time.Now()
}

type clockStop struct{ *frameClock }

func (s *clockStop) Execute(*engine.Frame) {
	s.samples.Samples = append(s.samples.Samples, time.Since(s.started))
	s.frames++
	if s.limit > 0 && s.frames >= s.limit {
		s.cancel()
	}
}
