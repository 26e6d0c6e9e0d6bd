package debugui

import (
	"github.com/plus3/tetra/engine"
)

// Install registers the default debug windows for the scheduler's game and
// the systems that feed them. It returns the overlay so frontends can read
// its input state.
func Install(scheduler *engine.Scheduler) *Overlay {
	overlay := NewOverlay()
	perf := NewPerformanceStats(scheduler, 120)
	overlay.Add(perf.Item())
	overlay.Add(NewGameInspector(scheduler.Game()).Item())

	scheduler.Register(perf)
	scheduler.Register(&System{Overlay: overlay})
	return overlay
}
