package engine

// KeyRepeat turns a held key into repeated presses: one on the initial press,
// then one every Rate seconds once the key has been held for Delay seconds.
type KeyRepeat struct {
	Delay float64
	Rate  float64

	held float64
	down bool
}

// NewKeyRepeat returns the repeat timing used by the frontends for sideways moves.
func NewKeyRepeat() *KeyRepeat {
	return &KeyRepeat{Delay: 0.2, Rate: 0.05}
}

// Update advances the timer by dt seconds and returns how many presses fire
// this frame.
func (r *KeyRepeat) Update(down bool, dt float64) int {
	if !down {
		r.down = false
		r.held = 0
		return 0
	}
	if !r.down {
		r.down = true
		r.held = 0
		return 1
	}
	if r.Rate <= 0 {
		return 0
	}

	fired := 0
	r.held += dt
	for r.held > r.Delay {
		r.held -= r.Rate
		fired++
	}
	return fired
}

func (r *KeyRepeat) Reset() {
	r.down = false
	r.held = 0
}
