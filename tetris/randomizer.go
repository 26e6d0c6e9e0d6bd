package tetris

import (
	"math/rand/v2"
	"time"
)

// Randomizer picks the kind of every newly generated figure.
type Randomizer interface {
	Next() Kind
}

// UniformRandomizer draws each kind independently with equal probability.
// Repeats and droughts are possible.
type UniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer seeds a uniform randomizer. A zero seed uses the clock.
func NewUniformRandomizer(seed uint64) *UniformRandomizer {
	return &UniformRandomizer{rng: newRand(seed)}
}

func (r *UniformRandomizer) Next() Kind {
	return Kind(r.rng.IntN(KindCount) + 1)
}

// BagRandomizer deals all seven kinds in shuffled order before refilling.
type BagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

// NewBagRandomizer seeds a 7-bag randomizer. A zero seed uses the clock.
func NewBagRandomizer(seed uint64) *BagRandomizer {
	return &BagRandomizer{rng: newRand(seed)}
}

func (r *BagRandomizer) Next() Kind {
	if len(r.bag) == 0 {
		r.bag = Kinds()
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	kind := r.bag[0]
	r.bag = r.bag[1:]
	return kind
}

// SequenceRandomizer replays a fixed list of kinds, wrapping around at the end.
type SequenceRandomizer struct {
	kinds []Kind
	pos   int
}

func NewSequenceRandomizer(kinds ...Kind) *SequenceRandomizer {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	return &SequenceRandomizer{kinds: kinds}
}

func (r *SequenceRandomizer) Next() Kind {
	kind := r.kinds[r.pos]
	r.pos = (r.pos + 1) % len(r.kinds)
	return kind
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
