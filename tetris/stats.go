package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened over the life of a game.
type Stats struct {
	Pieces int // figures locked
	Lines  int // rows cleared

	spawns *intmap.Map[Kind, int]
	clears *intmap.Map[int, int]
}

func newStats() Stats {
	return Stats{
		spawns: intmap.New[Kind, int](KindCount),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(kind Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.Pieces++
	if cleared == 0 {
		return
	}
	s.Lines += cleared
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

// Spawned returns how many figures of the kind became current.
func (s Stats) Spawned(kind Kind) int {
	if s.spawns == nil {
		return 0
	}
	n, _ := s.spawns.Get(kind)
	return n
}

// Clears returns how many locks removed exactly rows lines at once.
func (s Stats) Clears(rows int) int {
	if s.clears == nil {
		return 0
	}
	n, _ := s.clears.Get(rows)
	return n
}
