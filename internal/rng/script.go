package rng

// Script is a Source that replays queued values, for deterministic tests.
// Once a queue is exhausted it returns 0.
type Script struct {
	ints     []int
	intIdx   int
	floats   []float64
	floatIdx int
}

// Ensure Script implements Source
var _ Source = (*Script)(nil)

// NewScript creates an empty Script.
func NewScript() *Script {
	return &Script{}
}

// QueueIntn adds values to the Intn result queue.
func (s *Script) QueueIntn(values ...int) *Script {
	s.ints = append(s.ints, values...)
	return s
}

// QueueFloat64 adds values to the Float64 result queue.
func (s *Script) QueueFloat64(values ...float64) *Script {
	s.floats = append(s.floats, values...)
	return s
}

// Intn returns the next queued int, reduced into [0, n).
func (s *Script) Intn(n int) int {
	if s.intIdx >= len(s.ints) || n <= 0 {
		return 0
	}
	v := s.ints[s.intIdx]
	s.intIdx++
	return ((v % n) + n) % n
}

// Float64 returns the next queued float.
func (s *Script) Float64() float64 {
	if s.floatIdx >= len(s.floats) {
		return 0
	}
	v := s.floats[s.floatIdx]
	s.floatIdx++
	return v
}

// Remaining reports how many queued values have not been consumed.
func (s *Script) Remaining() (ints, floats int) {
	return len(s.ints) - s.intIdx, len(s.floats) - s.floatIdx
}
