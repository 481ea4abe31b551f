package game

import "time"

// tickStats records the cost of the last N ticks into a ring buffer so the
// debug overlay can show how expensive the simulation is.
type tickStats struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

func newTickStats(ringSize int) *tickStats {
	return &tickStats{buffer: make([]time.Duration, ringSize)}
}

func (s *tickStats) record(d time.Duration) {
	s.buffer[s.nextIndex] = d
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.filled < len(s.buffer) {
		s.filled++
	}
}

// Sample order does not matter to either aggregate, so both read the
// filled prefix of the ring directly.
func (s *tickStats) mean() time.Duration {
	if s.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range s.buffer[:s.filled] {
		sum += d
	}
	return sum / time.Duration(s.filled)
}

func (s *tickStats) peak() time.Duration {
	var top time.Duration
	for _, d := range s.buffer[:s.filled] {
		top = max(top, d)
	}
	return top
}
