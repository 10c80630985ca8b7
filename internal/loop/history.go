package loop

import "time"

// History records the last N frame durations into a ring buffer so the
// overlay can report how long recent frames took.
type History struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
}

// NewHistory returns an empty history holding at most size durations.
// Sizes below one are raised to one.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{
		buffer: make([]time.Duration, size),
	}
}

// Record stores d, overwriting the oldest entry once the ring is full.
func (h *History) Record(d time.Duration) {
	h.buffer[h.nextIndex] = d
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.filled < len(h.buffer) {
		h.filled++
	}
}

// Len returns the number of recorded durations, capped at the ring size.
func (h *History) Len() int { return h.filled }

// Snapshot returns up to the last n durations, oldest first.
func (h *History) Snapshot(n int) []time.Duration {
	if n > h.filled {
		n = h.filled
	}
	if n < 0 {
		n = 0
	}
	size := len(h.buffer)
	first := (h.nextIndex - n + size) % size
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = h.buffer[(first+i)%size]
	}
	return out
}

// Average is the mean of every recorded duration, or zero when empty.
func (h *History) Average() time.Duration {
	if h.filled == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range h.Snapshot(h.filled) {
		sum += d
	}
	return sum / time.Duration(h.filled)
}
