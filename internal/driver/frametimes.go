package driver

import (
	"fmt"
	"sync"
	"time"
)

// FrameTimes records the last N frame intervals in a ring buffer so a host
// can overlay timing statistics.
type FrameTimes struct {
	mu        sync.RWMutex
	buffer    []time.Duration
	nextIndex int
	filled    int
	last      time.Time
}

// NewFrameTimes keeps the last ringSize intervals; sizes below 1 keep one.
func NewFrameTimes(ringSize int) *FrameTimes {
	ringSize = max(ringSize, 1)
	return &FrameTimes{buffer: make([]time.Duration, ringSize)}
}

// Mark records the interval since the previous Mark.
func (f *FrameTimes) Mark(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.last.IsZero() {
		f.buffer[f.nextIndex] = now.Sub(f.last)
		f.nextIndex++
		if f.nextIndex >= len(f.buffer) {
			f.nextIndex = 0
		}
		if f.filled < len(f.buffer) {
			f.filled++
		}
	}
	f.last = now
}

// Snapshot returns up to the last n intervals, oldest first.
func (f *FrameTimes) Snapshot(n int) []time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if n > f.filled {
		n = f.filled
	}
	out := make([]time.Duration, n)
	idx := f.nextIndex - n
	if idx < 0 {
		idx += len(f.buffer)
	}
	for i := 0; i < n; i++ {
		out[i] = f.buffer[idx]
		idx++
		if idx >= len(f.buffer) {
			idx = 0
		}
	}
	return out
}

// Mean is the average of the recorded intervals, or zero before two marks.
func (f *FrameTimes) Mean() time.Duration {
	samples := f.Snapshot(len(f.buffer))
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}

// FormatDuration formats d as MM:SS.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Populated is implemented by targets that can report their point count.
type Populated interface {
	Population() int
}

// StatusLine summarises a running target for debug overlays.
func StatusLine(target Target, frames *FrameTimes, uptime time.Duration) string {
	line := fmt.Sprintf("frame %.2fms | up %s", float64(frames.Mean().Microseconds())/1000, FormatDuration(uptime))
	if p, ok := target.(Populated); ok {
		line = fmt.Sprintf("points %d | %s", p.Population(), line)
	}
	return line
}
