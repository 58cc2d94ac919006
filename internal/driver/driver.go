// Package driver defines the per-tick scheduling abstraction hosts use to run
// a scene, plus a synchronous driver for tests and batch use.
package driver

import (
	"context"

	"github.com/iburimskiy/netbackdrop/internal/render"
)

// Target is the frame logic a driver schedules. Resize and Frame are always
// called from the same goroutine and never overlap.
type Target interface {
	Resize(width, height int)
	Frame(surface render.Surface)
}

// Driver owns the host's frame clock and resize signal. Run blocks until the
// host view is torn down or ctx is cancelled; a view closed by the user is not
// an error.
type Driver interface {
	Run(ctx context.Context, target Target) error
}

// Manual resizes the target once and then runs a fixed number of frames
// back to back on the caller's goroutine.
type Manual struct {
	Width, Height int
	Frames        int
	Surface       render.Surface
}

func (m *Manual) Run(ctx context.Context, target Target) error {
	target.Resize(m.Width, m.Height)
	for i := 0; i < m.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		target.Frame(m.Surface)
	}
	return nil
}
