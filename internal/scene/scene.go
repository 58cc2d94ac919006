// Package scene composes the particle field, the renderer and the viewport
// into the per-frame cycle a driver invokes.
package scene

import (
	"log"

	"github.com/iburimskiy/netbackdrop/internal/particle"
	"github.com/iburimskiy/netbackdrop/internal/render"
)

// State of the animation loop.
type State int

const (
	// Uninitialized is the state before the first population.
	Uninitialized State = iota
	// Running is the steady frame cycle.
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Scene is one animated backdrop. It is not safe for concurrent use; a
// driver calls Resize and Frame from a single goroutine.
type Scene struct {
	field    *particle.Field
	renderer *render.Renderer
	viewport *Viewport
	logger   *log.Logger

	state  State
	frames uint64
}

// New returns an uninitialized scene. logger may be nil.
func New(field *particle.Field, renderer *render.Renderer, logger *log.Logger) *Scene {
	return &Scene{
		field:    field,
		renderer: renderer,
		viewport: NewViewport(field),
		logger:   logger,
	}
}

// Resize applies a host resize signal. The first call moves the scene to
// Running.
func (s *Scene) Resize(width, height int) {
	s.viewport.OnResize(width, height)
	if s.state == Uninitialized {
		s.state = Running
	}
	if s.logger != nil {
		s.logger.Printf("viewport %dx%d: %d points", width, height, s.field.Len())
	}
}

// Frame runs one cycle: clear, advance, draw points, draw edges. It draws
// nothing until the scene is Running.
func (s *Scene) Frame(surface render.Surface) {
	if s.state != Running {
		return
	}
	s.renderer.Clear(surface)
	s.field.AdvanceAll()
	points := s.field.Points()
	s.renderer.DrawPoints(surface, points)
	s.renderer.DrawEdges(surface, points)
	s.frames++
}

func (s *Scene) State() State { return s.state }

// Frames counts completed frames.
func (s *Scene) Frames() uint64 { return s.frames }

func (s *Scene) Size() (width, height int) { return s.viewport.Size() }

func (s *Scene) Field() *particle.Field { return s.field }

// Population is the current point count.
func (s *Scene) Population() int { return s.field.Len() }
