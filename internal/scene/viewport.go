package scene

import "github.com/iburimskiy/netbackdrop/internal/particle"

// Viewport tracks the surface dimensions and keeps the field's population
// in step with them.
type Viewport struct {
	width, height int
	field         *particle.Field
}

// NewViewport binds a viewport to the field it repopulates.
func NewViewport(field *particle.Field) *Viewport {
	return &Viewport{field: field}
}

// OnResize records the new dimensions and repopulates the field in the same
// call, so a frame never observes one without the other. Every call
// repopulates; there is no debouncing.
func (v *Viewport) OnResize(width, height int) {
	v.width, v.height = width, height
	v.field.Resize(float64(width), float64(height))
}

// Size returns the last dimensions passed to OnResize.
func (v *Viewport) Size() (width, height int) { return v.width, v.height }
