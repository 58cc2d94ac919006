package particle

import "math"

// Field is an ordered population of points owned by one view.
type Field struct {
	density float64
	spawn   Spawn
	rng     Rand

	width, height float64
	points        []Point
}

// NewField returns an empty field. It holds no points until Resize is called.
func NewField(density float64, spawn Spawn, rng Rand) *Field {
	return &Field{
		density: density,
		spawn:   spawn,
		rng:     rng,
	}
}

// MaxPopulation caps a field's size.
const MaxPopulation = 1 << 16

// Population is floor(width*height/density), capped at MaxPopulation.
// Non-positive dimensions or density, or a non-finite quotient, give zero.
func Population(width, height, density float64) int {
	if width <= 0 || height <= 0 || density <= 0 {
		return 0
	}
	q := math.Floor(width * height / density)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	if q > MaxPopulation {
		return MaxPopulation
	}
	return int(q)
}

// Resize discards every point and scatters a fresh population across the new
// bounds. Negative dimensions are treated as an empty surface.
func (f *Field) Resize(width, height float64) {
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)

	n := Population(width, height, f.density)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		x := f.rng.Float64() * f.width
		y := f.rng.Float64() * f.height
		points = append(points, NewPoint(x, y, f.rng, f.spawn))
	}
	f.points = points
}

// AdvanceAll advances every point in insertion order.
func (f *Field) AdvanceAll() {
	for i := range f.points {
		f.points[i].Advance(f.width, f.height)
	}
}

// Points returns the live point slice. Callers must not retain it across a
// Resize.
func (f *Field) Points() []Point { return f.points }

// Len returns the current population.
func (f *Field) Len() int { return len(f.points) }

// Bounds returns the extent points are clamped to.
func (f *Field) Bounds() (width, height float64) { return f.width, f.height }
