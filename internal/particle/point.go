package particle

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rand is the random source a field draws positions, velocities and radii
// from. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawn holds the ranges new points are drawn from.
type Spawn struct {
	// Speed is the width of the symmetric per-axis velocity range, so each
	// component lies in [-Speed/2, Speed/2).
	Speed float64

	MinRadius float64
	MaxRadius float64
}

// Point is a single simulated particle.
type Point struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
}

// Canvas is the subset of a drawing surface a point needs.
type Canvas interface {
	FillCircle(x, y, r float64, clr color.Color)
}

// NewPoint places a point at (x, y) with a random velocity and radius.
func NewPoint(x, y float64, rng Rand, spawn Spawn) Point {
	return Point{
		Pos: r2.Vec{X: x, Y: y},
		Vel: r2.Vec{
			X: (rng.Float64() - 0.5) * spawn.Speed,
			Y: (rng.Float64() - 0.5) * spawn.Speed,
		},
		Radius: spawn.MinRadius + rng.Float64()*(spawn.MaxRadius-spawn.MinRadius),
	}
}

// Advance moves the point by one frame inside [0,width]x[0,height].
//
// A coordinate that leaves its range flips the matching velocity component
// once and is then pinned to the edge. A point overshooting by more than one
// wall's worth is clamped, not mirrored back by the overshoot.
func (p *Point) Advance(width, height float64) {
	p.Pos = r2.Add(p.Pos, p.Vel)

	if p.Pos.X < 0 || p.Pos.X > width {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > height {
		p.Vel.Y = -p.Vel.Y
	}

	p.Pos.X = clamp(p.Pos.X, 0, width)
	p.Pos.Y = clamp(p.Pos.Y, 0, height)
}

// Draw fills a circle at the point's position.
func (p *Point) Draw(c Canvas, clr color.Color) {
	c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, clr)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
