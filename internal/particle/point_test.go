package particle

import (
	"image/color"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// fixedRand returns the same value on every call.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

var testSpawn = Spawn{Speed: 0.5, MinRadius: 1, MaxRadius: 3}

func TestNewPointDrawsFromRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := NewPoint(10, 20, rng, testSpawn)
		if p.Pos != (r2.Vec{X: 10, Y: 20}) {
			t.Fatalf("position moved on create: %v", p.Pos)
		}
		if p.Vel.X < -0.25 || p.Vel.X >= 0.25 || p.Vel.Y < -0.25 || p.Vel.Y >= 0.25 {
			t.Fatalf("velocity out of range: %v", p.Vel)
		}
		if p.Radius < 1 || p.Radius >= 3 {
			t.Fatalf("radius out of range: %f", p.Radius)
		}
	}
}

func TestNewPointWithFixedSource(t *testing.T) {
	p := NewPoint(0, 0, fixedRand(0), testSpawn)
	if p.Vel.X != -0.25 || p.Vel.Y != -0.25 {
		t.Fatalf("vel=%v want {-0.25 -0.25}", p.Vel)
	}
	if p.Radius != 1 {
		t.Fatalf("radius=%f want 1", p.Radius)
	}
}

func TestAdvanceReflects(t *testing.T) {
	tests := []struct {
		name    string
		pos     r2.Vec
		vel     r2.Vec
		wantPos r2.Vec
		wantVel r2.Vec
	}{
		{"left wall", r2.Vec{X: 0, Y: 50}, r2.Vec{X: -0.3, Y: 0}, r2.Vec{X: 0, Y: 50}, r2.Vec{X: 0.3, Y: 0}},
		{"top wall", r2.Vec{X: 50, Y: 0}, r2.Vec{X: 0, Y: -0.3}, r2.Vec{X: 50, Y: 0}, r2.Vec{X: 0, Y: 0.3}},
		{"right overshoot pinned", r2.Vec{X: 99.9, Y: 50}, r2.Vec{X: 5, Y: 0}, r2.Vec{X: 100, Y: 50}, r2.Vec{X: -5, Y: 0}},
		{"corner", r2.Vec{X: 100, Y: 100}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 100, Y: 100}, r2.Vec{X: -1, Y: -1}},
		{"landing on edge keeps velocity", r2.Vec{X: 99, Y: 50}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 100, Y: 50}, r2.Vec{X: 1, Y: 0}},
		{"interior", r2.Vec{X: 50, Y: 50}, r2.Vec{X: 0.25, Y: -0.125}, r2.Vec{X: 50.25, Y: 49.875}, r2.Vec{X: 0.25, Y: -0.125}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Point{Pos: tt.pos, Vel: tt.vel, Radius: 1}
			p.Advance(100, 100)
			if p.Pos != tt.wantPos {
				t.Errorf("pos=%v want %v", p.Pos, tt.wantPos)
			}
			if p.Vel != tt.wantVel {
				t.Errorf("vel=%v want %v", p.Vel, tt.wantVel)
			}
		})
	}
}

func TestAdvanceSingleFlipPerFrame(t *testing.T) {
	// One flip per frame even when the step is larger than the field.
	p := Point{Pos: r2.Vec{X: 5, Y: 5}, Vel: r2.Vec{X: -50, Y: 0}}
	p.Advance(10, 10)
	if p.Vel.X != 50 || p.Pos.X != 0 {
		t.Fatalf("got pos=%v vel=%v", p.Pos, p.Vel)
	}
	p.Advance(10, 10)
	if p.Vel.X != -50 || p.Pos.X != 10 {
		t.Fatalf("second frame got pos=%v vel=%v", p.Pos, p.Vel)
	}
}

func TestAdvanceKeepsSpeed(t *testing.T) {
	p := Point{Pos: r2.Vec{X: 3, Y: 7}, Vel: r2.Vec{X: 0.21, Y: -0.17}}
	want := r2.Norm(p.Vel)
	for i := 0; i < 5000; i++ {
		p.Advance(20, 10)
	}
	if got := r2.Norm(p.Vel); got != want {
		t.Fatalf("speed changed: got=%f want=%f", got, want)
	}
}

type circle struct {
	x, y, r float64
	clr     color.Color
}

type circleRecorder struct{ circles []circle }

func (c *circleRecorder) FillCircle(x, y, r float64, clr color.Color) {
	c.circles = append(c.circles, circle{x, y, r, clr})
}

func TestDrawFillsAtPosition(t *testing.T) {
	p := Point{Pos: r2.Vec{X: 4, Y: 5}, Vel: r2.Vec{X: 1, Y: 1}, Radius: 2.5}
	rec := &circleRecorder{}
	clr := color.NRGBA{R: 240, G: 173, B: 78, A: 128}
	p.Draw(rec, clr)
	if len(rec.circles) != 1 {
		t.Fatalf("expected one circle, got %d", len(rec.circles))
	}
	got := rec.circles[0]
	if got.x != 4 || got.y != 5 || got.r != 2.5 || got.clr != clr {
		t.Fatalf("unexpected circle: %+v", got)
	}
	if p.Pos != (r2.Vec{X: 4, Y: 5}) {
		t.Fatalf("draw mutated point")
	}
}
