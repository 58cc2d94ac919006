package render

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/netbackdrop/internal/particle"
)

type op struct {
	kind           string
	x0, y0, x1, y1 float64
	r, width       float64
	clr            color.Color
}

// recordingSurface keeps every draw call in order.
type recordingSurface struct {
	ops []op
}

func (s *recordingSurface) Clear() { s.ops = append(s.ops, op{kind: "clear"}) }

func (s *recordingSurface) FillCircle(x, y, r float64, clr color.Color) {
	s.ops = append(s.ops, op{kind: "circle", x0: x, y0: y, r: r, clr: clr})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.ops = append(s.ops, op{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, width: width, clr: clr})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func at(x, y float64) particle.Point {
	return particle.Point{Pos: r2.Vec{X: x, Y: y}, Radius: 1}
}

func TestEdgesStrictThreshold(t *testing.T) {
	const threshold = 150
	tests := []struct {
		name string
		b    particle.Point
		want int
	}{
		{"exactly threshold", at(150, 0), 0},
		{"just under", at(150-1e-9, 0), 1},
		{"diagonal under", at(90, 90), 1},
		{"3-4-5 at threshold", at(90, 120), 0},
		{"far", at(400, 400), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Edges([]particle.Point{at(0, 0), tt.b}, threshold)
			if len(got) != tt.want {
				t.Fatalf("got %d edges want %d", len(got), tt.want)
			}
		})
	}
}

func TestEdgesOrderedPairs(t *testing.T) {
	pts := []particle.Point{at(0, 0), at(10, 0), at(500, 500), at(20, 0)}
	got := Edges(pts, 50)
	want := []Edge{{0, 1}, {0, 3}, {1, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

// edgeSet keys every edge by its endpoint positions so orderings compare.
func edgeSet(pts []particle.Point, threshold float64) []string {
	var out []string
	ForEachEdge(pts, threshold, func(i, j int) {
		a, b := pts[i].Pos, pts[j].Pos
		if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
			a, b = b, a
		}
		out = append(out, fmtVec(a)+"-"+fmtVec(b))
	})
	sort.Strings(out)
	return out
}

func fmtVec(v r2.Vec) string {
	return fmt.Sprintf("%g,%g", v.X, v.Y)
}

func TestEdgesIndependentOfOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	pts := make([]particle.Point, 60)
	for i := range pts {
		pts[i] = at(float64(rng.Intn(400)), float64(rng.Intn(400)))
	}
	want := edgeSet(pts, 80)
	if len(want) == 0 {
		t.Fatalf("fixture produced no edges")
	}

	for round := 0; round < 5; round++ {
		shuffled := append([]particle.Point(nil), pts...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := edgeSet(shuffled, 80)
		if len(got) != len(want) {
			t.Fatalf("round %d: %d edges want %d", round, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: edge sets differ at %d: %s vs %s", round, i, got[i], want[i])
			}
		}
	}
}

func TestDrawEdgesEmpty(t *testing.T) {
	r := NewRenderer(DefaultStyle, 150)
	s := &recordingSurface{}
	r.DrawEdges(s, nil)
	r.DrawEdges(s, []particle.Point{at(1, 1)})
	if len(s.ops) != 0 {
		t.Fatalf("expected no draw calls, got %d", len(s.ops))
	}
}

func TestDrawEdgesUsesStyle(t *testing.T) {
	r := NewRenderer(DefaultStyle, 150)
	s := &recordingSurface{}
	r.DrawEdges(s, []particle.Point{at(0, 0), at(30, 40)})
	if len(s.ops) != 1 {
		t.Fatalf("expected one line, got %d ops", len(s.ops))
	}
	o := s.ops[0]
	if o.kind != "line" || o.x0 != 0 || o.y0 != 0 || o.x1 != 30 || o.y1 != 40 {
		t.Fatalf("unexpected op %+v", o)
	}
	if o.width != 1 || o.clr != DefaultStyle.Edge {
		t.Fatalf("line not drawn with edge style: %+v", o)
	}
	if math.Hypot(o.x1-o.x0, o.y1-o.y0) != 50 {
		t.Fatalf("segment length changed")
	}
}

func TestDrawPoints(t *testing.T) {
	r := NewRenderer(DefaultStyle, 150)
	s := &recordingSurface{}
	pts := []particle.Point{at(1, 2), at(3, 4), at(5, 6)}
	r.DrawPoints(s, pts)
	if s.count("circle") != 3 {
		t.Fatalf("got %d circles want 3", s.count("circle"))
	}
	for i, o := range s.ops {
		if o.x0 != pts[i].Pos.X || o.y0 != pts[i].Pos.Y || o.clr != DefaultStyle.Point {
			t.Fatalf("circle %d: %+v", i, o)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#f0ad4e80", color.NRGBA{R: 240, G: 173, B: 78, A: 128}, false},
		{"#f0ad4e", color.NRGBA{R: 240, G: 173, B: 78, A: 255}, false},
		{"F0AD4E33", color.NRGBA{R: 240, G: 173, B: 78, A: 51}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) err=%v", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseColor(%q)=%v want %v", tt.in, got, tt.want)
		}
	}
	if s := FormatColor(DefaultStyle.Edge); s != "#f0ad4e33" {
		t.Fatalf("FormatColor=%s", s)
	}
}
