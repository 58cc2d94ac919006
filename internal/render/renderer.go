package render

import "github.com/iburimskiy/netbackdrop/internal/particle"

// Renderer composites points and their proximity edges.
type Renderer struct {
	Style     Style
	Threshold float64
}

// NewRenderer returns a renderer joining points closer than threshold.
func NewRenderer(style Style, threshold float64) *Renderer {
	return &Renderer{Style: style, Threshold: threshold}
}

// Clear erases the surface. There is no trail effect.
func (r *Renderer) Clear(s Surface) {
	s.Clear()
}

// DrawPoints fills one circle per point.
func (r *Renderer) DrawPoints(s Surface, points []particle.Point) {
	for i := range points {
		points[i].Draw(s, r.Style.Point)
	}
}

// DrawEdges strokes a segment for every pair closer than the threshold.
func (r *Renderer) DrawEdges(s Surface, points []particle.Point) {
	ForEachEdge(points, r.Threshold, func(i, j int) {
		a, b := points[i].Pos, points[j].Pos
		s.StrokeLine(a.X, a.Y, b.X, b.Y, r.Style.EdgeWidth, r.Style.Edge)
	})
}
