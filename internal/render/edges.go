package render

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/netbackdrop/internal/particle"
)

// Edge joins points I and J of a field, I < J.
type Edge struct {
	I, J int
}

// ForEachEdge calls fn for every unordered pair closer than threshold.
//
// The scan is O(n²) with no spatial index. Population is bounded by the
// field's density so n stays in the low hundreds for a full-screen view.
func ForEachEdge(points []particle.Point, threshold float64, fn func(i, j int)) {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if r2.Norm(r2.Sub(points[i].Pos, points[j].Pos)) < threshold {
				fn(i, j)
			}
		}
	}
}

// Edges collects the pairs ForEachEdge visits.
func Edges(points []particle.Point, threshold float64) []Edge {
	var out []Edge
	ForEachEdge(points, threshold, func(i, j int) {
		out = append(out, Edge{I: i, J: j})
	})
	return out
}
