// Package render draws a particle field onto an abstract 2D surface and
// derives the proximity edges between its points.
package render

import "image/color"

// Surface is an opaque 2D drawing context. Implementations own their size;
// Clear erases the whole drawable area.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Style is the fixed paint used for every frame.
type Style struct {
	Point     color.Color
	Edge      color.Color
	EdgeWidth float64
}

// DefaultStyle is amber points at half opacity joined by faint amber lines.
var DefaultStyle = Style{
	Point:     color.NRGBA{R: 240, G: 173, B: 78, A: 128},
	Edge:      color.NRGBA{R: 240, G: 173, B: 78, A: 51},
	EdgeWidth: 1,
}
