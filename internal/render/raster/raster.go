// Package raster implements render.Surface on an in-memory RGBA image
// using the golang.org/x/image/vector rasterizer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Surface is a software-rendered drawable area.
type Surface struct {
	img        *image.RGBA
	background *image.Uniform
	z          *vector.Rasterizer
}

// New allocates a width x height surface. Clear fills it with background,
// which may be transparent.
func New(width, height int, background color.Color) *Surface {
	if background == nil {
		background = color.Transparent
	}
	s := &Surface{
		background: image.NewUniform(background),
		z:          vector.NewRasterizer(0, 0),
	}
	s.Resize(width, height)
	return s
}

// Resize reallocates the backing image. Negative sizes become empty.
func (s *Surface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	s.Clear()
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the backing image. It is reused across frames.
func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), s.background, image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(x, y, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	s.fill(x-r, y-r, x+r, y+r, clr, func(z *vector.Rasterizer, ox, oy float64) {
		cx, cy := x-ox, y-oy
		k := r * kappa
		z.MoveTo(f32(cx+r), f32(cy))
		z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
		z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
		z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
		z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
		z.ClosePath()
	})
}

// StrokeLine fills the width-wide quad around the segment. Butt caps.
func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	pad := width / 2
	s.fill(math.Min(x0, x1)-pad, math.Min(y0, y1)-pad, math.Max(x0, x1)+pad, math.Max(y0, y1)+pad, clr,
		func(z *vector.Rasterizer, ox, oy float64) {
			z.MoveTo(f32(x0+nx-ox), f32(y0+ny-oy))
			z.LineTo(f32(x1+nx-ox), f32(y1+ny-oy))
			z.LineTo(f32(x1-nx-ox), f32(y1-ny-oy))
			z.LineTo(f32(x0-nx-ox), f32(y0-ny-oy))
			z.ClosePath()
		})
}

// fill rasterizes path into the clipped bounding box only, so a shape costs
// its own area rather than the whole surface.
func (s *Surface) fill(minX, minY, maxX, maxY float64, clr color.Color, path func(z *vector.Rasterizer, ox, oy float64)) {
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.z.Reset(r.Dx(), r.Dy())
	s.z.DrawOp = draw.Over
	path(s.z, float64(r.Min.X), float64(r.Min.Y))
	s.z.Draw(s.img, r, image.NewUniform(clr), image.Point{})
}

func f32(v float64) float32 { return float32(v) }
