// Package record renders a fixed number of frames headlessly into an
// animated GIF.
package record

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/iburimskiy/netbackdrop/internal/driver"
	"github.com/iburimskiy/netbackdrop/internal/render/raster"
)

// Driver draws Frames frames at Width x Height and encodes them to Out.
type Driver struct {
	Width, Height int
	Frames        int
	// Delay is the per-frame delay in hundredths of a second.
	Delay      int
	Background color.Color
	Out        io.Writer
}

func (d *Driver) Run(ctx context.Context, target driver.Target) error {
	canvas := raster.New(d.Width, d.Height, d.Background)
	target.Resize(d.Width, d.Height)

	anim := &gif.GIF{}
	bounds := image.Rect(0, 0, d.Width, d.Height)
	for i := 0; i < d.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		target.Frame(canvas)

		frame := image.NewPaletted(bounds, palette.Plan9)
		draw.Draw(frame, bounds, canvas.Image(), image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, d.Delay)
	}

	if err := gif.EncodeAll(d.Out, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
