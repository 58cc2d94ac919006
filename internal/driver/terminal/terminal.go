// Package terminal hosts a scene on a full-screen terminal using braille
// glyphs as sub-cell pixels.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/netbackdrop/internal/driver"
	"github.com/iburimskiy/netbackdrop/internal/render/raster"
)

const frameRingSize = 60

// Driver runs the target on a tcell screen. Terminals have no vsync, so a
// ticker paces the frames.
type Driver struct {
	FPS   int
	Debug bool

	// Screen replaces the real terminal when set.
	Screen tcell.Screen
}

func (d *Driver) Run(ctx context.Context, target driver.Target) error {
	screen := d.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	// Events are read on their own goroutine but applied only below, so
	// Resize and Frame never overlap.
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	cols, rows := screen.Size()
	canvas := raster.New(cols*CellWidth, rows*CellHeight, nil)
	target.Resize(cols*CellWidth, rows*CellHeight)

	frames := driver.NewFrameTimes(frameRingSize)
	started := time.Now()
	ticker := time.NewTicker(time.Second / time.Duration(d.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				if w == cols && h == rows {
					continue
				}
				cols, rows = w, h
				canvas.Resize(cols*CellWidth, rows*CellHeight)
				target.Resize(cols*CellWidth, rows*CellHeight)
				screen.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			}

		case now := <-ticker.C:
			target.Frame(canvas)
			blit(screen, canvas, cols, rows)
			if d.Debug {
				frames.Mark(now)
				drawStatus(screen, driver.StatusLine(target, frames, now.Sub(started)), rows-1)
			}
			screen.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func blit(screen tcell.Screen, canvas *raster.Surface, cols, rows int) {
	img := canvas.Image()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			r, clr, ok := brailleCell(img, cx, cy)
			style := tcell.StyleDefault
			if ok {
				style = style.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
			}
			screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

func drawStatus(screen tcell.Screen, text string, row int) {
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(text) {
		screen.SetContent(i, row, r, nil, style)
	}
}
