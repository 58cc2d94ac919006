// Package window hosts a scene in a resizable desktop window. The frame rate
// follows the display's vsync.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/netbackdrop/internal/driver"
)

const frameRingSize = 120

// Driver runs the target inside an ebiten window.
type Driver struct {
	Title         string
	Width, Height int
	Debug         bool
}

func (d *Driver) Run(ctx context.Context, target driver.Target) error {
	ebiten.SetWindowSize(d.Width, d.Height)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	// The target clears the screen itself at the start of every frame.
	ebiten.SetScreenClearedEveryFrame(false)

	g := &game{
		ctx:     ctx,
		target:  target,
		debug:   d.Debug,
		frames:  driver.NewFrameTimes(frameRingSize),
		started: time.Now(),
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

type game struct {
	ctx    context.Context
	target driver.Target

	width, height int

	debug   bool
	frames  *driver.FrameTimes
	started time.Time
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.target.Frame(surface{screen})

	if g.debug {
		now := time.Now()
		g.frames.Mark(now)
		status := fmt.Sprintf("FPS %.1f | %s", ebiten.ActualFPS(), driver.StatusLine(g.target, g.frames, now.Sub(g.started)))
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// Layout adopts the window's size one to one and forwards every change to
// the target. Layout runs on the same goroutine as Update and Draw.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.target.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// surface adapts an ebiten image to render.Surface.
type surface struct {
	img *ebiten.Image
}

func (s surface) Clear() { s.img.Clear() }

func (s surface) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), clr, true)
}

func (s surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
