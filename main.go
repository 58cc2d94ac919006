package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncruces/zenity"
	"golang.org/x/exp/rand"

	"github.com/iburimskiy/netbackdrop/internal/config"
	"github.com/iburimskiy/netbackdrop/internal/driver"
	"github.com/iburimskiy/netbackdrop/internal/driver/record"
	"github.com/iburimskiy/netbackdrop/internal/driver/terminal"
	"github.com/iburimskiy/netbackdrop/internal/driver/window"
	"github.com/iburimskiy/netbackdrop/internal/particle"
	"github.com/iburimskiy/netbackdrop/internal/render"
	"github.com/iburimskiy/netbackdrop/internal/scene"
)

const windowTitle = "netbackdrop"

func main() {
	settings, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("netbackdrop: %v", err)
	}

	if err := run(settings); err != nil {
		log.Printf("netbackdrop: %v", err)
		if settings.Mode == config.ModeWindow {
			_ = zenity.Error(err.Error(), zenity.Title(windowTitle))
		}
		os.Exit(1)
	}
}

func run(s config.Settings) error {
	closeLog, err := setupLog(s)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	style := s.Style()
	log.Printf("mode=%s seed=%d density=%v distance=%v points=%s edges=%s",
		s.Mode, seed, s.Density, s.Distance, render.FormatColor(style.Point), render.FormatColor(style.Edge))

	field := particle.NewField(s.Density, s.Spawn(), rand.New(rand.NewSource(seed)))
	sc := scene.New(field, render.NewRenderer(style, s.Distance), log.Default())

	d, closeOut, err := newDriver(s)
	if err != nil {
		return err
	}
	defer closeOut()

	if err := d.Run(ctx, sc); err != nil {
		return err
	}
	log.Printf("stopped after %d frames", sc.Frames())
	return nil
}

func newDriver(s config.Settings) (driver.Driver, func(), error) {
	nop := func() {}
	switch s.Mode {
	case config.ModeTerminal:
		return &terminal.Driver{FPS: s.FPS, Debug: s.Debug}, nop, nil
	case config.ModeRecord:
		f, err := os.Create(s.Out)
		if err != nil {
			return nil, nop, fmt.Errorf("create recording: %w", err)
		}
		d := &record.Driver{
			Width:      s.Width,
			Height:     s.Height,
			Frames:     s.Frames,
			Delay:      config.RecordDelay,
			Background: s.BackgroundColor(),
			Out:        f,
		}
		return d, func() { _ = f.Close() }, nil
	default:
		return &window.Driver{Title: windowTitle, Width: s.Width, Height: s.Height, Debug: s.Debug}, nop, nil
	}
}

// setupLog routes log output to the -log file. Terminal mode discards it
// otherwise, since writes to stderr would tear the screen. The returned
// func restores stderr.
func setupLog(s config.Settings) (func(), error) {
	if s.LogPath != "" {
		f, err := os.OpenFile(s.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		log.SetOutput(f)
		return func() {
			log.SetOutput(os.Stderr)
			_ = f.Close()
		}, nil
	}
	if s.Mode == config.ModeTerminal {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	return func() {}, nil
}
