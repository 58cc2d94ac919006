package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iburimskiy/netbackdrop/internal/particle"
	"github.com/iburimskiy/netbackdrop/internal/render"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Pixel-space simulation parameters
	Density            = 10000 // px² per point
	ConnectionDistance = 150
	Speed              = 0.5
	MinRadius          = 1
	MaxRadius          = 3
	EdgeWidth          = 1

	// A terminal dot is far coarser than a pixel
	TerminalDensity  = 120
	TerminalDistance = 16
	TerminalFPS      = 30

	PointColor = "#f0ad4e80"
	EdgeColor  = "#f0ad4e33"
	Background = "#0b0f1aff"

	RecordFrames = 120
	RecordDelay  = 3 // hundredths of a second per GIF frame

	EnvPrefix = "NETBACKDROP_"
)

// Host modes.
const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModeRecord   = "record"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings is the resolved run configuration.
type Settings struct {
	Mode string

	Width, Height int

	// Zero Density or Distance selects the mode's default.
	Density   float64
	Distance  float64
	Speed     float64
	MinRadius float64
	MaxRadius float64
	EdgeWidth float64

	PointColor string
	EdgeColor  string
	Background string

	Seed   uint64
	FPS    int
	Frames int
	Out    string

	Debug   bool
	LogPath string
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Mode:       ModeWindow,
		Width:      WindowWidth,
		Height:     WindowHeight,
		Speed:      Speed,
		MinRadius:  MinRadius,
		MaxRadius:  MaxRadius,
		EdgeWidth:  EdgeWidth,
		PointColor: PointColor,
		EdgeColor:  EdgeColor,
		Background: Background,
		FPS:        TerminalFPS,
		Frames:     RecordFrames,
		Out:        "netbackdrop.gif",
	}
}

// RegisterFlags binds every setting to a flag of fs, using the current
// values as defaults.
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.Mode, "mode", s.Mode, "host: window, terminal or record")
	fs.IntVar(&s.Width, "width", s.Width, "initial window width or recording width in pixels")
	fs.IntVar(&s.Height, "height", s.Height, "initial window height or recording height in pixels")
	fs.Float64Var(&s.Density, "density", s.Density, "surface area per point (0 = mode default)")
	fs.Float64Var(&s.Distance, "distance", s.Distance, "maximum edge length (0 = mode default)")
	fs.Float64Var(&s.Speed, "speed", s.Speed, "width of the per-axis velocity range per frame")
	fs.Float64Var(&s.MinRadius, "min-radius", s.MinRadius, "smallest point radius")
	fs.Float64Var(&s.MaxRadius, "max-radius", s.MaxRadius, "largest point radius")
	fs.Float64Var(&s.EdgeWidth, "edge-width", s.EdgeWidth, "edge stroke width")
	fs.StringVar(&s.PointColor, "point-color", s.PointColor, "point fill as #rrggbb[aa]")
	fs.StringVar(&s.EdgeColor, "edge-color", s.EdgeColor, "edge stroke as #rrggbb[aa]")
	fs.StringVar(&s.Background, "background", s.Background, "recording background as #rrggbb[aa]")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "random seed (0 = time based)")
	fs.IntVar(&s.FPS, "fps", s.FPS, "terminal frames per second")
	fs.IntVar(&s.Frames, "frames", s.Frames, "frames to record")
	fs.StringVar(&s.Out, "out", s.Out, "recording output file")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "show frame statistics (window and terminal)")
	fs.StringVar(&s.LogPath, "log", s.LogPath, "append log output to this file")
}

// EnvName maps a flag name to its environment variable, e.g. min-radius to
// NETBACKDROP_MIN_RADIUS.
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// ApplyEnv sets every flag of fs that has a matching environment variable.
// Call it before fs.Parse so command-line flags win.
func ApplyEnv(fs *flag.FlagSet, lookup func(string) (string, bool)) error {
	var errs []error
	fs.VisitAll(func(f *flag.Flag) {
		v, ok := lookup(EnvName(f.Name))
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvName(f.Name), err))
		}
	})
	return errors.Join(errs...)
}

// LoadDotEnv loads path into the process environment. A missing file is not
// an error; variables already set are left alone.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load builds settings from defaults, the environment (including an optional
// .env file) and args, in increasing precedence.
func Load(name string, args []string) (Settings, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return Settings{}, err
	}

	s := Defaults()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	s.RegisterFlags(fs)
	if err := ApplyEnv(fs, os.LookupEnv); err != nil {
		return Settings{}, err
	}
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}

	s.Resolve()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Resolve fills mode-dependent defaults.
func (s *Settings) Resolve() {
	if s.Density == 0 {
		s.Density = Density
		if s.Mode == ModeTerminal {
			s.Density = TerminalDensity
		}
	}
	if s.Distance == 0 {
		s.Distance = ConnectionDistance
		if s.Mode == ModeTerminal {
			s.Distance = TerminalDistance
		}
	}
}

// Validate reports the first problem with s.
func (s Settings) Validate() error {
	switch s.Mode {
	case ModeWindow, ModeTerminal, ModeRecord:
	default:
		return fmt.Errorf("mode %q: %w", s.Mode, ErrInvalid)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", s.Width, s.Height, ErrInvalid)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"density", s.Density},
		{"distance", s.Distance},
		{"speed", s.Speed},
		{"min-radius", s.MinRadius},
		{"max-radius", s.MaxRadius},
		{"edge-width", s.EdgeWidth},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s %v must be finite: %w", v.name, v.value, ErrInvalid)
		}
	}
	if s.Density <= 0 {
		return fmt.Errorf("density %v must be positive: %w", s.Density, ErrInvalid)
	}
	if s.Distance < 0 || s.Speed < 0 || s.EdgeWidth < 0 {
		return fmt.Errorf("distance, speed and edge width must not be negative: %w", ErrInvalid)
	}
	if s.MinRadius < 0 || s.MaxRadius < s.MinRadius {
		return fmt.Errorf("radius range [%v, %v]: %w", s.MinRadius, s.MaxRadius, ErrInvalid)
	}
	if s.Mode == ModeTerminal && s.FPS <= 0 {
		return fmt.Errorf("fps %d: %w", s.FPS, ErrInvalid)
	}
	if s.Mode == ModeRecord && (s.Frames <= 0 || s.Out == "") {
		return fmt.Errorf("record needs frames > 0 and an output file: %w", ErrInvalid)
	}
	for _, c := range []string{s.PointColor, s.EdgeColor, s.Background} {
		if _, err := render.ParseColor(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Style returns the render style. Settings must be valid.
func (s Settings) Style() render.Style {
	point, _ := render.ParseColor(s.PointColor)
	edge, _ := render.ParseColor(s.EdgeColor)
	return render.Style{Point: point, Edge: edge, EdgeWidth: s.EdgeWidth}
}

// BackgroundColor returns the parsed background. Settings must be valid.
func (s Settings) BackgroundColor() color.NRGBA {
	bg, _ := render.ParseColor(s.Background)
	return bg
}

func (s Settings) Spawn() particle.Spawn {
	return particle.Spawn{Speed: s.Speed, MinRadius: s.MinRadius, MaxRadius: s.MaxRadius}
}
