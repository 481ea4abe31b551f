package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selects which host drives the field.
type Backend string

const (
	BackendWindow   Backend = "window"
	BackendTerminal Backend = "terminal"
)

// Settings holds the runtime options of the program.
type Settings struct {
	Backend   Backend
	Theme     string
	PickTheme bool
	Width     int
	Height    int
	FrameRate int
	Seed      uint64
	Sound     bool
	Debug     bool
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Backend:   BackendWindow,
		Theme:     "dark",
		Width:     WindowWidth,
		Height:    WindowHeight,
		FrameRate: DefaultFrameRate,
	}
}

// Load resolves settings from envFile (optional), the process environment
// and args, each layer overriding the previous one.
func Load(args []string, envFile string) (Settings, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		if m != nil {
			fileEnv = m
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	s, err := fromEnv(Defaults(), lookup)
	if err != nil {
		return Settings{}, err
	}

	fset, backend := newFlagSet(&s)
	if err := fset.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parse flags: %w", err)
	}
	s.Backend = Backend(strings.ToLower(*backend))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func newFlagSet(s *Settings) (*flag.FlagSet, *string) {
	fset := flag.NewFlagSet("particle-field", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	backend := fset.String("backend", string(s.Backend), "Host backend: window, terminal")
	fset.StringVar(&s.Theme, "theme", s.Theme, "Initial theme: dark, light")
	fset.BoolVar(&s.PickTheme, "pick-theme", s.PickTheme, "Ask for the theme in a dialog on startup")
	fset.IntVar(&s.Width, "width", s.Width, "Initial window width")
	fset.IntVar(&s.Height, "height", s.Height, "Initial window height")
	fset.IntVar(&s.FrameRate, "fps", s.FrameRate, "Terminal frame rate")
	fset.Uint64Var(&s.Seed, "seed", s.Seed, "Random seed, 0 for time-seeded")
	fset.BoolVar(&s.Sound, "sound", s.Sound, "Play a chime on theme toggle")
	fset.BoolVar(&s.Debug, "debug", s.Debug, "Show the debug overlay")
	return fset, backend
}

// PrintUsage writes the flag reference to w.
func PrintUsage(w io.Writer) {
	s := Defaults()
	fset, _ := newFlagSet(&s)
	fset.SetOutput(w)
	fmt.Fprintln(w, "Usage of particle-field:")
	fset.PrintDefaults()
}

func fromEnv(s Settings, lookup func(string) (string, bool)) (Settings, error) {
	if v, ok := lookup("PARTICLES_BACKEND"); ok {
		s.Backend = Backend(strings.ToLower(v))
	}
	if v, ok := lookup("PARTICLES_THEME"); ok {
		s.Theme = v
	}

	var err error
	if s.PickTheme, err = envBool(lookup, "PARTICLES_PICK_THEME", s.PickTheme); err != nil {
		return s, err
	}
	if s.Width, err = envInt(lookup, "PARTICLES_WIDTH", s.Width); err != nil {
		return s, err
	}
	if s.Height, err = envInt(lookup, "PARTICLES_HEIGHT", s.Height); err != nil {
		return s, err
	}
	if s.FrameRate, err = envInt(lookup, "PARTICLES_FPS", s.FrameRate); err != nil {
		return s, err
	}
	if s.Sound, err = envBool(lookup, "PARTICLES_SOUND", s.Sound); err != nil {
		return s, err
	}
	if s.Debug, err = envBool(lookup, "PARTICLES_DEBUG", s.Debug); err != nil {
		return s, err
	}
	if v, ok := lookup("PARTICLES_SEED"); ok {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return s, fmt.Errorf("PARTICLES_SEED: %w", perr)
		}
		s.Seed = seed
	}
	return s, nil
}

// Validate reports the first invalid option.
func (s *Settings) Validate() error {
	switch s.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", s.Backend)
	}
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	if s.Theme != "dark" && s.Theme != "light" {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", s.FrameRate)
	}
	return nil
}

func envInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
