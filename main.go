package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/term"
)

const dialogTitle = "Particle Field"

func main() {
	settings, err := config.Load(os.Args[1:], ".env")
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		config.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(settings, logger); err != nil {
		logger.Printf("Fatal: %v", err)
		if settings.Backend == config.BackendWindow {
			_ = zenity.Error(err.Error(), zenity.Title(dialogTitle))
		} else {
			fmt.Fprintf(os.Stderr, "particle-field: %v\n", err)
		}
		closeLog()
		os.Exit(1)
	}
}

func run(settings config.Settings, logger *log.Logger) error {
	theme, err := field.ParseTheme(settings.Theme)
	if err != nil {
		return err
	}
	if settings.PickTheme {
		if theme, err = pickTheme(theme); err != nil {
			return err
		}
	}
	logger.Printf("Starting %s backend with %s theme", settings.Backend, theme)

	switch settings.Backend {
	case config.BackendTerminal:
		return term.Run(term.Options{
			Theme:     theme,
			Seed:      settings.Seed,
			FrameRate: settings.FrameRate,
			Logger:    logger,
		})
	default:
		return game.Run(game.Options{
			Width:  settings.Width,
			Height: settings.Height,
			Theme:  theme,
			Seed:   settings.Seed,
			Sound:  settings.Sound,
			Debug:  settings.Debug,
			Logger: logger,
		})
	}
}

// pickTheme asks for the initial theme. Cancelling keeps current.
func pickTheme(current field.Theme) (field.Theme, error) {
	choice, err := zenity.List(
		"Choose a theme for the particle field",
		[]string{field.Dark.String(), field.Light.String()},
		zenity.Title(dialogTitle),
		zenity.DefaultItems(current.String()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, nil
		}
		return current, fmt.Errorf("theme dialog: %w", err)
	}
	return field.ParseTheme(choice)
}

// newLogger logs to stderr, except in the terminal backend where stderr
// would tear the screen: there it logs to a file in debug mode and nowhere
// otherwise.
func newLogger(settings config.Settings) (*log.Logger, func(), error) {
	if settings.Backend != config.BackendTerminal {
		return log.New(os.Stderr, "particle-field: ", log.LstdFlags), func() {}, nil
	}
	if !settings.Debug {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile("particle-field.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "particle-field: ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}
