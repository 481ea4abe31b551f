// Package term hosts the particle field in a terminal.
//
// Every cell stands for a block of surface pixels, so the field runs with
// the same constants as in a window and only the rasterizer differs.
package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// Options configures a terminal session.
type Options struct {
	Theme     field.Theme
	Seed      uint64
	FrameRate int
	Logger    *log.Logger
}

type session struct {
	screen tcell.Screen
	field  *field.Field
	raster *rasterizer
	logger *log.Logger
}

func newSession(screen tcell.Screen, opts Options) *session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cols, rows := screen.Size()
	f := field.Initialize(cols*config.CellWidth, rows*config.CellHeight, field.NewRand(opts.Seed))
	f.SetTheme(opts.Theme)
	return &session{
		screen: screen,
		field:  f,
		raster: newRasterizer(screen),
		logger: logger,
	}
}

// handle applies one input event and reports whether the session should end.
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.handleResize(cols, rows)
		s.screen.Sync()
	case *tcell.EventMouse:
		col, row := ev.Position()
		s.handleMouse(col, row)
	case *tcell.EventKey:
		return s.handleKey(ev.Key(), ev.Rune())
	}
	return false
}

func (s *session) handleResize(cols, rows int) {
	s.field.Resize(cols*config.CellWidth, rows*config.CellHeight)
	s.logger.Printf("Terminal resized to %dx%d cells, %d particles", cols, rows, s.field.Len())
}

// handleMouse places the pointer at the center of the hovered cell.
func (s *session) handleMouse(col, row int) {
	x := float64(col*config.CellWidth) + config.CellWidth/2
	y := float64(row*config.CellHeight) + config.CellHeight/2
	s.field.SetPointer(x, y)
}

func (s *session) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return true
		case 't', 'T':
			s.field.SetTheme(s.field.Theme().Toggle())
		}
	}
	return false
}

func (s *session) frame() {
	s.raster.draw(s.field.Tick(), s.field.Theme())
	s.screen.Show()
}

// Run takes over the terminal and blocks until the user quits.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	s := newSession(screen, opts)
	loop(s, opts.FrameRate)
	return nil
}

// loop owns the field: events and frames are serialized through one select,
// so a resize always lands between two ticks.
func loop(s *session, frameRate int) {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	s.frame()
	for {
		select {
		case ev := <-events:
			if s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.frame()
		}
	}
}
