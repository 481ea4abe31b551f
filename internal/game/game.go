// Package game hosts the particle field in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

// Options configures a Game.
type Options struct {
	Width, Height int
	Theme         field.Theme
	Seed          uint64
	Sound         bool
	Debug         bool
	Logger        *log.Logger
}

// input is everything Update reads from ebiten in one frame.
type input struct {
	cursorX, cursorY int
	toggleKey        bool
	quit             bool
	mousePressed     bool
	mouseReleased    bool
}

type Game struct {
	field *field.Field
	frame []field.Command

	// size applied to the field, and the latest size reported by Layout
	width, height    int
	layoutW, layoutH int

	// theme button state
	buttonHovered bool
	buttonPressed bool

	stats  *tickStats
	chime  *chime
	debug  bool
	logger *log.Logger
}

func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	f := field.Initialize(opts.Width, opts.Height, field.NewRand(opts.Seed))
	f.SetTheme(opts.Theme)

	g := &Game{
		field:   f,
		width:   opts.Width,
		height:  opts.Height,
		layoutW: opts.Width,
		layoutH: opts.Height,
		stats:   newTickStats(config.TickStatsRingSize),
		debug:   opts.Debug,
		logger:  logger,
	}
	if opts.Sound {
		c, err := newChime()
		if err != nil {
			// Non-fatal, the field runs without sound
			logger.Printf("Theme chime disabled: %v", err)
		} else {
			g.chime = c
		}
	}
	return g
}

func (g *Game) Update() error {
	in := input{
		toggleKey:     inpututil.IsKeyJustPressed(ebiten.KeyT),
		quit:          inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		mousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		mouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	in.cursorX, in.cursorY = ebiten.CursorPosition()
	return g.step(in)
}

// step applies one frame of input and advances the field exactly once.
func (g *Game) step(in input) error {
	if in.quit {
		return ebiten.Termination
	}

	// Resize is applied between ticks only
	if g.layoutW != g.width || g.layoutH != g.height {
		g.width, g.height = g.layoutW, g.layoutH
		g.field.Resize(g.width, g.height)
		g.logger.Printf("Surface resized to %dx%d, %d particles", g.width, g.height, g.field.Len())
	}

	g.field.SetPointer(float64(in.cursorX), float64(in.cursorY))

	bx, by := g.buttonOrigin()
	g.buttonHovered = in.cursorX >= bx && in.cursorX <= bx+config.ButtonWidth &&
		in.cursorY >= by && in.cursorY <= by+config.ButtonHeight
	if g.buttonHovered && in.mousePressed {
		g.buttonPressed = true
	}
	if in.mouseReleased {
		if g.buttonPressed && g.buttonHovered {
			g.toggleTheme()
		}
		g.buttonPressed = false
	}
	if in.toggleKey {
		g.toggleTheme()
	}

	start := time.Now()
	g.frame = g.field.Tick()
	g.stats.record(time.Since(start))
	return nil
}

func (g *Game) toggleTheme() {
	t := g.field.Theme().Toggle()
	g.field.SetTheme(t)
	if g.chime != nil {
		g.chime.play(t)
	}
}

func (g *Game) buttonOrigin() (int, int) {
	return g.width - config.ButtonWidth - config.ButtonMargin, config.ButtonMargin
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.rasterize(screen, g.frame)
	g.drawButton(screen)

	if g.debug {
		status := fmt.Sprintf("particles: %d  commands: %d  tps: %.0f  tick: %s (peak %s)",
			g.field.Len(), len(g.frame), ebiten.ActualTPS(),
			formatTickCost(g.stats.mean()), formatTickCost(g.stats.peak()))
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

// rasterize replays the field's commands onto screen.
func (g *Game) rasterize(screen *ebiten.Image, cmds []field.Command) {
	for _, c := range cmds {
		switch c.Kind {
		case field.KindClear:
			screen.Fill(background(g.field.Theme()))
		case field.KindCircle:
			vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), c.Color.NRGBA(), true)
		case field.KindLine:
			vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(c.X2), float32(c.Y2), float32(c.Width), c.Color.NRGBA(), true)
		}
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	bx, by := g.buttonOrigin()
	fill, border := buttonColors(g.field.Theme(), g.buttonHovered, g.buttonPressed)

	vector.DrawFilledRect(screen, float32(bx), float32(by), config.ButtonWidth, config.ButtonHeight, fill, false)
	vector.StrokeRect(screen, float32(bx), float32(by), config.ButtonWidth, config.ButtonHeight, 2, border, false)

	label := "Light mode"
	if g.field.Theme() == field.Light {
		label = "Dark mode"
	}
	textWidth := len(label) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, label, bx+(config.ButtonWidth-textWidth)/2, by+(config.ButtonHeight-16)/2)
}

// Layout keeps a 1:1 mapping between window and surface pixels and records
// the size for the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
