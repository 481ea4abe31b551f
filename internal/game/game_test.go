package game

import (
	"errors"
	"io"
	"log"
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{
		Width:  600,
		Height: 400,
		Seed:   9,
		Logger: log.New(io.Discard, "", 0),
	})
}

func TestStepTicksOncePerFrame(t *testing.T) {
	g := newTestGame(t)
	if err := g.step(input{cursorX: 5, cursorY: 6}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(g.frame) == 0 || g.frame[0].Kind != field.KindClear {
		t.Fatalf("expected a frame starting with clear, got %d commands", len(g.frame))
	}
	if x, y := g.field.Pointer(); x != 5 || y != 6 {
		t.Errorf("expected pointer (5, 6), got (%v, %v)", x, y)
	}
	if g.stats.filled != 1 {
		t.Errorf("expected one recorded tick, got %d", g.stats.filled)
	}
}

func TestLayoutResizesOnNextStep(t *testing.T) {
	g := newTestGame(t)
	if w, h := g.Layout(300, 200); w != 300 || h != 200 {
		t.Fatalf("Layout should keep the outside size, got %dx%d", w, h)
	}
	if w, _ := g.field.Size(); w != 600 {
		t.Fatal("field must not resize before the next step")
	}
	if err := g.step(input{}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if w, h := g.field.Size(); w != 300 || h != 200 {
		t.Errorf("expected 300x200 field, got %dx%d", w, h)
	}
	if g.field.Len() != 4 {
		t.Errorf("expected 4 particles, got %d", g.field.Len())
	}
}

func TestThemeToggleKey(t *testing.T) {
	g := newTestGame(t)
	if err := g.step(input{toggleKey: true}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.field.Theme() != field.Light {
		t.Errorf("expected light theme, got %v", g.field.Theme())
	}
	if err := g.step(input{toggleKey: true}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.field.Theme() != field.Dark {
		t.Errorf("expected dark theme, got %v", g.field.Theme())
	}
}

func TestThemeButtonClick(t *testing.T) {
	g := newTestGame(t)
	bx, by := g.buttonOrigin()
	x, y := bx+config.ButtonWidth/2, by+config.ButtonHeight/2

	if err := g.step(input{cursorX: x, cursorY: y, mousePressed: true}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !g.buttonHovered || !g.buttonPressed {
		t.Fatalf("expected hovered and pressed button")
	}
	if g.field.Theme() != field.Dark {
		t.Fatal("theme must not change before release")
	}
	if err := g.step(input{cursorX: x, cursorY: y, mouseReleased: true}); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.field.Theme() != field.Light {
		t.Errorf("expected light theme after click, got %v", g.field.Theme())
	}
	if g.buttonPressed {
		t.Error("expected button released")
	}
}

func TestThemeButtonReleaseOutside(t *testing.T) {
	g := newTestGame(t)
	bx, by := g.buttonOrigin()
	_ = g.step(input{cursorX: bx + 1, cursorY: by + 1, mousePressed: true})
	_ = g.step(input{cursorX: 0, cursorY: 300, mouseReleased: true})
	if g.field.Theme() != field.Dark {
		t.Error("release outside the button must not toggle")
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t)
	if err := g.step(input{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination, got %v", err)
	}
}

func TestBackgroundFollowsTheme(t *testing.T) {
	if background(field.Dark) == background(field.Light) {
		t.Error("expected distinct backgrounds")
	}
	fillDark, _ := buttonColors(field.Dark, false, false)
	hoverDark, _ := buttonColors(field.Dark, true, false)
	if fillDark == hoverDark {
		t.Error("expected a hover color")
	}
}

func TestTickStats(t *testing.T) {
	s := newTickStats(4)
	if s.mean() != 0 || s.peak() != 0 {
		t.Fatal("expected zero mean and peak when empty")
	}
	s.record(2 * time.Millisecond)
	if s.mean() != 2*time.Millisecond || s.peak() != 2*time.Millisecond {
		t.Errorf("single sample: got mean %v, peak %v", s.mean(), s.peak())
	}

	s = newTickStats(4)
	for i := 1; i <= 6; i++ {
		s.record(time.Duration(i) * time.Millisecond)
	}
	// Only 3..6 survive in a ring of four.
	if m := s.mean(); m != 4500*time.Microsecond {
		t.Errorf("expected mean 4.5ms, got %v", m)
	}
	if p := s.peak(); p != 6*time.Millisecond {
		t.Errorf("expected peak 6ms, got %v", p)
	}

	s.record(time.Millisecond)
	if m := s.mean(); m != 4*time.Millisecond {
		t.Errorf("after overwrite: expected mean 4ms, got %v", m)
	}
	if p := s.peak(); p != 6*time.Millisecond {
		t.Errorf("after overwrite: expected peak 6ms, got %v", p)
	}
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(config.ChimeSampleRate)
	s := tone(rate, 440, 90*time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
	}
	if want := rate.N(90 * time.Millisecond); total != want {
		t.Errorf("expected %d samples, got %d", want, total)
	}
}

func TestFormatTickCost(t *testing.T) {
	if got := formatTickCost(1500 * time.Nanosecond); got != "1.5us" {
		t.Errorf("unexpected %q", got)
	}
}
