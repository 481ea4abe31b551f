package field

import (
	"image/color"
	"math"
)

// Kind identifies a draw command.
type Kind uint8

const (
	KindClear Kind = iota
	KindCircle
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	}
	return "unknown"
}

// Color is an RGB triple with a straight (non-premultiplied) alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// NRGBA converts c for use with image/color based APIs.
func (c Color) NRGBA() color.NRGBA {
	a := math.Round(clamp01(c.A) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// Command is one immediate-mode draw instruction.
//
// A circle uses X, Y and Radius. A line runs from (X, Y) to (X2, Y2) with
// stroke Width. Clear uses no fields.
type Command struct {
	Kind   Kind
	X, Y   float64
	X2, Y2 float64
	Radius float64
	Width  float64
	Color  Color
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
