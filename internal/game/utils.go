package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/particle-field/internal/field"
)

var (
	darkBackground  = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	lightBackground = color.RGBA{R: 248, G: 250, B: 252, A: 255}
)

// background is the page color behind the field for theme t.
func background(t field.Theme) color.RGBA {
	if t == field.Light {
		return lightBackground
	}
	return darkBackground
}

// buttonColors returns fill and border for the theme button.
func buttonColors(t field.Theme, hovered, pressed bool) (fill, border color.RGBA) {
	if t == field.Light {
		border = color.RGBA{R: 148, G: 163, B: 184, A: 255}
		switch {
		case pressed:
			fill = color.RGBA{R: 203, G: 213, B: 225, A: 255}
		case hovered:
			fill = color.RGBA{R: 226, G: 232, B: 240, A: 255}
		default:
			fill = color.RGBA{R: 241, G: 245, B: 249, A: 255}
		}
		return fill, border
	}
	border = color.RGBA{R: 99, G: 102, B: 241, A: 255}
	switch {
	case pressed:
		fill = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	case hovered:
		fill = color.RGBA{R: 51, G: 65, B: 85, A: 255}
	default:
		fill = color.RGBA{R: 30, G: 41, B: 59, A: 200}
	}
	return fill, border
}

// formatTickCost formats a duration as microseconds with one decimal.
func formatTickCost(d time.Duration) string {
	return fmt.Sprintf("%.1fus", float64(d)/float64(time.Microsecond))
}
