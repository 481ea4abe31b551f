package field

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Particle is a single point of the field. Only X and Y change between
// re-initializations.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
}

// Theme is the binary look of the host page. The zero value is Dark.
type Theme uint8

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", s)
}

// ConnectorOpacity is the alpha of a connector between two coincident
// particles under theme t.
func ConnectorOpacity(t Theme) float64 {
	if t == Dark {
		return config.DarkLineOpacity
	}
	return config.LightLineOpacity
}
