package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
)

var (
	darkBackground  = mustHex("#0f172a")
	lightBackground = mustHex("#f8fafc")
)

const (
	glyphSmall     = '•'
	glyphLarge     = '●'
	glyphConnector = '·'
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func background(t field.Theme) colorful.Color {
	if t == field.Light {
		return lightBackground
	}
	return darkBackground
}

// rasterizer maps surface pixels onto terminal cells, CellWidth x CellHeight
// pixels per cell. Alpha is resolved by blending toward the background
// since a cell has no transparency.
type rasterizer struct {
	screen     tcell.Screen
	cols, rows int
	bg         colorful.Color

	// per-cell state for the current frame
	particle  []bool
	lineAlpha []float64
}

func newRasterizer(screen tcell.Screen) *rasterizer {
	return &rasterizer{screen: screen}
}

func (r *rasterizer) draw(cmds []field.Command, theme field.Theme) {
	for _, c := range cmds {
		switch c.Kind {
		case field.KindClear:
			r.reset(theme)
		case field.KindCircle:
			r.circle(c)
		case field.KindLine:
			r.line(c)
		}
	}
}

func (r *rasterizer) reset(theme field.Theme) {
	r.cols, r.rows = r.screen.Size()
	n := r.cols * r.rows
	if cap(r.particle) < n {
		r.particle = make([]bool, n)
		r.lineAlpha = make([]float64, n)
	}
	r.particle = r.particle[:n]
	r.lineAlpha = r.lineAlpha[:n]
	clear(r.particle)
	clear(r.lineAlpha)

	r.bg = background(theme)
	r.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(r.bg)))
}

func (r *rasterizer) circle(c field.Command) {
	col, row := cellOf(c.X, c.Y)
	if !r.inside(col, row) {
		return
	}
	glyph := glyphSmall
	if c.Radius >= 2 {
		glyph = glyphLarge
	}
	r.particle[row*r.cols+col] = true
	r.screen.SetContent(col, row, glyph, nil, r.style(c.Color))
}

func (r *rasterizer) line(c field.Command) {
	x0, y0 := cellOf(c.X, c.Y)
	x1, y1 := cellOf(c.X2, c.Y2)
	walkCells(x0, y0, x1, y1, func(col, row int) {
		if !r.inside(col, row) {
			return
		}
		i := row*r.cols + col
		if r.particle[i] || c.Color.A <= r.lineAlpha[i] {
			return
		}
		r.lineAlpha[i] = c.Color.A
		r.screen.SetContent(col, row, glyphConnector, nil, r.style(c.Color))
	})
}

func (r *rasterizer) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < r.cols && row < r.rows
}

func (r *rasterizer) style(c field.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(blend(r.bg, c))).
		Background(toTcell(r.bg))
}

// blend composites c over bg using c's alpha.
func blend(bg colorful.Color, c field.Color) colorful.Color {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	a := math.Max(0, math.Min(1, c.A))
	return bg.BlendRgb(fg, a)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / config.CellWidth)), int(math.Floor(y / config.CellHeight))
}

// walkCells visits every cell on the Bresenham line from (x0, y0) to
// (x1, y1), both ends included.
func walkCells(x0, y0, x1, y1 int, visit func(col, row int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
