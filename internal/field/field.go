// Package field simulates the decorative particle background: a set of
// drifting points nudged by the pointer and joined by fading connectors.
//
// A Field never draws by itself. Tick advances the simulation by one frame
// and returns the draw commands for a host to rasterize.
package field

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Field owns the particles together with the inputs that drive them.
// It is not safe for concurrent use; a single host loop owns it.
type Field struct {
	particles []Particle
	width     int
	height    int

	pointerX, pointerY float64
	theme              Theme

	rng  *rand.Rand
	cmds []Command
}

// NewRand returns a PCG source for seed, or a time-seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>17|1))
}

// Initialize creates a field for a width x height surface. A nil rng is
// replaced with a time-seeded source.
func Initialize(width, height int, rng *rand.Rand) *Field {
	if rng == nil {
		rng = NewRand(0)
	}
	f := &Field{rng: rng}
	f.populate(width, height)
	return f
}

// ParticleCount is the number of particles a width x height surface holds.
func ParticleCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(float64(width) * float64(height) / config.AreaPerParticle))
}

func (f *Field) populate(width, height int) {
	f.width, f.height = width, height
	n := ParticleCount(width, height)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:       f.rng.Float64() * float64(width),
			Y:       f.rng.Float64() * float64(height),
			VX:      (f.rng.Float64() - 0.5) * 2 * config.MaxSpeed,
			VY:      (f.rng.Float64() - 0.5) * 2 * config.MaxSpeed,
			Size:    f.rng.Float64()*config.RadiusSpan + config.MinRadius,
			Opacity: f.rng.Float64()*config.OpacitySpan + config.MinOpacity,
		}
	}
	f.particles = ps
}

// Resize discards every particle and repopulates the field for the new
// surface. Pointer and theme are kept.
func (f *Field) Resize(width, height int) {
	f.populate(width, height)
}

// SetPointer records the latest pointer position in surface coordinates.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

// SetTheme records the theme used for connector opacity.
func (f *Field) SetTheme(t Theme) {
	f.theme = t
}

func (f *Field) Theme() Theme { return f.theme }

func (f *Field) Size() (int, int) { return f.width, f.height }

func (f *Field) Pointer() (float64, float64) { return f.pointerX, f.pointerY }

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Tick advances every particle by one frame and returns the frame's draw
// commands: a clear, then for each particle its circle followed by its
// connectors to every later particle.
//
// The returned slice is reused by the next call to Tick.
func (f *Field) Tick() []Command {
	cmds := append(f.cmds[:0], Command{Kind: KindClear})
	w, h := float64(f.width), float64(f.height)
	base := ConnectorOpacity(f.theme)

	for i := range f.particles {
		p := &f.particles[i]

		p.X += p.VX
		p.Y += p.VY
		p.X = wrap(p.X, w)
		p.Y = wrap(p.Y, h)
		pointerPush(p, f.pointerX, f.pointerY)

		cmds = append(cmds, Command{
			Kind:   KindCircle,
			X:      p.X,
			Y:      p.Y,
			Radius: p.Size,
			Color:  particleColor(p.Opacity),
		})

		// Later particles have not moved yet this frame.
		for j := i + 1; j < len(f.particles); j++ {
			q := &f.particles[j]
			dx := p.X - q.X
			dy := p.Y - q.Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= config.ConnectRange {
				continue
			}
			cmds = append(cmds, Command{
				Kind:  KindLine,
				X:     p.X,
				Y:     p.Y,
				X2:    q.X,
				Y2:    q.Y,
				Width: config.ConnectLineWidth,
				Color: particleColor(connectorAlpha(base, d)),
			})
		}
	}

	f.cmds = cmds
	return cmds
}

// wrap snaps a coordinate that left [0, limit] to the opposite edge.
func wrap(v, limit float64) float64 {
	if v < 0 {
		v = limit
	}
	if v > limit {
		v = 0
	}
	return v
}

// pointerPush offsets p by a fraction of its vector to the pointer, fading
// linearly to nothing at PointerRange. The offset is subtracted, so p is
// pushed along the pointer-to-particle direction.
func pointerPush(p *Particle, px, py float64) {
	dx := px - p.X
	dy := py - p.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d >= config.PointerRange {
		return
	}
	force := (config.PointerRange - d) / config.PointerRange
	p.X -= dx * config.PointerForce * force
	p.Y -= dy * config.PointerForce * force
}

func connectorAlpha(base, d float64) float64 {
	return base * (1 - d/config.ConnectRange)
}

func particleColor(alpha float64) Color {
	return Color{R: config.ParticleR, G: config.ParticleG, B: config.ParticleB, A: alpha}
}
