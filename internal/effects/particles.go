// Package effects animates the celebration shown when the countdown reveals:
// a field of drifting particles and a spring pulse for the hero title.
package effects

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the electric blue particle palette.
var Palette = []lipgloss.Color{"#4299E1", "#3182CE", "#2B6CB0", "#63B3ED", "#90CDF4"}

var glyphs = []rune{'·', '•', '∙', '*', '+'}

type particle struct {
	proj  *harmonica.Projectile
	color lipgloss.Color
	glyph rune
}

// Field is a set of particles drifting upward across a width x height band.
// Particles leaving the band re-enter from the bottom edge.
type Field struct {
	width, height int
	fps           int
	rng           *rand.Rand
	particles     []particle
}

// NewField seeds count particles. The same seed yields the same animation.
func NewField(width, height, count, fps int, seed uint64) *Field {
	f := &Field{
		width:  max(width, 1),
		height: max(height, 1),
		fps:    max(fps, 1),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	f.particles = make([]particle, count)
	for i := range f.particles {
		f.particles[i] = f.spawn(f.rng.Float64() * float64(f.height))
	}
	return f
}

func (f *Field) spawn(y float64) particle {
	pos := harmonica.Point{X: f.rng.Float64() * float64(f.width), Y: y}
	vel := harmonica.Vector{
		X: (f.rng.Float64() - 0.5) * 2,
		Y: -(0.5 + f.rng.Float64()*1.5),
	}
	acc := harmonica.Vector{X: (f.rng.Float64() - 0.5) * 0.2, Y: -0.05}
	return particle{
		proj:  harmonica.NewProjectile(harmonica.FPS(f.fps), pos, vel, acc),
		color: Palette[f.rng.IntN(len(Palette))],
		glyph: glyphs[f.rng.IntN(len(glyphs))],
	}
}

// Resize changes the band; particles outside it respawn on the next Step.
func (f *Field) Resize(width, height int) {
	f.width, f.height = max(width, 1), max(height, 1)
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	for i := range f.particles {
		p := f.particles[i].proj.Update()
		if p.Y < 0 || p.X < 0 || p.X >= float64(f.width) || p.Y >= float64(f.height) {
			f.particles[i] = f.spawn(float64(f.height) - 0.01)
		}
	}
}

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Cells returns the integer cell of every particle inside the band.
func (f *Field) Cells() [][2]int {
	out := make([][2]int, 0, len(f.particles))
	for _, p := range f.particles {
		pos := p.proj.Position()
		x, y := int(pos.X), int(pos.Y)
		if x < 0 || y < 0 || x >= f.width || y >= f.height {
			continue
		}
		out = append(out, [2]int{x, y})
	}
	return out
}

// View draws the band. Cells without a particle are spaces.
func (f *Field) View() string {
	grid := make([][]string, f.height)
	for y := range grid {
		grid[y] = make([]string, f.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range f.particles {
		pos := p.proj.Position()
		x, y := int(pos.X), int(pos.Y)
		if x < 0 || y < 0 || x >= f.width || y >= f.height {
			continue
		}
		grid[y][x] = lipgloss.NewStyle().Foreground(p.color).Render(string(p.glyph))
	}
	lines := make([]string, f.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
