package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const restEpsilon = 0.001

// Pulse is a one-shot spring kick that settles back to rest, used to
// emphasise the hero title when the page reveals.
type Pulse struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	active bool
	peak   float64
}

func NewPulse(fps int) *Pulse {
	return &Pulse{spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 6.0, 0.35)}
}

// Start kicks the spring. Restarting while active adds another kick.
func (p *Pulse) Start() {
	p.vel += 4
	p.active = true
}

// Step advances one frame and reports whether the pulse is still moving.
func (p *Pulse) Step() bool {
	if !p.active {
		return false
	}
	p.pos, p.vel = p.spring.Update(p.pos, p.vel, 0)
	p.peak = math.Max(p.peak, p.pos)
	if math.Abs(p.pos) < restEpsilon && math.Abs(p.vel) < restEpsilon {
		p.pos, p.vel, p.active = 0, 0, false
	}
	return p.active
}

// Value is the current displacement; positive while swelling.
func (p *Pulse) Value() float64 { return p.pos }

func (p *Pulse) Active() bool { return p.active }

// Peak is the largest displacement seen so far.
func (p *Pulse) Peak() float64 { return p.peak }
