package tui

import (
	"time"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/effects"
)

// Celebration holds the effects started by the reveal.
type Celebration struct {
	Field  *effects.Field
	Pulse  *effects.Pulse
	Active bool
}

// Start seeds the particles for a band of the given width. Calling it again
// does nothing.
func (c *Celebration) Start(width int) {
	if c.Active {
		return
	}
	c.Field = effects.NewField(width, config.ParticleBandHeight, config.ParticleCount, config.FrameRate, uint64(time.Now().UnixNano()))
	c.Pulse = effects.NewPulse(config.FrameRate)
	c.Pulse.Start()
	c.Active = true
}

func (c *Celebration) Step() {
	if !c.Active {
		return
	}
	c.Field.Step()
	c.Pulse.Step()
}

func (c *Celebration) Resize(width int) {
	if c.Field != nil {
		c.Field.Resize(width, config.ParticleBandHeight)
	}
}

// Swelling reports whether the title is at the top of its pulse.
func (c *Celebration) Swelling() bool {
	return c.Active && c.Pulse.Value() > config.PulseThreshold
}
