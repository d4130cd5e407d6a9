package config

import "time"

// Layout constants.
const (
	// ScrollThreshold is how many rows the page may scroll before the arrow
	// indicator hides.
	ScrollThreshold = 3

	// CompactModeThreshold drops the partnership text below this width.
	CompactModeThreshold = 70

	// ContentWidth is the preferred width of the hero column.
	ContentWidth = 60

	// MinContentWidth is the narrowest the hero column gets.
	MinContentWidth = 24

	// ProgressWidth is the width of the countdown progress bar.
	ProgressWidth = 30
)

// Animation.
const (
	// FrameRate drives particle and pulse animation after the reveal.
	FrameRate = 30

	// ParticleCount is the number of celebration particles.
	ParticleCount = 50

	// ParticleBandHeight is how many rows the particle band above the title
	// takes.
	ParticleBandHeight = 5

	// PulseThreshold is the pulse displacement above which the title is
	// drawn enlarged.
	PulseThreshold = 0.3
)

// FrameInterval is the time between animation frames.
const FrameInterval = time.Second / FrameRate

// Input constraints.
const (
	// MaxEmailLength caps the subscription input.
	MaxEmailLength = 254
)
