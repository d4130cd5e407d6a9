package effects

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFieldStaysInsideBand(t *testing.T) {
	f := NewField(40, 6, 50, 30, 7)
	assert.Equal(t, 50, f.Len())
	for i := 0; i < 300; i++ {
		f.Step()
		for _, c := range f.Cells() {
			assert.True(t, c[0] >= 0 && c[0] < 40 && c[1] >= 0 && c[1] < 6)
		}
	}
}

func TestFieldParticlesRiseAndRespawn(t *testing.T) {
	f := NewField(20, 4, 10, 30, 1)
	for _, p := range f.particles {
		assert.Less(t, p.proj.Velocity().Y, 0.0)
	}

	for i := 0; i < 30*20; i++ {
		f.Step()
	}
	assert.Equal(t, 10, f.Len())
	assert.NotEmpty(t, f.Cells())
}

func TestFieldDeterministicForSeed(t *testing.T) {
	a := NewField(30, 5, 20, 30, 42)
	b := NewField(30, 5, 20, 30, 42)
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestFieldViewDimensions(t *testing.T) {
	f := NewField(12, 3, 5, 30, 3)
	lines := strings.Split(f.View(), "\n")
	assert.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 12, ansi.StringWidth(l))
	}

	f.Resize(8, 2)
	f.Step()
	assert.Len(t, strings.Split(f.View(), "\n"), 2)
}

func TestPulseSettles(t *testing.T) {
	p := NewPulse(30)
	assert.False(t, p.Step())
	p.Start()
	assert.True(t, p.Active())

	frames := 0
	for p.Step() {
		frames++
		if frames > 30*10 {
			t.Fatal("pulse never settled")
		}
	}
	assert.Greater(t, p.Peak(), 0.05)
	assert.Equal(t, 0.0, p.Value())
	assert.False(t, p.Active())
}
