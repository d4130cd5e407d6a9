package tui

import (
	"testing"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/countdown"
)

func TestNewTimerManagerDefaults(t *testing.T) {
	ctrl, err := countdown.New(countdown.Remaining{Minutes: 1})
	if err != nil {
		t.Fatalf("countdown.New failed: %v", err)
	}
	m := NewTimerManager(ctrl)
	if m.Revealed {
		t.Fatalf("expected Revealed to be false")
	}
	if m.State.Remaining != (countdown.Remaining{Minutes: 1}) {
		t.Fatalf("unexpected initial state %+v", m.State)
	}
	if m.Progress.Width != config.ProgressWidth {
		t.Fatalf("expected progress width %d, got %d", config.ProgressWidth, m.Progress.Width)
	}
	if m.Fraction() != 0 {
		t.Fatalf("expected zero progress")
	}
}

func TestTimerManagerWithoutController(t *testing.T) {
	if NewTimerManager(nil).Fraction() != 0 {
		t.Fatalf("expected zero progress without a controller")
	}
}

func TestCelebrationStartsOnce(t *testing.T) {
	c := &Celebration{}
	if c.Swelling() {
		t.Fatalf("inactive celebration cannot swell")
	}
	c.Step()
	c.Start(40)
	field := c.Field
	c.Start(40)
	if c.Field != field {
		t.Fatalf("expected second Start to be ignored")
	}
	if c.Field.Len() != config.ParticleCount {
		t.Fatalf("expected %d particles, got %d", config.ParticleCount, c.Field.Len())
	}
	swelled := false
	for i := 0; i < config.FrameRate; i++ {
		c.Step()
		swelled = swelled || c.Swelling()
	}
	if !swelled {
		t.Fatalf("expected the title pulse to swell")
	}
}
