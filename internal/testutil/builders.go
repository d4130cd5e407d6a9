package testutil

import (
	"strconv"

	"github.com/akyairhashvil/nebula/internal/models"
)

// PhaseBuilder provides fluent API for creating test roadmap phases.
type PhaseBuilder struct {
	phase models.Phase
}

func NewPhase() *PhaseBuilder {
	return &PhaseBuilder{
		phase: models.Phase{
			Phase:       "Phase 1",
			Title:       "Test Phase",
			Description: "Test description",
			Date:        "Q1 2025",
			Features:    []string{"Feature A"},
			Icon:        "*",
		},
	}
}

func (b *PhaseBuilder) WithPhase(p string) *PhaseBuilder {
	b.phase.Phase = p
	return b
}

func (b *PhaseBuilder) WithTitle(title string) *PhaseBuilder {
	b.phase.Title = title
	return b
}

func (b *PhaseBuilder) WithDate(date string) *PhaseBuilder {
	b.phase.Date = date
	return b
}

func (b *PhaseBuilder) WithFeatures(features ...string) *PhaseBuilder {
	b.phase.Features = append([]string(nil), features...)
	return b
}

func (b *PhaseBuilder) Build() models.Phase {
	return b.phase
}

// Phases builds n phases numbered from 1.
func Phases(n int) []models.Phase {
	out := make([]models.Phase, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewPhase().
			WithPhase("Phase "+strconv.Itoa(i)).
			WithTitle("Title "+strconv.Itoa(i)).
			Build())
	}
	return out
}
