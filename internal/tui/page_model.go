package tui

import (
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/models"
	"github.com/akyairhashvil/nebula/internal/roadmap"
	"github.com/akyairhashvil/nebula/internal/scroll"
	"github.com/charmbracelet/bubbles/viewport"
	"go.uber.org/zap"
)

// PageModel is the scrolling body: hero section followed by the roadmap.
type PageModel struct {
	Viewport viewport.Model
	Observer *scroll.Observer
	Tracker  *roadmap.Tracker
	phases   []models.Phase
	style    string
	renderer *roadmap.Renderer
	blocks   []string
	spans    []roadmap.Span
}

func NewPageModel(style string) PageModel {
	phases := roadmap.Phases()
	vp := viewport.New(config.ContentWidth, 20)
	vp.MouseWheelEnabled = true
	return PageModel{
		Viewport: vp,
		Observer: scroll.NewObserver(config.ScrollThreshold),
		// the heading block counts as a tracked block too
		Tracker: roadmap.NewTracker(len(phases) + 1),
		phases:  phases,
		style:   style,
	}
}

// layout re-renders the roadmap blocks when the wrap width changes.
func (p *PageModel) layout(width int, logger *zap.Logger) {
	if p.renderer != nil && p.renderer.Width() == width && p.blocks != nil {
		return
	}
	r, err := roadmap.NewRenderer(p.style, width)
	if err != nil {
		logger.Warn("roadmap renderer unavailable", zap.Error(err))
		p.blocks = plainBlocks(p.phases)
		return
	}
	blocks, err := r.Blocks(p.phases)
	if err != nil {
		logger.Warn("roadmap render failed", zap.Error(err))
		p.blocks = plainBlocks(p.phases)
		return
	}
	p.renderer, p.blocks = r, blocks
}

func plainBlocks(phases []models.Phase) []string {
	blocks := []string{roadmap.Heading + "\n" + roadmap.Subheading}
	for _, ph := range phases {
		blocks = append(blocks, roadmap.PhaseMarkdown(ph))
	}
	return blocks
}

// ArrowVisible reports whether the scroll hint should be drawn.
func (p PageModel) ArrowVisible() bool {
	return p.Observer.Visible()
}
