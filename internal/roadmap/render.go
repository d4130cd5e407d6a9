package roadmap

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/nebula/internal/models"
	"github.com/charmbracelet/glamour"
)

// Styles accepted by NewRenderer.
const (
	StyleDark  = "dark"
	StyleNoTTY = "notty"
)

// PhaseMarkdown renders one phase as a markdown section.
func PhaseMarkdown(p models.Phase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s %s · %s\n\n", p.Icon, p.Phase, p.Date)
	fmt.Fprintf(&b, "**%s**\n\n", p.Title)
	fmt.Fprintf(&b, "%s\n\n", p.Description)
	for _, f := range p.Features {
		fmt.Fprintf(&b, "- %s\n", f)
	}
	return b.String()
}

// Markdown renders the heading and every phase as one document.
func Markdown(phases []models.Phase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n\n", Heading, Subheading)
	for _, p := range phases {
		b.WriteString(PhaseMarkdown(p))
		b.WriteString("\n")
	}
	return b.String()
}

// Renderer turns roadmap markdown into terminal output.
type Renderer struct {
	term  *glamour.TermRenderer
	width int
}

// NewRenderer builds a glamour renderer wrapping at width.
func NewRenderer(style string, width int) (*Renderer, error) {
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = StyleDark
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("roadmap renderer: %w", err)
	}
	return &Renderer{term: term, width: width}, nil
}

func (r *Renderer) Width() int { return r.width }

// Document renders the whole roadmap.
func (r *Renderer) Document(phases []models.Phase) (string, error) {
	return r.term.Render(Markdown(phases))
}

// Blocks renders the heading and each phase separately so callers know where
// each phase starts. The first block is the heading.
func (r *Renderer) Blocks(phases []models.Phase) ([]string, error) {
	head, err := r.term.Render(fmt.Sprintf("## %s\n\n%s\n", Heading, Subheading))
	if err != nil {
		return nil, err
	}
	blocks := []string{strings.TrimRight(head, "\n")}
	for _, p := range phases {
		out, err := r.term.Render(PhaseMarkdown(p))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", p.Phase, err)
		}
		blocks = append(blocks, strings.TrimRight(out, "\n"))
	}
	return blocks, nil
}
