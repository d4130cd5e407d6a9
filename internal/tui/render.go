package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/models"
	"github.com/akyairhashvil/nebula/internal/roadmap"
	"github.com/akyairhashvil/nebula/internal/subscribe"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	sections := []string{m.renderNavbar()}
	if m.showDropdown {
		sections = append(sections, m.renderDropdown())
	}
	sections = append(sections, m.page.Viewport.View(), m.renderArrow(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m MainModel) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return m.page.Viewport.Width
}

func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

func (m MainModel) renderNavbar() string {
	width := m.viewWidth()
	left := m.theme.Brand.Render(config.BrandName)

	var right []string
	if width >= config.CompactModeThreshold {
		right = append(right, m.theme.Partner.Render(partnerText))
	}
	right = append(right, m.renderAudioStatus(), m.theme.Highlight.Render("𝕏"))
	rightText := strings.Join(right, "  ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(rightText) - 2
	if gap < 1 {
		gap = 1
	}
	line := fit(left+strings.Repeat(" ", gap)+rightText, width-2)
	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(m.theme.Border).
		Render(line)
}

func (m MainModel) renderAudioStatus() string {
	if m.audio.NeedsManualStart() {
		return m.theme.Invite.Render("♪ " + manualPlayHint)
	}
	if m.audio.Muted() {
		return m.theme.Dim.Render("♪ muted")
	}
	v := m.audio.Volume()
	return m.theme.Partner.Render("♪ " + volumeBar(v, 5) + " " + FormatVolume(v))
}

func (m MainModel) renderDropdown() string {
	lines := make([]string, 0, len(navLinks))
	for _, l := range navLinks {
		lines = append(lines, fmt.Sprintf("%s  %s", m.theme.Title.Render(l.Label), m.theme.Link.Render(l.URL)))
	}
	box := m.theme.Dropdown.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(m.viewWidth(), lipgloss.Right, box)
}

func (m MainModel) renderHero() string {
	stage := m.Stage()
	c := stageCopy[stage]
	width := m.contentWidth()

	var lines []string
	if m.celebration.Active {
		lines = append(lines, m.celebration.Field.View())
	} else {
		lines = append(lines, strings.Repeat("\n", config.ParticleBandHeight-1))
	}

	title, titleStyle := c.Title, m.theme.Title
	if m.celebration.Swelling() {
		title, titleStyle = spaced(title), m.theme.TitleLit
	}
	lines = append(lines, titleStyle.Render(fit(title, width)), "")

	if stage == models.StageCounting {
		minutes, seconds := FormatRemaining(m.timer.State.Remaining)
		lines = append(lines,
			m.theme.Timer.Render(minutes+":"+seconds),
			m.timer.Progress.ViewAs(m.timer.Fraction()),
		)
	} else {
		lines = append(lines, m.theme.Reveal.Render(fit(c.Subtitle, width)))
	}

	lines = append(lines, "",
		m.theme.Tagline.Render(fit(c.Tagline, width)),
		m.theme.Invite.Render(fit(c.Invite, width)),
		"",
	)

	if stage == models.StageCounting {
		lines = append(lines, m.renderForm())
	} else {
		lines = append(lines, m.theme.Link.Render(fit(followText+" → "+config.BrandLink, width)))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.PlaceHorizontal(max(m.viewWidth(), width), lipgloss.Center, block)
}

func (m MainModel) renderForm() string {
	input := m.form.Input.View()
	if m.focus == FocusForm {
		input = m.theme.Input.BorderForeground(m.theme.Focused.GetForeground()).Render(input)
	} else {
		input = m.theme.Input.Render(input)
	}

	label := submitLabel
	if m.form.Submitting {
		label = m.form.Spinner.View() + " Sending"
	}
	button := m.theme.Button.Render(label)

	var row string
	if m.viewWidth() < config.CompactModeThreshold {
		row = lipgloss.JoinVertical(lipgloss.Center, input, button)
	} else {
		row = lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
	}

	var status string
	switch {
	case m.form.Submitted:
		status = m.theme.Success.Render(thanksText)
	case m.form.Err != nil:
		status = m.theme.Error.Render(formError(m.form.Err))
	case m.focus != FocusForm:
		status = m.theme.Dim.Render("[tab] " + submitLabel)
	}
	return lipgloss.JoinVertical(lipgloss.Center, row, status)
}

func formError(err error) string {
	if errors.Is(err, subscribe.ErrInvalidAddress) {
		return "Please enter a valid email address"
	}
	return "Subscription failed, please try again"
}

func (m MainModel) renderArrow() string {
	if m.timer.Revealed || !m.page.ArrowVisible() {
		return ""
	}
	return lipgloss.PlaceHorizontal(m.viewWidth(), lipgloss.Center, m.theme.Arrow.Render("⌄"))
}

func (m MainModel) renderFooter() string {
	help := m.keys.HelpFor(m.focus)
	if m.focus == FocusPage {
		help += " [↑/↓]scroll"
	}
	if m.Message != "" {
		help = m.theme.Focused.Render(m.Message) + "  " + m.theme.Dim.Render(help)
	} else {
		help = m.theme.Dim.Render(help)
	}
	version := m.theme.Dim.Render("v" + versionLabel())
	gap := m.viewWidth() - lipgloss.Width(help) - lipgloss.Width(version)
	if gap < 1 {
		return fit(help, m.viewWidth())
	}
	return help + strings.Repeat(" ", gap) + version
}

// refreshPage recomposes the scrolling body and feeds the current offset to
// the scroll observer and the roadmap tracker.
func (m *MainModel) refreshPage() {
	m.page.layout(m.contentWidth(), m.logger)
	m.page.Viewport.Height = m.bodyHeight()

	hero := m.renderHero()
	heroLines := lipgloss.Height(hero)
	if pad := m.page.Viewport.Height - heroLines; pad > 0 {
		hero += strings.Repeat("\n", pad)
		heroLines += pad
	}

	spans := make([]roadmap.Span, len(m.page.blocks))
	line := heroLines + 1
	for i, b := range m.page.blocks {
		h := lipgloss.Height(b)
		spans[i] = roadmap.Span{Start: line, End: line + h}
		line += h + 1
	}
	m.page.spans = spans

	offset := m.page.Viewport.YOffset
	m.page.Tracker.Observe(offset, m.page.Viewport.Height, spans)
	m.page.Observer.Observe(offset)

	parts := []string{hero}
	for i, b := range m.page.blocks {
		if !m.page.Tracker.Revealed(i) {
			b = m.theme.Dim.Render(ansi.Strip(b))
		}
		parts = append(parts, lipgloss.PlaceHorizontal(m.viewWidth(), lipgloss.Center, b))
	}
	m.page.Viewport.SetContent(strings.Join(parts, "\n\n"))
}
