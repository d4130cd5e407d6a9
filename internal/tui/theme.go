package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Brand     lipgloss.Style
	Partner   lipgloss.Style
	Title     lipgloss.Style
	TitleLit  lipgloss.Style
	Timer     lipgloss.Style
	Reveal    lipgloss.Style
	Tagline   lipgloss.Style
	Invite    lipgloss.Style
	Input     lipgloss.Style
	Button    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Link      lipgloss.Style
	Arrow     lipgloss.Style
	Dropdown  lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"nebula": {
		Name:      "Nebula",
		Base:      lipgloss.NewStyle().Padding(0, 1),
		Border:    lipgloss.Color("#2B6CB0"),
		Brand:     lipgloss.NewStyle().Foreground(lipgloss.Color("#63B3ED")).Bold(true),
		Partner:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4299E1")),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0")),
		TitleLit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#4299E1")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("#BEE3F8")).Bold(true),
		Reveal:    lipgloss.NewStyle().Foreground(lipgloss.Color("#90CDF4")),
		Tagline:   lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0")),
		Invite:    lipgloss.NewStyle().Foreground(lipgloss.Color("#718096")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2B6CB0")).Padding(0, 1),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3182CE")).Padding(0, 2),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#68D391")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FC8181")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("#63B3ED")).Underline(true),
		Arrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("#2B6CB0")),
		Dropdown:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2B6CB0")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("#90CDF4")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("#4A5568")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#4299E1")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Padding(0, 1),
		Border:    lipgloss.Color("62"),
		Brand:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Partner:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		TitleLit:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Reveal:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Tagline:   lipgloss.NewStyle().Foreground(lipgloss.Color("189")),
		Invite:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("141")).Padding(0, 2),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Underline(true),
		Arrow:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Dropdown:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// DefaultTheme is used when a configured theme name is unknown.
const DefaultTheme = "nebula"

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[DefaultTheme]
}
