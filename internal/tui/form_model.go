package tui

import (
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// FormModel is the "Get Updates" subscription form.
type FormModel struct {
	Input      textinput.Model
	Spinner    spinner.Model
	Submitting bool
	Submitted  bool
	Err        error
	// seq identifies the confirmation currently shown so a stale expiry
	// does not hide a newer one.
	seq int
}

func NewFormModel() FormModel {
	ti := textinput.New()
	ti.Placeholder = emailPrompt
	ti.CharLimit = config.MaxEmailLength
	ti.Width = 32
	ti.Prompt = "✉ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return FormModel{Input: ti, Spinner: sp}
}

// CanSubmit reports whether a submission may start now.
func (f FormModel) CanSubmit() bool {
	return !f.Submitting && f.Input.Value() != ""
}
