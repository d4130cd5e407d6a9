package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/nebula/internal/audio"
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/akyairhashvil/nebula/internal/subscribe"
	"github.com/akyairhashvil/nebula/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// navbar (with its border), arrow line and footer
const chromeHeight = 4

func (m MainModel) update(msg tea.Msg) (MainModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.page.Viewport, cmd = m.page.Viewport.Update(msg)
		return m, cmd
	case countdownMsg:
		return m.handleCountdown(countdown.Event(msg))
	case frameMsg:
		return m.handleFrame()
	case spinner.TickMsg:
		if !m.form.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.Spinner, cmd = m.form.Spinner.Update(msg)
		return m, cmd
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case confirmExpiredMsg:
		if msg.seq == m.form.seq {
			m.form.Submitted = false
		}
		return m, nil
	case audioStatusMsg:
		return m.handleAudioStatus(msg)
	case exportResultMsg:
		if msg.err != nil {
			util.LogError("export roadmap", msg.err)
			m.Message = "Export failed: " + msg.err.Error()
			return m, nil
		}
		m.Message = fmt.Sprintf(exportedMessage, msg.path)
		return m, nil
	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}
	var cmd tea.Cmd
	m.form.Input, cmd = m.form.Input.Update(msg)
	return m, cmd
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		if target < config.MinContentWidth/2 {
			target = config.MinContentWidth / 2
		}
		m.timer.Progress.Width = target
		m.page.Viewport.Width = m.width
	}
	m.celebration.Resize(m.contentWidth())
	return m, nil
}

func (m MainModel) bodyHeight() int {
	if m.height <= 0 {
		return m.page.Viewport.Height
	}
	h := m.height - chromeHeight
	if m.showDropdown {
		h -= len(navLinks) + 2
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m MainModel) handleCountdown(ev countdown.Event) (MainModel, tea.Cmd) {
	m.timer.State = ev.State
	if ev.Completed && !m.timer.Revealed {
		return m.reveal()
	}
	if ev.State.Complete {
		return m, nil
	}
	return m, waitForCountdown(m.ctx, m.timer.Ctrl.Events())
}

// reveal switches the page to its launched branch. It runs once, on the
// completion edge.
func (m MainModel) reveal() (MainModel, tea.Cmd) {
	m.timer.Revealed = true
	m.form.Input.Blur()
	m.focus = FocusPage
	m.celebration.Start(m.contentWidth())
	m.logger.Info("landing revealed", zap.Stringer("countdown", m.timer.Ctrl.Initial()))
	return m, frameCmd()
}

func (m MainModel) handleFrame() (MainModel, tea.Cmd) {
	if !m.celebration.Active {
		return m, nil
	}
	m.celebration.Step()
	return m, frameCmd()
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	key := msg.String()
	m.Message = ""
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	var cmd tea.Cmd
	if m.focus == FocusForm {
		m.form.Err = nil
		m.form.Input, cmd = m.form.Input.Update(msg)
		return m, cmd
	}
	m.page.Viewport, cmd = m.page.Viewport.Update(msg)
	return m, cmd
}

func (m MainModel) submit() (MainModel, tea.Cmd) {
	if !m.form.CanSubmit() {
		if !m.form.Submitting {
			m.form.Err = subscribe.ErrInvalidAddress
		}
		return m, nil
	}
	address := m.form.Input.Value()
	m.form.seq++
	m.form.Submitting = true
	m.form.Submitted = false
	m.form.Err = nil
	return m, tea.Batch(submitCmd(m.ctx, m.submitter, address, m.form.seq), m.form.Spinner.Tick)
}

func (m MainModel) handleSubmitResult(msg submitResultMsg) (MainModel, tea.Cmd) {
	if msg.seq != m.form.seq {
		return m, nil
	}
	m.form.Submitting = false
	if msg.err != nil {
		m.form.Err = msg.err
		m.logger.Warn("subscription failed", zap.Error(msg.err))
		return m, nil
	}
	m.form.Input.Reset()
	m.form.Submitted = true
	window := m.cfg.Subscribe.ConfirmationWindow
	if window <= 0 {
		window = config.ConfirmationWindow
	}
	return m, confirmExpireCmd(window, m.form.seq)
}

func (m MainModel) handleAudioStatus(msg audioStatusMsg) (MainModel, tea.Cmd) {
	if msg.err == nil {
		return m, nil
	}
	if errors.Is(msg.err, audio.ErrAutoplayBlocked) {
		m.logger.Info("audio waiting for manual start", zap.Error(msg.err))
		return m, nil
	}
	m.logger.Warn("audio unavailable", zap.Error(msg.err))
	m.Message = "Audio unavailable: " + msg.err.Error()
	return m, nil
}

func (m MainModel) handleConfigReload(msg ConfigReloadedMsg) (MainModel, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
		m.Message = "Config reload failed"
		return m, nil
	}
	m.cfg.UI = msg.Config.UI
	m.cfg.Audio.Volume = msg.Config.Audio.Volume
	m.cfg.Subscribe.ConfirmationWindow = msg.Config.Subscribe.ConfirmationWindow
	m.theme = ThemeByName(msg.Config.UI.Theme)
	m.audio.SetVolume(msg.Config.Audio.Volume)
	m.Message = "Config reloaded"
	return m, nil
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: quitKey, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: quitKey, Description: "quit", Modes: []FocusMode{FocusPage}})

	r.Register(KeyBinding{Key: "enter", Handler: submitKey, Description: "send", Modes: []FocusMode{FocusForm}, Priority: 10})
	r.Register(KeyBinding{Key: "esc", Handler: blurFormKey, Description: "back", Modes: []FocusMode{FocusForm}, Priority: 10})
	r.Register(KeyBinding{Key: "tab", Handler: blurFormKey, Modes: []FocusMode{FocusForm}, Priority: 10})

	r.Register(KeyBinding{Key: "tab", Handler: focusFormKey, Description: "subscribe", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "i", Handler: focusFormKey, Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "m", Handler: muteKey, Description: "mute", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "+", Handler: volumeKey(config.VolumeStep), Description: "vol+", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "=", Handler: volumeKey(config.VolumeStep), Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "-", Handler: volumeKey(-config.VolumeStep), Description: "vol-", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "p", Handler: playKey, Description: "play", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "x", Handler: dropdownKey, Description: "links", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "esc", Handler: closeDropdownKey, Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "e", Handler: exportKey, Description: "export", Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "g", Handler: topKey, Modes: []FocusMode{FocusPage}})
	r.Register(KeyBinding{Key: "G", Handler: bottomKey, Modes: []FocusMode{FocusPage}})
	return r
}

func quitKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.Close()
	return m, tea.Quit, true
}

func submitKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.submit()
	return next, cmd, true
}

func focusFormKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.timer.Revealed {
		return m, nil, false
	}
	m.focus = FocusForm
	m.showDropdown = false
	return m, m.form.Input.Focus(), true
}

func blurFormKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.form.Input.Blur()
	m.focus = FocusPage
	return m, nil, true
}

func muteKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.audio.ToggleMute() {
		m.Message = "Audio muted"
	} else {
		m.Message = "Audio unmuted"
	}
	return m, nil, true
}

func volumeKey(step float64) KeyHandler {
	return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		v := m.audio.SetVolume(m.audio.Volume() + step)
		m.Message = "Volume " + FormatVolume(v)
		return m, nil, true
	}
}

func playKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, playCmd(m.audio), true
}

func dropdownKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.showDropdown = !m.showDropdown
	return m, nil, true
}

func closeDropdownKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if !m.showDropdown {
		return m, nil, false
	}
	m.showDropdown = false
	return m, nil, true
}

func exportKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	dir := m.reportsDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	m.Message = "Exporting roadmap..."
	return m, exportCmd(dir, time.Now()), true
}

func topKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.page.Viewport.GotoTop()
	return m, nil, true
}

func bottomKey(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.page.Viewport.GotoBottom()
	return m, nil, true
}
