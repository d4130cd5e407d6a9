package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/akyairhashvil/nebula/internal/roadmap"
	"github.com/akyairhashvil/nebula/internal/subscribe"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type countdownMsg countdown.Event

type frameMsg time.Time

type submitResultMsg struct {
	seq int
	err error
}

type confirmExpiredMsg struct {
	seq int
}

type audioStatusMsg struct {
	err error
}

type exportResultMsg struct {
	path string
	err  error
}

// ConfigReloadedMsg carries a configuration re-read by the file watcher.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

// waitForCountdown blocks until the controller publishes the next tick.
func waitForCountdown(ctx context.Context, events <-chan countdown.Event) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-events:
			return countdownMsg(ev)
		case <-ctx.Done():
			return nil
		}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func submitCmd(ctx context.Context, s subscribe.Submitter, address string, seq int) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{seq: seq, err: s.Submit(ctx, address)}
	}
}

func confirmExpireCmd(window time.Duration, seq int) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg { return confirmExpiredMsg{seq: seq} })
}

func autoplayCmd(a AudioController, enabled bool) tea.Cmd {
	return func() tea.Msg {
		return audioStatusMsg{err: a.Autoplay(enabled)}
	}
}

func playCmd(a AudioController) tea.Cmd {
	return func() tea.Msg {
		return audioStatusMsg{err: a.Play()}
	}
}

func exportCmd(dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportResultMsg{err: err}
		}
		path := filepath.Join(dir, "nebula-roadmap-"+now.Format("20060102-150405")+".pdf")
		return exportResultMsg{path: path, err: roadmap.ExportPDF(roadmap.Phases(), path)}
	}
}
