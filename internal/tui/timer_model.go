package tui

import (
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/charmbracelet/bubbles/progress"
)

// TimerManager mirrors the countdown controller for rendering.
type TimerManager struct {
	Ctrl     *countdown.Controller
	State    countdown.State
	Revealed bool
	Progress progress.Model
}

func NewTimerManager(ctrl *countdown.Controller) TimerManager {
	bar := progress.New(progress.WithGradient("#2B6CB0", "#90CDF4"), progress.WithoutPercentage())
	bar.Width = config.ProgressWidth
	tm := TimerManager{Ctrl: ctrl, Progress: bar}
	if ctrl != nil {
		tm.State = ctrl.State()
	}
	return tm
}

// Fraction is the elapsed share of the countdown.
func (t TimerManager) Fraction() float64 {
	if t.Ctrl == nil {
		return 0
	}
	return t.Ctrl.Progress()
}
