package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/akyairhashvil/nebula/internal/audio"
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/akyairhashvil/nebula/internal/models"
	"github.com/akyairhashvil/nebula/internal/subscribe"
	"github.com/akyairhashvil/nebula/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// AudioController is the part of the audio player the UI drives.
type AudioController interface {
	Autoplay(enabled bool) error
	Play() error
	SetVolume(v float64) float64
	ToggleMute() bool
	Volume() float64
	Muted() bool
	NeedsManualStart() bool
	Close() error
}

// Deps are the collaborators of one landing session.
type Deps struct {
	Ctx          context.Context
	Countdown    *countdown.Controller
	Audio        AudioController
	Submitter    subscribe.Submitter
	Config       config.Config
	Logger       *zap.Logger
	RoadmapStyle string
	ReportsDir   string
}

// MainModel is the root bubbletea model of the landing page.
type MainModel struct {
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce *sync.Once

	cfg        config.Config
	logger     *zap.Logger
	audio      AudioController
	submitter  subscribe.Submitter
	reportsDir string

	timer       TimerManager
	form        FormModel
	celebration *Celebration
	page        PageModel
	keys        *HandlerRegistry
	focus       FocusMode
	theme       Theme

	Message      string
	showDropdown bool
	width        int
	height       int
}

var errNoCountdown = errors.New("tui: countdown controller is required")

func NewMainModel(deps Deps) (MainModel, error) {
	if deps.Countdown == nil {
		return MainModel{}, errNoCountdown
	}
	parent := deps.Ctx
	if parent == nil {
		parent = context.Background()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	player := deps.Audio
	if player == nil {
		player = audio.NewPlayer("", audio.Speaker, 0, logger)
	}
	submitter := deps.Submitter
	if submitter == nil {
		submitter = subscribe.NewStub(deps.Config.Subscribe.Latency, logger)
	}
	ctx, cancel := context.WithCancel(parent)

	m := MainModel{
		ctx:         ctx,
		cancel:      cancel,
		closeOnce:   &sync.Once{},
		cfg:         deps.Config,
		logger:      logger,
		audio:       player,
		submitter:   submitter,
		reportsDir:  deps.ReportsDir,
		timer:       NewTimerManager(deps.Countdown),
		form:        NewFormModel(),
		celebration: &Celebration{},
		page:        NewPageModel(deps.RoadmapStyle),
		keys:        newKeyRegistry(),
		focus:       FocusPage,
		theme:       ThemeByName(deps.Config.UI.Theme),
	}
	m.refreshPage()
	return m, nil
}

func (m MainModel) Init() tea.Cmd {
	m.timer.Ctrl.Start(m.ctx)
	return tea.Batch(
		waitForCountdown(m.ctx, m.timer.Ctrl.Events()),
		autoplayCmd(m.audio, m.cfg.Audio.Autoplay),
		textinput.Blink,
	)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.refreshPage()
	return next, cmd
}

// Close ends the session: the countdown stops and audio is released. It is
// safe to call more than once.
func (m MainModel) Close() {
	m.closeOnce.Do(func() {
		m.cancel()
		m.timer.Ctrl.Stop()
		if err := m.audio.Close(); err != nil {
			m.logger.Warn("audio close failed", zap.Error(err))
		}
		m.logger.Debug("session closed")
	})
}

// Stage is the branch the page currently renders.
func (m MainModel) Stage() models.Stage {
	if m.timer.Revealed {
		return models.StageRevealed
	}
	return models.StageCounting
}

// Remaining is the countdown value last rendered.
func (m MainModel) Remaining() countdown.Remaining {
	return m.timer.State.Remaining
}

func (m MainModel) contentWidth() int {
	if m.width <= 0 {
		return config.ContentWidth
	}
	return util.Clamp(m.width-4, config.MinContentWidth, config.ContentWidth)
}
