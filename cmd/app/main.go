package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akyairhashvil/nebula/internal/audio"
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/akyairhashvil/nebula/internal/roadmap"
	"github.com/akyairhashvil/nebula/internal/subscribe"
	"github.com/akyairhashvil/nebula/internal/tui"
	"github.com/akyairhashvil/nebula/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	configPath string
	duration   string
	minutes    int
	seconds    int
	trackPath  string
	volume     float64
	noAutoplay bool
	themeName  string
	verbose    bool

	logger = zap.NewNop()
)

// rootCmd runs the full-screen landing page.
var rootCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Nebula AI launch countdown",
	Long: `Nebula shows the Nebula AI "coming soon" page in the terminal: a countdown
to the reveal, ambient audio, an email sign-up and the product roadmap.

When stdout is not a terminal the countdown runs headless instead.`,
	Version:       tui.VersionLabel(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := util.NewLogger(filepath.Join(util.DataDir(config.AppName), util.LogFileName), verbose)
		if err != nil {
			// logging is best effort; the UI still runs
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			return nil
		}
		logger = l
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runLanding,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Config file (default: "+config.DefaultPath()+")")
	pf.StringVarP(&duration, "duration", "d", "", "Countdown as MM:SS")
	pf.IntVar(&minutes, "minutes", 0, "Countdown minutes")
	pf.IntVar(&seconds, "seconds", 0, "Countdown seconds")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&trackPath, "audio", "", "Background track (mp3, wav or flac)")
	rootCmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "Initial volume between 0 and 1")
	rootCmd.Flags().BoolVar(&noAutoplay, "no-autoplay", false, "Wait for p before playing audio")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme (nebula, dracula)")

	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadConfig layers flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return config.Config{}, err
	}
	return applyFlags(cmd, cfg)
}

// applyFlags layers explicitly set flags over a file+env config. Live
// reloads go through it too so a flag keeps winning over later file edits.
func applyFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("duration") {
		cfg.Countdown.Duration = duration
	}
	if flags.Changed("minutes") || flags.Changed("seconds") {
		if minutes < 0 || seconds < 0 {
			return config.Config{}, fmt.Errorf("%w: --minutes %d --seconds %d", countdown.ErrNegativeDuration, minutes, seconds)
		}
		total := minutes*60 + seconds
		cfg.Countdown.Duration = countdown.Remaining{Minutes: total / 60, Seconds: total % 60}.String()
	}
	if flags.Changed("audio") {
		cfg.Audio.Track = trackPath
	}
	if flags.Changed("volume") {
		cfg.Audio.Volume = volume
	}
	if noAutoplay {
		cfg.Audio.Autoplay = false
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = themeName
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func reloadedMsg(cmd *cobra.Command, cfg config.Config, err error) tui.ConfigReloadedMsg {
	if err == nil {
		cfg, err = applyFlags(cmd, cfg)
	}
	return tui.ConfigReloadedMsg{Config: cfg, Err: err}
}

func newController(cfg config.Config) (*countdown.Controller, error) {
	r, err := cfg.Remaining()
	if err != nil {
		return nil, err
	}
	return countdown.New(r,
		countdown.WithPeriod(cfg.Countdown.Tick),
		countdown.WithLogger(logger.Named("countdown")),
	)
}

func runLanding(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Info("stdout is not a terminal, running headless")
		return runHeadless(cmd.Context(), cmd.OutOrStdout(), cfg)
	}

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	player := audio.NewPlayer(cfg.Audio.Track, audio.Speaker, cfg.Audio.Volume, logger.Named("audio"))
	model, err := tui.NewMainModel(tui.Deps{
		Ctx:          cmd.Context(),
		Countdown:    ctrl,
		Audio:        player,
		Submitter:    subscribe.NewStub(cfg.Subscribe.Latency, logger.Named("subscribe")),
		Config:       cfg,
		Logger:       logger.Named("tui"),
		RoadmapStyle: roadmap.StyleDark,
		ReportsDir:   util.ReportsDir(config.AppName),
	})
	if err != nil {
		return err
	}
	defer model.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	watchDone, err := config.Watch(ctx, resolveConfigPath(), logger.Named("config"), func(c config.Config, err error) {
		p.Send(reloadedMsg(cmd, c, err))
	})
	if err != nil {
		logger.Info("config live reload disabled", zap.Error(err))
	}

	logger.Info("session started",
		zap.String("countdown", cfg.Countdown.Duration),
		zap.String("track", cfg.Audio.Track),
		zap.String("theme", cfg.UI.Theme))
	_, err = p.Run()
	cancel()
	if watchDone != nil {
		<-watchDone
	}
	if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
		return nil
	}
	return err
}
