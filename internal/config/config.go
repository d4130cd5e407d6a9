// Package config holds the application constants and the runtime
// configuration loaded from the config file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/akyairhashvil/nebula/internal/util"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of one session.
type Config struct {
	Countdown CountdownConfig `yaml:"countdown"`
	Audio     AudioConfig     `yaml:"audio"`
	Subscribe SubscribeConfig `yaml:"subscribe"`
	UI        UIConfig        `yaml:"ui"`
}

type CountdownConfig struct {
	Duration string        `yaml:"duration" env:"NEBULA_COUNTDOWN"`
	Tick     time.Duration `yaml:"tick" env:"NEBULA_TICK"`
}

type AudioConfig struct {
	Track    string  `yaml:"track" env:"NEBULA_AUDIO_TRACK"`
	Volume   float64 `yaml:"volume" env:"NEBULA_AUDIO_VOLUME"`
	Autoplay bool    `yaml:"autoplay" env:"NEBULA_AUDIO_AUTOPLAY"`
}

type SubscribeConfig struct {
	Latency            time.Duration `yaml:"latency" env:"NEBULA_SUBMIT_LATENCY"`
	ConfirmationWindow time.Duration `yaml:"confirmation_window" env:"NEBULA_CONFIRMATION_WINDOW"`
}

type UIConfig struct {
	Theme string `yaml:"theme" env:"NEBULA_THEME"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Countdown: CountdownConfig{Duration: DefaultCountdown, Tick: TickPeriod},
		Audio:     AudioConfig{Track: DefaultTrack, Volume: DefaultVolume, Autoplay: true},
		Subscribe: SubscribeConfig{Latency: SubmitLatency, ConfirmationWindow: ConfirmationWindow},
		UI:        UIConfig{Theme: "nebula"},
	}
}

// DefaultPath is the config file location under the XDG config dir.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Load reads path over the defaults, applies NEBULA_* environment overrides
// and validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads overrides from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks value ranges and clamps the volume.
func (c *Config) Validate() error {
	if _, err := c.Remaining(); err != nil {
		return err
	}
	if c.Countdown.Tick <= 0 {
		return fmt.Errorf("countdown tick must be positive, got %s", c.Countdown.Tick)
	}
	if c.Subscribe.Latency < 0 || c.Subscribe.ConfirmationWindow < 0 {
		return errors.New("subscribe durations must not be negative")
	}
	c.Audio.Volume = util.ClampFloat(c.Audio.Volume, 0, 1)
	return nil
}

// Remaining parses the configured countdown duration.
func (c Config) Remaining() (countdown.Remaining, error) {
	r, err := countdown.ParseRemaining(c.Countdown.Duration)
	if err != nil {
		return countdown.Remaining{}, fmt.Errorf("countdown duration: %w", err)
	}
	return r, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
