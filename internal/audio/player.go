// Package audio plays the looping ambient track behind the landing page.
//
// Playback is attempted once at session start. When that fails the Player
// records that a manual start is needed instead of surfacing a hard error.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/nebula/internal/util"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"
)

var (
	// ErrAutoplayBlocked means playback could not start on its own.
	ErrAutoplayBlocked = errors.New("audio: autoplay blocked")
	// ErrUnsupportedFormat is returned for tracks other than mp3, wav and flac.
	ErrUnsupportedFormat = errors.New("audio: unsupported file type")
	// ErrNoTrack is returned when no track path is configured.
	ErrNoTrack = errors.New("audio: no track configured")
)

// Player loops one track with volume and mute control.
type Player struct {
	path   string
	out    Output
	logger *zap.Logger

	mu          sync.Mutex
	file        *os.File
	stream      beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	level       float64
	muted       bool
	playing     bool
	needsManual bool
	initDone    bool
}

// NewPlayer prepares a player for path at the given initial volume.
func NewPlayer(path string, out Output, level float64, logger *zap.Logger) *Player {
	if out == nil {
		out = Speaker
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		path:   path,
		out:    out,
		logger: logger,
		level:  util.ClampFloat(level, 0, 1),
	}
}

// Autoplay tries to start playback without user action. On failure the
// player flags NeedsManualStart and returns an error wrapping
// ErrAutoplayBlocked.
func (p *Player) Autoplay(enabled bool) error {
	if !enabled {
		p.mu.Lock()
		p.needsManual = true
		p.mu.Unlock()
		return fmt.Errorf("%w: disabled", ErrAutoplayBlocked)
	}
	if err := p.Play(); err != nil {
		p.mu.Lock()
		p.needsManual = true
		p.mu.Unlock()
		p.logger.Warn("autoplay blocked", zap.String("track", p.path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrAutoplayBlocked, err)
	}
	return nil
}

// Play starts playback. Calling it while playing does nothing.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		return nil
	}
	if p.stream == nil {
		if err := p.load(); err != nil {
			return err
		}
	}
	if !p.initDone {
		if err := p.out.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/10)); err != nil {
			return fmt.Errorf("init output: %w", err)
		}
		p.initDone = true
	}
	p.volume = &effects.Volume{
		Streamer: beep.Loop(-1, p.stream),
		Base:     2,
	}
	p.applyLevel()
	p.ctrl = &beep.Ctrl{Streamer: p.volume}
	p.out.Play(p.ctrl)
	p.playing = true
	p.needsManual = false
	p.logger.Info("audio playing", zap.String("track", p.path), zap.Float64("volume", p.level))
	return nil
}

func (p *Player) load() error {
	if strings.TrimSpace(p.path) == "" {
		return ErrNoTrack
	}
	f, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(p.path))
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode track: %w", err)
	}
	p.file, p.stream, p.format = f, stream, format
	return nil
}

// applyLevel maps the linear level onto the exponential volume effect.
// Callers hold p.mu and, while playing, the output lock.
func (p *Player) applyLevel() {
	if p.volume == nil {
		return
	}
	p.volume.Silent = p.muted || p.level <= 0
	if p.level > 0 {
		p.volume.Volume = math.Log2(p.level)
	}
}

// SetVolume clamps v to [0,1], applies it immediately and returns the value
// in effect.
func (p *Player) SetVolume(v float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = util.ClampFloat(v, 0, 1)
	p.withOutputLock(p.applyLevel)
	return p.level
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	p.withOutputLock(p.applyLevel)
	return p.muted
}

func (p *Player) withOutputLock(fn func()) {
	if !p.playing {
		fn()
		return
	}
	p.out.Lock()
	defer p.out.Unlock()
	fn()
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// NeedsManualStart reports whether autoplay failed and the user has not yet
// started playback by hand.
func (p *Player) NeedsManualStart() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.needsManual
}

// Close stops playback and releases the decoder and file.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		// Clear takes the speaker lock itself
		p.out.Clear()
		p.playing = false
	}
	var errs []error
	if p.stream != nil {
		errs = append(errs, p.stream.Close())
		p.stream = nil
	}
	if p.file != nil {
		if err := p.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
		p.file = nil
	}
	return errors.Join(errs...)
}
