package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutput struct {
	mu      sync.Mutex
	initErr error
	inits   int
	played  []beep.Streamer
	cleared int
	locked  bool
}

func (f *fakeOutput) Init(beep.SampleRate, int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	return f.initErr
}

func (f *fakeOutput) Play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, s)
}

func (f *fakeOutput) Lock()   { f.locked = true }
func (f *fakeOutput) Unlock() { f.locked = false }
func (f *fakeOutput) Clear()  { f.cleared++ }

func writeTrack(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ambient.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(4410), format))
	require.NoError(t, f.Close())
	return path
}

func TestAutoplayBlockedFallsBackToManual(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	p := NewPlayer(writeTrack(t), out, 0.2, nil)
	t.Cleanup(func() { _ = p.Close() })

	err := p.Autoplay(true)
	require.ErrorIs(t, err, ErrAutoplayBlocked)
	assert.True(t, p.NeedsManualStart())
	assert.False(t, p.Playing())

	out.initErr = nil
	require.NoError(t, p.Play())
	assert.False(t, p.NeedsManualStart())
	assert.True(t, p.Playing())
	assert.Len(t, out.played, 1)
}

func TestAutoplayDisabled(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(writeTrack(t), out, 0.2, nil)
	err := p.Autoplay(false)
	assert.ErrorIs(t, err, ErrAutoplayBlocked)
	assert.True(t, p.NeedsManualStart())
	assert.Zero(t, out.inits)
}

func TestAutoplayMissingTrack(t *testing.T) {
	p := NewPlayer(filepath.Join(t.TempDir(), "missing.mp3"), &fakeOutput{}, 0.2, nil)
	assert.ErrorIs(t, p.Autoplay(true), ErrAutoplayBlocked)
	assert.True(t, p.NeedsManualStart())

	p = NewPlayer("", &fakeOutput{}, 0.2, nil)
	assert.ErrorIs(t, p.Play(), ErrNoTrack)
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	p := NewPlayer(path, &fakeOutput{}, 0.5, nil)
	assert.ErrorIs(t, p.Play(), ErrUnsupportedFormat)
}

func TestPlayIsIdempotent(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(writeTrack(t), out, 0.2, nil)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.Autoplay(true))
	require.NoError(t, p.Play())
	assert.Len(t, out.played, 1)
	assert.Equal(t, 1, out.inits)
}

func TestSetVolumeClampsAndApplies(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(writeTrack(t), out, 0.2, nil)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.Play())

	assert.Equal(t, 1.0, p.SetVolume(1.7))
	assert.Equal(t, 0.0, p.volume.Volume)
	assert.False(t, p.volume.Silent)

	assert.Equal(t, 0.5, p.SetVolume(0.5))
	assert.InDelta(t, -1.0, p.volume.Volume, 1e-9)

	assert.Equal(t, 0.0, p.SetVolume(-3))
	assert.True(t, p.volume.Silent)
	assert.False(t, out.locked)
}

func TestToggleMute(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(writeTrack(t), out, 0.4, nil)
	t.Cleanup(func() { _ = p.Close() })
	require.NoError(t, p.Play())

	assert.True(t, p.ToggleMute())
	assert.True(t, p.volume.Silent)
	assert.False(t, p.ToggleMute())
	assert.False(t, p.volume.Silent)
}

func TestVolumeBeforePlayIsKept(t *testing.T) {
	p := NewPlayer(writeTrack(t), &fakeOutput{}, 0.2, nil)
	t.Cleanup(func() { _ = p.Close() })
	p.SetVolume(0.25)
	require.NoError(t, p.Play())
	assert.Equal(t, 0.25, p.Volume())
	assert.InDelta(t, -2.0, p.volume.Volume, 1e-9)
}

func TestCloseClearsOutput(t *testing.T) {
	out := &fakeOutput{}
	p := NewPlayer(writeTrack(t), out, 0.2, nil)
	require.NoError(t, p.Play())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, out.cleared)
	assert.False(t, p.Playing())
	assert.NoError(t, p.Close())
}
