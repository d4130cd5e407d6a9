package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, r Remaining, opts ...Option) *Controller {
	t.Helper()
	c, err := New(r, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Stop)
	return c
}

func TestTickReachesZeroAfterExactCount(t *testing.T) {
	cases := []Remaining{
		{Minutes: 0, Seconds: 1},
		{Minutes: 0, Seconds: 20},
		{Minutes: 1, Seconds: 0},
		{Minutes: 2, Seconds: 7},
		{Minutes: 1, Seconds: 15},
	}
	for _, initial := range cases {
		c := newController(t, initial)
		n := initial.Minutes*60 + initial.Seconds
		for i := 1; i < n; i++ {
			st, completed := c.tick()
			require.False(t, completed, "%s: completed early at tick %d", initial, i)
			require.False(t, st.Complete)
		}
		st, completed := c.tick()
		assert.True(t, completed, "%s: final tick must complete", initial)
		assert.Equal(t, State{Remaining: Remaining{}, Complete: true}, st)
	}
}

func TestTickTwentySecondScenario(t *testing.T) {
	c := newController(t, Remaining{Seconds: 20})
	for i := 0; i < 19; i++ {
		c.tick()
	}
	assert.Equal(t, State{Remaining: Remaining{Seconds: 1}}, c.State())

	c.tick()
	assert.Equal(t, State{Remaining: Remaining{}, Complete: true}, c.State())
}

func TestTickMinuteBoundary(t *testing.T) {
	c := newController(t, Remaining{Minutes: 1})
	st, _ := c.tick()
	assert.Equal(t, Remaining{Seconds: 59}, st.Remaining)
}

func TestTickZeroCompletesOnFirstTick(t *testing.T) {
	c := newController(t, Remaining{})
	assert.False(t, c.State().Complete)

	_, completed := c.tick()
	assert.True(t, completed)
	assert.True(t, c.State().Complete)
}

func TestCompletionFiresOnce(t *testing.T) {
	c := newController(t, Remaining{Seconds: 2})
	c.tick()
	_, first := c.tick()
	require.True(t, first)

	for i := 0; i < 5; i++ {
		st, again := c.tick()
		assert.False(t, again)
		assert.Equal(t, State{Remaining: Remaining{}, Complete: true}, st)
	}

	select {
	case <-c.Done():
	default:
		t.Fatal("Done should be closed after completion")
	}

	ev := <-c.Events()
	assert.True(t, ev.Completed)
	select {
	case extra := <-c.Events():
		t.Fatalf("unexpected event after completion: %+v", extra)
	default:
	}
}

func TestStartTicksFromClock(t *testing.T) {
	clock := &manualClock{}
	c := newController(t, Remaining{Seconds: 3}, WithClock(clock))
	c.Start(context.Background())
	require.True(t, c.Running())

	tk := clock.last()
	var events []Event
	for i := 0; i < 3; i++ {
		tk.ch <- time.Now()
		events = append(events, <-c.Events())
	}

	assert.Equal(t, Remaining{Seconds: 2}, events[0].State.Remaining)
	assert.False(t, events[1].Completed)
	assert.True(t, events[2].Completed)

	<-c.Done()
	c.Stop()
	assert.True(t, tk.isStopped())
	assert.False(t, c.Running())
}

func TestStartTwiceKeepsOneStream(t *testing.T) {
	clock := &manualClock{}
	c := newController(t, Remaining{Seconds: 10}, WithClock(clock))
	c.Start(context.Background())
	c.Start(context.Background())
	assert.Equal(t, 1, clock.created())

	clock.last().ch <- time.Now()
	ev := <-c.Events()
	assert.Equal(t, Remaining{Seconds: 9}, ev.State.Remaining)
}

func TestStopHaltsTicking(t *testing.T) {
	c := newController(t, Remaining{Seconds: 30}, WithPeriod(5*time.Millisecond))
	c.Start(context.Background())
	c.Stop()
	before := c.State()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, before, c.State())
	assert.False(t, c.Running())
}

func TestStopIsIdempotent(t *testing.T) {
	c := newController(t, Remaining{Seconds: 5})
	c.Stop()
	c.Start(context.Background())
	c.Stop()
	c.Stop()
	assert.False(t, c.Running())
}

func TestRestartAfterStop(t *testing.T) {
	clock := &manualClock{}
	c := newController(t, Remaining{Seconds: 5}, WithClock(clock))
	c.Start(context.Background())
	c.Stop()
	c.Start(context.Background())
	assert.Equal(t, 2, clock.created())
	assert.True(t, clock.tickers[0].isStopped())
}

func TestStartAfterCompleteIsNoop(t *testing.T) {
	clock := &manualClock{}
	c := newController(t, Remaining{}, WithClock(clock))
	c.tick()
	c.Start(context.Background())
	assert.Equal(t, 0, clock.created())
	assert.False(t, c.Running())
}

func TestContextCancelEndsStream(t *testing.T) {
	clock := &manualClock{}
	c := newController(t, Remaining{Seconds: 5}, WithClock(clock))
	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return !c.Running() }, time.Second, time.Millisecond)

	c.Start(context.Background())
	assert.Equal(t, 2, clock.created())
	assert.True(t, c.Running())
}

func TestRealClockCompletes(t *testing.T) {
	c := newController(t, Remaining{Seconds: 3}, WithPeriod(2*time.Millisecond))
	c.Start(context.Background())
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not complete")
	}
	assert.Equal(t, State{Complete: true}, c.State())
}

func TestProgress(t *testing.T) {
	c := newController(t, Remaining{Seconds: 4})
	assert.Equal(t, 0.0, c.Progress())
	c.tick()
	assert.InDelta(t, 0.25, c.Progress(), 1e-9)
	for i := 0; i < 3; i++ {
		c.tick()
	}
	assert.Equal(t, 1.0, c.Progress())
}
