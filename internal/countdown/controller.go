package countdown

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultPeriod is the tick period used unless WithPeriod overrides it.
const DefaultPeriod = time.Second

// State is the countdown state read by renderers after every tick.
type State struct {
	Remaining Remaining
	Complete  bool
}

// Event is published once per tick. Completed is set on exactly one event,
// the tick at which the countdown reached zero.
type Event struct {
	State     State
	Completed bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithPeriod sets the tick period. Non-positive values are ignored.
func WithPeriod(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.period = d
		}
	}
}

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller owns a countdown State and at most one tick stream advancing it.
type Controller struct {
	period time.Duration
	clock  Clock
	logger *zap.Logger

	mu      sync.Mutex
	initial Remaining
	state   State
	cancel  context.CancelFunc
	exited  chan struct{}
	done    chan struct{}
	events  chan Event
}

// New returns a stopped controller holding initial.
func New(initial Remaining, opts ...Option) (*Controller, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		period:  DefaultPeriod,
		clock:   SystemClock,
		logger:  zap.NewNop(),
		initial: initial,
		state:   State{Remaining: initial},
		done:    make(chan struct{}),
		events:  make(chan Event, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start begins ticking. It is a no-op while a stream is already active or once
// the countdown is complete. Cancelling ctx ends the stream like Stop.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Complete {
		return
	}
	if c.exited != nil {
		select {
		case <-c.exited:
			// previous stream ended with its context; replace it
			c.cancel()
		default:
			return
		}
	}
	runCtx, cancel := context.WithCancel(ctx)
	ticker := c.clock.NewTicker(c.period)
	exited := make(chan struct{})
	c.cancel, c.exited = cancel, exited
	c.logger.Debug("countdown started",
		zap.Stringer("remaining", c.state.Remaining),
		zap.Duration("period", c.period))
	go c.run(runCtx, ticker, exited)
}

func (c *Controller) run(ctx context.Context, ticker Ticker, exited chan struct{}) {
	defer close(exited)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if _, completed := c.tick(); completed {
				return
			}
		}
	}
}

// tick applies exactly one decrement and completes the countdown when it
// reaches zero. Ticks after completion change nothing.
func (c *Controller) tick() (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Complete {
		return c.state, false
	}
	c.state.Remaining = c.state.Remaining.step()
	completed := c.state.Remaining.IsZero()
	if completed {
		c.state.Complete = true
		close(c.done)
		if c.cancel != nil {
			c.cancel()
		}
		c.logger.Info("countdown complete", zap.Stringer("initial", c.initial))
	}
	c.publish(Event{State: c.state, Completed: completed})
	return c.state, completed
}

// publish keeps only the newest event in the buffer. Completion is always the
// last event, so it is never overwritten.
func (c *Controller) publish(ev Event) {
	for {
		select {
		case c.events <- ev:
			return
		default:
		}
		select {
		case <-c.events:
		default:
		}
	}
}

// Stop cancels the tick stream and waits for it to exit. It is idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel, exited := c.cancel, c.exited
	c.cancel, c.exited = nil, nil
	c.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-exited
	c.logger.Debug("countdown stopped")
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether a tick stream is active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited == nil || c.state.Complete {
		return false
	}
	select {
	case <-c.exited:
		return false
	default:
		return true
	}
}

// Initial returns the duration the countdown started from.
func (c *Controller) Initial() Remaining { return c.initial }

// Done is closed once, when the countdown completes.
func (c *Controller) Done() <-chan struct{} { return c.done }

// Events delivers tick events to a single consumer. Slow consumers see the
// newest event; the completion event is always delivered.
func (c *Controller) Events() <-chan Event { return c.events }

// Progress returns the elapsed fraction in [0,1].
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.initial.Total()
	if total <= 0 || c.state.Complete {
		return 1
	}
	return 1 - float64(c.state.Remaining.Total())/float64(total)
}
