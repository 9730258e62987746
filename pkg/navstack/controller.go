package navstack

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/BrandonKowalski/navstack/pkg/navstack/clock"
	"github.com/BrandonKowalski/navstack/pkg/navstack/i18n"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Controller owns the navigation state for one navigation context.
//
// All state changes happen on the goroutine running Run. Commands sent from
// anywhere else are queued in an inbox and applied there one at a time, so
// no two commands ever interleave.
type Controller struct {
	reducer   Reducer
	clock     clock.Clock
	logger    *slog.Logger
	localizer *i18n.Localizer
	opts      Options

	inbox     chan envelope
	done      chan struct{}
	closeOnce sync.Once

	started  *atomic.Bool
	snapshot *atomic.Pointer[Snapshot]

	mu        sync.Mutex
	observers map[uint64]func(Snapshot)
	nextObs   uint64

	// Owned by the Run goroutine.
	state   State
	version uint64
	timers  map[uuid.UUID]clock.Timer
}

type envelope struct {
	cmd     Command
	applied chan struct{} // closed once cmd has been applied; nil for fire-and-forget
}

// New creates a controller. Call Run to start applying commands.
func New(opts Options) (*Controller, error) {
	opts = opts.withDefaults()

	localizer, err := i18n.New(opts.Locale, opts.MessageFiles...)
	if err != nil {
		return nil, NewControllerError("new", err)
	}

	logger := opts.logger()

	c := &Controller{
		reducer: Reducer{
			NewID:  opts.NewID,
			Now:    opts.Clock.Now,
			Accept: opts.AcceptRoute,
			Logger: logger,
		},
		clock:     opts.Clock,
		logger:    logger,
		localizer: localizer,
		opts:      opts,
		inbox:     make(chan envelope, opts.InboxSize),
		done:      make(chan struct{}),
		started:   atomic.NewBool(false),
		snapshot:  atomic.NewPointer(&Snapshot{}),
		observers: make(map[uint64]func(Snapshot)),
		timers:    make(map[uuid.UUID]clock.Timer),
	}
	return c, nil
}

// Run applies queued commands until ctx is cancelled or Close is called.
// It must be called exactly once; it returns ctx.Err() on cancellation and
// nil after Close.
func (c *Controller) Run(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer c.shutdown()

	c.logger.Debug("controller started", "inbox", cap(c.inbox))

	for {
		select {
		case <-c.done:
			return nil
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case env := <-c.inbox:
			c.apply(env.cmd)
			if env.applied != nil {
				close(env.applied)
			}
		}
	}
}

// Close stops the controller. Pending expiry timers are cancelled and
// commands still in the inbox are dropped.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Done is closed when the controller stops.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Dispatch queues cmd for the owner loop and returns without waiting for it
// to be applied. It blocks only while the inbox is full.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	return c.enqueue(ctx, envelope{cmd: cmd}, "dispatch")
}

// Do queues cmd and waits until the owner loop has applied it.
// Do must not be called from the loop itself, i.e. from an observer or a
// result callback; use Dispatch there.
func (c *Controller) Do(ctx context.Context, cmd Command) error {
	env := envelope{cmd: cmd, applied: make(chan struct{})}
	if err := c.enqueue(ctx, env, "do"); err != nil {
		return err
	}
	select {
	case <-env.applied:
		return nil
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return NewControllerError("do", ctx.Err())
	}
}

func (c *Controller) enqueue(ctx context.Context, env envelope, op string) error {
	if env.cmd == nil {
		if env.applied != nil {
			close(env.applied)
		}
		return nil
	}

	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	select {
	case c.inbox <- env:
		return nil
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return NewControllerError(op, ctx.Err())
	}
}

// apply runs on the owner loop only.
func (c *Controller) apply(cmd Command) {
	next, effects := c.reducer.Apply(cmd, c.state)
	c.state = next

	if d, ok := cmd.(DismissNotification); ok {
		if t, ok := c.timers[d.ID]; ok {
			t.Stop()
			delete(c.timers, d.ID)
		}
	}

	for _, eff := range effects {
		switch e := eff.(type) {
		case ScheduleExpiry:
			c.scheduleExpiry(e)
		}
	}

	c.version++
	snap := newSnapshot(c.version, c.state)
	c.snapshot.Store(&snap)

	for _, fn := range c.currentObservers() {
		fn(snap)
	}
}

func (c *Controller) scheduleExpiry(e ScheduleExpiry) {
	id := e.ID
	c.timers[id] = c.clock.AfterFunc(e.After, func() {
		// Runs off the loop; the dismissal is marshalled back like any other command.
		if err := c.enqueue(context.Background(), envelope{cmd: DismissNotification{ID: id}}, "expire"); err != nil {
			c.logger.Debug("notification expiry dropped", "id", id, "error", err)
		}
	})
}

func (c *Controller) shutdown() {
	c.Close()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.logger.Debug("controller stopped", "version", c.version)
}

// OnChange registers fn to receive every new snapshot. fn runs on the owner
// loop right after each command is applied, so it must not block or call Do.
// The returned function unregisters it.
func (c *Controller) OnChange(fn func(Snapshot)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

func (c *Controller) currentObservers() []func(Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.observers) == 0 {
		return nil
	}
	ids := slices.Sorted(maps.Keys(c.observers)) // registration order
	fns := make([]func(Snapshot), len(ids))
	for i, id := range ids {
		fns[i] = c.observers[id]
	}
	return fns
}

// Snapshot returns the latest published state. Safe from any goroutine.
func (c *Controller) Snapshot() Snapshot {
	return *c.snapshot.Load()
}

// Routes returns the current route stack, bottom first.
func (c *Controller) Routes() []route.Identity {
	return c.Snapshot().Routes
}

// Notifications returns the live snackbar queue, oldest first.
func (c *Controller) Notifications() NotificationQueue {
	return c.Snapshot().Notifications
}

// Modal returns the active alert and sheet.
func (c *Controller) Modal() Modal {
	return c.Snapshot().Modal
}

// Localizer returns the localizer built from Options.Locale and MessageFiles.
func (c *Controller) Localizer() *i18n.Localizer {
	return c.localizer
}

// Navigator returns a handle that issues commands to this controller.
func (c *Controller) Navigator() Navigator {
	return Navigator{
		dispatch: func(cmd Command) error {
			return c.Dispatch(context.Background(), cmd)
		},
		defaultDuration: c.opts.NotificationDuration,
		localizer:       c.localizer,
	}
}
