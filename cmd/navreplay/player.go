package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/clock"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

var replayEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type player struct {
	out             io.Writer
	clock           *clock.FakeClock
	ctrl            *navstack.Controller
	views           *router.Destinations
	defaultDuration time.Duration
}

// Play runs script against a fresh controller on a simulated clock, writing
// one line per step to out. opts.Clock is replaced.
func Play(ctx context.Context, out io.Writer, script Script, opts navstack.Options) error {
	actions, err := compile(script)
	if err != nil {
		return err
	}

	fc := clock.NewFakeClock(replayEpoch)
	opts.Clock = fc
	c, err := navstack.New(opts)
	if err != nil {
		return err
	}

	p := &player{
		out:             out,
		clock:           fc,
		ctrl:            c,
		views:           demoViews(),
		defaultDuration: opts.NotificationDuration,
	}
	if p.defaultDuration <= 0 {
		p.defaultDuration = constants.DefaultNotificationDuration
	}

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(runCtx) }()
	defer func() {
		cancel()
		<-errCh
	}()

	for _, a := range actions {
		if err := p.apply(ctx, a); err != nil {
			return &StepError{Step: a.step, Op: a.op, Err: err}
		}
		p.print(a)
	}
	return nil
}

func (p *player) apply(ctx context.Context, a action) error {
	if a.build == nil {
		p.clock.Advance(a.advance)
		// Expiries fired by Advance are already queued; this waits them out.
		return p.ctrl.Do(ctx, navstack.DismissNotification{})
	}
	return p.ctrl.Do(ctx, a.build(p))
}

// printResult runs on the controller loop while the step that popped is
// still waiting in Do.
func (p *player) printResult(result any) {
	fmt.Fprintf(p.out, "    result: %v\n", result)
}

func (p *player) print(a action) {
	snap := p.ctrl.Snapshot()

	view, err := p.views.Visible(snap.Routes)
	if err != nil {
		view = "?"
	}

	messages := make([]string, len(snap.Notifications))
	for i, n := range snap.Notifications {
		messages[i] = n.Message
	}

	fmt.Fprintf(p.out, "%d %s +%s view=%q stack=%v queue=%q modal=%s\n",
		a.step, a.op, p.clock.Now().Sub(replayEpoch), view, snap.Routes, messages, describeModal(snap.Modal))
}

func describeModal(m navstack.Modal) string {
	var parts []string
	if m.Alert != nil {
		parts = append(parts, fmt.Sprintf("alert(%q)", m.Alert.Title))
	}
	if m.Sheet != nil {
		if m.Sheet.FullScreen {
			parts = append(parts, "sheet(full)")
		} else {
			parts = append(parts, "sheet")
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// demoViews titles each demo screen the way the example app does.
func demoViews() *router.Destinations {
	d := router.NewDestinations().WithCache(router.NewContentCache())
	router.Register(d, func(s Screen) any {
		switch s.Name {
		case "home":
			return "Home"
		case "settings":
			return "Settings"
		default:
			return "Detail " + s.ID
		}
	})
	d.Root(func() any { return "Root" })
	return d
}
