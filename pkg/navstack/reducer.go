package navstack

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/google/uuid"
)

// Effect is work the reducer asks its owner to perform after a command.
type Effect interface {
	effect()
}

// ScheduleExpiry asks the owner to dismiss notification ID after the given delay.
type ScheduleExpiry struct {
	ID    uuid.UUID
	After time.Duration
}

func (ScheduleExpiry) effect() {}

// Reducer applies commands to navigation state. The zero value is ready to
// use: IDs come from uuid.New, time from time.Now, and nothing is logged.
type Reducer struct {
	// NewID generates notification IDs.
	NewID func() uuid.UUID
	// Now stamps notification creation times.
	Now func() time.Time
	// Accept, when set, restricts which routes may enter the stack.
	// Commands carrying a rejected route do nothing.
	Accept route.Predicate
	// Logger receives a debug line per command and a warning whenever a
	// pending callback or modal descriptor is overwritten.
	Logger *slog.Logger
}

// Apply returns the state that results from running cmd against s, plus any
// effects for the owner to carry out. s is left untouched.
//
// Apply never fails. Commands whose preconditions do not hold (popping an
// empty stack, dismissing an unknown notification, a missing predicate) leave
// the state as it was. The only side effect is calling a consumed result
// callback, which happens synchronously before Apply returns.
func (r Reducer) Apply(cmd Command, s State) (State, []Effect) {
	next := s.clone()
	var effects []Effect

	switch c := cmd.(type) {
	case Push:
		if r.admit(c.Kind(), c.Route) {
			next.Routes = append(next.Routes, c.Route)
		}

	case Pop:
		stack := router.NewStack(next.Routes...)
		if _, ok := stack.Pop(); ok {
			next.Routes = stack.Entries()
			if cb := next.PendingResult; cb != nil {
				next.PendingResult = nil
				cb(c.Result)
			}
		}

	case ReplaceTop:
		if r.admit(c.Kind(), c.Route) {
			stack := router.NewStack(next.Routes...)
			stack.Pop()
			stack.Push(c.Route)
			next.Routes = stack.Entries()
		}

	case ReplaceAll:
		if r.admit(c.Kind(), c.Route) {
			next.Routes = []route.Identity{c.Route}
		}

	case ClearToRoot:
		next.Routes = nil

	case PopUntil:
		if c.Until != nil && r.admit(c.Kind(), c.Route) {
			stack := router.NewStack(next.Routes...)
			stack.PopWhile(c.Until)
			stack.Push(c.Route)
			next.Routes = stack.Entries()
		}

	case PopWhile:
		if c.Until != nil {
			stack := router.NewStack(next.Routes...)
			stack.PopWhile(c.Until)
			next.Routes = stack.Entries()
		}

	case PushWithCallback:
		if r.admit(c.Kind(), c.Route) {
			if next.PendingResult != nil {
				r.logger().Warn("pending result callback replaced without being invoked", "route", c.Route.String())
			}
			next.PendingResult = c.Completion
			next.Routes = append(next.Routes, c.Route)
		}

	case Notify:
		if c.Duration <= 0 {
			r.logger().Debug("notification ignored: non-positive duration", "duration", c.Duration)
			break
		}
		n := Notification{
			ID:              r.newID(),
			Message:         c.Message,
			ExpandedMessage: c.ExpandedMessage,
			Duration:        c.Duration,
			CreatedAt:       r.now(),
		}
		next.Notifications = append(next.Notifications, n)
		effects = append(effects, ScheduleExpiry{ID: n.ID, After: n.Duration})

	case DismissNotification:
		next.Notifications, _ = next.Notifications.Without(c.ID)

	case ShowAlert:
		if next.Modal.Alert != nil {
			r.logger().Warn("active alert replaced", "title", next.Modal.Alert.Title)
		}
		next.Modal.Alert = c.Alert

	case DismissAlert:
		next.Modal.Alert = nil

	case ShowSheet:
		if next.Modal.Sheet != nil {
			r.logger().Warn("active sheet replaced", "sheet", next.Modal.Sheet.ID)
		}
		next.Modal.Sheet = c.Sheet

	case DismissSheet:
		next.Modal.Sheet = nil

	default:
		return s, nil
	}

	r.logger().Debug("command applied",
		"command", cmd.Kind(),
		"depth", len(next.Routes),
		"notifications", len(next.Notifications))

	return next, effects
}

func (r Reducer) admit(kind string, id route.Identity) bool {
	if id.IsZero() {
		r.logger().Debug("command ignored: empty route", "command", kind)
		return false
	}
	if r.Accept != nil && !r.Accept(id) {
		r.logger().Debug("command ignored: route not accepted", "command", kind, "route_type", id.Name())
		return false
	}
	return true
}

func (r Reducer) newID() uuid.UUID {
	if r.NewID != nil {
		return r.NewID()
	}
	return uuid.New()
}

func (r Reducer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r Reducer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return internal.NopLogger()
}
