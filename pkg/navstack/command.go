package navstack

import (
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/google/uuid"
)

// ResultFunc receives the value passed to a Pop that consumes it.
type ResultFunc func(result any)

// Command is one navigation instruction. The set is closed: only the types
// in this file implement it.
type Command interface {
	// Kind names the command for logs and traces.
	Kind() string
	command()
}

// Push appends Route to the stack.
type Push struct {
	Route route.Identity
}

// Pop removes the top route. If a result callback is pending it receives
// Result and is cleared. Popping an empty stack does nothing.
type Pop struct {
	Result any
}

// ReplaceTop swaps the top route for Route, or pushes it onto an empty stack.
type ReplaceTop struct {
	Route route.Identity
}

// ReplaceAll makes Route the only entry on the stack.
type ReplaceAll struct {
	Route route.Identity
}

// ClearToRoot empties the stack, returning to the root screen.
type ClearToRoot struct{}

// PopUntil pops routes until Until holds for the top route or the stack is
// empty, then pushes Route.
type PopUntil struct {
	Route route.Identity
	Until route.Predicate
}

// PopWhile pops routes until Until holds for the top route or the stack is
// empty. Nothing is pushed.
type PopWhile struct {
	Until route.Predicate
}

// PushWithCallback pushes Route and registers Completion to receive the
// result of the next Pop. Any unconsumed callback is replaced without
// being invoked.
type PushWithCallback struct {
	Route      route.Identity
	Completion ResultFunc
}

// Notify appends a snackbar to the notification queue. It expires after
// Duration; a non-positive Duration makes the command a no-op.
type Notify struct {
	Message         string
	ExpandedMessage string
	Duration        time.Duration
}

// DismissNotification removes a notification. Unknown IDs are ignored, so
// a manual dismissal racing its expiry timer is harmless.
type DismissNotification struct {
	ID uuid.UUID
}

// ShowAlert replaces the active alert.
type ShowAlert struct {
	Alert *Alert
}

// DismissAlert clears the active alert. Presentation layers send it when
// the user closes the alert.
type DismissAlert struct{}

// ShowSheet replaces the active sheet.
type ShowSheet struct {
	Sheet *Sheet
}

// DismissSheet clears the active sheet.
type DismissSheet struct{}

func (Push) Kind() string                { return "push" }
func (Pop) Kind() string                 { return "pop" }
func (ReplaceTop) Kind() string          { return "replace_top" }
func (ReplaceAll) Kind() string          { return "replace_all" }
func (ClearToRoot) Kind() string         { return "clear_to_root" }
func (PopUntil) Kind() string            { return "pop_until" }
func (PopWhile) Kind() string            { return "pop_while" }
func (PushWithCallback) Kind() string    { return "push_with_callback" }
func (Notify) Kind() string              { return "notify" }
func (DismissNotification) Kind() string { return "dismiss_notification" }
func (ShowAlert) Kind() string           { return "show_alert" }
func (DismissAlert) Kind() string        { return "dismiss_alert" }
func (ShowSheet) Kind() string           { return "show_sheet" }
func (DismissSheet) Kind() string        { return "dismiss_sheet" }

func (Push) command()                {}
func (Pop) command()                 {}
func (ReplaceTop) command()          {}
func (ReplaceAll) command()          {}
func (ClearToRoot) command()         {}
func (PopUntil) command()            {}
func (PopWhile) command()            {}
func (PushWithCallback) command()    {}
func (Notify) command()              {}
func (DismissNotification) command() {}
func (ShowAlert) command()           {}
func (DismissAlert) command()        {}
func (ShowSheet) command()           {}
func (DismissSheet) command()        {}
