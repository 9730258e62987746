package navstack

import (
	"context"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/i18n"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
	"github.com/google/uuid"
)

// Navigator is the handle screens use to navigate. It is bound to one
// controller and passed down explicitly or through a context.Context with
// WithNavigator.
//
// Every method queues a command and returns; the change is applied on the
// controller's owner loop. The zero Navigator discards everything, which
// makes it safe to use in screens rendered outside a navigation context.
type Navigator struct {
	dispatch        func(Command) error
	defaultDuration time.Duration
	localizer       *i18n.Localizer
}

func (n Navigator) send(cmd Command) error {
	if n.dispatch == nil {
		return nil
	}
	return n.dispatch(cmd)
}

// Bound reports whether the navigator is attached to a controller.
func (n Navigator) Bound() bool {
	return n.dispatch != nil
}

// To pushes a route.
func (n Navigator) To(r route.Identity) error {
	return n.send(Push{Route: r})
}

// Back pops the top route, handing result to a pending ToWithResult callback.
func (n Navigator) Back(result any) error {
	return n.send(Pop{Result: result})
}

// Off replaces the top route.
func (n Navigator) Off(r route.Identity) error {
	return n.send(ReplaceTop{Route: r})
}

// OffAll replaces the whole stack with r.
func (n Navigator) OffAll(r route.Identity) error {
	return n.send(ReplaceAll{Route: r})
}

// OffAllToRoot empties the stack.
func (n Navigator) OffAllToRoot() error {
	return n.send(ClearToRoot{})
}

// OffUntil pops until until holds for the top route, then pushes r.
func (n Navigator) OffUntil(r route.Identity, until route.Predicate) error {
	return n.send(PopUntil{Route: r, Until: until})
}

// Until pops until until holds for the top route.
func (n Navigator) Until(until route.Predicate) error {
	return n.send(PopWhile{Until: until})
}

// ToWithResult pushes r and arranges for completion to receive the result
// of the next Back.
func (n Navigator) ToWithResult(r route.Identity, completion ResultFunc) error {
	return n.send(PushWithCallback{Route: r, Completion: completion})
}

// Snackbar shows a transient notification. A zero duration uses the
// controller's default.
func (n Navigator) Snackbar(message, expandedMessage string, duration time.Duration) error {
	if duration == 0 {
		duration = n.defaultDuration
		if duration == 0 {
			duration = constants.DefaultNotificationDuration
		}
	}
	return n.send(Notify{Message: message, ExpandedMessage: expandedMessage, Duration: duration})
}

// SnackbarLocalized shows a notification whose text is the localized
// message messageID. Without a localizer the ID itself is shown.
func (n Navigator) SnackbarLocalized(messageID string, data map[string]any, duration time.Duration) error {
	message := messageID
	if n.localizer != nil {
		message = n.localizer.Message(messageID, data)
	}
	return n.Snackbar(message, "", duration)
}

// Alert shows a modal alert, replacing any alert already on screen.
// With no secondary button, the presentation layer draws a cancel button.
func (n Navigator) Alert(title, message string, primary Button, secondary *Button) error {
	return n.send(ShowAlert{Alert: NewAlert(title, message, primary, secondary)})
}

// AlertDismiss clears the active alert.
func (n Navigator) AlertDismiss() error {
	return n.send(DismissAlert{})
}

// Sheet presents content in a modal sheet, replacing any sheet already shown.
func (n Navigator) Sheet(content any, opts ...SheetOption) error {
	return n.send(ShowSheet{Sheet: NewSheet(content, opts...)})
}

// SheetDismiss clears the active sheet.
func (n Navigator) SheetDismiss() error {
	return n.send(DismissSheet{})
}

// NotificationDismiss removes a notification before it expires.
func (n Navigator) NotificationDismiss(id uuid.UUID) error {
	return n.send(DismissNotification{ID: id})
}

// CancelLabel returns the localized label for an alert's fallback cancel button.
func (n Navigator) CancelLabel() string {
	if n.localizer == nil {
		return "Cancel"
	}
	return n.localizer.CancelLabel()
}

type navigatorKey struct{}

// WithNavigator returns a context carrying nav.
func WithNavigator(ctx context.Context, nav Navigator) context.Context {
	return context.WithValue(ctx, navigatorKey{}, nav)
}

// FromContext returns the navigator stored in ctx, or the zero Navigator,
// which ignores every command, if there is none.
func FromContext(ctx context.Context) Navigator {
	nav, _ := ctx.Value(navigatorKey{}).(Navigator)
	return nav
}
