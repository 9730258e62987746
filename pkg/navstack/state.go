package navstack

import (
	"slices"

	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
)

// State is everything one navigation context owns. The reducer never
// mutates a State in place; it returns a new one.
type State struct {
	// Routes is the navigation stack, bottom first. Empty means the root screen.
	Routes []route.Identity

	// PendingResult receives the result of the next successful Pop. At most
	// one callback is pending; it is cleared when consumed.
	PendingResult ResultFunc

	// Notifications is the snackbar queue, oldest first.
	Notifications NotificationQueue

	// Modal holds the active alert and sheet.
	Modal Modal
}

func (s State) clone() State {
	return State{
		Routes:        slices.Clone(s.Routes),
		PendingResult: s.PendingResult,
		Notifications: slices.Clone(s.Notifications),
		Modal:         s.Modal,
	}
}

// Snapshot is a read-only projection of a controller's state, safe to hand
// to any goroutine.
type Snapshot struct {
	// Version increases by one for every applied command.
	Version uint64

	Routes        []route.Identity
	Notifications NotificationQueue
	Modal         Modal

	// PendingResult reports whether a result callback is waiting for a Pop.
	PendingResult bool
}

func newSnapshot(version uint64, s State) Snapshot {
	return Snapshot{
		Version:       version,
		Routes:        slices.Clone(s.Routes),
		Notifications: slices.Clone(s.Notifications),
		Modal:         s.Modal,
		PendingResult: s.PendingResult != nil,
	}
}

// Top returns the visible route. Returns false when the root screen is showing.
func (s Snapshot) Top() (route.Identity, bool) {
	if len(s.Routes) == 0 {
		return route.Identity{}, false
	}
	return s.Routes[len(s.Routes)-1], true
}

// Depth returns the number of routes above the root screen.
func (s Snapshot) Depth() int {
	return len(s.Routes)
}
