// Package navstack is a navigation controller for screen-based applications.
//
// A Controller owns one navigation context: a stack of routes, a queue of
// timed snackbar notifications, and single slots for an active alert and an
// active sheet. Callers change that state only by sending commands; the
// presentation layer reads it through snapshots and draws whatever they say.
//
// # Basic Usage
//
//	type AppRoute struct {
//	    Kind string
//	    ID   string
//	}
//
//	c, err := navstack.New(navstack.Options{})
//	if err != nil {
//	    return err
//	}
//	go c.Run(ctx)
//
//	c.OnChange(func(s navstack.Snapshot) {
//	    redraw(s.Routes, s.Notifications, s.Modal)
//	})
//
//	nav := c.Navigator()
//	nav.To(route.Wrap(AppRoute{Kind: "detail", ID: "1"}))
//	nav.Snackbar("Saved", "", 0)
//	nav.Back(nil)
//
// # Commands
//
// Every navigation operation is a Command value: Push, Pop, ReplaceTop,
// ReplaceAll, ClearToRoot, PopUntil, PopWhile, PushWithCallback, Notify,
// DismissNotification, ShowAlert, DismissAlert, ShowSheet and DismissSheet.
// Reducer.Apply is the pure state transition behind them and can be used on
// its own. Commands never fail: a command whose precondition does not hold,
// like popping an empty stack, leaves the state unchanged.
//
// # Threading
//
// Run is the only goroutine that changes state. Dispatch and Do may be
// called from anywhere; commands are applied in the order they reach the
// inbox. Notification expiry timers send DismissNotification through the
// same inbox, so manual dismissal and expiry never conflict.
//
// # Results
//
// ToWithResult (PushWithCallback) registers a callback for the next Pop. It
// is called at most once, on the owner loop, with the value passed to Back.
// Registering a new callback replaces an unconsumed one without calling it;
// the controller logs a warning when that happens.
//
// # Passing The Navigator
//
// Navigator is a small value type. Pass it to screens directly, or put it in
// a context with WithNavigator and fetch it with FromContext. A screen with
// no navigator in its context gets a zero Navigator that ignores commands.
package navstack
