// Package router holds the navigation stack and the mapping from routes to
// screen content.
//
// The stack only stores route identities. What a route looks like on screen
// is decided by a Destinations registry, one builder per route type:
//
//	type AppRoute struct {
//	    Kind string
//	    ID   string
//	}
//
//	d := router.NewDestinations().
//	    Root(func() any { return homeScreen() }).
//	    WithCache(router.NewContentCache())
//
//	router.Register(d, func(r AppRoute) any {
//	    switch r.Kind {
//	    case "detail":
//	        return detailScreen(r.ID)
//	    }
//	    return settingsScreen()
//	})
//
//	content, err := d.Visible(snapshot.Routes)
//
// # Content Cache
//
// With a ContentCache attached, content built for a route is reused while
// that route stays on the stack. Visible drops entries for routes that have
// been popped. Content implementing Releaser is released when dropped.
package router
