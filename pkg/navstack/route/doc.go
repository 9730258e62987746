// Package route provides the type-erased route identity used by the
// navigation stack.
//
// Applications describe destinations with their own closed set of route
// types. Any comparable type works; an int enum or a small struct is typical:
//
//	type AppRoute struct {
//	    Kind string
//	    ID   string
//	}
//
//	home := route.Wrap(AppRoute{Kind: "home"})
//	detail := route.Wrap(AppRoute{Kind: "detail", ID: "1"})
//
// The stack stores Identity values only. Recover the original value with As:
//
//	if r, ok := route.As[AppRoute](id); ok {
//	    fmt.Println(r.Kind)
//	}
//
// # Equality
//
// Two identities are equal only when they wrap the same concrete type and
// the values compare equal. A route of one named type never equals a route
// of another, even if both are the string "home".
//
// Identity is comparable, so it can be used as a map key. Hash exposes a
// 64-bit hash consistent with Equal for callers building their own indexes.
package route
