package route

import "reflect"

// Predicate decides whether a route on the stack satisfies a condition.
// Pop loops evaluate it against the current top of the stack before each removal.
type Predicate func(Identity) bool

// Always matches every route.
func Always(Identity) bool { return true }

// Never matches no route.
func Never(Identity) bool { return false }

// Is matches routes equal to v.
func Is[T comparable](v T) Predicate {
	want := Wrap(v)
	return func(id Identity) bool {
		return id.Equal(want)
	}
}

// OfType matches any route whose concrete type is T. For an interface T it
// matches every route implementing T.
func OfType[T comparable]() Predicate {
	want := reflect.TypeFor[T]()
	if want.Kind() == reflect.Interface {
		return func(id Identity) bool {
			return id.Type() != nil && id.Type().Implements(want)
		}
	}
	return func(id Identity) bool {
		return id.Type() == want
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(id Identity) bool {
		return !p(id)
	}
}

// Any matches when at least one of ps matches.
func Any(ps ...Predicate) Predicate {
	return func(id Identity) bool {
		for _, p := range ps {
			if p(id) {
				return true
			}
		}
		return false
	}
}
