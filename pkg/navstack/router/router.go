package router

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
)

// ErrNoDestination is returned when no builder is registered for a route type.
var ErrNoDestination = errors.New("router: no destination registered")

// BuildFunc turns a route into renderable content. The content is opaque to
// the router; it is whatever the presentation layer draws.
type BuildFunc func(id route.Identity) (any, error)

// Destinations maps route types to the functions that build their screens.
// A single registry covers every route type an application defines, so the
// mapping from route to screen lives in one place.
type Destinations struct {
	builders map[reflect.Type]BuildFunc
	ifaces   []reflect.Type // interface route types, in registration order
	root     func() any
	cache    *ContentCache
}

// NewDestinations creates an empty registry with no content cache.
func NewDestinations() *Destinations {
	return &Destinations{
		builders: make(map[reflect.Type]BuildFunc),
	}
}

// Register adds a builder for every route of type T. When T is an
// interface it serves every route implementing T that has no builder of
// its own. Registering the same type twice replaces the earlier builder.
func Register[T comparable](d *Destinations, build func(T) any) *Destinations {
	t := reflect.TypeFor[T]()
	if _, seen := d.builders[t]; !seen && t.Kind() == reflect.Interface {
		d.ifaces = append(d.ifaces, t)
	}
	d.builders[t] = func(id route.Identity) (any, error) {
		v, ok := route.As[T](id)
		if !ok {
			return nil, fmt.Errorf("router: identity holds %s, not %s", id.Name(), reflect.TypeFor[T]())
		}
		return build(v), nil
	}
	return d
}

// Root sets the builder for the screen shown when the stack is empty.
func (d *Destinations) Root(build func() any) *Destinations {
	d.root = build
	return d
}

// WithCache enables caching of built content. Cached entries are keyed by
// route identity, so equal routes share content.
func (d *Destinations) WithCache(cache *ContentCache) *Destinations {
	d.cache = cache
	return d
}

// Has reports whether a builder exists for the route's type.
func (d *Destinations) Has(id route.Identity) bool {
	_, ok := d.lookup(id)
	return ok
}

func (d *Destinations) lookup(id route.Identity) (BuildFunc, bool) {
	if id.IsZero() {
		return nil, false
	}
	if build, ok := d.builders[id.Type()]; ok {
		return build, true
	}
	for _, t := range d.ifaces {
		if id.Type().Implements(t) {
			return d.builders[t], true
		}
	}
	return nil, false
}

// Resolve builds the content for one route.
func (d *Destinations) Resolve(id route.Identity) (any, error) {
	if d.cache != nil {
		if content, ok := d.cache.Get(id); ok {
			return content, nil
		}
	}

	build, ok := d.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDestination, id.Name())
	}

	content, err := build(id)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		d.cache.Set(id, content)
	}
	return content, nil
}

// Visible resolves the screen that should be on display for routes: the
// top route, or the root screen when routes is empty.
// Cached content for routes no longer on the stack is dropped.
func (d *Destinations) Visible(routes []route.Identity) (any, error) {
	if d.cache != nil {
		d.cache.Retain(routes)
	}

	if len(routes) == 0 {
		if d.root == nil {
			return nil, fmt.Errorf("%w: root", ErrNoDestination)
		}
		return d.root(), nil
	}
	return d.Resolve(routes[len(routes)-1])
}
