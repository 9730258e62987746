package route

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// seed is shared by every Identity so hashes agree for the life of the process.
var seed = maphash.MakeSeed()

// Identity is a type-erased route. It remembers the concrete type it was
// built from, so equality and downcasts never need the caller to restate it.
//
// Identity is comparable: == agrees with Equal and it can be used directly
// as a map key.
type Identity struct {
	tag   reflect.Type // concrete route type, nil for the zero Identity
	value any
	sum   uint64
}

// Wrap erases a route value. The tag is the value's dynamic type, so a
// route held in an interface-typed variable wraps the same as the concrete
// value it contains. A nil interface wraps to the zero Identity.
//
// Wrap panics if v is not hashable at run time, e.g. a struct whose `any`
// field holds a slice. Floating-point NaN routes wrap but never equal
// themselves.
func Wrap[T comparable](v T) Identity {
	value := any(v)
	if value == nil {
		return Identity{}
	}
	tag := reflect.TypeOf(value)
	return Identity{
		tag:   tag,
		value: value,
		sum:   combine(xxhash.Sum64String(tag.String()), hashValue(tag, value)),
	}
}

func hashValue(tag reflect.Type, value any) uint64 {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("route: %s value is not hashable: %v", tag, r))
		}
	}()
	return maphash.Comparable(seed, value)
}

// As recovers the original value if id was built from a T. For an interface
// T it succeeds when the stored route implements T.
func As[T comparable](id Identity) (T, bool) {
	var zero T
	if id.tag == nil {
		return zero, false
	}
	if want := reflect.TypeFor[T](); want.Kind() != reflect.Interface && id.tag != want {
		return zero, false
	}
	v, ok := id.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// MustAs is As for call sites that already know the route type.
// It panics if id does not hold a T.
func MustAs[T comparable](id Identity) T {
	v, ok := As[T](id)
	if !ok {
		panic(fmt.Sprintf("route: identity holds %s, not %s", id.Name(), reflect.TypeFor[T]()))
	}
	return v
}

// Equal reports whether both identities wrap the same concrete type and the
// wrapped values compare equal. Identities of different types are never equal.
func (id Identity) Equal(other Identity) bool {
	if id.tag != other.tag {
		return false
	}
	return id.value == other.value
}

// Hash returns a hash consistent with Equal for the lifetime of the process.
func (id Identity) Hash() uint64 {
	return id.sum
}

// Type returns the concrete route type, or nil for the zero Identity.
func (id Identity) Type() reflect.Type {
	return id.tag
}

// Name returns the concrete type name, e.g. "main.AppRoute".
func (id Identity) Name() string {
	if id.tag == nil {
		return "<none>"
	}
	return id.tag.String()
}

// Value returns the wrapped route as an opaque value.
func (id Identity) Value() any {
	return id.value
}

// IsZero reports whether id wraps nothing.
func (id Identity) IsZero() bool {
	return id.tag == nil
}

func (id Identity) String() string {
	if id.tag == nil {
		return "<none>"
	}
	if s, ok := id.value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", id.value)
}

func combine(h, v uint64) uint64 {
	return h ^ (v + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2))
}
