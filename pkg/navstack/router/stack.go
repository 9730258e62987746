package router

import (
	"slices"

	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
)

// Stack is the ordered navigation history. The last entry is the visible
// screen; an empty stack shows the root screen.
type Stack struct {
	entries []route.Identity
}

// NewStack creates a stack holding the given routes, bottom first.
func NewStack(routes ...route.Identity) *Stack {
	return &Stack{
		entries: slices.Clone(routes),
	}
}

// Push adds a route on top of the stack.
func (s *Stack) Push(id route.Identity) {
	s.entries = append(s.entries, id)
}

// Pop removes and returns the top route.
// Returns false if the stack is empty.
func (s *Stack) Pop() (route.Identity, bool) {
	if len(s.entries) == 0 {
		return route.Identity{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = route.Identity{}
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top route without removing it.
// Returns false if the stack is empty.
func (s *Stack) Peek() (route.Identity, bool) {
	if len(s.entries) == 0 {
		return route.Identity{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// PopWhile removes routes from the top until the stack is empty or keep
// matches the top route. keep is re-evaluated after every removal.
// Returns the number of routes removed.
func (s *Stack) PopWhile(keep route.Predicate) int {
	removed := 0
	for {
		top, ok := s.Peek()
		if !ok || keep(top) {
			return removed
		}
		s.Pop()
		removed++
	}
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []route.Identity {
	return slices.Clone(s.entries)
}

// Clone returns an independent copy of the stack.
func (s *Stack) Clone() *Stack {
	return NewStack(s.entries...)
}
