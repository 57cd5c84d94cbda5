package plc

import (
	"fmt"
	"maps"
)

// Unique is the handle assigned to one distinct identifier spelling within a
// lexing session. Handles support equality and ordering only; never derive
// arithmetic meaning from them.
type Unique int

// IdentifierState assigns handles to identifier spellings. The first time a
// spelling is seen it gets the next free handle; every later occurrence of
// the same spelling gets the same handle back. One IdentifierState serves
// exactly one session and must not be shared between goroutines.
type IdentifierState struct {
	handles map[string]Unique
	next    Unique
}

// EmptyIdentifierState starts a fresh session. Allocation begins at 0.
func EmptyIdentifierState() *IdentifierState {
	return IdentifierStateFrom(0)
}

// IdentifierStateFrom starts a session whose allocation begins at start.
// Use it to continue from a prior session so new handles never collide with
// handles that session already gave out. The caller is responsible for
// choosing a start at least as large as every handle that must stay distinct.
func IdentifierStateFrom(start Unique) *IdentifierState {
	return &IdentifierState{
		handles: make(map[string]Unique),
		next:    start,
	}
}

// Intern returns the handle for text, allocating one if the spelling has not
// been seen in this session.
func (s *IdentifierState) Intern(text string) Unique {
	if u, ok := s.handles[text]; ok {
		return u
	}
	if s.next < 0 {
		// A wrapped counter would hand the same handle to two different
		// spellings. Not recoverable.
		panic(fmt.Errorf("identifier handle space exhausted"))
	}
	u := s.next
	s.handles[text] = u
	s.next++
	return u
}

// Next returns the handle the next unseen spelling would receive. Feed it to
// IdentifierStateFrom to continue allocation in a follow-on session.
func (s *IdentifierState) Next() Unique {
	return s.next
}

// Table returns a copy of the spelling-to-handle mapping.
func (s *IdentifierState) Table() map[string]Unique {
	return maps.Clone(s.handles)
}
