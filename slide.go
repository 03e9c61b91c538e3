package main

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is returned when a slide list would hold no slides
	ErrEmptyList = errors.New("slide list is empty")
	// ErrNotFound matches every *NotFoundError
	ErrNotFound = errors.New("slide not found")
	// ErrDuplicateID is returned when a slide id is already taken
	ErrDuplicateID = errors.New("duplicate slide id")
)

// NotFoundError reports a lookup of an id that is not in the list
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("slide %d: %v", e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Direction identifies one of the two navigation controls
type Direction int

const (
	DirectionPrev Direction = iota
	DirectionNext
)

func (d Direction) String() string {
	switch d {
	case DirectionPrev:
		return "prev"
	case DirectionNext:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the other direction
func (d Direction) Opposite() Direction {
	if d == DirectionPrev {
		return DirectionNext
	}
	return DirectionPrev
}

// Slide is a single image entry with navigation metadata.
//
// CallbackLeft fires when the cursor lands on the slide moving backward,
// CallbackRight when moving forward. Landing never clears them; only a batch
// splice on the matching side does.
type Slide struct {
	ID    int
	Src   string
	Title string
	Link  string

	CallbackLeft  func()
	CallbackRight func()
}

// HasCallback reports whether a transition hook is set for dir
func (s *Slide) HasCallback(dir Direction) bool {
	if dir == DirectionPrev {
		return s.CallbackLeft != nil
	}
	return s.CallbackRight != nil
}

// SetCallback installs the transition hook for dir
func (s *Slide) SetCallback(dir Direction, fn func()) {
	if dir == DirectionPrev {
		s.CallbackLeft = fn
	} else {
		s.CallbackRight = fn
	}
}

func (s *Slide) clearCallback(dir Direction) {
	s.SetCallback(dir, nil)
}

// fire invokes the hook for dir, if any. It reports whether a hook ran.
func (s *Slide) fire(dir Direction) bool {
	var fn func()
	if dir == DirectionPrev {
		fn = s.CallbackLeft
	} else {
		fn = s.CallbackRight
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}
