package main

import "fmt"

// noNode marks a missing neighbor or an unset cursor
const noNode = -1

type listState int

const (
	listEmpty listState = iota
	listNonEmpty
)

// NodeRef addresses one node of a SlideList
type NodeRef int

type node struct {
	slide Slide
	prev  int
	next  int
}

// SlideList is a cursor-based doubly linked sequence of slides.
//
// Nodes live in an arena and link to each other by index, so splicing never
// leaves a dangling reference. The zero value is an empty list.
type SlideList struct {
	state  listState
	nodes  []node
	head   int
	tail   int
	cursor int
	ids    map[int]int
}

// NewSlideList builds the chain in the given order with the cursor on the first slide
func NewSlideList(slides []Slide) (*SlideList, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyList
	}
	l := &SlideList{}
	if err := l.AppendBatch(slides); err != nil {
		return nil, err
	}
	return l, nil
}

// IsEmpty reports whether the list holds no slides
func (l *SlideList) IsEmpty() bool {
	return l == nil || l.state == listEmpty
}

// Len returns the number of slides
func (l *SlideList) Len() int {
	if l.IsEmpty() {
		return 0
	}
	return len(l.nodes)
}

// FindByID scans from the first node for the slide with the given id
func (l *SlideList) FindByID(id int) (NodeRef, error) {
	if l.IsEmpty() {
		return noNode, &NotFoundError{ID: id}
	}
	for i := l.head; i != noNode; i = l.nodes[i].next {
		if l.nodes[i].slide.ID == id {
			return NodeRef(i), nil
		}
	}
	return noNode, &NotFoundError{ID: id}
}

// Seek moves the cursor onto the slide with the given id
func (l *SlideList) Seek(id int) (Slide, error) {
	ref, err := l.FindByID(id)
	if err != nil {
		return Slide{}, err
	}
	l.cursor = int(ref)
	return l.nodes[ref].slide, nil
}

// Node returns the slide held by ref, or the zero Slide for an invalid ref
func (l *SlideList) Node(ref NodeRef) Slide {
	if !l.valid(ref) {
		return Slide{}
	}
	return l.nodes[ref].slide
}

func (l *SlideList) valid(ref NodeRef) bool {
	return ref >= 0 && int(ref) < len(l.nodes)
}

// Current returns the slide under the cursor
func (l *SlideList) Current() (Slide, bool) {
	if l.IsEmpty() {
		return Slide{}, false
	}
	return l.nodes[l.cursor].slide, true
}

// CurrentRef returns the node under the cursor
func (l *SlideList) CurrentRef() NodeRef {
	if l.IsEmpty() {
		return noNode
	}
	return NodeRef(l.cursor)
}

func (l *SlideList) HasPrev() bool {
	return !l.IsEmpty() && l.nodes[l.cursor].prev != noNode
}

func (l *SlideList) HasNext() bool {
	return !l.IsEmpty() && l.nodes[l.cursor].next != noNode
}

// Has reports whether the cursor has a neighbor in dir
func (l *SlideList) Has(dir Direction) bool {
	if dir == DirectionPrev {
		return l.HasPrev()
	}
	return l.HasNext()
}

// StepPrev moves the cursor back one node. It returns false at the head.
func (l *SlideList) StepPrev() bool {
	if !l.HasPrev() {
		return false
	}
	l.cursor = l.nodes[l.cursor].prev
	return true
}

// StepNext moves the cursor forward one node. It returns false at the tail.
func (l *SlideList) StepNext() bool {
	if !l.HasNext() {
		return false
	}
	l.cursor = l.nodes[l.cursor].next
	return true
}

// Step moves the cursor one node in dir
func (l *SlideList) Step(dir Direction) bool {
	if dir == DirectionPrev {
		return l.StepPrev()
	}
	return l.StepNext()
}

func (l *SlideList) MoveToFirst() {
	for l.StepPrev() {
	}
}

func (l *SlideList) MoveToLast() {
	for l.StepNext() {
	}
}

// PrependBatch splices slides before the current first node, keeping their
// order. The cursor does not move. Every existing slide loses its
// CallbackLeft first.
func (l *SlideList) PrependBatch(slides []Slide) error {
	if len(slides) == 0 {
		return nil
	}
	if err := l.checkIDs(slides); err != nil {
		return err
	}
	l.StripBoundaryCallbacks(DirectionPrev)

	first := l.link(slides)
	lastNew := len(l.nodes) - 1
	if l.state == listEmpty {
		l.head, l.tail, l.cursor = first, lastNew, first
		l.state = listNonEmpty
		return nil
	}
	l.nodes[lastNew].next = l.head
	l.nodes[l.head].prev = lastNew
	l.head = first
	return nil
}

// AppendBatch splices slides after the current last node. The cursor does
// not move. Every existing slide loses its CallbackRight first.
func (l *SlideList) AppendBatch(slides []Slide) error {
	if len(slides) == 0 {
		return nil
	}
	if err := l.checkIDs(slides); err != nil {
		return err
	}
	l.StripBoundaryCallbacks(DirectionNext)

	first := l.link(slides)
	lastNew := len(l.nodes) - 1
	if l.state == listEmpty {
		l.head, l.tail, l.cursor = first, lastNew, first
		l.state = listNonEmpty
		return nil
	}
	l.nodes[l.tail].next = first
	l.nodes[first].prev = l.tail
	l.tail = lastNew
	return nil
}

// StripBoundaryCallbacks clears the hook for side on every slide in the list
func (l *SlideList) StripBoundaryCallbacks(side Direction) {
	l.ForEachNode(func(_ NodeRef, s *Slide) {
		s.clearCallback(side)
	})
}

// ForEachNode visits every node from first to last
func (l *SlideList) ForEachNode(visit func(ref NodeRef, s *Slide)) {
	if l.IsEmpty() {
		return
	}
	for i := l.head; i != noNode; i = l.nodes[i].next {
		visit(NodeRef(i), &l.nodes[i].slide)
	}
}

// Slides returns a copy of the chain in order
func (l *SlideList) Slides() []Slide {
	out := make([]Slide, 0, l.Len())
	l.ForEachNode(func(_ NodeRef, s *Slide) {
		out = append(out, *s)
	})
	return out
}

// SetCallback installs a transition hook on the slide held by ref. Invalid
// refs are ignored.
func (l *SlideList) SetCallback(ref NodeRef, dir Direction, fn func()) {
	if !l.valid(ref) {
		return
	}
	l.nodes[ref].slide.SetCallback(dir, fn)
}

// fireCurrent invokes the cursor slide's hook for dir
func (l *SlideList) fireCurrent(dir Direction) bool {
	if l.IsEmpty() {
		return false
	}
	// The hook may splice new nodes and grow the arena, so fire on a copy.
	s := l.nodes[l.cursor].slide
	return s.fire(dir)
}

// FirstRef and LastRef return the ends of the chain
func (l *SlideList) FirstRef() NodeRef {
	if l.IsEmpty() {
		return noNode
	}
	return NodeRef(l.head)
}

func (l *SlideList) LastRef() NodeRef {
	if l.IsEmpty() {
		return noNode
	}
	return NodeRef(l.tail)
}

// link appends slides to the arena as a detached chain and returns the index
// of its first node
func (l *SlideList) link(slides []Slide) int {
	if l.ids == nil {
		l.ids = make(map[int]int, len(slides))
	}
	first := len(l.nodes)
	for i, s := range slides {
		idx := first + i
		n := node{slide: s, prev: noNode, next: noNode}
		if i > 0 {
			n.prev = idx - 1
		}
		if i < len(slides)-1 {
			n.next = idx + 1
		}
		l.nodes = append(l.nodes, n)
		l.ids[s.ID] = idx
	}
	return first
}

func (l *SlideList) checkIDs(slides []Slide) error {
	seen := make(map[int]bool, len(slides))
	for _, s := range slides {
		if _, taken := l.ids[s.ID]; taken || seen[s.ID] {
			return fmt.Errorf("slide %d: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = true
	}
	return nil
}
