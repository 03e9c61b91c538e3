package main

import "log"

const minBatchSize = 2

// SlideFeed grows the gallery in batches. It keeps the whole discovered
// sequence, seeds the list with a window of it and installs one-shot
// transition hooks on the window edges that splice in the next batch.
type SlideFeed struct {
	all       []Slide
	start     int
	lo, hi    int
	batchSize int

	poster  Poster
	session *GallerySession
}

// NewSlideFeed creates a feed over all, centered on the slide at index start
func NewSlideFeed(all []Slide, start, batchSize int, poster Poster) *SlideFeed {
	if batchSize < minBatchSize {
		batchSize = minBatchSize
	}
	if start < 0 || start >= len(all) {
		start = 0
	}

	hi := min(len(all), max(0, start-batchSize/2)+batchSize)
	lo := max(0, hi-batchSize)

	return &SlideFeed{
		all:       all,
		start:     start,
		lo:        lo,
		hi:        hi,
		batchSize: batchSize,
		poster:    poster,
	}
}

// InitialWindow returns the slides the list should be built from
func (f *SlideFeed) InitialWindow() []Slide {
	window := make([]Slide, f.hi-f.lo)
	copy(window, f.all[f.lo:f.hi])
	return window
}

// StartID returns the id of the slide the gallery should open on
func (f *SlideFeed) StartID() (int, bool) {
	if len(f.all) == 0 {
		return 0, false
	}
	return f.all[f.start].ID, true
}

// Attach binds the feed to a session whose list holds InitialWindow and arms
// the edge hooks
func (f *SlideFeed) Attach(session *GallerySession) {
	f.session = session
	f.arm(DirectionPrev)
	f.arm(DirectionNext)
}

// Remaining returns how many slides are not yet spliced in on side dir
func (f *SlideFeed) Remaining(dir Direction) int {
	if dir == DirectionPrev {
		return f.lo
	}
	return len(f.all) - f.hi
}

func (f *SlideFeed) arm(dir Direction) {
	if f.Remaining(dir) == 0 {
		return
	}
	list := f.session.List()
	ref := list.LastRef()
	if dir == DirectionPrev {
		ref = list.FirstRef()
	}
	list.SetCallback(ref, dir, f.loadMore(dir))
}

// EnsureNeighbors starts loading the next batch on every side where the
// cursor sits on the edge of the loaded window. Edge hooks only fire on
// overlay navigation, so call this whenever the cursor lands some other way.
func (f *SlideFeed) EnsureNeighbors() {
	if f.session == nil {
		return
	}
	list := f.session.List()
	if list.IsEmpty() {
		return
	}
	for _, dir := range []Direction{DirectionPrev, DirectionNext} {
		if !list.Has(dir) && f.Remaining(dir) > 0 {
			f.loadMore(dir)()
		}
	}
}

func (f *SlideFeed) loadMore(dir Direction) func() {
	return func() {
		if f.session.LoadingIn(dir) {
			return
		}
		batch := f.next(dir)
		if len(batch) == 0 {
			return
		}
		f.session.BeginLoading(dir)
		debugLog("Feed: loading %d slides (%s)", len(batch), dir)
		f.poster.Post(func() {
			f.splice(dir, batch)
		})
	}
}

// next returns the batch adjacent to the window on side dir without
// consuming it
func (f *SlideFeed) next(dir Direction) []Slide {
	var batch []Slide
	if dir == DirectionPrev {
		lo := max(0, f.lo-f.batchSize)
		batch = append(batch, f.all[lo:f.lo]...)
	} else {
		hi := min(len(f.all), f.hi+f.batchSize)
		batch = append(batch, f.all[f.hi:hi]...)
	}
	return batch
}

func (f *SlideFeed) splice(dir Direction, batch []Slide) {
	defer f.session.EndLoading(dir)

	var err error
	if dir == DirectionPrev {
		err = f.session.PrependBatch(batch)
	} else {
		err = f.session.AppendBatch(batch)
	}
	if err != nil {
		log.Printf("Error: Failed to splice %d slides (%s): %v", len(batch), dir, err)
		return
	}

	if dir == DirectionPrev {
		f.lo -= len(batch)
	} else {
		f.hi += len(batch)
	}
	f.arm(dir)
}
