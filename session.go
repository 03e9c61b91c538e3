package main

// Status is the open/closed state of the overlay
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
)

func (s Status) String() string {
	if s == StatusOpen {
		return "open"
	}
	return "closed"
}

// View is everything the session asks of the rendering layer
type View interface {
	ShowControl(dir Direction)
	HideControl(dir Direction)
	SetLoadingIndicator(dir Direction, on bool)

	RevealOverlay()
	HideOverlay()

	SetSlideContent(link, title, src, alt string)

	BeforeFit()
	ApplyGeometry(g Geometry)
	AfterFit()

	LockPageScroll()
	UnlockPageScroll()

	// ContainerSize is the area an image is fitted into
	ContainerSize() (width, height int)
}

// GallerySession drives the overlay over a SlideList.
//
// canGo holds the navigation permission per direction, which is what the view
// shows and what Prev/Next check. It is not the same as the list having a
// neighbor: a direction that is still loading more slides stays permitted at
// the edge.
type GallerySession struct {
	list   *SlideList
	view   View
	fitter *Fitter

	status  Status
	canGo   [2]bool
	loading [2]bool
}

// NewGallerySession creates a closed session with both directions permitted
func NewGallerySession(list *SlideList, view View, fitter *Fitter) *GallerySession {
	return &GallerySession{
		list:   list,
		view:   view,
		fitter: fitter,
		status: StatusClosed,
		canGo:  [2]bool{true, true},
	}
}

// Open reveals the overlay showing slide. The cursor is expected to be on it.
func (s *GallerySession) Open(slide Slide) error {
	if s.list.IsEmpty() {
		return ErrEmptyList
	}

	s.status = StatusOpen
	s.view.LockPageScroll()
	s.view.RevealOverlay()
	for _, dir := range []Direction{DirectionPrev, DirectionNext} {
		if s.canGo[dir] {
			s.view.ShowControl(dir)
		} else {
			s.view.HideControl(dir)
		}
	}
	s.applySlide(slide)
	return nil
}

// Close hides the overlay and permits both directions again
func (s *GallerySession) Close() {
	s.status = StatusClosed
	s.view.HideOverlay()
	for _, dir := range []Direction{DirectionPrev, DirectionNext} {
		s.canGo[dir] = true
		s.view.ShowControl(dir)
	}
	s.view.UnlockPageScroll()
}

func (s *GallerySession) Prev() {
	s.navigate(DirectionPrev)
}

func (s *GallerySession) Next() {
	s.navigate(DirectionNext)
}

func (s *GallerySession) navigate(dir Direction) {
	if !s.canGo[dir] {
		return
	}
	if !s.list.Step(dir) {
		debugLog("Navigate %s: already at the edge", dir)
		return
	}

	slide, _ := s.list.Current()
	s.applySlide(slide)
	if s.list.fireCurrent(dir) {
		debugLog("Navigate %s: fired transition hook on slide %d", dir, slide.ID)
	}

	if !s.list.Has(dir) && !s.loading[dir] {
		s.canGo[dir] = false
		s.view.HideControl(dir)
	}
	if opposite := dir.Opposite(); !s.canGo[opposite] {
		s.canGo[opposite] = true
		s.view.ShowControl(opposite)
	}
}

func (s *GallerySession) applySlide(slide Slide) {
	s.view.SetSlideContent(slide.Link, slide.Title, slide.Src, slide.Title)
	s.fit(slide)
}

func (s *GallerySession) fit(slide Slide) {
	w, h := s.view.ContainerSize()
	s.fitter.RequestFit(slide.Src, w, h, FitHooks{
		Before: s.view.BeforeFit,
		Apply:  s.view.ApplyGeometry,
		After: func(Geometry) {
			s.view.AfterFit()
		},
	})
}

// Refit recomputes the geometry of the current slide, e.g. after a resize
func (s *GallerySession) Refit() {
	if s.status != StatusOpen {
		return
	}
	if slide, ok := s.list.Current(); ok {
		s.fit(slide)
	}
}

// BeginLoading marks dir as waiting for more slides. While loading, reaching
// the edge in dir keeps the control visible.
func (s *GallerySession) BeginLoading(dir Direction) {
	if s.loading[dir] {
		return
	}
	s.loading[dir] = true
	s.view.SetLoadingIndicator(dir, true)
}

// EndLoading clears the loading mark for dir and shows or hides its control
// depending on whether the cursor now has a neighbor there
func (s *GallerySession) EndLoading(dir Direction) {
	if !s.loading[dir] {
		return
	}
	s.loading[dir] = false
	s.view.SetLoadingIndicator(dir, false)

	if s.status != StatusOpen {
		return
	}
	if s.list.Has(dir) {
		s.canGo[dir] = true
		s.view.ShowControl(dir)
	} else {
		s.canGo[dir] = false
		s.view.HideControl(dir)
	}
}

// PrependBatch splices slides before the first slide
func (s *GallerySession) PrependBatch(slides []Slide) error {
	return s.list.PrependBatch(slides)
}

// AppendBatch splices slides after the last slide
func (s *GallerySession) AppendBatch(slides []Slide) error {
	return s.list.AppendBatch(slides)
}

func (s *GallerySession) Status() Status {
	return s.status
}

func (s *GallerySession) IsOpen() bool {
	return s.status == StatusOpen
}

func (s *GallerySession) CanGoPrev() bool {
	return s.canGo[DirectionPrev]
}

func (s *GallerySession) CanGoNext() bool {
	return s.canGo[DirectionNext]
}

// Loading reports whether either direction is loading more slides
func (s *GallerySession) Loading() bool {
	return s.loading[DirectionPrev] || s.loading[DirectionNext]
}

func (s *GallerySession) LoadingIn(dir Direction) bool {
	return s.loading[dir]
}

// Current returns the slide under the cursor
func (s *GallerySession) Current() (Slide, bool) {
	return s.list.Current()
}

// List exposes the underlying slide list for read access
func (s *GallerySession) List() *SlideList {
	return s.list
}
