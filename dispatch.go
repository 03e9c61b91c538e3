package main

// Dispatcher is the inbound surface of the gallery. Keyboard and mouse
// adapters call these methods and never touch the session directly.
type Dispatcher struct {
	session *GallerySession
	feed    *SlideFeed
}

// NewDispatcher creates a Dispatcher for session. feed may be nil when the
// list holds every slide up front.
func NewDispatcher(session *GallerySession, feed *SlideFeed) *Dispatcher {
	return &Dispatcher{session: session, feed: feed}
}

// OnPrevRequested steps back while the overlay is open
func (d *Dispatcher) OnPrevRequested() {
	if d.session.IsOpen() {
		d.session.Prev()
	}
}

// OnNextRequested steps forward while the overlay is open
func (d *Dispatcher) OnNextRequested() {
	if d.session.IsOpen() {
		d.session.Next()
	}
}

func (d *Dispatcher) OnCloseRequested() {
	if d.session.IsOpen() {
		d.session.Close()
	}
}

// OnSlideSelected moves the cursor to id and opens the overlay there
func (d *Dispatcher) OnSlideSelected(id int) error {
	slide, err := d.session.List().Seek(id)
	if err != nil {
		return err
	}
	if err := d.session.Open(slide); err != nil {
		return err
	}
	if d.feed != nil {
		d.feed.EnsureNeighbors()
	}
	return nil
}
