package main

// OverlayView records what the session asked the view to show. The renderer
// paints from it every frame.
type OverlayView struct {
	overlayVisible bool
	scrollLocked   bool
	controls       [2]bool
	loading        [2]bool

	link  string
	title string
	src   string
	alt   string

	geometry    Geometry
	hasGeometry bool
	// pendingFits counts fit requests between BeforeFit and AfterFit. The
	// placeholder stays up while any is outstanding, so a superseded request
	// finishing first cannot clear the placeholder of a newer one.
	pendingFits int

	screenW        int
	screenH        int
	titleBarHeight int
}

// NewOverlayView creates a hidden overlay with both controls shown
func NewOverlayView(screenW, screenH, titleBarHeight int) *OverlayView {
	return &OverlayView{
		controls:       [2]bool{true, true},
		screenW:        screenW,
		screenH:        screenH,
		titleBarHeight: titleBarHeight,
	}
}

func (v *OverlayView) ShowControl(dir Direction) { v.controls[dir] = true }
func (v *OverlayView) HideControl(dir Direction) { v.controls[dir] = false }

func (v *OverlayView) SetLoadingIndicator(dir Direction, on bool) {
	v.loading[dir] = on
}

func (v *OverlayView) RevealOverlay() { v.overlayVisible = true }
func (v *OverlayView) HideOverlay()   { v.overlayVisible = false }

func (v *OverlayView) SetSlideContent(link, title, src, alt string) {
	v.link, v.title, v.src, v.alt = link, title, src, alt
	v.hasGeometry = false
}

func (v *OverlayView) BeforeFit() {
	v.pendingFits++
}

func (v *OverlayView) ApplyGeometry(g Geometry) {
	v.geometry = g
	v.hasGeometry = !g.IsEmpty()
}

func (v *OverlayView) AfterFit() {
	if v.pendingFits > 0 {
		v.pendingFits--
	}
}

func (v *OverlayView) LockPageScroll()   { v.scrollLocked = true }
func (v *OverlayView) UnlockPageScroll() { v.scrollLocked = false }

// ContainerSize is the screen minus the title bar
func (v *OverlayView) ContainerSize() (int, int) {
	return v.screenW, max(0, v.screenH-v.titleBarHeight)
}

// SetScreenSize records a new window size. It reports whether it changed.
func (v *OverlayView) SetScreenSize(w, h int) bool {
	if w == v.screenW && h == v.screenH {
		return false
	}
	v.screenW, v.screenH = w, h
	return true
}

func (v *OverlayView) IsOverlayVisible() bool           { return v.overlayVisible }
func (v *OverlayView) IsScrollLocked() bool             { return v.scrollLocked }
func (v *OverlayView) IsControlVisible(d Direction) bool { return v.controls[d] }
func (v *OverlayView) IsLoading(d Direction) bool       { return v.loading[d] }
func (v *OverlayView) ShowsPlaceholder() bool           { return v.pendingFits > 0 }

// Geometry returns the applied geometry, if the current slide has one
func (v *OverlayView) Geometry() (Geometry, bool) {
	return v.geometry, v.hasGeometry
}

// Content returns the link, title, src and alt text of the current slide
func (v *OverlayView) Content() (link, title, src, alt string) {
	return v.link, v.title, v.src, v.alt
}
