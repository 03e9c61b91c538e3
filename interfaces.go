package main

// RenderState provides read-only access to app state for the renderer
type RenderState interface {
	IsOpen() bool
	IsShowingInfo() bool
	GetFontSize() float64

	// Thumbnail page shown while the overlay is closed
	GetSlides() []Slide
	GetCurrentID() (int, bool)
	GetScrollRow() int

	// Status line, e.g. "3 / 40 (+20 more)"
	GetSlideCounter() string
	GetConfigStatus() ConfigLoadResult
}

// InputActions provides action methods for the input handlers
type InputActions interface {
	Exit()
	ToggleInfo()

	// Overlay
	OpenCurrent()
	CloseOverlay()

	// Navigation; scrolls the thumbnail page while the overlay is closed
	NavigatePrevious()
	NavigateNext()

	// ClickAt presses whatever is under the pointer
	ClickAt(x, y int)

	GetTotalSlidesCount() int
}

// InputState provides read-only access to input-related state
type InputState interface {
	IsOpen() bool
	PointerPosition() (x, y int)
}
