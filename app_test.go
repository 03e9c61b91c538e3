package main

import (
	"fmt"
	"testing"
)

func newTestGame(t *testing.T, count, start, batchSize int) *Game {
	t.Helper()
	paths := make([]ImagePath, count)
	for i := range paths {
		paths[i] = ImagePath{Path: fmt.Sprintf("missing/%02d.png", i)}
	}
	config := defaultConfig()
	config.BatchSize = batchSize
	config.PreloadEnabled = false

	g, err := newGame(ConfigLoadResult{Config: config, Status: "Default"}, "", paths, start)
	if err != nil {
		t.Fatalf("newGame() error = %v", err)
	}
	t.Cleanup(g.Shutdown)
	return g
}

func TestNewGameRequiresImages(t *testing.T) {
	_, err := newGame(ConfigLoadResult{Config: defaultConfig()}, "", nil, 0)
	if err == nil {
		t.Fatal("Expected an error without images")
	}
}

func TestNewGameStartsOnRequestedImage(t *testing.T) {
	g := newTestGame(t, 10, 5, 4)

	if id, ok := g.GetCurrentID(); !ok || id != 5 {
		t.Errorf("GetCurrentID() = %d, %v, want 5", id, ok)
	}
	if g.IsOpen() {
		t.Error("Gallery should start closed")
	}
	if got := g.GetSlideCounter(); got != "3 / 4 (+6 more)" {
		t.Errorf("GetSlideCounter() = %q", got)
	}
	if g.GetTotalSlidesCount() != 4 {
		t.Errorf("GetTotalSlidesCount() = %d, want 4", g.GetTotalSlidesCount())
	}
}

func TestGameNavigationWhileClosed(t *testing.T) {
	g := newTestGame(t, 3, 0, 4)

	g.NavigateNext()
	g.NavigateNext()
	g.NavigateNext()
	if id, _ := g.GetCurrentID(); id != 2 {
		t.Errorf("Cursor = %d, want 2", id)
	}
	if g.IsOpen() {
		t.Error("Moving the thumbnail cursor opened the overlay")
	}

	g.NavigatePrevious()
	if id, _ := g.GetCurrentID(); id != 1 {
		t.Errorf("Cursor = %d, want 1", id)
	}
}

func TestGameOpenAndClose(t *testing.T) {
	g := newTestGame(t, 3, 1, 4)

	g.OpenCurrent()
	if !g.IsOpen() || !g.view.IsOverlayVisible() || !g.view.IsScrollLocked() {
		t.Fatal("OpenCurrent() should reveal the overlay and lock scrolling")
	}
	if _, title, _, _ := g.view.Content(); title != "01.png" {
		t.Errorf("Overlay shows %q, want 01.png", title)
	}

	g.NavigateNext()
	if id, _ := g.GetCurrentID(); id != 2 {
		t.Errorf("Cursor = %d, want 2", id)
	}
	if g.view.IsControlVisible(DirectionNext) {
		t.Error("Next control should hide on the last slide")
	}

	g.CloseOverlay()
	if g.IsOpen() || g.view.IsOverlayVisible() || g.view.IsScrollLocked() {
		t.Error("CloseOverlay() should hide the overlay and unlock scrolling")
	}
	if !g.view.IsControlVisible(DirectionNext) {
		t.Error("Closing should re-enable both controls")
	}
}

func TestGameClickAt(t *testing.T) {
	g := newTestGame(t, 6, 0, 6)
	w, h := g.view.screenW, g.view.screenH
	rects := thumbnailGrid(6, g.scrollRow, w, h)

	center := func(r Rect) (int, int) {
		return int(r.X + r.W/2), int(r.Y + r.H/2)
	}

	g.ClickAt(center(rects[3]))
	if !g.IsOpen() {
		t.Fatal("Clicking a thumbnail should open the overlay")
	}
	if id, _ := g.GetCurrentID(); id != 3 {
		t.Errorf("Opened slide %d, want 3", id)
	}

	prev, next, closeBox := overlayControls(w, h, g.config.TitleBarHeight)
	g.ClickAt(center(prev))
	if id, _ := g.GetCurrentID(); id != 2 {
		t.Errorf("Prev control led to %d, want 2", id)
	}
	g.ClickAt(center(next))
	g.ClickAt(center(next))
	if id, _ := g.GetCurrentID(); id != 4 {
		t.Errorf("Next control led to %d, want 4", id)
	}

	g.ClickAt(center(closeBox))
	if g.IsOpen() {
		t.Error("Clicking the close box should close the overlay")
	}

	g.ClickAt(w-1, h-1)
	if g.IsOpen() {
		t.Error("Clicking empty space should not open the overlay")
	}
}

func TestGameLoadsMoreOnNavigation(t *testing.T) {
	g := newTestGame(t, 5, 0, 2)
	g.OpenCurrent()

	g.NavigateNext()
	if !g.session.LoadingIn(DirectionNext) {
		t.Fatal("Reaching the window edge should start loading")
	}
	if got := g.GetSlideCounter(); got != "2 / 2 (+3 more) loading.." {
		t.Errorf("GetSlideCounter() = %q", got)
	}

	g.queue.Drain()
	if g.session.Loading() {
		t.Fatal("Batch was not spliced")
	}
	if g.GetTotalSlidesCount() != 4 {
		t.Errorf("GetTotalSlidesCount() = %d, want 4", g.GetTotalSlidesCount())
	}
}

func TestGameExitAndInfo(t *testing.T) {
	g := newTestGame(t, 1, 0, 2)

	g.ToggleInfo()
	if !g.IsShowingInfo() {
		t.Error("ToggleInfo() did not show info")
	}
	g.ToggleInfo()
	if g.IsShowingInfo() {
		t.Error("ToggleInfo() did not hide info")
	}

	g.Exit()
	if !g.exitRequested {
		t.Error("Exit() did not request termination")
	}
}

func TestGameLoadsMoreWhileClosed(t *testing.T) {
	g := newTestGame(t, 5, 0, 2)

	g.NavigateNext()
	if !g.session.LoadingIn(DirectionNext) {
		t.Fatal("Moving the thumbnail cursor onto the edge should start loading")
	}
	g.queue.Drain()
	if g.GetTotalSlidesCount() != 4 {
		t.Errorf("GetTotalSlidesCount() = %d, want 4", g.GetTotalSlidesCount())
	}

	g.NavigateNext()
	g.NavigateNext()
	g.queue.Drain()
	if id, _ := g.GetCurrentID(); id != 3 {
		t.Errorf("Cursor = %d, want 3", id)
	}
	if g.GetTotalSlidesCount() != 5 {
		t.Errorf("GetTotalSlidesCount() = %d, want 5", g.GetTotalSlidesCount())
	}
}

func TestNewGameLoadsAroundEdgeStart(t *testing.T) {
	g := newTestGame(t, 10, 5, 2)

	if !g.session.LoadingIn(DirectionNext) {
		t.Fatal("Starting on the window edge should start loading")
	}
	g.queue.Drain()
	if g.GetTotalSlidesCount() != 4 {
		t.Errorf("GetTotalSlidesCount() = %d, want 4", g.GetTotalSlidesCount())
	}

	g.OpenCurrent()
	g.NavigateNext()
	if id, _ := g.GetCurrentID(); id != 6 {
		t.Errorf("Cursor = %d, want 6", id)
	}
}
