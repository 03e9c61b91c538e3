package main

import "testing"

func TestOverlayViewPlaceholder(t *testing.T) {
	v := NewOverlayView(800, 600, 40)

	v.SetSlideContent("dir", "a.png", "dir/a.png", "a.png")
	v.BeforeFit()
	if !v.ShowsPlaceholder() {
		t.Fatal("Placeholder should show after BeforeFit")
	}

	// A newer request starts before the older one finishes
	v.SetSlideContent("dir", "b.png", "dir/b.png", "b.png")
	v.BeforeFit()
	v.AfterFit()
	if !v.ShowsPlaceholder() {
		t.Error("Placeholder cleared while the newer request is pending")
	}

	v.ApplyGeometry(Geometry{Width: 300, Height: 200})
	v.AfterFit()
	if v.ShowsPlaceholder() {
		t.Error("Placeholder still showing with no request pending")
	}
	if g, ok := v.Geometry(); !ok || g.Width != 300 {
		t.Errorf("Geometry() = %+v, %v", g, ok)
	}

	v.AfterFit()
	if v.ShowsPlaceholder() {
		t.Error("Extra AfterFit must not bring the placeholder back")
	}
}

func TestOverlayViewContentResetsGeometry(t *testing.T) {
	v := NewOverlayView(800, 600, 40)
	v.ApplyGeometry(Geometry{Width: 10, Height: 10})
	v.SetSlideContent("", "next", "next.png", "next")

	if _, ok := v.Geometry(); ok {
		t.Error("New content should drop the previous geometry")
	}
	if link, title, src, alt := v.Content(); link != "" || title != "next" || src != "next.png" || alt != "next" {
		t.Errorf("Content() = %q, %q, %q, %q", link, title, src, alt)
	}

	v.ApplyGeometry(Geometry{})
	if _, ok := v.Geometry(); ok {
		t.Error("An empty geometry should not count as applied")
	}
}

func TestOverlayViewState(t *testing.T) {
	v := NewOverlayView(800, 600, 40)

	if !v.IsControlVisible(DirectionPrev) || !v.IsControlVisible(DirectionNext) {
		t.Error("Controls should start visible")
	}
	v.HideControl(DirectionNext)
	if v.IsControlVisible(DirectionNext) || !v.IsControlVisible(DirectionPrev) {
		t.Error("HideControl affected the wrong control")
	}

	v.SetLoadingIndicator(DirectionPrev, true)
	if !v.IsLoading(DirectionPrev) || v.IsLoading(DirectionNext) {
		t.Error("Loading indicator set on the wrong side")
	}

	v.RevealOverlay()
	v.LockPageScroll()
	if !v.IsOverlayVisible() || !v.IsScrollLocked() {
		t.Error("Overlay should be visible with scrolling locked")
	}
	v.HideOverlay()
	v.UnlockPageScroll()
	if v.IsOverlayVisible() || v.IsScrollLocked() {
		t.Error("Overlay should be hidden with scrolling unlocked")
	}
}

func TestOverlayViewContainerSize(t *testing.T) {
	v := NewOverlayView(800, 600, 40)
	if w, h := v.ContainerSize(); w != 800 || h != 560 {
		t.Errorf("ContainerSize() = %dx%d, want 800x560", w, h)
	}

	if v.SetScreenSize(800, 600) {
		t.Error("SetScreenSize reported a change for the same size")
	}
	if !v.SetScreenSize(1024, 30) {
		t.Error("SetScreenSize missed a change")
	}
	if w, h := v.ContainerSize(); w != 1024 || h != 0 {
		t.Errorf("ContainerSize() = %dx%d, want 1024x0", w, h)
	}
}
