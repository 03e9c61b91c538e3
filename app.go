package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the gallery to ebiten. It owns the only goroutine that touches
// the session: fit results and loaded batches come back through queue and are
// drained at the top of every Update.
type Game struct {
	config       Config
	configStatus ConfigLoadResult
	configPath   string

	queue      *EventQueue
	store      *ImageStore
	preload    *PreloadManager
	fitter     *Fitter
	list       *SlideList
	session    *GallerySession
	dispatcher *Dispatcher
	feed       *SlideFeed
	view       *OverlayView

	renderer     *Renderer
	inputHandler *InputHandler

	showInfo      bool
	scrollRow     int
	exitRequested bool

	// Last state preloading was started for
	preloadedID  int
	preloadedRow int
}

// newGame builds the gallery over paths, opening on the image at index start
func newGame(configStatus ConfigLoadResult, configPath string, paths []ImagePath, start int) (*Game, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no image files specified")
	}
	config := configStatus.Config

	store := NewImageStore(config.CacheSize)
	store.AddPaths(paths)

	queue := NewEventQueue(0)
	feed := NewSlideFeed(slidesFromPaths(paths), start, config.BatchSize, queue)
	list, err := NewSlideList(feed.InitialWindow())
	if err != nil {
		return nil, fmt.Errorf("building slide list: %w", err)
	}
	if id, ok := feed.StartID(); ok {
		if _, err := list.Seek(id); err != nil {
			return nil, fmt.Errorf("seeking start slide: %w", err)
		}
	}

	view := NewOverlayView(config.WindowWidth, config.WindowHeight, config.TitleBarHeight)
	fitter := NewFitter(store, queue)
	session := NewGallerySession(list, view, fitter)
	feed.Attach(session)

	g := &Game{
		config:       config,
		configStatus: configStatus,
		configPath:   configPath,
		queue:        queue,
		store:        store,
		preload:      NewPreloadManager(store, config.PreloadEnabled),
		fitter:       fitter,
		list:         list,
		session:      session,
		dispatcher:   NewDispatcher(session, feed),
		feed:         feed,
		view:         view,
		preloadedID:  -1,
		preloadedRow: -1,
	}
	g.renderer = NewRenderer(g, view, store)
	g.inputHandler = NewInputHandler(g, g,
		NewKeybindingManager(config.Keybindings),
		NewMousebindingManager(config.Mousebindings, config.Mouse))
	g.scrollToCurrent()
	feed.EnsureNeighbors()

	return g, nil
}

// Shutdown stops background work. Pending completions are dropped.
func (g *Game) Shutdown() {
	g.preload.Stop()
	g.fitter.Close()
	g.queue.Close()
}

func (g *Game) Update() error {
	g.queue.Drain()

	g.inputHandler.HandleInput()
	if g.exitRequested {
		g.saveCurrentWindowSize()
		return ebiten.Termination
	}

	g.updatePreload()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.view.SetScreenSize(outsideWidth, outsideHeight) {
		g.scrollRow = min(g.scrollRow, maxScrollRow(g.list.Len(), outsideWidth, outsideHeight))
		g.session.Refit()
	}
	return outsideWidth, outsideHeight
}

// saveCurrentWindowSize persists the window size unless the config file on
// disk could not be parsed
func (g *Game) saveCurrentWindowSize() {
	if g.configStatus.HasError || g.configPath == "" {
		return
	}
	w, h := ebiten.WindowSize()
	if w <= 0 || h <= 0 {
		return
	}
	g.config.WindowWidth = w
	g.config.WindowHeight = h
	if err := saveConfigToPath(g.config, g.configPath); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// updatePreload decodes the overlay's neighbors while it is open and the
// visible thumbnails while it is closed
func (g *Game) updatePreload() {
	if g.session.IsOpen() {
		current, ok := g.list.Current()
		if !ok || current.ID == g.preloadedID {
			return
		}
		g.preloadedID = current.ID
		g.preload.StartPreload(neighborSources(g.list, g.config.PreloadCount))
		return
	}

	g.preloadedID = -1
	if g.scrollRow == g.preloadedRow {
		return
	}
	g.preloadedRow = g.scrollRow
	g.preload.StartPreload(g.visibleSources())
}

// visibleSources returns the sources of the thumbnails on screen, capped at
// the cache size so they do not evict each other
func (g *Game) visibleSources() []string {
	slides := g.list.Slides()
	rects := thumbnailGrid(len(slides), g.scrollRow, g.view.screenW, g.view.screenH)
	var srcs []string
	for i, rect := range rects {
		if rect.W == 0 {
			continue
		}
		if len(srcs) == g.config.CacheSize {
			break
		}
		srcs = append(srcs, slides[i].Src)
	}
	return srcs
}

// scrollToCurrent scrolls the thumbnail page so the cursor's row is visible
func (g *Game) scrollToCurrent() {
	pos := g.currentPosition()
	if pos < 0 {
		return
	}
	row := pos / thumbnailColumns(g.view.screenW)
	rows := thumbnailRows(g.view.screenH)
	switch {
	case row < g.scrollRow:
		g.scrollRow = row
	case row >= g.scrollRow+rows:
		g.scrollRow = row - rows + 1
	}
}

// currentPosition is the cursor's index in list order, or -1
func (g *Game) currentPosition() int {
	current, ok := g.list.Current()
	if !ok {
		return -1
	}
	pos := -1
	i := 0
	g.list.ForEachNode(func(_ NodeRef, s *Slide) {
		if s.ID == current.ID {
			pos = i
		}
		i++
	})
	return pos
}

// InputActions

func (g *Game) Exit() {
	g.exitRequested = true
}

func (g *Game) ToggleInfo() {
	g.showInfo = !g.showInfo
}

func (g *Game) OpenCurrent() {
	current, ok := g.list.Current()
	if !ok {
		return
	}
	if err := g.dispatcher.OnSlideSelected(current.ID); err != nil {
		log.Printf("Error: Failed to open slide %d: %v", current.ID, err)
	}
}

func (g *Game) CloseOverlay() {
	g.dispatcher.OnCloseRequested()
	g.scrollToCurrent()
}

// NavigatePrevious steps the overlay back, or moves the thumbnail cursor
// while the overlay is closed
func (g *Game) NavigatePrevious() {
	g.navigate(DirectionPrev)
}

// NavigateNext steps the overlay forward, or moves the thumbnail cursor
// while the overlay is closed
func (g *Game) NavigateNext() {
	g.navigate(DirectionNext)
}

func (g *Game) navigate(dir Direction) {
	if g.session.IsOpen() {
		if dir == DirectionPrev {
			g.dispatcher.OnPrevRequested()
		} else {
			g.dispatcher.OnNextRequested()
		}
		return
	}
	if g.view.IsScrollLocked() {
		return
	}
	if g.list.Step(dir) {
		g.scrollToCurrent()
		g.feed.EnsureNeighbors()
	}
}

// ClickAt presses the overlay control under the pointer, or opens the
// thumbnail under it while the overlay is closed
func (g *Game) ClickAt(x, y int) {
	px, py := float64(x), float64(y)
	w, h := g.view.screenW, g.view.screenH

	if g.session.IsOpen() {
		prev, next, closeBox := overlayControls(w, h, g.config.TitleBarHeight)
		switch {
		case closeBox.Contains(px, py):
			g.CloseOverlay()
		case prev.Contains(px, py) && g.view.IsControlVisible(DirectionPrev):
			g.dispatcher.OnPrevRequested()
		case next.Contains(px, py) && g.view.IsControlVisible(DirectionNext):
			g.dispatcher.OnNextRequested()
		}
		return
	}

	slides := g.list.Slides()
	for i, rect := range thumbnailGrid(len(slides), g.scrollRow, w, h) {
		if rect.W == 0 || !rect.Contains(px, py) {
			continue
		}
		if err := g.dispatcher.OnSlideSelected(slides[i].ID); err != nil {
			log.Printf("Error: Failed to open slide %d: %v", slides[i].ID, err)
		}
		return
	}
}

func (g *Game) GetTotalSlidesCount() int {
	return g.list.Len()
}

// InputState and RenderState

func (g *Game) IsOpen() bool {
	return g.session.IsOpen()
}

func (g *Game) PointerPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (g *Game) IsShowingInfo() bool {
	return g.showInfo
}

func (g *Game) GetFontSize() float64 {
	return g.config.FontSize
}

func (g *Game) GetSlides() []Slide {
	return g.list.Slides()
}

func (g *Game) GetCurrentID() (int, bool) {
	current, ok := g.list.Current()
	return current.ID, ok
}

func (g *Game) GetScrollRow() int {
	return g.scrollRow
}

func (g *Game) GetSlideCounter() string {
	counter := fmt.Sprintf("%d / %d", g.currentPosition()+1, g.list.Len())
	if more := g.feed.Remaining(DirectionPrev) + g.feed.Remaining(DirectionNext); more > 0 {
		counter += fmt.Sprintf(" (+%d more)", more)
	}
	if g.session.Loading() {
		counter += " loading.."
	}
	return counter
}

func (g *Game) GetConfigStatus() ConfigLoadResult {
	return g.configStatus
}
