package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Common colors used in rendering
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorGray      = color.RGBA{180, 180, 180, 255}
	colorLightBlue = color.RGBA{200, 200, 255, 255}
	colorOrange    = color.RGBA{255, 200, 100, 255}
	colorCellBg    = color.RGBA{48, 48, 48, 255}
	colorHighlight = color.RGBA{100, 160, 255, 255}

	// Background colors for semi-transparent overlays
	bgColorLight  = color.RGBA{0, 0, 0, 128}
	bgColorMedium = color.RGBA{0, 0, 0, 160}
	bgColorDark   = color.RGBA{0, 0, 0, 220}
)

// Renderer paints the thumbnail page and, when revealed, the overlay
type Renderer struct {
	renderState RenderState
	view        *OverlayView
	store       *ImageStore

	// Only the error image of the slide on screen is kept
	errorSrc   string
	errorImage *ebiten.Image
}

// NewRenderer creates a new Renderer
func NewRenderer(renderState RenderState, view *OverlayView, store *ImageStore) *Renderer {
	return &Renderer{
		renderState: renderState,
		view:        view,
		store:       store,
	}
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: globalFontSource, Size: size}
}

// Draw renders the entire screen
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Clear()

	r.drawThumbnailPage(screen)

	if r.view.IsOverlayVisible() {
		r.drawOverlay(screen)
	}

	if r.renderState.IsShowingInfo() {
		r.drawInfoDisplay(screen)
	}
}

func (r *Renderer) drawThumbnailPage(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	slides := r.renderState.GetSlides()
	rects := thumbnailGrid(len(slides), r.renderState.GetScrollRow(), w, h)
	currentID, hasCurrent := r.renderState.GetCurrentID()
	captionFont := r.face(r.renderState.GetFontSize() * 0.6)

	for i, rect := range rects {
		if rect.W == 0 {
			continue
		}
		slide := slides[i]

		if hasCurrent && slide.ID == currentID {
			DrawFilledRect(screen, rect.X-3, rect.Y-3, rect.W+6, rect.H+6, colorHighlight)
		}
		DrawFilledRect(screen, rect.X, rect.Y, rect.W, rect.H, colorCellBg)

		if img, ok := r.store.Image(slide.Src); ok {
			b := img.Bounds()
			g := FitWithin(float64(b.Dx()), float64(b.Dy()), rect.W, rect.H)
			if !g.IsEmpty() {
				x := rect.X + (rect.W-g.Width)/2
				y := rect.Y + (rect.H-g.Height)/2
				drawScaled(screen, img, g, x, y)
			}
		}

		DrawText(screen, truncate(slide.Title, 20), captionFont, rect.X, rect.Y+rect.H+4, colorGray)
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	titleBar := r.view.titleBarHeight
	fontSize := r.renderState.GetFontSize()

	DrawFilledRect(screen, 0, 0, float64(w), float64(h), bgColorDark)

	link, title, src, _ := r.view.Content()
	titleFont := r.face(fontSize)
	DrawText(screen, title, titleFont, 12, 6, colorWhite)
	if link != "" {
		titleWidth, _ := text.Measure(title, titleFont, 0)
		DrawText(screen, truncate(link, 60), r.face(fontSize*0.7), 24+titleWidth, 10, colorLightBlue)
	}

	_, _, closeBox := overlayControls(w, h, titleBar)
	DrawText(screen, "×", titleFont, closeBox.X+8, closeBox.Y, colorWhite)

	containerW, containerH := r.view.ContainerSize()
	switch {
	case r.view.ShowsPlaceholder():
		r.drawLoadingPlaceholder(screen, containerW, containerH, titleBar)
	default:
		r.drawSlideImage(screen, src, containerW, titleBar)
	}

	r.drawControls(screen, w, h, titleBar)
}

func (r *Renderer) drawSlideImage(screen *ebiten.Image, src string, containerW, titleBar int) {
	if g, ok := r.view.Geometry(); ok {
		if img, cached := r.store.Image(src); cached {
			x, y := placeImage(g, 0, float64(titleBar), containerW)
			drawScaled(screen, img, g, x, y)
			return
		}
	}

	err := r.store.Failure(src)
	if err == nil {
		return
	}
	if r.errorSrc != src {
		if r.errorImage != nil {
			r.errorImage.Deallocate()
		}
		r.errorSrc = src
		r.errorImage = CreateErrorImage(400, 300, src, err.Error())
	}
	b := r.errorImage.Bounds()
	g := Geometry{Width: float64(b.Dx()), Height: float64(b.Dy())}
	x, y := placeImage(g, 0, float64(titleBar), containerW)
	drawScaled(screen, r.errorImage, g, x, y)
}

func (r *Renderer) drawLoadingPlaceholder(screen *ebiten.Image, containerW, containerH, titleBar int) {
	font := r.face(r.renderState.GetFontSize())
	message := "loading.."
	tw, th := text.Measure(message, font, 0)
	x := (float64(containerW) - tw) / 2
	y := float64(titleBar) + (float64(containerH)-th)/2
	DrawFilledRect(screen, x-16, y-12, tw+32, th+24, bgColorMedium)
	DrawText(screen, message, font, x, y, colorGray)
}

func (r *Renderer) drawControls(screen *ebiten.Image, w, h, titleBar int) {
	prev, next, _ := overlayControls(w, h, titleBar)
	arrowFont := r.face(r.renderState.GetFontSize() * 2)
	markerFont := r.face(r.renderState.GetFontSize() * 0.7)

	for _, c := range []struct {
		dir   Direction
		rect  Rect
		glyph string
	}{
		{DirectionPrev, prev, "<"},
		{DirectionNext, next, ">"},
	} {
		if !r.view.IsControlVisible(c.dir) {
			continue
		}
		midY := c.rect.Y + c.rect.H/2
		DrawFilledRect(screen, c.rect.X, midY-40, c.rect.W, 80, bgColorLight)
		DrawText(screen, c.glyph, arrowFont, c.rect.X+c.rect.W/2-12, midY-28, colorWhite)
		if r.view.IsLoading(c.dir) {
			DrawText(screen, "...", markerFont, c.rect.X+c.rect.W/2-10, midY+44, colorOrange)
		}
	}
}

func (r *Renderer) drawInfoDisplay(screen *ebiten.Image) {
	infoFont := r.face(r.renderState.GetFontSize())
	infoText := r.renderState.GetSlideCounter()
	if status := r.renderState.GetConfigStatus(); status.Status == "Warning" || status.Status == "Error" {
		infoText += "  [config: " + status.Status + "]"
	}

	textWidth, textHeight := text.Measure(infoText, infoFont, 0)

	// Position at bottom right corner
	padding := 10.0
	textX := float64(screen.Bounds().Dx()) - textWidth - padding
	textY := float64(screen.Bounds().Dy()) - textHeight - padding

	bgPadding := 5.0
	DrawFilledRect(screen, textX-bgPadding, textY-bgPadding, textWidth+bgPadding*2, textHeight+bgPadding*2, bgColorLight)
	DrawText(screen, infoText, infoFont, textX, textY, colorWhite)
}

// drawScaled draws img scaled to the geometry's box at (x, y)
func drawScaled(screen, img *ebiten.Image, g Geometry, x, y float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(g.Width/float64(b.Dx()), g.Height/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-1]) + "…"
}
