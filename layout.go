package main

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	thumbnailCell    = 160
	thumbnailGap     = 12
	thumbnailCaption = 24
	controlWidth     = 64
	closeBoxSize     = 32
)

// thumbnailColumns returns how many thumbnail cells fit across the screen
func thumbnailColumns(screenW int) int {
	return max(1, (screenW-thumbnailGap)/(thumbnailCell+thumbnailGap))
}

// thumbnailRows returns how many full thumbnail rows fit on the screen
func thumbnailRows(screenH int) int {
	return max(1, (screenH-thumbnailGap)/(thumbnailCell+thumbnailCaption+thumbnailGap))
}

// thumbnailGrid lays out count thumbnails starting at row firstRow. Cells
// scrolled off the top get an empty rect.
func thumbnailGrid(count, firstRow, screenW, screenH int) []Rect {
	cols := thumbnailColumns(screenW)
	rows := thumbnailRows(screenH)
	rowHeight := float64(thumbnailCell + thumbnailCaption + thumbnailGap)

	rects := make([]Rect, count)
	for i := range rects {
		row := i/cols - firstRow
		if row < 0 || row >= rows {
			continue
		}
		col := i % cols
		rects[i] = Rect{
			X: float64(thumbnailGap + col*(thumbnailCell+thumbnailGap)),
			Y: float64(thumbnailGap) + float64(row)*rowHeight,
			W: thumbnailCell,
			H: thumbnailCell,
		}
	}
	return rects
}

// maxScrollRow is the last row that may be at the top of the thumbnail page
func maxScrollRow(count, screenW, screenH int) int {
	cols := thumbnailColumns(screenW)
	totalRows := (count + cols - 1) / cols
	return max(0, totalRows-thumbnailRows(screenH))
}

// overlayControls returns the hit areas of the prev arrow, next arrow and
// close box while the overlay is open
func overlayControls(screenW, screenH, titleBar int) (prev, next, closeBox Rect) {
	top := float64(titleBar)
	h := float64(screenH) - top
	prev = Rect{X: 0, Y: top, W: controlWidth, H: h}
	next = Rect{X: float64(screenW - controlWidth), Y: top, W: controlWidth, H: h}
	closeBox = Rect{
		X: float64(screenW - closeBoxSize - 4),
		Y: max(0, (top-closeBoxSize)/2),
		W: closeBoxSize,
		H: closeBoxSize,
	}
	return prev, next, closeBox
}

// placeImage returns where a fitted image is drawn inside a container whose
// top-left corner is (originX, originY). The box is centered horizontally,
// shifted by the geometry's left offset and kept inside the container.
func placeImage(g Geometry, originX, originY float64, containerW int) (x, y float64) {
	x = (float64(containerW)-g.Width)/2 + g.Left
	x = max(0, min(x, float64(containerW)-g.Width))
	return originX + x, originY
}
