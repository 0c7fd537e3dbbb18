package imagepkg

import (
	"image"

	"github.com/youruser/lifestyleapp/internal/section"
)

// Layout is the fixed geometry of the promotional canvas. All values are in
// pixels except the font sizes, which are points at 72 DPI.
type Layout struct {
	CanvasWidth  int
	CanvasHeight int

	CellWidth   int
	CellHeight  int
	Padding     int // between columns, and around each cell's image
	VerticalGap int // between rows
	// VerticalBias lowers both the grid and the title after centering.
	VerticalBias int

	TitleSize     float64
	TitleMaxWidth int
	TitleLeading  int
	TitleSpacing  int // from title block bottom to grid top, before bias

	CaptionSize   float64
	CaptionWidth  int
	CaptionHeight int
	CaptionInset  int // left inset for text, right inset for the icon
	// CaptionLift raises the caption box above the cell anchor.
	CaptionLift int
	// CaptionReserve pushes the cell image down to clear the caption box.
	CaptionReserve int

	IconSize int
	IconDrop int

	FooterQRSize   int
	FooterQRMargin int
}

// DefaultLayout returns the 1080x1920 four-cell template.
func DefaultLayout() Layout {
	return Layout{
		CanvasWidth:  1080,
		CanvasHeight: 1920,

		CellWidth:    450,
		CellHeight:   450,
		Padding:      30,
		VerticalGap:  120,
		VerticalBias: 50,

		TitleSize:     60,
		TitleMaxWidth: 800,
		TitleLeading:  10,
		TitleSpacing:  200,

		CaptionSize:    35,
		CaptionWidth:   400,
		CaptionHeight:  70,
		CaptionInset:   20,
		CaptionLift:    40,
		CaptionReserve: 40,

		IconSize: 40,
		IconDrop: 5,

		FooterQRSize:   200,
		FooterQRMargin: 80,
	}
}

func (l Layout) gridHeight() int { return 2*l.CellHeight + l.VerticalGap }

// GridTop is the y of the top row's anchors.
func (l Layout) GridTop() int {
	return floorDiv(l.CanvasHeight-l.gridHeight(), 2) + l.VerticalBias
}

// LeftMargin is the x of the left column's anchors.
func (l Layout) LeftMargin() int {
	return floorDiv(l.CanvasWidth-(2*l.CellWidth+l.Padding), 2)
}

// Anchor is the top-left corner of a cell.
func (l Layout) Anchor(p section.Position) image.Point {
	return image.Pt(
		l.LeftMargin()+p.Column()*(l.CellWidth+l.Padding),
		l.GridTop()+p.Row()*(l.CellHeight+l.VerticalGap),
	)
}

// TitleTop is the y of the first title line for a block of n lines.
func (l Layout) TitleTop(n, lineHeight int) int {
	return l.GridTop() - l.TitleSpacing - n*lineHeight + l.VerticalBias
}

// CaptionRect is the caption box of the cell anchored at a.
func (l Layout) CaptionRect(a image.Point) image.Rectangle {
	x := a.X + floorDiv(l.CellWidth-l.CaptionWidth, 2)
	y := a.Y - l.CaptionLift
	return image.Rect(x, y, x+l.CaptionWidth, y+l.CaptionHeight)
}

// InteriorSize is the box every cell image is fitted into.
func (l Layout) InteriorSize() image.Point {
	return image.Pt(l.CellWidth-2*l.Padding, l.CellHeight-2*l.Padding)
}

// InteriorRect is where the fitted image of the cell anchored at a goes.
func (l Layout) InteriorRect(a image.Point) image.Rectangle {
	p := a.Add(image.Pt(l.Padding, l.Padding+l.CaptionReserve))
	return image.Rectangle{Min: p, Max: p.Add(l.InteriorSize())}
}

// IconPoint places an icon of size sz inside the caption box r: right
// aligned, vertically centered, then dropped by IconDrop.
func (l Layout) IconPoint(r image.Rectangle, sz image.Point) image.Point {
	return image.Pt(
		r.Min.X+l.CaptionWidth-sz.X-l.CaptionInset,
		r.Min.Y+floorDiv(l.CaptionHeight-sz.Y, 2)+l.IconDrop,
	)
}

// FooterQRRect is the QR footer area, centered below the grid.
func (l Layout) FooterQRRect() image.Rectangle {
	x := floorDiv(l.CanvasWidth-l.FooterQRSize, 2)
	y := l.CanvasHeight - l.FooterQRMargin - l.FooterQRSize
	return image.Rect(x, y, x+l.FooterQRSize, y+l.FooterQRSize)
}

// floorDiv rounds toward negative infinity so that offsets stay stable when
// text is taller than its box.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
