package components

import (
	"fyne.io/fyne/v2"
)

// Cell places one object on a GridSpanLayout. Row and Col are zero based.
type Cell struct {
	Row, Col         int
	RowSpan, ColSpan int
}

func (c Cell) rowSpan() int {
	if c.RowSpan < 1 {
		return 1
	}
	return c.RowSpan
}

func (c Cell) colSpan() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// GridSpanLayout is a uniform grid where objects may cover several rows or
// columns. cells[i] positions objects[i]; objects without a cell are hidden
// at the origin with zero size.
type GridSpanLayout struct {
	cells   []Cell
	rows    int
	cols    int
	padding float32
}

func NewGridSpanLayout(cells []Cell, padding float32) *GridSpanLayout {
	gl := &GridSpanLayout{cells: cells, padding: padding}
	for _, c := range cells {
		if r := c.Row + c.rowSpan(); r > gl.rows {
			gl.rows = r
		}
		if col := c.Col + c.colSpan(); col > gl.cols {
			gl.cols = col
		}
	}
	return gl
}

// Rows returns the number of grid rows.
func (gl *GridSpanLayout) Rows() int { return gl.rows }

// Cols returns the number of grid columns.
func (gl *GridSpanLayout) Cols() int { return gl.cols }

func (gl *GridSpanLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if gl.rows == 0 || gl.cols == 0 {
		return
	}

	cellWidth := (containerSize.Width - gl.padding*float32(gl.cols-1)) / float32(gl.cols)
	cellHeight := (containerSize.Height - gl.padding*float32(gl.rows-1)) / float32(gl.rows)

	for i, obj := range objects {
		if i >= len(gl.cells) {
			obj.Move(fyne.NewPos(0, 0))
			obj.Resize(fyne.NewSize(0, 0))
			continue
		}

		c := gl.cells[i]
		x := float32(c.Col) * (cellWidth + gl.padding)
		y := float32(c.Row) * (cellHeight + gl.padding)
		w := cellWidth*float32(c.colSpan()) + gl.padding*float32(c.colSpan()-1)
		h := cellHeight*float32(c.rowSpan()) + gl.padding*float32(c.rowSpan()-1)

		obj.Move(fyne.NewPos(x, y))
		obj.Resize(fyne.NewSize(w, h))
	}
}

// MinSize sizes every cell to fit the largest per-cell share of any object.
func (gl *GridSpanLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if gl.rows == 0 || gl.cols == 0 {
		return fyne.NewSize(0, 0)
	}

	cellWidth := float32(0)
	cellHeight := float32(0)

	for i, obj := range objects {
		if i >= len(gl.cells) || !obj.Visible() {
			continue
		}

		c := gl.cells[i]
		objMin := obj.MinSize()
		w := (objMin.Width - gl.padding*float32(c.colSpan()-1)) / float32(c.colSpan())
		h := (objMin.Height - gl.padding*float32(c.rowSpan()-1)) / float32(c.rowSpan())
		if w > cellWidth {
			cellWidth = w
		}
		if h > cellHeight {
			cellHeight = h
		}
	}

	return fyne.NewSize(
		cellWidth*float32(gl.cols)+gl.padding*float32(gl.cols-1),
		cellHeight*float32(gl.rows)+gl.padding*float32(gl.rows-1),
	)
}
