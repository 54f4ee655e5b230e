// Package viewport keeps the cursor inside the visible window of a buffer.
package viewport

// Viewport is the visible window: the first row and render column shown and
// the size of the text area.
type Viewport struct {
	RowOffset, ColOffset int
	Rows, Cols           int
}

func New(rows, cols int) Viewport {
	return Viewport{Rows: max(rows, 0), Cols: max(cols, 0)}
}

// Resize sets the text area dimensions. Offsets are fixed up by the next Scroll.
func (v *Viewport) Resize(rows, cols int) {
	v.Rows, v.Cols = max(rows, 0), max(cols, 0)
}

// Scroll moves the offsets the least amount needed to bring the cursor row y
// and render column rx into view. With an empty window the offsets are reset
// to 0.
func (v *Viewport) Scroll(y, rx int) {
	v.RowOffset = scrollAxis(v.RowOffset, max(y, 0), v.Rows)
	v.ColOffset = scrollAxis(v.ColOffset, max(rx, 0), v.Cols)
}

func scrollAxis(offset, pos, size int) int {
	if size <= 0 {
		return 0
	}
	if pos < offset {
		offset = pos
	}
	if pos >= offset+size {
		offset = pos - size + 1
	}
	return max(offset, 0)
}

// Visible reports whether row y, render column rx is inside the window.
func (v Viewport) Visible(y, rx int) bool {
	return y >= v.RowOffset && y < v.RowOffset+v.Rows &&
		rx >= v.ColOffset && rx < v.ColOffset+v.Cols
}

// ScreenPos translates buffer coordinates into window coordinates.
func (v Viewport) ScreenPos(y, rx int) (row, col int) {
	return y - v.RowOffset, rx - v.ColOffset
}
