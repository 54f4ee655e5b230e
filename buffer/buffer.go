package buffer

import (
	"atlas/row"
)

// Cursor is a position in raw coordinates. Y may equal the row count, which
// addresses the virtual row past the end of the buffer.
type Cursor struct {
	X, Y int
}

type Buffer struct {
	Rows     *row.Store
	Cursor   Cursor
	Filename string
}

func New(tabStop int) *Buffer {
	return &Buffer{Rows: row.NewStore(tabStop)}
}

// Dirty reports whether the rows changed since the buffer was loaded or saved.
func (b *Buffer) Dirty() bool {
	return b.Rows.Dirty() > 0
}

func (b *Buffer) MarkClean() {
	b.Rows.Clean()
}

// Lines is the number of rows, not counting the virtual row past the end.
func (b *Buffer) Lines() int {
	return b.Rows.Len()
}

// PastEnd reports whether the cursor sits on the virtual row past the end.
func (b *Buffer) PastEnd() bool {
	return b.Cursor.Y >= b.Rows.Len()
}

// RenderX is the render column of the cursor.
func (b *Buffer) RenderX() int {
	return b.Rows.RawToRender(b.Cursor.Y, b.Cursor.X)
}

// clamp restores 0 <= y <= rows and 0 <= x <= len(rows[y]).
func (b *Buffer) clamp() {
	n := b.Rows.Len()
	b.Cursor.Y = min(max(b.Cursor.Y, 0), n)
	b.Cursor.X = min(max(b.Cursor.X, 0), b.Rows.RowLen(b.Cursor.Y))
}
