package buffer

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Move moves the cursor one step. Left and Right wrap across row boundaries;
// after the move the column is clamped to the length of the new row.
func (b *Buffer) Move(d Direction) {
	c := &b.Cursor
	switch d {
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Down:
		if c.Y < b.Rows.Len() {
			c.Y++
		}
	case Left:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = b.Rows.RowLen(c.Y)
		}
	case Right:
		if b.PastEnd() {
			break
		}
		if c.X < b.Rows.RowLen(c.Y) {
			c.X++
		} else {
			c.Y++
			c.X = 0
		}
	}
	b.clamp()
}

func (b *Buffer) Home() {
	b.Cursor.X = 0
}

// End moves to the end of the current row.
func (b *Buffer) End() {
	b.Cursor.X = b.Rows.RowLen(b.Cursor.Y)
}

// MoveTo places the cursor at (x, y), clamped into the buffer.
func (b *Buffer) MoveTo(x, y int) {
	b.Cursor = Cursor{X: x, Y: y}
	b.clamp()
}
