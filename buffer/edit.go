package buffer

// InsertChar inserts c at the cursor and advances it. On the virtual row past
// the end a new empty row is appended first.
func (b *Buffer) InsertChar(c byte) {
	if b.PastEnd() {
		b.Rows.InsertRow(b.Rows.Len(), nil)
		b.Cursor.Y = b.Rows.Len() - 1
	}
	b.Rows.InsertByte(b.Cursor.Y, b.Cursor.X, c)
	b.Cursor.X++
	b.clamp()
}

// InsertNewline splits the current row at the cursor and moves the cursor to
// the start of the new row. At column 0 an empty row is inserted above instead.
func (b *Buffer) InsertNewline() {
	y, x := b.Cursor.Y, b.Cursor.X
	if x == 0 {
		b.Rows.InsertRow(y, nil)
	} else {
		raw := b.Rows.Raw(y)
		b.Rows.InsertRow(y+1, raw[x:])
		b.Rows.Truncate(y, x)
	}
	b.Cursor.Y = y + 1
	b.Cursor.X = 0
	b.clamp()
}

// DeleteChar removes the byte left of the cursor. At the start of a row the
// row is joined onto the previous one.
func (b *Buffer) DeleteChar() {
	y, x := b.Cursor.Y, b.Cursor.X
	if b.PastEnd() || (x == 0 && y == 0) {
		return
	}

	if x > 0 {
		b.Rows.DeleteByte(y, x-1)
		b.Cursor.X--
	} else {
		b.Cursor.X = b.Rows.RowLen(y - 1)
		b.Rows.Append(y-1, b.Rows.Raw(y))
		b.Rows.DeleteRow(y)
		b.Cursor.Y--
	}
	b.clamp()
}

// DeleteForward removes the byte under the cursor, joining the next row when
// the cursor is at the end of a row.
func (b *Buffer) DeleteForward() {
	if b.PastEnd() {
		return
	}
	if b.Cursor.X == b.Rows.RowLen(b.Cursor.Y) && b.Cursor.Y == b.Rows.Len()-1 {
		return
	}
	b.Move(Right)
	b.DeleteChar()
}
