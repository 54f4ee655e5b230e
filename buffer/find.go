package buffer

// Match is a search hit in raw coordinates.
type Match struct {
	X, Y int
}

// Find searches the render form of every row for query, starting at the row
// after from (before it when searching backwards) and wrapping around the
// buffer. from may be -1 to start at the top.
func (b *Buffer) Find(query []byte, from int, forward bool) (Match, bool) {
	n := b.Rows.Len()
	if len(query) == 0 || n == 0 {
		return Match{}, false
	}

	step := 1
	if !forward {
		step = -1
	}
	if from < 0 || from >= n {
		// the first step from here lands on row 0 going forward, the last row going back
		from = -1
		if !forward {
			from = 0
		}
	}

	y := from
	for range n {
		y = (y + step + n) % n
		if rx := b.Rows.Index(y, query); rx >= 0 {
			return Match{X: b.Rows.RenderToRaw(y, rx), Y: y}, true
		}
	}
	return Match{}, false
}
