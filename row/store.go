package row

import (
	"bytes"
	"slices"
)

// Store is the ordered sequence of rows of a buffer. Out of range indices are
// ignored rather than reported: every mutation either applies fully or is a no-op.
type Store struct {
	rows    []Row
	tabStop int
	dirty   int
}

func NewStore(tabStop int) *Store {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Store{tabStop: tabStop}
}

func (s *Store) Len() int {
	return len(s.rows)
}

func (s *Store) TabStop() int {
	return s.tabStop
}

// SetTabStop changes the tab width and re-renders every row.
func (s *Store) SetTabStop(tabStop int) {
	if tabStop < 1 || tabStop == s.tabStop {
		return
	}
	s.tabStop = tabStop
	for i := range s.rows {
		s.rows[i].update(tabStop)
	}
}

// Dirty counts mutations since the last call to Clean.
func (s *Store) Dirty() int {
	return s.dirty
}

func (s *Store) Clean() {
	s.dirty = 0
}

// Raw returns a copy of the raw bytes of row y, nil if y is out of range.
func (s *Store) Raw(y int) []byte {
	if y < 0 || y >= len(s.rows) {
		return nil
	}
	return slices.Clone(s.rows[y].raw)
}

// Render returns a copy of the render form of row y, nil if y is out of range.
func (s *Store) Render(y int) []byte {
	if y < 0 || y >= len(s.rows) {
		return nil
	}
	return slices.Clone(s.rows[y].render)
}

// RowLen is the raw length of row y, 0 for any y outside the store.
func (s *Store) RowLen(y int) int {
	if y < 0 || y >= len(s.rows) {
		return 0
	}
	return len(s.rows[y].raw)
}

func (s *Store) RenderLen(y int) int {
	if y < 0 || y >= len(s.rows) {
		return 0
	}
	return len(s.rows[y].render)
}

// RawToRender maps raw column x of row y to its render column. Rows outside
// the store render as empty.
func (s *Store) RawToRender(y, x int) int {
	if y < 0 || y >= len(s.rows) {
		return 0
	}
	return RawToRender(s.rows[y].raw, x, s.tabStop)
}

func (s *Store) RenderToRaw(y, rx int) int {
	if y < 0 || y >= len(s.rows) {
		return 0
	}
	return RenderToRaw(s.rows[y].raw, rx, s.tabStop)
}

// Index returns the first render column of row y where query occurs, or -1.
func (s *Store) Index(y int, query []byte) int {
	if y < 0 || y >= len(s.rows) {
		return -1
	}
	return bytes.Index(s.rows[y].render, query)
}

// InsertRow inserts a row holding a copy of b at index at, 0 <= at <= Len().
func (s *Store) InsertRow(at int, b []byte) {
	if at < 0 || at > len(s.rows) {
		return
	}
	s.rows = slices.Insert(s.rows, at, newRow(b, s.tabStop))
	s.dirty++
}

func (s *Store) DeleteRow(at int) {
	if at < 0 || at >= len(s.rows) {
		return
	}
	s.rows = slices.Delete(s.rows, at, at+1)
	s.dirty++
}

// InsertByte inserts c into row y before raw column at. A column past the end
// of the row appends.
func (s *Store) InsertByte(y, at int, c byte) {
	if y < 0 || y >= len(s.rows) {
		return
	}
	r := &s.rows[y]
	if at < 0 || at > len(r.raw) {
		at = len(r.raw)
	}
	r.raw = slices.Insert(r.raw, at, c)
	r.update(s.tabStop)
	s.dirty++
}

func (s *Store) DeleteByte(y, at int) {
	if y < 0 || y >= len(s.rows) {
		return
	}
	r := &s.rows[y]
	if at < 0 || at >= len(r.raw) {
		return
	}
	r.raw = slices.Delete(r.raw, at, at+1)
	r.update(s.tabStop)
	s.dirty++
}

// Append adds b to the end of row y.
func (s *Store) Append(y int, b []byte) {
	if y < 0 || y >= len(s.rows) {
		return
	}
	r := &s.rows[y]
	r.raw = append(r.raw, b...)
	r.update(s.tabStop)
	s.dirty++
}

// Truncate cuts row y down to its first n raw bytes.
func (s *Store) Truncate(y, n int) {
	if y < 0 || y >= len(s.rows) {
		return
	}
	r := &s.rows[y]
	if n < 0 || n >= len(r.raw) {
		return
	}
	r.raw = r.raw[:n]
	r.update(s.tabStop)
	s.dirty++
}
