package row

import "slices"

// DefaultTabStop is the tab width used when no other is configured.
const DefaultTabStop = 4

// Row is one line of text. Render is derived from Raw and is rebuilt on
// every mutation of Raw.
type Row struct {
	raw    []byte
	render []byte
}

func newRow(b []byte, tabStop int) Row {
	r := Row{raw: slices.Clone(b)}
	r.update(tabStop)
	return r
}

// update rebuilds the render form from raw.
func (r *Row) update(tabStop int) {
	r.render = Render(r.raw, tabStop)
}

// Render expands tabs in raw to spaces up to the next multiple of tabStop.
// Every other byte is copied verbatim.
func Render(raw []byte, tabStop int) []byte {
	tabs := 0
	for _, c := range raw {
		if c == '\t' {
			tabs++
		}
	}

	out := make([]byte, 0, len(raw)+tabs*(tabStop-1))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// RawToRender maps a raw column to the column it is displayed at.
func RawToRender(raw []byte, rawX, tabStop int) int {
	rx := 0
	for i := 0; i < rawX && i < len(raw); i++ {
		if raw[i] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToRaw is the inverse of RawToRender. A render column inside a tab
// expansion maps to the tab itself; columns past the end map to len(raw).
func RenderToRaw(raw []byte, renderX, tabStop int) int {
	rx := 0
	for x, c := range raw {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
		if rx > renderX {
			return x
		}
	}
	return len(raw)
}
