// Package render composes a full screen of terminal output for one frame.
package render

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"atlas/layout"
	"atlas/viewport"
)

// Escape sequences used by the renderer.
const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	clearLine    = "\x1b[K"
	reverseVideo = "\x1b[7m"
	resetStyle   = "\x1b[m"
)

// Filler marks screen lines below the end of the buffer.
const Filler = "~"

// Rows is the read side of the row store.
type Rows interface {
	Len() int
	Render(y int) []byte
}

type Status struct {
	Filename string
	Lines    int
	Line     int // 1-based line of the cursor
	Dirty    bool
}

type Message struct {
	Text string
	At   time.Time
}

// Visible reports whether the message is still shown at now.
func (m Message) Visible(now time.Time, timeout time.Duration) bool {
	return m.Text != "" && now.Sub(m.At) < timeout
}

type Frame struct {
	Rows    Rows
	View    viewport.Viewport
	CursorY int
	RenderX int
	Status  Status
	Message Message
	Now     time.Time
	Timeout time.Duration
	Welcome string
}

// Screen splits a rows x cols terminal into the text area, the status bar
// and the message bar.
func Screen(rows, cols int) (text, status, message layout.Dimensions) {
	dims := screen(nil, nil, nil).Resolve(layout.Dimensions{Width: cols, Height: rows})
	return dims[0], dims[1], dims[2]
}

func screen(text, status, message layout.LayoutBox) *layout.Flex {
	return layout.Column(
		layout.FlexItemBox(text, layout.Max(layout.Rel(1)), nil),
		layout.FlexItemBox(status, layout.Exact(layout.Abs(1)), nil),
		layout.FlexItemBox(message, layout.Exact(layout.Abs(1)), nil),
	)
}

// Draw renders f on a rows x cols terminal and writes it to w in a single write.
func Draw(w io.Writer, f Frame, rows, cols int) error {
	var ab bytes.Buffer
	ab.WriteString(hideCursor)

	var text layout.Dimensions
	screen(
		func(d layout.Dimensions) {
			text = d
			drawRows(&ab, f, d)
		},
		func(d layout.Dimensions) { drawStatusBar(&ab, f.Status, d) },
		func(d layout.Dimensions) { drawMessageBar(&ab, f, d) },
	).StartLayouting(cols, rows)

	y, x := f.View.ScreenPos(f.CursorY, f.RenderX)
	moveTo(&ab, text.Origin.Y+y, text.Origin.X+x)
	ab.WriteString(showCursor)

	_, err := w.Write(ab.Bytes())
	return err
}

// moveTo positions the cursor at 0-based row y, column x.
func moveTo(ab *bytes.Buffer, y, x int) {
	fmt.Fprintf(ab, "\x1b[%d;%dH", y+1, x+1)
}

func drawRows(ab *bytes.Buffer, f Frame, d layout.Dimensions) {
	moveTo(ab, d.Origin.Y, d.Origin.X)
	n := f.Rows.Len()
	for i := 0; i < d.Height; i++ {
		filerow := i + f.View.RowOffset
		switch {
		case filerow < n:
			ab.Write(visibleSlice(f.Rows.Render(filerow), f.View.ColOffset, d.Width))
		case n == 0 && i == d.Height/3 && f.Welcome != "":
			drawWelcome(ab, f.Welcome, d.Width)
		default:
			ab.WriteString(Filler)
		}
		ab.WriteString(clearLine)
		if i < d.Height-1 {
			ab.WriteString("\r\n")
		}
	}
}

// visibleSlice cuts the part of render starting at column off, at most width
// bytes long. Short lines are not padded.
func visibleSlice(render []byte, off, width int) []byte {
	if off >= len(render) {
		return nil
	}
	end := min(len(render), off+width)
	return render[off:end]
}

func drawWelcome(ab *bytes.Buffer, welcome string, width int) {
	if len(welcome) > width {
		welcome = welcome[:width]
	}
	padding := (width - len(welcome)) / 2
	if padding > 0 {
		ab.WriteString(Filler)
		padding--
	}
	ab.Write(bytes.Repeat([]byte{' '}, padding))
	ab.WriteString(welcome)
}

func drawStatusBar(ab *bytes.Buffer, s Status, d layout.Dimensions) {
	moveTo(ab, d.Origin.Y, d.Origin.X)
	ab.WriteString(reverseVideo)

	name := s.Filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if s.Dirty {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines%s", name, s.Lines, modified)
	right := fmt.Sprintf("%d/%d", s.Line, s.Lines)

	if len(left) > d.Width {
		left = left[:d.Width]
	}
	ab.WriteString(left)
	for n := len(left); n < d.Width; n++ {
		if d.Width-n == len(right) {
			ab.WriteString(right)
			break
		}
		ab.WriteByte(' ')
	}
	ab.WriteString(resetStyle)
}

func drawMessageBar(ab *bytes.Buffer, f Frame, d layout.Dimensions) {
	moveTo(ab, d.Origin.Y, d.Origin.X)
	ab.WriteString(clearLine)
	if !f.Message.Visible(f.Now, f.Timeout) {
		return
	}
	text := f.Message.Text
	if len(text) > d.Width {
		text = text[:d.Width]
	}
	ab.WriteString(text)
}
