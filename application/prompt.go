package application

import (
	"atlas/keys"
)

// prompt reads a line of input in the message bar. format receives the input
// through a single %s. onKey, if set, runs after every key with the current
// input. ok is false when the prompt was cancelled with escape.
func (e *Editor) prompt(format string, onKey func(input []byte, ev keys.Event)) (line string, ok bool, err error) {
	var input []byte
	for {
		e.SetMessage(format, input)
		if err := e.idle(); err != nil {
			return "", false, err
		}
		if err := e.refreshScreen(); err != nil {
			return "", false, err
		}

		ev, got, err := e.dec.Poll(e.term)
		if err != nil {
			return "", false, err
		}
		if !got {
			continue
		}

		switch {
		case isErase(ev):
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case ev.Key == keys.KeyEscape:
			e.SetMessage("")
			if onKey != nil {
				onKey(input, ev)
			}
			return "", false, nil
		case ev == keys.Literal(keys.Enter):
			if len(input) > 0 {
				e.SetMessage("")
				if onKey != nil {
					onKey(input, ev)
				}
				return string(input), true, nil
			}
		case ev.IsPrintable():
			input = append(input, ev.Byte)
		}

		if onKey != nil {
			onKey(input, ev)
		}
	}
}

func isErase(ev keys.Event) bool {
	return ev.Key == keys.KeyDelete ||
		ev == keys.Literal(keys.Backspace) ||
		ev == keys.Literal(keys.Ctrl('h'))
}

// search is the state of an incremental find between keys.
type search struct {
	last    int // row of the last match, -1 for none
	forward bool
}

// find searches as the query is typed. Arrow keys step to the next or
// previous match; escape puts the cursor and window back where they were.
func (e *Editor) find() error {
	cursor := e.buf.Cursor
	rowOffset, colOffset := e.view.RowOffset, e.view.ColOffset

	s := search{last: -1, forward: true}
	_, ok, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query []byte, ev keys.Event) {
		e.findStep(&s, query, ev)
	})
	if err != nil {
		return err
	}
	if !ok {
		e.buf.Cursor = cursor
		e.view.RowOffset, e.view.ColOffset = rowOffset, colOffset
	}
	return nil
}

func (e *Editor) findStep(s *search, query []byte, ev keys.Event) {
	switch {
	case ev == keys.Literal(keys.Enter) || ev.Key == keys.KeyEscape:
		s.last, s.forward = -1, true
		return
	case ev.Key == keys.KeyRight || ev.Key == keys.KeyDown:
		s.forward = true
	case ev.Key == keys.KeyLeft || ev.Key == keys.KeyUp:
		s.forward = false
	default:
		s.last, s.forward = -1, true
	}
	if s.last == -1 {
		s.forward = true
	}

	m, ok := e.buf.Find(query, s.last, s.forward)
	if !ok {
		return
	}
	s.last = m.Y
	e.buf.MoveTo(m.X, m.Y)
	// scrolling up to the cursor puts the match on the top line
	e.view.RowOffset = e.buf.Lines()
}
