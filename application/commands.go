package application

import (
	"path/filepath"

	"atlas/buffer"
	"atlas/files"
)

func (e *Editor) registerCommands() {
	c := e.cmds
	c.Register("quit", e.quit)
	c.Register("save", e.save)
	c.Register("find", e.find)
	c.Register("refresh", func() error { return nil })

	c.Register("up", e.move(buffer.Up))
	c.Register("down", e.move(buffer.Down))
	c.Register("left", e.move(buffer.Left))
	c.Register("right", e.move(buffer.Right))
	c.Register("home", func() error { e.buf.Home(); return nil })
	c.Register("end", func() error { e.buf.End(); return nil })
	c.Register("page-up", e.pageUp)
	c.Register("page-down", e.pageDown)

	c.Register("backspace", func() error { e.buf.DeleteChar(); return nil })
	c.Register("delete", func() error { e.buf.DeleteForward(); return nil })
	c.Register("newline", func() error { e.buf.InsertNewline(); return nil })
}

func (e *Editor) move(d buffer.Direction) func() error {
	return func() error {
		e.buf.Move(d)
		return nil
	}
}

// pageUp jumps to the top of the window, then one window further up.
func (e *Editor) pageUp() error {
	e.buf.MoveTo(e.buf.Cursor.X, e.view.RowOffset)
	for range e.view.Rows {
		e.buf.Move(buffer.Up)
	}
	return nil
}

// pageDown jumps to the bottom of the window, then one window further down.
func (e *Editor) pageDown() error {
	y := min(e.view.RowOffset+e.view.Rows-1, e.buf.Lines())
	e.buf.MoveTo(e.buf.Cursor.X, y)
	for range e.view.Rows {
		e.buf.Move(buffer.Down)
	}
	return nil
}

// quit needs cfg.QuitTimes extra presses in a row while the buffer is dirty.
func (e *Editor) quit() error {
	if e.buf.Dirty() && e.quitLeft > 0 {
		e.SetMessage("WARNING!!! File has unsaved changes. Press %s %d more times to quit.",
			e.keyName("quit"), e.quitLeft)
		e.quitLeft--
		return nil
	}
	return ErrQuit
}

// save writes the buffer, asking for a file name first if it has none. A
// failed write is reported and leaves the buffer dirty.
func (e *Editor) save() error {
	if e.buf.Filename == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetMessage("Save aborted")
			return nil
		}
		e.buf.Filename = name
	}

	n, err := files.Write(e.buf.Filename, e.buf)
	if err != nil {
		e.log.Error().Err(err).Str("path", e.buf.Filename).Msg("save failed")
		e.SetMessage("Can't save! I/O error: %s", err)
		return nil
	}
	e.buf.MarkClean()
	e.updateStamp()
	if e.fileWatch == nil || e.fileWatch.Path() != absPath(e.buf.Filename) {
		e.watchFile()
	}
	e.log.Info().Str("path", e.buf.Filename).Int64("bytes", n).Msg("saved")
	e.SetMessage("%d bytes written to disk", n)
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
