// Package application runs the editor: it owns the buffer, reads keys from
// the terminal, dispatches them to commands and redraws after every key.
package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"atlas/buffer"
	"atlas/commands"
	"atlas/config"
	"atlas/files"
	"atlas/keys"
	"atlas/logging"
	"atlas/render"
	"atlas/viewport"
)

// ErrQuit is returned by the quit command once the editor may exit.
var ErrQuit = errors.New("quit")

// Terminal is the raw-mode terminal the editor draws on.
type Terminal interface {
	keys.Source
	io.Writer
	Size() (rows, cols int, err error)
	Resized() bool
}

type Editor struct {
	term    Terminal
	log     zerolog.Logger
	cfg     *config.Config
	version string
	now     func() time.Time

	buf  *buffer.Buffer
	view viewport.Viewport
	dec  keys.Decoder

	cmds   *commands.Commands
	keymap *commands.Keymap

	rows, cols int
	message    render.Message
	quitLeft   int

	stamp     files.Stamp
	fileWatch *files.Watcher
	confWatch *config.Watcher
}

func New(term Terminal, cfg *config.Config, log zerolog.Logger, version string) (*Editor, error) {
	e := &Editor{
		term:     term,
		log:      logging.Component(log, "editor"),
		cfg:      cfg,
		version:  version,
		now:      time.Now,
		buf:      buffer.New(cfg.TabStop),
		quitLeft: cfg.QuitTimes,
	}
	e.cmds = commands.NewCommands(logging.Component(log, "commands"))
	e.registerCommands()

	keymap, err := e.newKeymap(cfg)
	if err != nil {
		return nil, err
	}
	e.keymap = keymap
	e.log.Debug().Strs("commands", e.cmds.Names()).Msg("commands registered")
	return e, nil
}

func (e *Editor) newKeymap(cfg *config.Config) (*commands.Keymap, error) {
	keymap, err := commands.NewKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	if err := keymap.Resolve(e.cmds); err != nil {
		return nil, err
	}
	return keymap, nil
}

// Buffer returns the buffer being edited.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Open loads the file at path into a fresh buffer and starts watching it for
// writes by other processes. A watch failure is logged and otherwise ignored.
func (e *Editor) Open(path string) error {
	buf := buffer.New(e.cfg.TabStop)
	if err := files.Read(path, buf); err != nil {
		return err
	}
	buf.Filename = path
	e.buf = buf
	e.log.Info().Str("path", path).Int("lines", buf.Lines()).Msg("file loaded")

	e.updateStamp()
	e.watchFile()
	return nil
}

func (e *Editor) watchFile() {
	if e.fileWatch != nil {
		_ = e.fileWatch.Close()
		e.fileWatch = nil
	}
	w, err := files.Watch(e.buf.Filename, e.log)
	if err != nil {
		e.log.Warn().Err(err).Str("path", e.buf.Filename).Msg("cannot watch file")
		return
	}
	e.fileWatch = w
}

func (e *Editor) updateStamp() {
	st, err := files.StampOf(e.buf.Filename)
	if err != nil {
		e.log.Debug().Err(err).Str("path", e.buf.Filename).Msg("stat failed")
		return
	}
	e.stamp = st
}

// WatchConfig reloads the configuration whenever the file at path changes.
func (e *Editor) WatchConfig(path string) error {
	w, err := config.Watch(path, e.log)
	if err != nil {
		return err
	}
	e.confWatch = w
	return nil
}

// Close stops the file and configuration watchers.
func (e *Editor) Close() error {
	var errs []error
	if e.fileWatch != nil {
		errs = append(errs, e.fileWatch.Close())
	}
	if e.confWatch != nil {
		errs = append(errs, e.confWatch.Close())
	}
	return errors.Join(errs...)
}

// SetMessage shows a transient message in the message bar.
func (e *Editor) SetMessage(format string, args ...any) {
	e.message = render.Message{Text: fmt.Sprintf(format, args...), At: e.now()}
}

// Message returns the text of the current message, expired or not.
func (e *Editor) Message() string {
	return e.message.Text
}

// Run processes keys until the quit command succeeds, ctx is done or the
// terminal fails. Terminal errors are returned unchanged and are fatal.
func (e *Editor) Run(ctx context.Context) error {
	if err := e.resize(); err != nil {
		return err
	}
	e.SetMessage("HELP: %s = save | %s = quit | %s = find",
		e.keyName("save"), e.keyName("quit"), e.keyName("find"))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.idle(); err != nil {
			return err
		}
		if err := e.refreshScreen(); err != nil {
			return err
		}

		ev, ok, err := e.dec.Poll(e.term)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := e.processKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info().Msg("quit")
				return nil
			}
			return err
		}
	}
}

func (e *Editor) processKey(ev keys.Event) error {
	name, bound := e.keymap.Lookup(ev)
	if name != "quit" {
		e.quitLeft = e.cfg.QuitTimes
	}

	switch {
	case bound:
		return e.cmds.Exec(name)
	case ev.IsLiteral():
		e.buf.InsertChar(ev.Byte)
	default:
		e.log.Debug().Stringer("key", ev).Msg("unbound key")
	}
	return nil
}

// idle handles everything that happens between keys: window resizes, writes
// to the open file and configuration reloads.
func (e *Editor) idle() error {
	if e.term.Resized() {
		if err := e.resize(); err != nil {
			return err
		}
	}

	if e.fileWatch != nil {
		select {
		case <-e.fileWatch.Changes():
			e.checkDisk()
		default:
		}
	}

	if e.confWatch != nil {
		select {
		case cfg := <-e.confWatch.Updates():
			e.applyConfig(cfg)
		case err := <-e.confWatch.Errors():
			e.SetMessage("Config not reloaded: %s", err)
		default:
		}
	}
	return nil
}

func (e *Editor) resize() error {
	rows, cols, err := e.term.Size()
	if err != nil {
		return err
	}
	e.rows, e.cols = rows, cols
	text, _, _ := render.Screen(rows, cols)
	e.view.Resize(text.Height, text.Width)
	e.log.Debug().Int("rows", rows).Int("cols", cols).Msg("window size")
	return nil
}

// checkDisk reports a write to the open file unless it was our own save.
func (e *Editor) checkDisk() {
	st, err := files.StampOf(e.buf.Filename)
	if err != nil || st.Equal(e.stamp) {
		return
	}
	e.stamp = st
	e.log.Info().Str("path", e.buf.Filename).Msg("file changed on disk")
	e.SetMessage("%s changed on disk", filepath.Base(e.buf.Filename))
}

func (e *Editor) applyConfig(cfg *config.Config) {
	keymap, err := e.newKeymap(cfg)
	if err != nil {
		e.SetMessage("Config not reloaded: %s", err)
		return
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		e.SetMessage("Config not reloaded: %s", err)
		return
	}
	e.cfg = cfg
	e.keymap = keymap
	e.quitLeft = cfg.QuitTimes
	e.buf.Rows.SetTabStop(cfg.TabStop)
	e.SetMessage("Configuration reloaded")
}

func (e *Editor) refreshScreen() error {
	e.view.Scroll(e.buf.Cursor.Y, e.buf.RenderX())
	return render.Draw(e.term, e.frame(), e.rows, e.cols)
}

func (e *Editor) frame() render.Frame {
	return render.Frame{
		Rows:    e.buf.Rows,
		View:    e.view,
		CursorY: e.buf.Cursor.Y,
		RenderX: e.buf.RenderX(),
		Status: render.Status{
			Filename: e.buf.Filename,
			Lines:    e.buf.Lines(),
			Line:     e.buf.Cursor.Y + 1,
			Dirty:    e.buf.Dirty(),
		},
		Message: e.message,
		Now:     e.now(),
		Timeout: e.cfg.MessageDuration(),
		Welcome: "Atlas editor -- version " + e.version,
	}
}

// keyName is the key bound to command in display form, e.g. "Ctrl-S".
func (e *Editor) keyName(command string) string {
	spec := e.keymap.KeyFor(command)
	if rest, ok := strings.CutPrefix(spec, "ctrl-"); ok {
		return "Ctrl-" + strings.ToUpper(rest)
	}
	return spec
}
