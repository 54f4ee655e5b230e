// Package terminal owns the controlling tty: raw mode, window size, resize
// notification and a byte source with a bounded read timeout.
package terminal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// DefaultReadTimeout matches a VTIME of one tenth of a second.
const DefaultReadTimeout = 100 * time.Millisecond

const clearScreen = "\x1b[2J\x1b[H"

type Terminal struct {
	tty     tcell.Tty
	timeout time.Duration
	log     zerolog.Logger

	input   chan byte
	errs    chan error
	done    chan struct{}
	resized atomic.Bool
	once    sync.Once
}

// Open puts /dev/tty into raw mode.
func Open(log zerolog.Logger, timeout time.Duration) (*Terminal, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	return New(tty, log, timeout)
}

// New starts tty and begins reading from it. Close must be called to restore
// the terminal, on every exit path.
func New(tty tcell.Tty, log zerolog.Logger, timeout time.Duration) (*Terminal, error) {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	if err := tty.Start(); err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	t := &Terminal{
		tty:     tty,
		timeout: timeout,
		log:     log,
		input:   make(chan byte, 256),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	tty.NotifyResize(func() { t.resized.Store(true) })
	go t.pump()

	log.Debug().Dur("timeout", timeout).Msg("terminal in raw mode")
	return t, nil
}

func (t *Terminal) pump() {
	buf := make([]byte, 128)
	for {
		n, err := t.tty.Read(buf)
		for _, c := range buf[:n] {
			select {
			case t.input <- c:
			case <-t.done:
				return
			}
		}
		if err != nil {
			select {
			case t.errs <- err:
			case <-t.done:
			}
			return
		}
	}
}

// PollByte returns the next input byte, or ok == false if none arrived
// within the read timeout.
func (t *Terminal) PollByte() (byte, bool, error) {
	select {
	case c := <-t.input:
		return c, true, nil
	default:
	}

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case c := <-t.input:
		return c, true, nil
	case err := <-t.errs:
		return 0, false, fmt.Errorf("read terminal: %w", err)
	case <-timer.C:
		return 0, false, nil
	}
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.tty.Write(p)
}

// Size returns the window size in rows and columns.
func (t *Terminal) Size() (rows, cols int, err error) {
	ws, err := t.tty.WindowSize()
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	if ws.Width <= 0 || ws.Height <= 0 {
		return 0, 0, fmt.Errorf("get window size: invalid size %dx%d", ws.Width, ws.Height)
	}
	return ws.Height, ws.Width, nil
}

// Resized reports whether the window changed size since the last call.
func (t *Terminal) Resized() bool {
	return t.resized.Swap(false)
}

// Close clears the screen and restores the terminal to the state it had
// before New. It is safe to call more than once.
func (t *Terminal) Close() error {
	var err error
	t.once.Do(func() {
		_, _ = t.tty.Write([]byte(clearScreen))
		t.tty.NotifyResize(nil)
		close(t.done)

		_ = t.tty.Drain()
		if serr := t.tty.Stop(); serr != nil {
			err = fmt.Errorf("restore terminal: %w", serr)
		}
		_ = t.tty.Close()
		t.log.Debug().Err(err).Msg("terminal restored")
	})
	return err
}
