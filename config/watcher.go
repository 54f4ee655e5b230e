package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher reloads the configuration whenever its file is written. Only the
// most recent result is kept until it is received.
type Watcher struct {
	path    string
	log     zerolog.Logger
	watcher *fsnotify.Watcher
	updates chan *Config
	errs    chan error
	done    chan struct{}
}

// Watch watches the directory of path, so that editors replacing the file
// by rename are noticed too.
func Watch(path string, log zerolog.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		log:     log,
		watcher: watcher,
		updates: make(chan *Config, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.rereadConfigOnFileChange()
	return w, nil
}

// Updates delivers every successfully reloaded configuration.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) rereadConfigOnFileChange() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn().Err(err).Str("path", w.path).Msg("config reload failed")
				sendLatest(w.errs, err)
				continue
			}
			w.log.Info().Str("path", w.path).Msg("config reloaded")
			sendLatest(w.updates, cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("config watcher")
			sendLatest(w.errs, err)
		}
	}
}

// sendLatest replaces any value still waiting in ch. ch must have a buffer
// of one and this goroutine must be its only sender.
func sendLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
