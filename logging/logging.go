package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileName is the log file created in the configuration directory.
const FileName = "atlas.log"

// New returns a logger appending JSON lines to file. The terminal belongs to
// the editor, so an empty file discards everything instead of writing to
// stdout.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal, panic, disabled.
// It is process wide, see SetLevel.
func New(level string, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	if err := SetLevel(level); err != nil {
		return zerolog.Logger{}, closer, err
	}

	var writer io.Writer = io.Discard
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()

	return l, closer, nil
}

// SetLevel changes the minimum level of every logger, including component
// loggers that were derived before the call.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
