// Package logging configures the zerolog logger shared by the planner.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/projectmanas/manas-planner/internal/platform"
)

// LogFileName is the JSON log file written under platform.AppLogDir
const LogFileName = "manas-planner.log"

// NewConsole returns a logger writing human-readable output to stderr
func NewConsole(level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return newLogger(consoleWriter, level)
}

// NewWithFile returns a logger writing console output plus a JSON file
// sink under the per-user log directory. The file is truncated on each
// launch; a session's log covers exactly that session.
func NewWithFile(level zerolog.Level) (zerolog.Logger, error) {
	logDir, err := platform.AppLogDir()
	if err != nil {
		return NewConsole(level), err
	}

	file, err := os.Create(filepath.Join(logDir, LogFileName))
	if err != nil {
		return NewConsole(level), err
	}

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	return newLogger(zerolog.MultiLevelWriter(consoleWriter, file), level), nil
}

func newLogger(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}
