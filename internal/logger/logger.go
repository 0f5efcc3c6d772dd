// Package logger implements the console logger for diagnostics. Generated
// strings go to stdout, so all log output is kept on stderr.
package logger

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options control console logging.
type Options struct {
	LogLevel string // trace, debug, info, warn, error
	NoColor  bool
}

// Init the zerolog logger.
func Init(opts Options) error {
	logLevel, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", opts.LogLevel))
	}

	zerolog.SetGlobalLevel(logLevel)

	log.Logger = zerolog.New(NewConsoleWriter(opts)).With().Timestamp().Logger()

	return nil
}

// NewConsoleWriter creates a zerolog ConsoleWriter on stderr.
func NewConsoleWriter(opts Options) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    opts.NoColor,
		TimeFormat: zerolog.TimeFieldFormat,
	}
}
