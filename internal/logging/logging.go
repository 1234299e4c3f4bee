package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns the logger used by the restdoc commands. Output goes to
// stderr so generated documents can be piped from stdout.
func New(verbose bool) *logrus.Logger {
	return NewWithOutput(os.Stderr, verbose)
}

// NewWithOutput is New with a caller-supplied destination.
func NewWithOutput(out io.Writer, verbose bool) *logrus.Logger {
	logger := &logrus.Logger{
		Out:       out,
		Formatter: &logrus.TextFormatter{DisableTimestamp: true},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	return NewWithOutput(io.Discard, false)
}
