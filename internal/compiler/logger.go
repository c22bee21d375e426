package compiler

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger provides verbose output for pipeline decisions during compilation.
type Logger struct {
	enabled bool
	log     *logrus.Logger
	entry   *logrus.Entry
}

// NewLogger creates a new logger instance writing to stderr.
func NewLogger(enabled bool) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return &Logger{
		enabled: enabled,
		log:     log,
		entry:   log.WithField("prefix", "regexer"),
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...any) {
	if l.enabled {
		l.entry.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.entry.WithField("section", name).Debug("===")
	}
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
