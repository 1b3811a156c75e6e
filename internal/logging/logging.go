// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat renders times as 20060102 15:04:05
const TimestampFormat = "20060102 15:04:05"

// levels maps accepted level names, matched case-insensitively, to logrus
// levels. notset logs everything.
var levels = map[string]logrus.Level{
	"notset":   logrus.TraceLevel,
	"debug":    logrus.DebugLevel,
	"info":     logrus.InfoLevel,
	"warn":     logrus.WarnLevel,
	"warning":  logrus.WarnLevel,
	"error":    logrus.ErrorLevel,
	"critical": logrus.FatalLevel,
	"fatal":    logrus.FatalLevel,
}

// ParseLevel resolves a level name from the command line
func ParseLevel(level string) (logrus.Level, error) {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger at the named level writing to file, or stdout when
// file is empty. The returned closer releases the log file.
func Setup(level, file string) (*logrus.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f
	}

	return New(lvl, out), closer, nil
}

// New returns a text logger at lvl writing to out
func New(lvl logrus.Level, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})
	return logger
}
