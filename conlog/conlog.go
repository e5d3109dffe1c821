// SPDX-License-Identifier: GPL-2.0-or-later

// Package conlog is the process wide logger.
package conlog

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var (
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		CallerOffset:    1,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "gocube",
	})
	l.SetLevel(log.InfoLevel)
	return l
}

// SetOutput redirects all further output to w.
func SetOutput(w io.Writer) {
	lvl := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(lvl)
}

func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

func Debugf(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

func Printf(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func Warnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}

// Fatalf logs and exits the process with status 1.
func Fatalf(format string, v ...interface{}) {
	logger.Fatalf(format, v...)
}

// With returns a logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return logger.With(keyvals...)
}
