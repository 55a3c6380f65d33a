// Package logging is a trimmed fork of the teacher repository's logging
// package: a levelled CPrint helper over logrus, with an optional
// rotated-file hook. It is used only by the CLI/harness layer — the
// core hashing pipelines in internal/bits32 and internal/bits64 never log.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level names a logrus severity without forcing callers to import logrus.
type Level = logrus.Level

const (
	PANIC = logrus.PanicLevel
	FATAL = logrus.FatalLevel
	ERROR = logrus.ErrorLevel
	WARN  = logrus.WarnLevel
	INFO  = logrus.InfoLevel
	DEBUG = logrus.DebugLevel
	TRACE = logrus.TraceLevel
)

// Fields carries structured key/value context alongside a log line.
type Fields = logrus.Fields

var clog = defaultLogger()

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stdout
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = logrus.InfoLevel
	return l
}

// Init configures the package logger to also write a daily-rotated log file
// under dir/filename, keeping ageDays days of history, at the given level.
func Init(dir, filename, level string, ageDays uint32) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	hook, err := newFileRotateHook(dir, filename, ageDays, nil)
	if err != nil {
		return err
	}
	clog.Level = lvl
	clog.Hooks.Add(hook)
	return nil
}

// CPrint logs msg at level with the given structured fields, to stdout and,
// if Init was called, to the rotated log file. FATAL and PANIC terminate the
// process, matching logrus's own Fatal/Panic semantics.
func CPrint(level Level, msg string, fields ...Fields) {
	entry := clog.WithFields(mergeFields(fields...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

func mergeFields(fields ...Fields) Fields {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}
