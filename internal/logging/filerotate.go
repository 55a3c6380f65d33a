package logging

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// newFileRotateHook returns a logrus hook that writes to a daily-rotated log
// file under path/filename, keeping age days of history (0 disables the
// age-based cleanup).
func newFileRotateHook(path, filename string, age uint32, formatter logrus.Formatter) (logrus.Hook, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		path = abs
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, err
	}

	filePath := filepath.Join(path, filename+"-%Y%m%d.log")
	linkPath := filepath.Join(path, filename+".log")

	opts := []rotatelogs.Option{
		rotatelogs.WithLinkName(linkPath),
		rotatelogs.WithRotationTime(24 * time.Hour),
	}
	if age > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(time.Duration(age)*24*time.Hour))
	}

	writer, err := rotatelogs.New(filePath, opts...)
	if err != nil {
		return nil, err
	}

	return lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}, formatter), nil
}
