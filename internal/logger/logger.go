package logger

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file
type Options struct {
	Filename   string // empty discards all output
	Level      string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New builds a JSON logger writing to a rotated file. The terminal belongs
// to the game screen, so nothing is written to stdout or stderr. The
// returned closer releases the file.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "log level %q", opts.Level)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(level)

	if opts.Filename == "" {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	out := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}
	log.SetOutput(out)
	return log, out, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
