package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	level string
	log   *logrus.Logger
}

func New(level string) *Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{
		level: parsed.String(),
		log:   log,
	}
}

// SetOutput redirects log output, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

func (l *Logger) Level() string {
	return l.level
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.log.Infof(msg, args...)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log.Debugf(msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log.Warnf(msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.log.Errorf(msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log.Fatalf(msg, args...)
}

// WithFields returns an entry carrying structured fields.
func (l *Logger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}
