package logger

import (
	"github.com/sirupsen/logrus"
)

// New creates a configured logger. Unknown levels fall back to info.
func New(levelStr string) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return log
}
