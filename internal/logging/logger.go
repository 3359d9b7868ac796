package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a leveled JSON logger. Structured fields replace the
// print-based diagnostics of earlier iterations so cache hits, degradations,
// and provider failures are machine-filterable.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	return logger
}
