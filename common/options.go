package common

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogOption configures the logger of long running operations.
type LogOption struct {
	LogLevel logrus.Level
	Logger   *logrus.Logger
}

// NewLogger returns the logger in opt if any, a new logger at the specified
// level otherwise, or a logger that discards everything if no option given.
func NewLogger(opt ...LogOption) *logrus.Logger {
	logger := logrus.New()
	if len(opt) == 0 {
		logger.Out = io.Discard
		return logger
	}
	if opt[0].Logger != nil {
		return opt[0].Logger
	}
	logger.SetLevel(opt[0].LogLevel)
	return logger
}
