package util

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Reminder is used for time consuming operations to remind user about progress.
//
// Messages are logged at the logger level in general, and at warning level
// at most once per interval.
type Reminder struct {
	start    time.Time      // start time since last warn
	interval time.Duration  // interval to warn once
	logger   *logrus.Logger // log level to remind in general
}

// NewReminder returns a new Reminder instance. A nil logger discards all messages.
func NewReminder(logger *logrus.Logger, interval time.Duration) *Reminder {
	if logger == nil {
		logger = logrus.New()
		logger.Out = io.Discard
	}

	return &Reminder{
		start:    time.Now(),
		interval: interval,
		logger:   logger,
	}
}

// RemindWith reminds about specified `message` along with `key` and `value`.
func (reminder *Reminder) RemindWith(message string, key string, value interface{}) {
	reminder.Remind(message, logrus.Fields{key: value})
}

// Remind reminds about specified `message` and optional `fields`.
func (reminder *Reminder) Remind(message string, fields ...logrus.Fields) {
	// never remind at error level or above, which may panic or exit
	level := max(reminder.logger.Level, logrus.WarnLevel)

	if reminder.interval > 0 && time.Since(reminder.start) > reminder.interval {
		level = logrus.WarnLevel
		reminder.start = time.Now()
	}

	entry := logrus.NewEntry(reminder.logger)
	if len(fields) > 0 {
		entry = entry.WithFields(fields[0])
	}

	entry.Log(level, message)
}
