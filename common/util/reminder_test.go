package util

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestReminder(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.Out = &buf
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	reminder := NewReminder(logger, time.Hour)
	reminder.RemindWith("progress", "done", 3)
	assert.Contains(t, buf.String(), "level=info msg=progress done=3")

	buf.Reset()
	reminder.start = time.Now().Add(-2 * time.Hour)
	reminder.Remind("still running")
	assert.Contains(t, buf.String(), "level=warning msg=\"still running\"")
}

func TestReminderDiscard(t *testing.T) {
	reminder := NewReminder(nil, 0)
	reminder.Remind("ignored", logrus.Fields{"k": "v"})
}
